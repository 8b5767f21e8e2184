// This file is part of befunge - https://github.com/db47h/befunge
//
// Copyright 2026 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package grid_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/db47h/befunge/grid"
	"github.com/pkg/errors"
)

func assertEqual(t *testing.T, name string, expected, got interface{}) {
	t.Helper()
	if expected != got {
		t.Errorf("%s: expected %v, got %v", name, expected, got)
	}
}

func TestGet_unset(t *testing.T) {
	var p grid.Program
	for _, pos := range []grid.Position{{0, 0}, {-5, 3}, {1 << 40, -(1 << 40)}} {
		assertEqual(t, "Get "+pos.String(), ' ', p.Get(pos))
	}
	if _, ok := p.Bounds(); ok {
		t.Error("empty program reports bounds")
	}
	n := 0
	for range p.Cells() {
		n++
	}
	assertEqual(t, "empty Cells", 0, n)
}

func TestSet(t *testing.T) {
	p := grid.New()
	p.Set(grid.Position{3, -2}, 'x')
	p.Set(grid.Position{-1, 4}, 'y')
	p.Set(grid.Position{3, -2}, 'z')
	assertEqual(t, "overwrite", 'z', p.Get(grid.Position{3, -2}))
	assertEqual(t, "second cell", 'y', p.Get(grid.Position{-1, 4}))
	assertEqual(t, "Len", 2, p.Len())
	b, ok := p.Bounds()
	if !ok {
		t.Fatal("no bounds")
	}
	assertEqual(t, "bounds", grid.Rect{Min: grid.Position{-1, -2}, Max: grid.Position{3, 4}}, b)
	assertEqual(t, "width", 5, b.Width())
	assertEqual(t, "height", 7, b.Height())

	// writing a space keeps the cell within bounds
	p.Set(grid.Position{10, 10}, ' ')
	b, _ = p.Bounds()
	assertEqual(t, "bounds after space", grid.Position{10, 10}, b.Max)
	assertEqual(t, "space reads back", ' ', p.Get(grid.Position{10, 10}))
}

func TestPosition_Less(t *testing.T) {
	tests := []struct {
		p, q grid.Position
		less bool
	}{
		{grid.Position{0, 0}, grid.Position{1, 0}, true},
		{grid.Position{5, 0}, grid.Position{0, 1}, true},
		{grid.Position{0, 1}, grid.Position{5, 0}, false},
		{grid.Position{2, 2}, grid.Position{2, 2}, false},
		{grid.Position{-1, -1}, grid.Position{0, -1}, true},
	}
	for _, test := range tests {
		assertEqual(t, test.p.String()+" < "+test.q.String(), test.less, test.p.Less(test.q))
	}
}

const sieve = `2>:3g" "-!v\  g30          <
 |!` + "`" + `"O":+1_:.:03p>03g+:"O"` + "`" + `|
 @               ^  p3\" ":<
2 234567890123456789012345678901234567890123456789012345678901234567890123456789
`

func TestParse_roundTrip(t *testing.T) {
	for _, src := range []string{
		"64+\"!dlroW ,olleH\">:#,_@",
		"&>:1-:v v *_$.@\n ^    _$>\\:^",
		sieve,
	} {
		p := grid.Parse(src)
		lines := strings.Split(strings.TrimSuffix(src, "\n"), "\n")
		for y, line := range lines {
			for x, c := range line {
				if got := p.Get(grid.Position{x, y}); got != c {
					t.Fatalf("cell (%d, %d): expected %q, got %q", x, y, c, got)
				}
			}
		}
		// read back over the occupied rectangle, row by row
		b, _ := p.Bounds()
		rows := make([][]rune, b.Height())
		for pos, c := range p.View(b) {
			rows[pos.Y-b.Min.Y] = append(rows[pos.Y-b.Min.Y], c)
		}
		for y, line := range lines {
			assertEqual(t, "row", line, strings.TrimRight(string(rows[y]), " "))
		}
		trimmed := make([]string, len(lines))
		for i, l := range lines {
			trimmed[i] = strings.TrimRight(l, " ")
		}
		assertEqual(t, "String", strings.Join(trimmed, "\n")+"\n", p.String())
	}
}

func TestParse_crlf(t *testing.T) {
	p := grid.Parse("ab\r\ncd\r\n")
	assertEqual(t, "0,1", 'c', p.Get(grid.Position{0, 1}))
	assertEqual(t, "no CR stored", ' ', p.Get(grid.Position{2, 0}))
	b, _ := p.Bounds()
	assertEqual(t, "bounds", grid.Position{1, 1}, b.Max)
}

func TestView(t *testing.T) {
	p := grid.Parse("ab\nc")
	r := grid.Rect{Min: grid.Position{-1, 0}, Max: grid.Position{1, 1}}
	var b bytes.Buffer
	var order []grid.Position
	for pos, c := range p.View(r) {
		order = append(order, pos)
		b.WriteRune(c)
	}
	assertEqual(t, "view", " ab c ", b.String())
	for i := 1; i < len(order); i++ {
		if !order[i-1].Less(order[i]) {
			t.Errorf("view not in row-major order at %d: %v, %v", i, order[i-1], order[i])
		}
	}
	// restartable
	n := 0
	for range p.View(r) {
		n++
	}
	assertEqual(t, "second pass", 6, n)
	// early stop
	n = 0
	for range p.View(r) {
		n++
		if n == 2 {
			break
		}
	}
	assertEqual(t, "early break", 2, n)
}

func TestClone(t *testing.T) {
	p := grid.Parse("12")
	c := p.Clone()
	c.Set(grid.Position{0, 0}, 'x')
	c.Set(grid.Position{0, 5}, 'y')
	assertEqual(t, "original untouched", '1', p.Get(grid.Position{0, 0}))
	b, _ := p.Bounds()
	assertEqual(t, "original bounds", grid.Position{1, 0}, b.Max)
	assertEqual(t, "clone", 'x', c.Get(grid.Position{0, 0}))
}

func TestRead(t *testing.T) {
	p, err := grid.Read(strings.NewReader("v\n>@\n"))
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, "text", "v\n>@\n", p.String())
}

func TestLoad(t *testing.T) {
	name := filepath.Join(t.TempDir(), "hello.bf")
	if err := os.WriteFile(name, []byte("64+\"!dlroW ,olleH\">:#,_@\n"), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := grid.Load(name)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	assertEqual(t, "last cell", '@', p.Get(grid.Position{23, 0}))

	_, err = grid.Load(filepath.Join(t.TempDir(), "missing.bf"))
	if !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("expected not exist error, got %v", err)
	}
}
