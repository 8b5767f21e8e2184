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


package grid

import (
	"io"
	"strings"

	"github.com/db47h/befunge/internal/bfi"
)

// WriteTo writes the program as text to w: one line per row of the program
// bounds, trailing spaces removed. It implements io.WriterTo.
func (p *Program) WriteTo(w io.Writer) (n int64, err error) {
	b, ok := p.Bounds()
	if !ok {
		return 0, nil
	}
	ew := bfi.NewErrWriter(w)
	var line strings.Builder
	for y := b.Min.Y; y <= b.Max.Y; y++ {
		line.Reset()
		for x := b.Min.X; x <= b.Max.X; x++ {
			line.WriteRune(p.Get(Position{x, y}))
		}
		io.WriteString(ew, strings.TrimRight(line.String(), " "))
		ew.Write([]byte{'\n'})
	}
	return ew.N, ew.Err
}

// String returns the program text as written by WriteTo.
func (p *Program) String() string {
	var sb strings.Builder
	p.WriteTo(&sb)
	return sb.String()
}
