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
	"iter"
	"strconv"
)

// Position is the address of a cell in a Program.
type Position struct {
	X, Y int
}

// Less reports whether p comes before q in row-major order (Y first, then X).
func (p Position) Less(q Position) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// Add returns p translated by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{p.X + dx, p.Y + dy}
}

func (p Position) String() string {
	return "(" + strconv.Itoa(p.X) + ", " + strconv.Itoa(p.Y) + ")"
}

// Rect is an axis aligned rectangle. Both Min and Max are inclusive.
type Rect struct {
	Min, Max Position
}

// Contains reports whether p lies within r.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Width returns the number of columns in r.
func (r Rect) Width() int {
	if r.Max.X < r.Min.X {
		return 0
	}
	return r.Max.X - r.Min.X + 1
}

// Height returns the number of rows in r.
func (r Rect) Height() int {
	if r.Max.Y < r.Min.Y {
		return 0
	}
	return r.Max.Y - r.Min.Y + 1
}

// Program is the program store. The zero value is an empty program ready to
// use.
//
// A Program is not safe for concurrent use.
type Program struct {
	cells  map[Position]rune
	bounds Rect
}

// New returns an empty Program.
func New() *Program {
	return &Program{cells: make(map[Position]rune)}
}

// Get returns the character at pos. Cells that were never set read as a
// space.
func (p *Program) Get(pos Position) rune {
	if c, ok := p.cells[pos]; ok {
		return c
	}
	return ' '
}

// Set stores c at pos, overwriting any previous value.
func (p *Program) Set(pos Position, c rune) {
	if p.cells == nil {
		p.cells = make(map[Position]rune)
	}
	if len(p.cells) == 0 {
		p.bounds = Rect{pos, pos}
	} else {
		b := &p.bounds
		b.Min.X, b.Max.X = min(b.Min.X, pos.X), max(b.Max.X, pos.X)
		b.Min.Y, b.Max.Y = min(b.Min.Y, pos.Y), max(b.Max.Y, pos.Y)
	}
	p.cells[pos] = c
}

// Len returns the number of cells that have been set.
func (p *Program) Len() int {
	return len(p.cells)
}

// Bounds returns the smallest rectangle enclosing every cell that has been
// set. The boolean result is false for an empty program.
//
// Bounds never shrink: overwriting a cell with a space keeps it in the
// rectangle.
func (p *Program) Bounds() (Rect, bool) {
	if len(p.cells) == 0 {
		return Rect{}, false
	}
	return p.bounds, true
}

// View returns the cells in r in row-major order. Every position in r is
// yielded, unset cells as spaces. The sequence reads the program lazily and
// can be iterated any number of times.
func (p *Program) View(r Rect) iter.Seq2[Position, rune] {
	return func(yield func(Position, rune) bool) {
		for y := r.Min.Y; y <= r.Max.Y; y++ {
			for x := r.Min.X; x <= r.Max.X; x++ {
				pos := Position{x, y}
				if !yield(pos, p.Get(pos)) {
					return
				}
			}
		}
	}
}

// Cells returns View(b) where b are the program bounds. It yields nothing for
// an empty program.
func (p *Program) Cells() iter.Seq2[Position, rune] {
	b, ok := p.Bounds()
	if !ok {
		return func(func(Position, rune) bool) {}
	}
	return p.View(b)
}

// Clone returns a deep copy of p.
func (p *Program) Clone() *Program {
	c := &Program{cells: make(map[Position]rune, len(p.cells)), bounds: p.bounds}
	for k, v := range p.cells {
		c.cells[k] = v
	}
	return c
}
