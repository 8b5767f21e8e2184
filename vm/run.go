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


package vm

import (
	"context"
	"log/slog"

	"github.com/db47h/befunge/grid"
)

// Step executes the instruction under the pointer, then moves the pointer one
// cell in its current direction.
//
// The '@' instruction marks the instance as terminated without moving the
// pointer. Once terminated, Step does nothing until the next Reset.
//
// If an error occurs, the pointer is not moved and points to the instruction
// that triggered the error. The instruction is still counted.
func (i *Instance) Step() error {
	if i.done {
		return nil
	}
	i.insCount++
	c := i.prog.Get(i.ip.Pos)
	if i.trace != nil {
		i.traceStep(c)
	}
	if i.strMode && c != '"' {
		i.Push(Cell(c & 0xff))
		i.move()
		return nil
	}
	switch c {
	case ' ':
	case '"':
		i.strMode = !i.strMode
	case '^':
		i.ip.Dir = Up
	case 'v':
		i.ip.Dir = Down
	case '>':
		i.ip.Dir = Right
	case '<':
		i.ip.Dir = Left
	case '?':
		i.ip.Dir = directions[i.rand.IntN(len(directions))]
	case '_':
		if i.Pop() == 0 {
			i.ip.Dir = Right
		} else {
			i.ip.Dir = Left
		}
	case '|':
		if i.Pop() == 0 {
			i.ip.Dir = Down
		} else {
			i.ip.Dir = Up
		}
	case '+':
		a, b := i.pop2()
		i.Push(b + a)
	case '-':
		a, b := i.pop2()
		i.Push(b - a)
	case '*':
		a, b := i.pop2()
		i.Push(b * a)
	case '/':
		a, b := i.pop2()
		if a == 0 {
			return &ArithmeticError{Pos: i.ip.Pos, Op: c}
		}
		i.Push(b / a)
	case '%':
		a, b := i.pop2()
		if a == 0 {
			return &ArithmeticError{Pos: i.ip.Pos, Op: c}
		}
		i.Push(b % a)
	case '!':
		i.Push(bool2Cell(i.Pop() == 0))
	case '`':
		a, b := i.pop2()
		i.Push(bool2Cell(b > a))
	case ':':
		a := i.Pop()
		i.Push(a)
		i.Push(a)
	case '\\':
		a, b := i.pop2()
		i.Push(a)
		i.Push(b)
	case '$':
		i.Pop()
	case '.':
		if err := i.writeInt(i.Pop()); err != nil {
			return &OutputError{Pos: i.ip.Pos, Err: err}
		}
	case ',':
		if err := i.writeByte(byte(i.Pop())); err != nil {
			return &OutputError{Pos: i.ip.Pos, Err: err}
		}
	case '#':
		i.move()
	case 'g':
		y, x := i.pop2()
		i.Push(Cell(i.prog.Get(grid.Position{X: int(x), Y: int(y)}) & 0xff))
	case 'p':
		y, x := i.pop2()
		v := i.Pop()
		i.prog.Set(grid.Position{X: int(x), Y: int(y)}, rune(byte(v)))
	case '&':
		v, err := i.readInt()
		if err != nil {
			return err
		}
		i.Push(v)
	case '~':
		b, err := i.readByte()
		if err != nil {
			return err
		}
		i.Push(Cell(b))
	case '@':
		i.done = true
		return nil
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		i.Push(Cell(c - '0'))
	default:
		return &InstructionError{Pos: i.ip.Pos, Char: c}
	}
	i.move()
	return nil
}

// move moves the pointer one cell in its current direction.
func (i *Instance) move() {
	dx, dy := i.ip.Dir.Delta()
	i.ip.Pos = i.ip.Pos.Add(dx, dy)
	if !i.wrap {
		return
	}
	b, ok := i.prog.Bounds()
	if !ok || b.Contains(i.ip.Pos) {
		return
	}
	p := &i.ip.Pos
	switch {
	case p.X < b.Min.X:
		p.X = b.Max.X
	case p.X > b.Max.X:
		p.X = b.Min.X
	}
	switch {
	case p.Y < b.Min.Y:
		p.Y = b.Max.Y
	case p.Y > b.Max.Y:
		p.Y = b.Min.Y
	}
}

func (i *Instance) traceStep(c rune) {
	ctx := context.Background()
	if !i.trace.Enabled(ctx, slog.LevelDebug) {
		return
	}
	op := Mnemonic(c)
	if i.strMode && c != '"' {
		op = "char"
	}
	i.trace.LogAttrs(ctx, slog.LevelDebug, "step",
		slog.Int64("n", i.insCount),
		slog.Int("x", i.ip.Pos.X),
		slog.Int("y", i.ip.Pos.Y),
		slog.String("c", string(c)),
		slog.String("op", op),
		slog.Any("stack", i.data))
}

// Run starts execution of the program and returns when it terminates or on
// the first error. The error is returned as reported by Step.
//
// Run does nothing if the instance has already terminated.
func (i *Instance) Run() error {
	for !i.done {
		if err := i.Step(); err != nil {
			return err
		}
	}
	return nil
}

// RunContext is like Run, but stops and returns ctx.Err() if ctx is done
// before the program terminates. ctx is checked before each instruction; it
// cannot interrupt a blocking read.
func (i *Instance) RunContext(ctx context.Context) error {
	done := ctx.Done()
	if done == nil {
		return i.Run()
	}
	for !i.done {
		select {
		case <-done:
			return ctx.Err()
		default:
		}
		if err := i.Step(); err != nil {
			return err
		}
	}
	return nil
}
