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
	"bufio"
	"io"
	"iter"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/db47h/befunge/grid"
	"github.com/db47h/befunge/internal/bfi"
)

// Cell is the type of values stored on the stack.
type Cell int64

// Direction is the direction of travel of the instruction pointer.
type Direction int

// Pointer directions.
const (
	Up Direction = iota
	Down
	Left
	Right
)

var directions = [...]Direction{Up, Down, Left, Right}

var deltas = [...][2]int{
	Up:    {0, -1},
	Down:  {0, 1},
	Left:  {-1, 0},
	Right: {1, 0},
}

// Delta returns the position offset of a single move in direction d.
func (d Direction) Delta() (dx, dy int) {
	v := deltas[d]
	return v[0], v[1]
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "Direction(" + strconv.Itoa(int(d)) + ")"
}

// Pointer is the instruction pointer: the cell to execute next and the
// direction it will move afterwards.
type Pointer struct {
	Pos grid.Position
	Dir Direction
}

// RandomSource is the source of random numbers for the '?' instruction.
// *rand.Rand from math/rand/v2 implements it.
type RandomSource interface {
	// IntN returns a pseudo random number in [0, n).
	IntN(n int) int
}

// Instance represents a Befunge interpreter instance.
type Instance struct {
	prog     *grid.Program
	ip       Pointer
	data     []Cell
	strMode  bool
	done     bool
	insCount int64
	readers  []io.Reader
	input    io.ByteScanner
	output   io.Writer
	rand     RandomSource
	trace    *slog.Logger
	wrap     bool
	numBuf   []byte
}

// Option interface
type Option func(*Instance) error

// Input pushes the given reader on top of the input stack. When this reader
// reaches EOF, the previously pushed reader will be used.
func Input(r io.Reader) Option {
	return func(i *Instance) error {
		i.readers = append([]io.Reader{r}, i.readers...)
		return nil
	}
}

// Output sets the output writer. If w implements
//
//	interface{ Flush() error }
//
// it is flushed before any blocking read.
func Output(w io.Writer) Option {
	return func(i *Instance) error {
		i.output = w
		return nil
	}
}

// Trace enables execution tracing: a debug level record is logged to l before
// each instruction. A nil logger disables tracing.
func Trace(l *slog.Logger) Option {
	return func(i *Instance) error {
		i.trace = l
		return nil
	}
}

// Rand sets the random source used by the '?' instruction.
func Rand(src RandomSource) Option {
	return func(i *Instance) error {
		i.rand = src
		return nil
	}
}

// Seed sets up a PCG random source with the given seed for the '?'
// instruction.
func Seed(seed uint64) Option {
	return Rand(rand.New(rand.NewPCG(seed, seed)))
}

// Wrap enables or disables wrapping of the instruction pointer. When enabled,
// a pointer leaving the program bounds re-enters on the opposite side.
// The default is false: the program space is unbounded.
func Wrap(wrap bool) Option {
	return func(i *Instance) error {
		i.wrap = wrap
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new interpreter instance for program p. A nil program is the
// same as an empty one.
//
// The instance takes ownership of p: 'p' instructions write to it directly.
// Pass p.Clone() to keep the original intact.
//
// Options will be set by calling SetOptions.
func New(p *grid.Program, opts ...Option) (*Instance, error) {
	if p == nil {
		p = grid.New()
	}
	i := &Instance{
		prog:   p,
		ip:     Pointer{Dir: Right},
		data:   make([]Cell, 0, 64),
		numBuf: make([]byte, 0, 20),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	switch len(i.readers) {
	case 0:
	case 1:
		i.input = newByteScanner(i.readers[0])
	default:
		i.input = bufio.NewReader(&multiReader{i.readers})
	}
	if i.rand == nil {
		t := uint64(time.Now().UnixNano())
		i.rand = rand.New(rand.NewPCG(t, t>>32))
	}
	return i, nil
}

// Reset puts the instance back in its initial state: the pointer at (0, 0)
// heading right, an empty stack, string mode off and the instruction counter
// at zero.
//
// Reset does not undo changes made to the program by the 'p' instruction. If p
// is not nil, it replaces the current program; pass a clone of the original
// program to restart a self-modifying program from scratch.
func (i *Instance) Reset(p *grid.Program) {
	if p != nil {
		i.prog = p
	}
	i.ip = Pointer{Dir: Right}
	i.data = i.data[:0]
	i.strMode = false
	i.done = false
	i.insCount = 0
}

// Pointer returns the instruction pointer.
func (i *Instance) Pointer() Pointer {
	return i.ip
}

// Data returns the data stack, top of stack last. Note that value changes will
// be reflected in the instance's stack, but re-slicing will not affect it. To
// add/remove values on the data stack, use the Push and Pop functions.
func (i *Instance) Data() []Cell {
	return i.data
}

// Program returns the program being run.
func (i *Instance) Program() *grid.Program {
	return i.prog
}

// View returns a view of the program cells within r. See grid.Program.View.
func (i *Instance) View(r grid.Rect) iter.Seq2[grid.Position, rune] {
	return i.prog.View(r)
}

// Terminated returns true once the program has executed the '@' instruction.
func (i *Instance) Terminated() bool {
	return i.done
}

// StringMode returns true if string mode is on.
func (i *Instance) StringMode() bool {
	return i.strMode
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

func dumpSlice(w io.Writer, a []Cell) {
	var b []byte
	for k, v := range a {
		if k > 0 {
			b = append(b, ' ')
		}
		b = strconv.AppendInt(b, int64(v), 10)
	}
	w.Write(b)
}

// Dump writes the instruction pointer, the instruction count, the data stack
// and the program text to the specified io.Writer.
func (i *Instance) Dump(w io.Writer) error {
	ew := bfi.NewErrWriter(w)
	io.WriteString(ew, "ip: "+i.ip.Pos.String()+" "+i.ip.Dir.String())
	if i.done {
		io.WriteString(ew, " (terminated)")
	}
	io.WriteString(ew, "\ncount: "+strconv.FormatInt(i.insCount, 10)+"\nstack: ")
	dumpSlice(ew, i.data)
	io.WriteString(ew, "\n")
	i.prog.WriteTo(ew)
	return ew.Err
}
