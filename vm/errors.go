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
	"fmt"

	"github.com/db47h/befunge/grid"
)

// InstructionError is returned by Step when the pointer is on a character
// that is not a Befunge instruction.
type InstructionError struct {
	Pos  grid.Position
	Char rune
}

func (e *InstructionError) Error() string {
	return fmt.Sprintf("unrecognized instruction %q at %v", e.Char, e.Pos)
}

// ArithmeticError is returned by Step on division or modulo by zero.
type ArithmeticError struct {
	Pos grid.Position
	Op  rune // '/' or '%'
}

func (e *ArithmeticError) Error() string {
	what := "division"
	if e.Op == '%' {
		what = "modulo"
	}
	return fmt.Sprintf("%s by zero at %v", what, e.Pos)
}

// InputError is returned by Step when reading input failed. Err is io.EOF (as
// reported by errors.Cause) at end of input.
type InputError struct {
	Pos grid.Position
	Err error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input read failed at %v: %v", e.Pos, e.Err)
}

// Cause returns the underlying error.
func (e *InputError) Cause() error { return e.Err }

// Unwrap returns the underlying error.
func (e *InputError) Unwrap() error { return e.Err }

// TokenError is returned by Step when the '&' instruction read a token that
// is not a decimal integer. The token has been consumed.
type TokenError struct {
	Pos   grid.Position
	Token string
	Err   error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("malformed integer %q at %v", e.Token, e.Pos)
}

// Cause returns the underlying error.
func (e *TokenError) Cause() error { return e.Err }

// Unwrap returns the underlying error.
func (e *TokenError) Unwrap() error { return e.Err }

// OutputError is returned by Step when writing output failed.
type OutputError struct {
	Pos grid.Position
	Err error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("output write failed at %v: %v", e.Pos, e.Err)
}

// Cause returns the underlying error.
func (e *OutputError) Cause() error { return e.Err }

// Unwrap returns the underlying error.
func (e *OutputError) Unwrap() error { return e.Err }
