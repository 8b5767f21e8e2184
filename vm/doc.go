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


// Package vm implements a Befunge-93 interpreter.
//
// An Instance owns a grid.Program, a single instruction pointer and an
// integer stack. Each call to Step executes the instruction under the pointer
// then moves the pointer one cell along its current direction. Run steps until
// the program executes the '@' instruction or an error occurs.
//
// Programs interact with the outside world through the io.Reader and
// io.Writer passed with the Input and Output options, so the same program can
// run against files, memory buffers or a terminal. The '?' instruction draws
// from a per instance random source (see the Rand and Seed options)
// to keep runs reproducible in tests.
//
// All failures are reported as errors, never as panics:
//
//	*InstructionError   unrecognized instruction
//	*ArithmeticError    division or modulo by zero
//	*InputError         read failure, including io.EOF at end of input
//	*TokenError         '&' read something that is not a decimal integer
//	*OutputError        write failure
//
// On error, the pointer is left on the failing cell and the instance stays
// runnable: a driver may patch the program and call Step again.
//
// Popping an empty stack is not an error, it yields 0.
//
// The row index of the program text grows downward: '^' moves the pointer to
// the previous line, 'v' to the next.
package vm
