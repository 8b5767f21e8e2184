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


// The befunge command line tool runs Befunge-93 programs with the interpreter
// from package github.com/db47h/befunge/vm.
//
// Usage:
//
//	befunge [flags] program.bf
//
//	-debug
//		  enable debug diagnostics
//	-dump
//		  dump the interpreter state and program upon exit
//	-noraw
//		  disable raw terminal IO
//	-seed n
//		  seed the random number generator with n
//	-show
//		  show program before executing
//	-time
//		  report the instruction count and execution speed upon exit
//	-trace
//		  trace program execution on stderr
//	-tracefile filename
//		  write the execution trace to filename
//	-with filename
//		  Add filename to the input list (can be specified multiple times)
//	-wrap
//		  wrap the instruction pointer around the program bounds
//
// -debug: will print a full stacktrace and the interpreter state should the
// program fail.
//
// -noraw: upon startup, befunge switches the terminal to non-canonical mode
// unless stdin has been redirected, so that the '~' instruction sees single
// keystrokes. In this mode, CTRL-D is handled as end of input. This flag
// disables this behavior.
//
// -seed: by default, the '?' instruction uses a random source seeded from the
// current time. Use this flag to get reproducible runs.
//
// -trace, -tracefile: each executed instruction is logged at debug level with
// the instruction count, pointer position, instruction and stack contents.
// Both flags can be combined, in which case trace records go to both stderr
// and the trace file.
//
// -with: input is read from the specified files before stdin. If specified
// multiple times, files will be fed to the program in order of appearance on
// the command line.
//
// -wrap: Befunge-93 programs live on an 80x25 torus. With this flag, a pointer
// leaving the program's bounding box re-enters on the opposite side. Without
// it, the program space is unbounded.
//
// Reaching the end of input is not an error: the program is stopped and
// befunge exits normally.
package main
