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

// Befunge-93 instructions and their mnemonics, as reported in trace records.
var opcodes = [...]struct {
	c    rune
	name string
}{
	{' ', "nop"},
	{'"', "string"},
	{'^', "up"},
	{'v', "down"},
	{'>', "right"},
	{'<', "left"},
	{'?', "random"},
	{'_', "hif"},
	{'|', "vif"},
	{'+', "add"},
	{'-', "sub"},
	{'*', "mul"},
	{'/', "div"},
	{'%', "mod"},
	{'!', "not"},
	{'`', "gt"},
	{':', "dup"},
	{'\\', "swap"},
	{'$', "drop"},
	{'.', "putn"},
	{',', "putc"},
	{'#', "skip"},
	{'g', "get"},
	{'p', "put"},
	{'&', "getn"},
	{'~', "getc"},
	{'@', "end"},
}

var opcodeIndex = make(map[rune]string)

func init() {
	for _, op := range opcodes {
		opcodeIndex[op.c] = op.name
	}
	for c := '0'; c <= '9'; c++ {
		opcodeIndex[c] = "lit"
	}
}

// Mnemonic returns the mnemonic of instruction c, or an empty string if c is
// not an instruction.
func Mnemonic(c rune) string {
	return opcodeIndex[c]
}

// IsInstruction reports whether c is a valid instruction.
func IsInstruction(c rune) bool {
	_, ok := opcodeIndex[c]
	return ok
}
