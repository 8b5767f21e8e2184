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

// Depth returns the data stack depth.
func (i *Instance) Depth() int {
	return len(i.data)
}

// Push pushes the argument on top of the data stack.
func (i *Instance) Push(v Cell) {
	i.data = append(i.data, v)
}

// Pop pops the value on top of the data stack and returns it. Popping an empty
// stack returns 0.
func (i *Instance) Pop() Cell {
	l := len(i.data) - 1
	if l < 0 {
		return 0
	}
	v := i.data[l]
	i.data = i.data[:l]
	return v
}

// pop2 pops a, then b.
func (i *Instance) pop2() (a, b Cell) {
	a = i.Pop()
	return a, i.Pop()
}

func bool2Cell(b bool) Cell {
	if b {
		return 1
	}
	return 0
}
