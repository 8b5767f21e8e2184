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


package vm_test

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/db47h/befunge/grid"
	"github.com/db47h/befunge/vm"
)

type C []vm.Cell

func setup(code string, stack C, opts ...vm.Option) *vm.Instance {
	i, err := vm.New(grid.Parse(code), opts...)
	if err != nil {
		panic(err)
	}
	for _, v := range stack {
		i.Push(v)
	}
	return i
}

func check(t *testing.T, testName string, i *vm.Instance, stack C) bool {
	t.Helper()
	err := i.Run()
	if err != nil {
		t.Errorf("%s: %+v", testName, err)
		return false
	}
	if !i.Terminated() {
		t.Errorf("%s: not terminated", testName)
		return false
	}
	stk := i.Data()
	diff := len(stk) != len(stack)
	if !diff {
		for i := range stack {
			if stack[i] != stk[i] {
				diff = true
				break
			}
		}
	}
	if diff {
		t.Errorf("%v", fmt.Errorf("%s: Stack error: expected %d, got %d", testName, stack, stk))
		return false
	}
	return true
}

var tests = [...]struct {
	name string
	code string
	data C
}{
	{"nop", "   @", nil},
	{"lit", "0123456789@", C{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
	{"+", "23+@", C{5}},
	{"-", "21-   12-@", C{1, -1}},
	{"*", "05*  15*  55*@", C{0, 5, 25}},
	{"/", "72/  07-2/  7 07-/@", C{3, -3, -1}},
	{"%", "72%  07-2%  7 07-%@", C{1, -1, 0}},
	{"!", "0!5!@", C{1, 0}},
	{"`", "21`  12`  22`@", C{1, 0, 0}},
	{":", "5:@", C{5, 5}},
	{"\\", "12\\@", C{2, 1}},
	{"$", "12$@", C{1}},
	{"empty +", "+@", C{0}},
	{"empty -", "5-@", C{-5}},
	{"empty :", ":@", C{0, 0}},
	{"empty \\", "\\@", C{0, 0}},
	{"empty $", "$$5@", C{5}},
	{"empty !", "!@", C{1}},
	{"empty `", "`@", C{0}},
	{"empty _", "#@_1@", C{1}},
	{"string", `"ab"@`, C{'a', 'b'}},
	{"string instructions", `"@1 "@`, C{'@', '1', ' '}},
	{"string high byte", "\"éł\"@", C{0xe9, 0x42}},
	{"#", "1#2 3@", C{1, 3}},
	{"# chain", "#1#23@", C{3}},
	{"g", "50g @x", C{'x'}},
	{"g unset", "99g@", C{' '}},
	{"g negative", "01-01-g@", C{' '}},
	{"p", `"a"51p  51g@`, C{'a'}},
	{"p negative value", "09-01p  01g@", C{247}},
	{"p overwrites code", `"5"70p 1@`, C{5}},
	{"_ zero", "#@0_2@", C{2}},
	{"_ nonzero", "#@1_2@", C{1}},
	{"| zero", "v  @\n>70|\n   5\n   @", C{7, 5}},
	{"| nonzero", "v  @\n>71|\n   5\n   @", C{7}},
	{"directions", "v\n1\n>2v\n@3<", C{1, 2, 3}},
	{"^", "v  @\n>1 ^", C{1}},
}

func TestCore(t *testing.T) {
	for _, test := range tests {
		check(t, test.name, setup(test.code, nil), test.data)
	}
}

func TestCore_preloaded(t *testing.T) {
	// operand order with values already on the stack
	check(t, "-", setup("-@", C{10, 3}), C{7})
	check(t, "/", setup("/@", C{10, 3}), C{3})
	check(t, "%", setup("%@", C{10, 3}), C{1})
	check(t, "`", setup("`@", C{10, 3}), C{1})
	check(t, "\\", setup("\\@", C{10, 3}), C{3, 10})
	check(t, "g", setup("g@", C{0, 0}), C{'g'})
	check(t, "overflow", setup("/@", C{math.MinInt64, -1}), C{math.MinInt64})
}

// Any sequence of stack instructions runs without error, whatever the stack
// depth.
func TestCore_emptyPop(t *testing.T) {
	const ops = "+-*`!:\\$0123456789"
	r := rand.New(rand.NewPCG(1, 2))
	for n := 0; n < 500; n++ {
		var b []byte
		for k := r.IntN(20); k >= 0; k-- {
			b = append(b, ops[r.IntN(len(ops))])
		}
		code := string(b)
		i := setup(code+"@", nil)
		if err := i.Run(); err != nil {
			t.Fatalf("%q: %v", code, err)
		}
		if i.InstructionCount() != int64(len(code)+1) {
			t.Fatalf("%q: %d instructions executed", code, i.InstructionCount())
		}
	}
}

func TestCore_selfModify(t *testing.T) {
	values := C{0, 1, 65, 127, 128, 255, 256, 321, -1, -128, -256, math.MaxInt64, math.MinInt64}
	positions := []grid.Position{{0, 1}, {5, 7}, {-3, 2}, {100, -100}, {-1, -1}}
	for _, v := range values {
		for _, pos := range positions {
			i := setup("pg@", nil)
			i.Push(v)
			i.Push(vm.Cell(pos.X))
			i.Push(vm.Cell(pos.Y))
			if err := i.Step(); err != nil {
				t.Fatal(err)
			}
			i.Push(vm.Cell(pos.X))
			i.Push(vm.Cell(pos.Y))
			if err := i.Step(); err != nil {
				t.Fatal(err)
			}
			got := i.Pop()
			exp := vm.Cell(((v % 256) + 256) % 256)
			if got != exp {
				t.Errorf("p/g %d at %v: expected %d, got %d", v, pos, exp, got)
			}
		}
	}
}

func TestMnemonic(t *testing.T) {
	for _, c := range "\"^v><?_|+-*/%!`:\\$.,#gp&~@ 0123456789" {
		if !vm.IsInstruction(c) {
			t.Errorf("%q: not an instruction", c)
		}
	}
	for _, c := range "zxAZ[]{}\n\x00é" {
		if vm.IsInstruction(c) {
			t.Errorf("%q: unexpected instruction", c)
		}
	}
	assertEqual(t, "mnemonic", "add", vm.Mnemonic('+'))
	assertEqual(t, "mnemonic", "lit", vm.Mnemonic('7'))
	assertEqual(t, "mnemonic", "", vm.Mnemonic('z'))
}
