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
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Parse builds a Program from source text. Lines are separated by '\n'; a
// trailing '\r' on a line is ignored. Every character, spaces included, is
// stored.
func Parse(src string) *Program {
	p := New()
	for y, line := range strings.Split(src, "\n") {
		p.setLine(y, strings.TrimSuffix(line, "\r"))
	}
	return p
}

func (p *Program) setLine(y int, line string) {
	x := 0
	for _, c := range line {
		p.Set(Position{x, y}, c)
		x++
	}
}

// Read builds a Program from the text read from r.
func Read(r io.Reader) (*Program, error) {
	p := New()
	br := bufio.NewReader(r)
	for y := 0; ; y++ {
		line, err := br.ReadString('\n')
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		p.setLine(y, line)
		if err != nil {
			if err == io.EOF {
				return p, nil
			}
			return nil, errors.Wrap(err, "read failed")
		}
	}
}

// Load loads a Program from file fileName.
func Load(fileName string) (*Program, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	p, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Load %v", fileName)
	}
	return p, nil
}
