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


package main

import (
	"bytes"
	"io"
	"os"

	"golang.org/x/term"
)

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// eotReader reports io.EOF when the wrapped reader returns an EOT (CTRL-D)
// character. Further reads keep returning io.EOF.
type eotReader struct {
	r   io.Reader
	eof bool
}

func (r *eotReader) Read(p []byte) (int, error) {
	if r.eof {
		return 0, io.EOF
	}
	n, err := r.r.Read(p)
	if k := bytes.IndexByte(p[:n], 4); k >= 0 {
		r.eof = true
		return k, io.EOF
	}
	return n, err
}
