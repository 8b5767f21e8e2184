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
	"strconv"

	"github.com/pkg/errors"
)

type flusher interface {
	Flush() error
}

// newByteScanner returns either r if it implements io.ByteScanner or wraps it
// up into a bufio.Reader.
func newByteScanner(r io.Reader) io.ByteScanner {
	switch rr := r.(type) {
	case nil:
		return nil
	case io.ByteScanner:
		return rr
	default:
		return bufio.NewReader(r)
	}
}

type multiReader struct {
	readers []io.Reader
}

func (mr *multiReader) Read(p []byte) (n int, err error) {
	for len(mr.readers) > 0 {
		n, err = mr.readers[0].Read(p)
		if n > 0 || err != io.EOF {
			if err == io.EOF {
				// Don't return EOF yet. There may be more bytes
				// in the remaining readers.
				err = nil
			}
			return
		}
		if c, ok := mr.readers[0].(io.Closer); ok {
			c.Close()
		}
		mr.readers = mr.readers[1:]
	}
	return 0, io.EOF
}

func (i *Instance) flush() error {
	if f, ok := i.output.(flusher); ok {
		return errors.Wrap(f.Flush(), "flush failed")
	}
	return nil
}

func (i *Instance) writeByte(b byte) (err error) {
	switch w := i.output.(type) {
	case nil:
		return nil
	case io.ByteWriter:
		err = w.WriteByte(b)
	default:
		_, err = w.Write([]byte{b})
	}
	return errors.WithStack(err)
}

func (i *Instance) writeInt(v Cell) error {
	if i.output == nil {
		return nil
	}
	i.numBuf = strconv.AppendInt(i.numBuf[:0], int64(v), 10)
	_, err := i.output.Write(i.numBuf)
	return errors.WithStack(err)
}

// readByte reads a single byte of input. Pending output is flushed first so
// that any prompt is visible before blocking.
func (i *Instance) readByte() (byte, error) {
	if err := i.flush(); err != nil {
		return 0, &OutputError{Pos: i.ip.Pos, Err: err}
	}
	if i.input == nil {
		return 0, &InputError{Pos: i.ip.Pos, Err: errors.WithStack(io.EOF)}
	}
	b, err := i.input.ReadByte()
	if err != nil {
		return 0, &InputError{Pos: i.ip.Pos, Err: errors.WithStack(err)}
	}
	return b, nil
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// readToken skips leading white space and returns the following run of non
// white space bytes. The byte that ends the token is left unread.
func (i *Instance) readToken() (string, error) {
	b, err := i.readByte()
	for err == nil && isSpace(b) {
		b, err = i.readByte()
	}
	if err != nil {
		return "", err
	}
	tok := []byte{b}
	for {
		b, err = i.input.ReadByte()
		if err == io.EOF {
			return string(tok), nil
		}
		if err != nil {
			return "", &InputError{Pos: i.ip.Pos, Err: errors.WithStack(err)}
		}
		if isSpace(b) {
			i.input.UnreadByte()
			return string(tok), nil
		}
		tok = append(tok, b)
	}
}

// readInt reads a decimal integer for the '&' instruction.
func (i *Instance) readInt() (Cell, error) {
	tok, err := i.readToken()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, &TokenError{Pos: i.ip.Pos, Token: tok, Err: errors.WithStack(err)}
	}
	return Cell(v), nil
}
