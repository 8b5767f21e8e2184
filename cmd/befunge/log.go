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
	"bufio"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	slogmulti "github.com/samber/slog-multi"
)

// newTraceLogger returns a debug level logger writing text records to stderr
// and to the file fileName. A nil stderr or an empty fileName disables the
// corresponding output. The returned function flushes and closes the trace
// file.
func newTraceLogger(stderr io.Writer, fileName string) (*slog.Logger, func() error, error) {
	var handlers []slog.Handler
	closeFn := func() error { return nil }
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// traces are diffed between runs
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}

	if stderr != nil {
		handlers = append(handlers, slog.NewTextHandler(stderr, opts))
	}

	if fileName != "" {
		f, err := os.Create(fileName)
		if err != nil {
			return nil, nil, errors.Wrap(err, "trace file")
		}
		w := bufio.NewWriter(f)
		handlers = append(handlers, slog.NewTextHandler(w, opts))
		closeFn = func() error {
			err := w.Flush()
			if e := f.Close(); err == nil {
				err = e
			}
			return errors.Wrap(err, "trace file")
		}
	}

	return slog.New(slogmulti.Fanout(handlers...)), closeFn, nil
}
