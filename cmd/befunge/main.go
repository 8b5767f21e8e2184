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
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/db47h/befunge/grid"
	"github.com/db47h/befunge/vm"
	"github.com/pkg/errors"
)

type fileList []string

func (f *fileList) String() string     { return "" }
func (f *fileList) Set(s string) error { *f = append(*f, s); return nil }
func (f *fileList) Get() interface{}   { return *f }

// seedValue is an optional uint64 flag.
type seedValue struct {
	v   uint64
	set bool
}

func (s *seedValue) String() string {
	if !s.set {
		return ""
	}
	return strconv.FormatUint(s.v, 10)
}

func (s *seedValue) Set(v string) error {
	n, err := strconv.ParseUint(v, 0, 64)
	if err != nil {
		return err
	}
	s.v, s.set = n, true
	return nil
}

func (s *seedValue) Get() interface{} { return s.v }

var (
	noRawIO bool
	debug   bool
	dump    bool
	show    bool
	timing  bool
	trace   bool
	wrap    bool
	seed    seedValue
)

func setupIO() (raw bool, tearDown func()) {
	var err error
	if noRawIO || !isTerminal(os.Stdin) {
		return false, nil
	}
	tearDown, err = setRawIO()
	if err != nil {
		return false, nil
	}
	return true, tearDown
}

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		ip := i.Pointer()
		fmt.Fprintf(os.Stderr, "IP: %v %v (%q), Stack: %v, Count: %d\n",
			ip.Pos, ip.Dir, i.Program().Get(ip.Pos), i.Data(), i.InstructionCount())
	}
	os.Exit(1)
}

// reportTime writes the execution statistics of i to w.
func reportTime(w io.Writer, i *vm.Instance, d time.Duration) {
	n := i.InstructionCount()
	var ips int64
	if s := d.Seconds(); s > 0 {
		ips = int64(float64(n) / s)
	}
	fmt.Fprintf(w, "Executed %d instructions in %v (%d instructions/second)\n", n, d, ips)
}

func main() {
	var err error
	var i *vm.Instance

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		if e := stdout.Flush(); err == nil && e != nil {
			err = errors.Wrap(e, "flush failed")
		}
		if err == nil && dump && i != nil {
			err = i.Dump(os.Stdout)
		}
		atExit(i, err)
	}()

	var withFiles fileList
	var traceFile string

	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.BoolVar(&dump, "dump", false, "dump the interpreter state and program upon exit")
	flag.BoolVar(&noRawIO, "noraw", false, "disable raw terminal IO")
	flag.Var(&seed, "seed", "seed the random number generator with `n`")
	flag.BoolVar(&show, "show", false, "show program before executing")
	flag.BoolVar(&timing, "time", false, "report the instruction count and execution speed upon exit")
	flag.BoolVar(&trace, "trace", false, "trace program execution on stderr")
	flag.StringVar(&traceFile, "tracefile", "", "write the execution trace to `filename`")
	flag.Var(&withFiles, "with", "Add `filename` to the input list (can be specified multiple times)")
	flag.BoolVar(&wrap, "wrap", false, "wrap the instruction pointer around the program bounds")

	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] program.bf\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	var p *grid.Program
	p, err = grid.Load(flag.Arg(0))
	if err != nil {
		return
	}
	if show {
		if _, err = p.WriteTo(stdout); err != nil {
			return
		}
		if err = stdout.Flush(); err != nil {
			return
		}
	}

	// try to switch the input terminal to raw mode.
	rawtty, ioTearDownFn := setupIO()
	if ioTearDownFn != nil {
		defer ioTearDownFn()
	}

	var opts = []vm.Option{
		vm.Output(stdout),
		vm.Wrap(wrap),
	}
	if rawtty {
		// no line discipline: handle CTRL-D ourselves
		opts = append(opts, vm.Input(&eotReader{r: os.Stdin}))
	} else {
		opts = append(opts, vm.Input(os.Stdin))
	}

	// append -with files to input stack in reverse order so that they load
	// in order of appearance on the command line.
	for n := len(withFiles) - 1; n >= 0; n-- {
		var f *os.File
		f, err = os.Open(withFiles[n])
		if err != nil {
			err = errors.Wrap(err, "input file")
			return
		}
		opts = append(opts, vm.Input(f))
	}

	if seed.set {
		opts = append(opts, vm.Seed(seed.v))
	}

	if trace || traceFile != "" {
		var stderr io.Writer
		if trace {
			stderr = os.Stderr
		}
		var l *slog.Logger
		var closeTrace func() error
		l, closeTrace, err = newTraceLogger(stderr, traceFile)
		if err != nil {
			return
		}
		defer func() {
			if e := closeTrace(); err == nil {
				err = e
			}
		}()
		opts = append(opts, vm.Trace(l))
	}

	i, err = vm.New(p, opts...)
	if err != nil {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		// a second interrupt kills the process, even if blocked on input.
		<-ctx.Done()
		stop()
	}()

	start := time.Now()
	err = i.RunContext(ctx)
	if timing {
		stdout.Flush()
		reportTime(os.Stderr, i, time.Since(start))
	}
	if errors.Cause(err) == io.EOF {
		err = nil
	}
}
