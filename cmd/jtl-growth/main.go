// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command jtl-growth pushes integers into vectors backed by different
// allocators and reports how their capacity grows.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/docopt/docopt-go"
	"github.com/engjefersonsantiago/jeflib/memory"
	"github.com/engjefersonsantiago/jeflib/vector"
	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"
)

const usage = `Vector growth tracer.
Usage:
  jtl-growth -h | --help
  jtl-growth [--count=<n>] [--limit=<elems>] [--alloc=<kinds>] [--serial] [--json]
Options:
  -h --help          Show this screen.
  --count=<n>        Number of integers to push back [default: 100].
  --limit=<elems>    Fail allocations once this many elements are outstanding, 0 for no limit [default: 0].
  --alloc=<kinds>    Comma delimited allocators to trace: go, pool, arena [default: go].
  --serial           Trace one allocator at a time.
  --json             Format output as JSON instead of text.`

type config struct {
	Count      int
	Limit      int
	Allocators []string
	Serial     bool
	JSON       bool
}

type step struct {
	Len int `json:"len"`
	Cap int `json:"cap"`
}

type report struct {
	Allocator string `json:"allocator"`
	Count     int    `json:"count"`
	Limit     int    `json:"limit,omitempty"`
	Pushed    int    `json:"pushed"`
	Steps     []step `json:"steps"`
	Leaked    int    `json:"leaked"`
	Error     string `json:"error,omitempty"`

	err error
}

func main() {
	opts, _ := docopt.ParseDoc(usage)
	var (
		cfg config
		err error
	)
	if cfg.Count, err = opts.Int("--count"); err != nil || cfg.Count < 0 {
		fmt.Fprintln(os.Stderr, "error: --count needs to be a non-negative integer")
		os.Exit(1)
	}
	if cfg.Limit, err = opts.Int("--limit"); err != nil || cfg.Limit < 0 {
		fmt.Fprintln(os.Stderr, "error: --limit needs to be a non-negative integer")
		os.Exit(1)
	}
	kinds, _ := opts.String("--alloc")
	cfg.Allocators = strings.Split(kinds, ",")
	cfg.Serial, _ = opts.Bool("--serial")
	cfg.JSON, _ = opts.Bool("--json")

	reps, err := traceAll(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if err := render(os.Stdout, reps, cfg.JSON); err != nil {
		fmt.Fprintln(os.Stderr, "error writing report:", err)
		os.Exit(1)
	}
	for _, r := range reps {
		if r.err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %s\n", r.Allocator, r.err)
			os.Exit(2)
		}
	}
}

func newAllocator(kind string) (memory.Allocator[int], func(), error) {
	switch kind {
	case "go":
		return memory.NewGoAllocator[int](), func() {}, nil
	case "pool":
		return memory.NewPoolAllocator[int](), func() {}, nil
	case "arena":
		a := memory.NewArena[int](0)
		return a, a.Release, nil
	}
	return nil, nil, xerrors.Errorf("unknown allocator %q", kind)
}

// traceAll runs trace once per allocator kind, concurrently unless
// cfg.Serial is set. Allocation failures are recorded in the reports; only
// an unknown allocator kind fails the whole run.
func traceAll(cfg config) ([]report, error) {
	reps := make([]report, len(cfg.Allocators))
	var g errgroup.Group
	if cfg.Serial {
		g.SetLimit(1)
	}
	for i, kind := range cfg.Allocators {
		kind = strings.TrimSpace(kind)
		g.Go(func() error {
			mem, release, err := newAllocator(kind)
			if err != nil {
				return err
			}
			defer release()
			reps[i] = trace(kind, mem, cfg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reps, nil
}

// trace pushes cfg.Count integers into a fresh vector and records every
// capacity change along the way.
func trace(kind string, mem memory.Allocator[int], cfg config) report {
	if cfg.Limit > 0 {
		mem = memory.NewLimitedAllocator(mem, cfg.Limit)
	}
	checked := memory.NewCheckedAllocator(mem)

	rep := report{Allocator: kind, Count: cfg.Count, Limit: cfg.Limit, Steps: []step{}}
	v := vector.NewEmpty[int](checked)
	for i := 0; i < cfg.Count; i++ {
		prev := v.Cap()
		if err := v.PushBack(i); err != nil {
			rep.err = xerrors.Errorf("element %d: %w", i, err)
			rep.Error = rep.err.Error()
			break
		}
		if v.Cap() != prev {
			rep.Steps = append(rep.Steps, step{Len: v.Len(), Cap: v.Cap()})
		}
	}
	rep.Pushed = v.Len()

	v.Release()
	rep.Leaked = checked.CurrentAlloc()
	return rep
}

func render(w io.Writer, reps []report, asJSON bool) error {
	if asJSON {
		out, err := json.MarshalIndent(reps, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", out)
		return err
	}

	for _, rep := range reps {
		if _, err := fmt.Fprintf(w, "%s:\n", rep.Allocator); err != nil {
			return err
		}
		for _, s := range rep.Steps {
			if _, err := fmt.Fprintf(w, "  len=%d cap=%d\n", s.Len, s.Cap); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "  pushed %d of %d elements, %d reallocations, %d leaked\n",
			rep.Pushed, rep.Count, len(rep.Steps), rep.Leaked)
		if err != nil {
			return err
		}
	}
	return nil
}
