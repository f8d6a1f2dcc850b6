// Copyright 2024 The msgperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Msgstat summarizes messaging benchmark results.
//
// Usage:
//
//	msgstat [flags] [dir]
//
// Msgstat reads every result file in dir (default ".") and prints the
// path of each file as it is read. It then groups the samples by test
// mode and software version, summarizes each group, and prints one
// table per test mode, ranking versions from fastest to slowest.
//
// Each result file is comma-separated text. The first line is a
// header and is ignored. Each other line has the form
//
//	mode,count,millis,date,version[,latency]
//
// where mode is the test mode ("pub", "sub", "pubsub", "rr", ...),
// count is the number of messages sent or received in the run, millis
// is the run's duration, and version names the build under test.
// Request-reply lines ("rr" or "reqrep") may carry a sixth field, the
// round-trip latency in milliseconds.
//
// For each version, msgstat reports the shortest and longest run, the
// message count of a single run ("samples"), the mean round-trip
// latency if any run recorded one ("lat"), and the overall message
// rate: the total message count divided by the total duration. A
// version whose runs took no time at all has a rate of
// "Infinity msgs/sec", and a version with malformed counts or
// durations shows "NaN".
//
// Latency test modes, such as "reconnect", are reported by mean run
// duration instead, shortest first.
//
// # Flags
//
// The -config flag names a YAML profile that sets the section title
// of each test mode, the kind of each test mode, and which files to
// read. See package github.com/msgperf/msgperf/internal/config for its
// format.
//
// The -files flag reads only the named, comma-separated files in dir.
// Files that do not exist are skipped.
//
// The -raw-titles flag titles each section by its upper-cased test
// mode rather than by its configured title.
//
// The -format flag selects text (the default), csv, or html output.
//
// The -png flag additionally writes a bar chart of each test mode to
// the given directory.
//
// The -j flag bounds how many files are read at once. Results do
// not depend on it.
//
// With csv or html output, the paths of the files read are printed
// to standard error instead of standard output.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/msgperf/msgperf/benchagg"
	"github.com/msgperf/msgperf/benchcsv"
	"github.com/msgperf/msgperf/internal/config"
	"github.com/msgperf/msgperf/report"
)

func main() {
	log.SetPrefix("msgstat: ")
	log.SetFlags(0)

	if err := msgstat(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func msgstat(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("msgstat", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(wErr, "Usage: msgstat [flags] [dir]\n")
		flags.PrintDefaults()
	}
	var (
		flagConfig    = flags.String("config", "", "read report profile from `file`")
		flagFiles     = flags.String("files", "", "read only the comma-separated `files` in dir")
		flagRawTitles = flags.Bool("raw-titles", false, "title sections by upper-cased test mode")
		flagFormat    = flags.String("format", "text", "print results in `format`: text, csv, or html")
		flagPNG       = flags.String("png", "", "also write a bar chart of each test mode to `dir`")
		flagJobs      = flags.Int("j", 0, "read at most `n` files at once; 0 means no limit")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() > 1 || *flagJobs < 0 {
		flags.Usage()
		return flag.ErrHelp
	}
	dir := "."
	if flags.NArg() == 1 {
		dir = flags.Arg(0)
	}

	// Progress goes with text output, but must not corrupt
	// machine-readable output.
	progress := wErr
	var output func(*report.Report, io.Writer) error
	switch *flagFormat {
	case "text":
		output = (*report.Report).Text
		progress = w
	case "csv":
		output = (*report.Report).CSV
	case "html":
		output = (*report.Report).HTML
	default:
		return fmt.Errorf("unknown format %q", *flagFormat)
	}

	cfg := config.Default()
	if *flagConfig != "" {
		var err error
		if cfg, err = config.Load(*flagConfig); err != nil {
			return err
		}
	}
	if *flagFiles != "" {
		cfg.Files = strings.Split(*flagFiles, ",")
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("-files: %w", err)
		}
	}
	if *flagRawTitles {
		cfg.RawTitles = true
	}

	paths, err := cfg.Paths(dir)
	if err != nil {
		return err
	}

	// Read everything before summarizing anything.
	var store benchagg.Store
	loader := &benchcsv.Loader{Progress: progress, Limit: *flagJobs}
	if _, err := loader.Load(context.Background(), paths, &store); err != nil {
		return err
	}

	rep := report.Build(benchagg.Rank(&store, cfg.KindMap()), cfg)
	if !cfg.RawTitles {
		for _, warning := range rep.Warnings {
			fmt.Fprintln(wErr, warning)
		}
	}
	if err := output(rep, w); err != nil {
		return err
	}
	if *flagPNG != "" {
		if _, err := rep.Charts(*flagPNG); err != nil {
			return fmt.Errorf("writing charts: %w", err)
		}
	}
	return nil
}
