// Command rdm-log is a tool for viewing and analyzing RDM console trace files.
//
// Trace files are created by running rdm-console with the -trace-log flag.
//
// Usage:
//
//	rdm-log <command> [flags] <file.rlog>
//
// Commands:
//
//	view     View trace file in human-readable format
//	stats    Show statistics about the trace file
//
// Examples:
//
//	# View all events
//	rdm-log view session.rlog
//
//	# View only failed builds
//	rdm-log view -category error session.rlog
//
//	# View builds of one parameter
//	rdm-log view -parameter DMX_START_ADDRESS session.rlog
//
//	# Show statistics
//	rdm-log stats session.rlog
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rdm-protocol/rdm-go/cmd/rdm-log/commands"
	"github.com/rdm-protocol/rdm-go/pkg/log"
)

const usage = `rdm-log - RDM Console Trace Analyzer

Usage:
  rdm-log <command> [flags] <file.rlog>

Commands:
  view     View trace file in human-readable format
  stats    Show statistics about the trace file

Use "rdm-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `rdm-log view - View trace file in human-readable format

Usage:
  rdm-log view [flags] <file.rlog>

Flags:
`)
		fs.PrintDefaults()
	}

	session := fs.String("session", "", "Filter by session ID")
	category := fs.String("category", "", "Filter by category (build, error)")
	parameter := fs.String("parameter", "", "Filter by parameter name")
	timeStart := fs.String("time-start", "", "Filter by start time (RFC3339)")
	timeEnd := fs.String("time-end", "", "Filter by end time (RFC3339)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}

	path := fs.Arg(0)

	filter := log.Filter{
		SessionID: *session,
		Parameter: *parameter,
	}

	if *category != "" {
		c, err := commands.ParseCategoryFlag(*category)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		filter.Category = &c
	}

	if *timeStart != "" {
		t, err := time.Parse(time.RFC3339, *timeStart)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid time-start: %v\n", err)
			os.Exit(1)
		}
		filter.TimeStart = &t
	}

	if *timeEnd != "" {
		t, err := time.Parse(time.RFC3339, *timeEnd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid time-end: %v\n", err)
			os.Exit(1)
		}
		filter.TimeEnd = &t
	}

	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `rdm-log stats - Show statistics about the trace file

Usage:
  rdm-log stats <file.rlog>

`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunStats(fs.Arg(0), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
