// Command rdm-console is an interactive console for composing RDM
// parameter messages from operator-typed values.
//
// The console looks parameters up in the built-in PID catalog,
// converts the typed tokens into a typed message (validating every
// value against its field's width, signedness, length, and repeat
// bounds), and prints the canonical rendering of the result.
//
// Usage:
//
//	rdm-console [flags]
//
// Flags:
//
//	-config string     Configuration file path (YAML)
//	-trace-log string  Write a CBOR build trace to this file
//
// Examples:
//
//	# Start the console
//	rdm-console
//
//	# Start with a build trace for later analysis with rdm-log
//	rdm-console -trace-log session.rlog
//
// Interactive Commands:
//
//	pids                      - List known parameters
//	describe <name|pid>       - Show a parameter's field schema
//	build <name|pid> <values> - Build and print a message
//	help                      - Show command help
//	quit                      - Exit the console
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/rdm-protocol/rdm-go/pkg/log"
	"github.com/rdm-protocol/rdm-go/pkg/pidstore"
)

func main() {
	var (
		configPath string
		traceLog   string
	)
	flag.StringVar(&configPath, "config", "", "Configuration file path")
	flag.StringVar(&traceLog, "trace-log", "", "Write a CBOR build trace to this file")
	flag.Parse()

	config := DefaultConfig()
	if configPath != "" {
		loaded, err := LoadConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "rdm-console: %v\n", err)
			os.Exit(1)
		}
		config = loaded
	}
	// The flag overrides the config file.
	if traceLog != "" {
		config.TraceLog = traceLog
	}

	var logger log.Logger = log.NoopLogger{}
	if config.TraceLog != "" {
		fileLogger, err := log.NewFileLogger(config.TraceLog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "rdm-console: opening trace log: %v\n", err)
			os.Exit(1)
		}
		defer fileLogger.Close()
		logger = fileLogger
	}

	console, err := newConsole(pidstore.Builtin(), logger, uuid.New().String(), config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rdm-console: %v\n", err)
		os.Exit(1)
	}
	defer console.Close()

	console.Run()
}
