package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/rdm-protocol/rdm-go/pkg/log"
	"github.com/rdm-protocol/rdm-go/pkg/messaging"
	"github.com/rdm-protocol/rdm-go/pkg/pidstore"
	"github.com/rdm-protocol/rdm-go/pkg/rdm"
)

// console drives the interactive command loop. Command handling is
// separated from the readline loop so it can be exercised in tests.
type console struct {
	store     *pidstore.Store
	logger    log.Logger
	sessionID string
	rl        *readline.Instance
	out       io.Writer
}

// newConsole creates the interactive console handler.
func newConsole(store *pidstore.Store, logger log.Logger, sessionID string, config *Config) (*console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          config.Prompt,
		HistoryFile:     config.History,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &console{
		store:     store,
		logger:    logger,
		sessionID: sessionID,
		rl:        rl,
		out:       os.Stdout,
	}, nil
}

// Close releases the readline instance.
func (c *console) Close() error {
	if c.rl == nil {
		return nil
	}
	return c.rl.Close()
}

// Run reads and executes commands until quit or EOF.
func (c *console) Run() {
	c.printHelp()

	for {
		line, err := c.rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return
		}
		if !c.runLine(line) {
			return
		}
	}
}

// runLine executes one command line. It returns false when the
// console should exit.
func (c *console) runLine(line string) bool {
	parts := strings.Fields(strings.TrimSpace(line))
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		c.printHelp()

	case "pids", "list", "ls":
		c.cmdPIDs()

	case "describe", "d":
		c.cmdDescribe(args)

	case "build", "b":
		c.cmdBuild(args)

	case "quit", "exit", "q":
		fmt.Fprintln(c.out, "Exiting...")
		return false

	default:
		fmt.Fprintf(c.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (c *console) printHelp() {
	fmt.Fprintln(c.out, `
RDM Console Commands:
  pids                       - List known parameters
  describe <name|pid>        - Show a parameter's field schema
  build <name|pid> <values>  - Build a message from values and print it
  help                       - Show this help
  quit                       - Exit the console`)
}

func (c *console) cmdPIDs() {
	for _, name := range c.store.Names() {
		p, _ := c.store.LookupName(name)
		fmt.Fprintf(c.out, "  0x%04X  %-20s %s\n", p.PID, p.Name, p.Description)
	}
}

func (c *console) cmdDescribe(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: describe <name|pid>")
		return
	}

	p, ok := c.lookup(args[0])
	if !ok {
		fmt.Fprintf(c.out, "Unknown parameter: %s\n", args[0])
		return
	}

	printer := messaging.NewSchemaPrinter()
	p.Descriptor.Accept(printer)
	fmt.Fprintf(c.out, "%s (0x%04X)\n%s", p.Name, p.PID, printer.AsString())
}

func (c *console) cmdBuild(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.out, "Usage: build <name|pid> <values...>")
		return
	}

	p, ok := c.lookup(args[0])
	if !ok {
		fmt.Fprintf(c.out, "Unknown parameter: %s\n", args[0])
		return
	}
	tokens := args[1:]

	builder := rdm.NewStringMessageBuilder(tokens)
	p.Descriptor.Accept(builder)

	message := builder.GetMessage()
	if message == nil {
		detail := builder.GetError()
		fmt.Fprintf(c.out, "Build failed: %s\n", detail)
		c.logError(p.Name, builder.Err(), detail)
		return
	}

	printer := messaging.NewMessagePrinter()
	message.Accept(printer)
	report := printer.AsString()
	fmt.Fprint(c.out, report)

	c.logger.Log(log.Event{
		Timestamp: time.Now().UTC(),
		SessionID: c.sessionID,
		Category:  log.CategoryBuild,
		Parameter: p.Name,
		Build: &log.BuildEvent{
			TokenCount: len(tokens),
			FieldCount: message.FieldCount(),
			Report:     report,
		},
	})
}

func (c *console) logError(parameter string, err error, detail string) {
	data := &log.ErrorEventData{Detail: detail}
	var fieldErr *rdm.FieldError
	if errors.As(err, &fieldErr) {
		data.Field = fieldErr.Field
	}
	c.logger.Log(log.Event{
		Timestamp: time.Now().UTC(),
		SessionID: c.sessionID,
		Category:  log.CategoryError,
		Parameter: parameter,
		Error:     data,
	})
}

// lookup resolves a parameter by catalog name or by numeric PID
// (decimal or 0x-prefixed hex).
func (c *console) lookup(arg string) (*pidstore.Parameter, bool) {
	if p, ok := c.store.LookupName(strings.ToUpper(arg)); ok {
		return p, true
	}
	if pid, err := strconv.ParseUint(arg, 0, 16); err == nil {
		return c.store.LookupPID(uint16(pid))
	}
	return nil, false
}
