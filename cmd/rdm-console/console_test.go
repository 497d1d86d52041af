package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rdm-protocol/rdm-go/pkg/log"
	"github.com/rdm-protocol/rdm-go/pkg/pidstore"
)

// captureLogger records events for assertions.
type captureLogger struct {
	events []log.Event
}

func (l *captureLogger) Log(event log.Event) {
	l.events = append(l.events, event)
}

// testConsole builds a console wired to a buffer instead of readline.
func testConsole() (*console, *bytes.Buffer, *captureLogger) {
	out := &bytes.Buffer{}
	logger := &captureLogger{}
	return &console{
		store:     pidstore.Builtin(),
		logger:    logger,
		sessionID: "test-session",
		out:       out,
	}, out, logger
}

func TestRunLinePIDs(t *testing.T) {
	c, out, _ := testConsole()

	if !c.runLine("pids") {
		t.Fatal("runLine(pids) requested exit")
	}
	for _, want := range []string{"DMX_START_ADDRESS", "IDENTIFY_DEVICE", "0x00F0"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("pids output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunLineDescribe(t *testing.T) {
	c, out, _ := testConsole()

	t.Run("ByName", func(t *testing.T) {
		out.Reset()
		c.runLine("describe STATUS_MESSAGES")
		got := out.String()
		if !strings.Contains(got, "message: group [0, 25] {") {
			t.Errorf("describe output missing group header:\n%s", got)
		}
		if !strings.Contains(got, "  statusType: uint8") {
			t.Errorf("describe output missing indented child:\n%s", got)
		}
	})

	t.Run("ByHexPID", func(t *testing.T) {
		out.Reset()
		c.runLine("describe 0x00F0")
		if !strings.Contains(out.String(), "DMX_START_ADDRESS") {
			t.Errorf("describe by PID failed:\n%s", out.String())
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		out.Reset()
		c.runLine("describe BOGUS")
		if !strings.Contains(out.String(), "Unknown parameter") {
			t.Errorf("expected unknown parameter message:\n%s", out.String())
		}
	})
}

func TestRunLineBuild(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		c, out, logger := testConsole()
		c.runLine("build DMX_START_ADDRESS 512")

		if !strings.Contains(out.String(), "dmxAddress: 512\n") {
			t.Errorf("build output missing report:\n%s", out.String())
		}
		if len(logger.events) != 1 {
			t.Fatalf("logged %d events, want 1", len(logger.events))
		}
		event := logger.events[0]
		if event.Category != log.CategoryBuild || event.Build == nil {
			t.Fatalf("event = %+v, want build event", event)
		}
		if event.SessionID != "test-session" || event.Parameter != "DMX_START_ADDRESS" {
			t.Errorf("event = %+v, want session/parameter stamped", event)
		}
		if event.Build.FieldCount != 1 || event.Build.TokenCount != 1 {
			t.Errorf("build counts = (%d, %d), want (1, 1)",
				event.Build.FieldCount, event.Build.TokenCount)
		}
	})

	t.Run("Failure", func(t *testing.T) {
		c, out, logger := testConsole()
		c.runLine("build DMX_START_ADDRESS 70000")

		if !strings.Contains(out.String(), "Build failed") {
			t.Errorf("expected failure output:\n%s", out.String())
		}
		if len(logger.events) != 1 {
			t.Fatalf("logged %d events, want 1", len(logger.events))
		}
		event := logger.events[0]
		if event.Category != log.CategoryError || event.Error == nil {
			t.Fatalf("event = %+v, want error event", event)
		}
		if event.Error.Field != "dmxAddress" {
			t.Errorf("error field = %q, want dmxAddress", event.Error.Field)
		}
	})

	t.Run("GroupValues", func(t *testing.T) {
		c, out, _ := testConsole()
		c.runLine("build PROXIED_DEVICES 1234 100 1234 101")

		got := out.String()
		if strings.Count(got, "device {") != 2 {
			t.Errorf("expected two group instances:\n%s", got)
		}
	})
}

func TestRunLineQuit(t *testing.T) {
	c, _, _ := testConsole()
	for _, cmd := range []string{"quit", "exit", "q"} {
		if c.runLine(cmd) {
			t.Errorf("runLine(%q) should request exit", cmd)
		}
	}
}

func TestRunLineUnknownAndEmpty(t *testing.T) {
	c, out, _ := testConsole()

	if !c.runLine("") {
		t.Error("empty line should not exit")
	}
	c.runLine("frobnicate")
	if !strings.Contains(out.String(), "Unknown command") {
		t.Errorf("expected unknown command message:\n%s", out.String())
	}
}
