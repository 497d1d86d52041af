// Package commands implements the rdm-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/rdm-protocol/rdm-go/pkg/log"
)

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [session:id] CATEGORY Parameter
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	session := shortenSessionID(event.SessionID)

	if event.Parameter != "" {
		fmt.Fprintf(w, "%s [session:%s] %-5s %s\n", ts, session, event.Category.String(), event.Parameter)
	} else {
		fmt.Fprintf(w, "%s [session:%s] %-5s\n", ts, session, event.Category.String())
	}

	switch {
	case event.Build != nil:
		formatBuildDetails(w, event.Build)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// formatBuildDetails writes build-specific details.
func formatBuildDetails(w io.Writer, build *log.BuildEvent) {
	fmt.Fprintf(w, "  Tokens: %d  Fields: %d\n", build.TokenCount, build.FieldCount)
	if build.Report != "" {
		for _, line := range strings.Split(strings.TrimRight(build.Report, "\n"), "\n") {
			fmt.Fprintf(w, "  | %s\n", line)
		}
	}
}

// formatErrorDetails writes error details.
func formatErrorDetails(w io.Writer, data *log.ErrorEventData) {
	if data.Field != "" {
		fmt.Fprintf(w, "  Field: %s\n", data.Field)
	}
	fmt.Fprintf(w, "  Detail: %s\n", data.Detail)
}

// ParseCategoryFlag parses a category string from a command-line flag
// (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "build":
		return log.CategoryBuild, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be build or error)", s)
	}
}

// RunView executes the view command.
func RunView(path string, filter log.Filter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		formatEvent(output, event)
	}

	return nil
}
