// Package log provides structured trace logging for message builds.
//
// This package defines the Logger interface and Event types for
// capturing what the message-description layer did: which parameter
// was built, from how many tokens, with what outcome. It is separate
// from operational logging - the trace is a complete machine-readable
// record for later analysis.
//
// # Basic Usage
//
// Applications configure tracing by providing a Logger implementation:
//
//	// Write to a binary trace file
//	logger, _ := log.NewFileLogger("/var/log/rdm/console.rlog")
//
//	// Or disable tracing entirely
//	var logger log.Logger = log.NoopLogger{}
//
// # File Format
//
// Trace files use CBOR encoding with .rlog extension. The rdm-log CLI
// tool provides viewing and filtering.
package log
