package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseConfig(t *testing.T) {
	yaml := `
traceLog: /var/log/rdm/console.rlog
history: /home/op/.rdm_history
prompt: "lighting> "
`
	config, err := ParseConfig([]byte(yaml))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}

	if config.TraceLog != "/var/log/rdm/console.rlog" {
		t.Errorf("TraceLog = %q", config.TraceLog)
	}
	if config.History != "/home/op/.rdm_history" {
		t.Errorf("History = %q", config.History)
	}
	if config.Prompt != "lighting> " {
		t.Errorf("Prompt = %q", config.Prompt)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	config, err := ParseConfig([]byte("traceLog: trace.rlog\n"))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}

	if config.Prompt != "rdm> " {
		t.Errorf("Prompt = %q, want default", config.Prompt)
	}
	if config.History != "" {
		t.Errorf("History = %q, want empty", config.History)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.yaml")
	if err := os.WriteFile(path, []byte("prompt: \"x> \"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Prompt != "x> " {
		t.Errorf("Prompt = %q, want x> ", config.Prompt)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfig of missing file succeeded")
	}
}

func TestParseConfigInvalid(t *testing.T) {
	if _, err := ParseConfig([]byte("prompt: [\n")); err == nil {
		t.Error("ParseConfig of invalid YAML succeeded")
	}
}
