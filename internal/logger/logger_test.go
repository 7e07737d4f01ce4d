package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func TestNewWithWriterLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, false)
	log.Debug().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug output should be suppressed, got %q", buf.String())
	}
	log.Warn().Str("table", "ledger").Msg("shown")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log entry: %v", err)
	}
	if entry["message"] != "shown" || entry["table"] != "ledger" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Fatal("expected timestamp field")
	}
}

func TestVerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, true)
	log.Debug().Msg("visible")
	if buf.Len() == 0 {
		t.Fatal("expected debug output in verbose mode")
	}
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), NewWithWriter(&buf, true))
	log := FromContext(ctx)
	log.Info().Msg("from context")
	if buf.Len() == 0 {
		t.Fatal("expected logger from context to write")
	}

	// Sem logger no contexto, nada deve ser escrito
	nop := FromContext(context.Background())
	nop.Error().Msg("dropped")
}
