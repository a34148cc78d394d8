package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestSetup_ProductionWritesJSON(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	var buf bytes.Buffer
	logger := setup(&buf, "warn", true)

	logger.Info().Msg("hidden")
	logger.Warn().Str("sku", "ELEC001").Msg("low stock")

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected a single JSON line, got %q: %v", buf.String(), err)
	}
	if entry["sku"] != "ELEC001" || entry["level"] != "warn" {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestSetup_BadLevelFallsBackToInfo(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	setup(&bytes.Buffer{}, "loud", false)
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Errorf("level = %v, want info", zerolog.GlobalLevel())
	}
}
