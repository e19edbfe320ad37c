package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/defectdash/pkg/utils/logging"
)

func TestParseLogLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected slog.Level
		wantErr  bool
	}{
		{input: "debug", expected: slog.LevelDebug},
		{input: "INFO", expected: slog.LevelInfo},
		{input: "", expected: slog.LevelInfo},
		{input: "warning", expected: slog.LevelWarn},
		{input: "error", expected: slog.LevelError},
		{input: "verbose", expected: slog.LevelInfo, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			level, err := logging.ParseLogLevel(tc.input)
			if tc.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
			}
			gt.Equal(t, level, tc.expected)
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := logging.ParseFormat("JSON")
	gt.NoError(t, err)
	gt.Equal(t, f, logging.FormatJSON)

	f, err = logging.ParseFormat("")
	gt.NoError(t, err)
	gt.Equal(t, f, logging.FormatAuto)

	_, err = logging.ParseFormat("xml")
	gt.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	t.Run("auto falls back to JSON for non-terminal writer", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(slog.LevelInfo, &buf, logging.FormatAuto)
		logger.Info("hello", "project", "Defect Tracker")

		var entry map[string]any
		gt.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		gt.Equal(t, entry["msg"], any("hello"))
		gt.Equal(t, entry["project"], any("Defect Tracker"))
	})

	t.Run("level filters entries", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(slog.LevelWarn, &buf, logging.FormatJSON)
		logger.Info("ignored")
		gt.Equal(t, buf.Len(), 0)
	})

	t.Run("console writes text", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(slog.LevelInfo, &buf, logging.FormatConsole)
		logger.Info("hello console")
		gt.S(t, buf.String()).Contains("hello console")
	})
}
