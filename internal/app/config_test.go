package app

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name       string
		headerRow  string
		outputDir  string
		wantHeader int
		wantDir    string
		wantErr    string
	}{
		{
			name:       "defaults",
			wantHeader: 2,
			wantDir:    "Selected Data",
		},
		{
			name:       "overrides",
			headerRow:  "1",
			outputDir:  "Exports",
			wantHeader: 1,
			wantDir:    "Exports",
		},
		{
			name:      "non-numeric header row",
			headerRow: "two",
			wantErr:   "COLSELECT_HEADER_ROW",
		},
		{
			name:      "zero header row",
			headerRow: "0",
			wantErr:   "header row must be at least 1",
		},
		{
			name:      "nested output dir",
			outputDir: "a/b",
			wantErr:   "single path element",
		},
		{
			name:      "parent output dir",
			outputDir: "..",
			wantErr:   "single path element",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("COLSELECT_HEADER_ROW", tt.headerRow)
			t.Setenv("COLSELECT_OUTPUT_DIR", tt.outputDir)

			cfg, err := LoadConfig()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHeader, cfg.HeaderRow)
			assert.Equal(t, tt.wantDir, cfg.OutputDirName)

			opts := cfg.Options()
			assert.Equal(t, tt.wantHeader, opts.HeaderRow)
			assert.Equal(t, tt.wantDir, opts.OutputDirName)
			assert.NotNil(t, opts.Now)
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug", false))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warning", false))
	assert.Equal(t, zerolog.Disabled, parseLevel("disabled", true))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("", false))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("", true))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verbose", false))
}

func TestReportEnvironment(t *testing.T) {
	prevLogger, prevLevel, prevFormat := log.Logger, zerolog.GlobalLevel(), zerolog.TimeFieldFormat
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
		zerolog.TimeFieldFormat = prevFormat
	})

	t.Setenv("COLSELECT_HEADER_ROW", "3")
	t.Setenv("COLSELECT_OUTPUT_DIR", "Exports")

	var buf bytes.Buffer
	configureLogger(&buf, true, "debug")
	reportEnvironment(true)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, ".env", entry["source"])
	assert.Equal(t, "3", entry["COLSELECT_HEADER_ROW"])
	assert.Equal(t, "Exports", entry["COLSELECT_OUTPUT_DIR"])
	assert.Contains(t, entry, "time")

	buf.Reset()
	configureLogger(&buf, true, "")
	reportEnvironment(false)
	assert.Empty(t, buf.String(), "production defaults to warn")
}
