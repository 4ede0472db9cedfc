package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/ukaji3/colselect-go/pkg/colselect"
)

// Config holds settings resolved from the environment.
type Config struct {
	HeaderRow     int
	OutputDirName string
}

// Options converts the config into core options.
func (c *Config) Options() colselect.Options {
	opts := colselect.DefaultOptions()
	opts.HeaderRow = c.HeaderRow
	opts.OutputDirName = c.OutputDirName
	return opts
}

// Validate checks the header row and output directory name.
func (c *Config) Validate() error {
	if c.HeaderRow < 1 {
		return fmt.Errorf("header row must be at least 1, got %d", c.HeaderRow)
	}
	name := c.OutputDirName
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("output directory name %q must be a single path element", name)
	}
	return nil
}

// SetupEnvironment applies a .env file from the working directory, then
// sends the global logger to stderr at the level named by LOGLEVEL.
// ENV=production switches to JSON lines with Unix timestamps.
func SetupEnvironment() {
	envErr := godotenv.Load()
	production := os.Getenv("ENV") == "production"
	configureLogger(os.Stderr, production, os.Getenv("LOGLEVEL"))
	reportEnvironment(envErr == nil)
}

func configureLogger(w io.Writer, production bool, level string) {
	if production {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
			With().Timestamp().Logger()
	}
	zerolog.SetGlobalLevel(parseLevel(strings.ToLower(level), production))
}

// reportEnvironment logs the COLSELECT_* settings visible to LoadConfig.
func reportEnvironment(dotenv bool) {
	source := "process"
	if dotenv {
		source = ".env"
	}
	log.Debug().
		Str("source", source).
		Str("COLSELECT_HEADER_ROW", os.Getenv("COLSELECT_HEADER_ROW")).
		Str("COLSELECT_OUTPUT_DIR", os.Getenv("COLSELECT_OUTPUT_DIR")).
		Msg("colselect environment")
}

func parseLevel(levelStr string, production bool) zerolog.Level {
	switch levelStr {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	case "disabled":
		return zerolog.Disabled
	case "":
		// Default based on environment
		if production {
			return zerolog.WarnLevel
		}
		return zerolog.InfoLevel
	default:
		log.Warn().Msgf("Unknown LOGLEVEL '%s', defaulting to info.", levelStr)
		return zerolog.InfoLevel
	}
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		HeaderRow:     colselect.DefaultHeaderRow,
		OutputDirName: colselect.DefaultOutputDirName,
	}

	if v := os.Getenv("COLSELECT_HEADER_ROW"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("COLSELECT_HEADER_ROW: %w", err)
		}
		cfg.HeaderRow = n
	}
	if v := os.Getenv("COLSELECT_OUTPUT_DIR"); v != "" {
		cfg.OutputDirName = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
