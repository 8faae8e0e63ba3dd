package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/Fepozopo/unborder/pkg/stdimg"
)

// Environment variables read by LoadConfig. A .env file in the working directory
// is loaded first; variables already set in the environment win.
const (
	EnvThreshold = "UNBORDER_THRESHOLD"
	EnvTrim      = "UNBORDER_TRIM"
	EnvPreview   = "UNBORDER_PREVIEW"
	EnvDebug     = "UNBORDER_DEBUG"
)

// Config holds the settings of one run.
type Config struct {
	Threshold int
	Trim      bool
	Preview   bool
	Debug     bool
}

// Flags holds CLI flag values that override environment settings. A value only
// applies when its Set field reports that the flag was given.
type Flags struct {
	Threshold    int
	ThresholdSet bool
	Trim         bool
	TrimSet      bool
	Preview      bool
	PreviewSet   bool
	Verbose      bool
	VerboseSet   bool
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{Threshold: stdimg.DefaultThreshold}
}

// LoadConfig builds a Config from the defaults, the optional .env files (".env"
// when none are given) and the UNBORDER_* environment variables.
func LoadConfig(envFiles ...string) (Config, error) {
	cfg := DefaultConfig()
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("config: %w", err)
	}

	if v, ok := os.LookupEnv(EnvThreshold); ok {
		t, err := parseThreshold(v)
		if err != nil {
			return cfg, fmt.Errorf("config: %s: %w", EnvThreshold, err)
		}
		cfg.Threshold = t
	}
	for _, b := range []struct {
		name string
		dst  *bool
	}{
		{EnvTrim, &cfg.Trim},
		{EnvPreview, &cfg.Preview},
		{EnvDebug, &cfg.Debug},
	} {
		v, ok := os.LookupEnv(b.name)
		if !ok || v == "" {
			continue
		}
		s, err := parseBoolLikeToString(v)
		if err != nil {
			return cfg, fmt.Errorf("config: %s: %w", b.name, err)
		}
		*b.dst = s == "true"
	}
	return cfg, nil
}

// Resolve applies command-line flags on top of c. Only flags that were given
// explicitly replace the configured values, so -trim=false switches off
// UNBORDER_TRIM=1.
func (c *Config) Resolve(flags Flags) error {
	if flags.ThresholdSet {
		t, err := parseThreshold(strconv.Itoa(flags.Threshold))
		if err != nil {
			return fmt.Errorf("flag -threshold: %w", err)
		}
		c.Threshold = t
	}
	if flags.TrimSet {
		c.Trim = flags.Trim
	}
	if flags.PreviewSet {
		c.Preview = flags.Preview
	}
	if flags.VerboseSet {
		c.Debug = flags.Verbose
	}
	return nil
}

func parseThreshold(s string) (int, error) {
	norm, err := ValidateArg(stdimg.ThresholdArg, s)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(norm)
}

var (
	debugEnabled bool
	debugOut     io.Writer = os.Stderr
)

func init() {
	d := os.Getenv(EnvDebug)
	if d == "1" || d == "true" {
		debugEnabled = true
	}
}

// setDebug switches debugf output on or off and directs it to w.
func setDebug(on bool, w io.Writer) {
	debugEnabled = on
	if w != nil {
		debugOut = w
	}
}

func debugf(format string, args ...interface{}) {
	if debugEnabled {
		fmt.Fprintf(debugOut, "unborder: "+format+"\n", args...)
	}
}
