// Package config provides configuration for the seqtool CLI.
package config

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Environment variables read by DefaultConfig.
const (
	EnvLogLevel       = "SEQTOOL_LOG_LEVEL"
	EnvSeparator      = "SEQTOOL_SEPARATOR"
	EnvChunkSeparator = "SEQTOOL_CHUNK_SEPARATOR"
)

// Config holds configuration for seqtool.
type Config struct {
	// LogLevel is the minimum level logged to stderr.
	// Defaults to info.
	LogLevel log.Level

	// Separator is written between output records.
	// Defaults to a newline.
	Separator string

	// ChunkSeparator joins the lines of a chunk into one record.
	// Defaults to a single space.
	ChunkSeparator string
}

// DefaultConfig returns the configuration from the environment, falling
// back to defaults for unset or invalid values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:       defaultLogLevel(),
		Separator:      getenv(EnvSeparator, "\n"),
		ChunkSeparator: getenv(EnvChunkSeparator, " "),
	}
}

// Load reads the given .env files into the environment, ignoring missing
// ones, and returns DefaultConfig. Variables already set are kept.
func Load(envFiles ...string) *Config {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			log.Warn("ignoring env file", "file", f, "err", err)
		}
	}
	return DefaultConfig()
}

func defaultLogLevel() log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(os.Getenv(EnvLogLevel)))
	if err != nil || os.Getenv(EnvLogLevel) == "" {
		return log.InfoLevel
	}
	return lvl
}

// getenv returns the value of key with backslash escapes such as \n and \t
// expanded, or def when key is unset.
func getenv(key, def string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	return unescape(v)
}

var escapes = strings.NewReplacer(`\n`, "\n", `\t`, "\t", `\\`, `\`)

func unescape(s string) string {
	return escapes.Replace(s)
}
