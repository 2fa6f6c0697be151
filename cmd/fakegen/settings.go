package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/fakegen/internal/sample"
)

const envPrefix = "FAKEGEN"

// Flag and config keys.
const (
	keyConfig   = "config"
	keyCount    = "count"
	keySeed     = "seed"
	keyRuleSets = "rulesets"
	keyFormat   = "format"
	keyStrict   = "strict"
	keyTimeRef  = "time-ref"
	keyVerbose  = "verbose"
)

// settings resolves flags, FAKEGEN_* variables and the optional config file,
// in that order of precedence.
type settings struct {
	v   *viper.Viper
	log *slog.Logger
}

func newSettings() *settings {
	return &settings{
		v:   viper.New(),
		log: slog.New(slog.DiscardHandler),
	}
}

func (s *settings) addPersistentFlags(fs *pflag.FlagSet) {
	fs.String(keyConfig, "", "YAML file with default flag values")
	fs.Int64(keySeed, 0, "seed for a reproducible run (unset: process-wide source)")
	fs.String(keyRuleSets, "", "comma separated rule sets, applied left to right")
	fs.Bool(keyStrict, false, "require a rule for every default field")
	fs.String(keyTimeRef, "", "RFC 3339 instant that date rules are relative to (default: today, UTC)")
	fs.StringP(keyFormat, "o", "json", "output format: json or yaml")
	fs.BoolP(keyVerbose, "v", false, "log builder debug records to stderr")
}

// load binds the parsed flags and reads the environment and config file.
func (s *settings) load(cmd *cobra.Command) error {
	if err := s.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	s.v.SetEnvPrefix(envPrefix)
	s.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	s.v.AutomaticEnv()

	if path := s.v.GetString(keyConfig); path != "" {
		s.v.SetConfigFile(path)
		if err := s.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	s.log = newLogger(cmd.ErrOrStderr(), s.v.GetBool(keyVerbose))

	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// modelOptions turns the resolved settings into sample.Options.
func (s *settings) modelOptions() (sample.Options, error) {
	opts := sample.Options{
		Strict: s.v.GetBool(keyStrict),
		Logger: s.log,
	}
	if s.v.IsSet(keySeed) {
		seed := s.v.GetInt64(keySeed)
		opts.Seed = &seed
	}

	ref := time.Now().UTC().Truncate(24 * time.Hour)
	// Flags and the environment give a string; YAML decodes timestamps to time.Time.
	if raw := s.v.Get(keyTimeRef); raw != nil && raw != "" {
		t, err := cast.ToTimeE(raw)
		if err != nil {
			return sample.Options{}, fmt.Errorf("--%s: %w", keyTimeRef, err)
		}
		ref = t.UTC()
	}
	opts.TimeRef = &ref

	return opts, nil
}

func (s *settings) ruleSets() string { return s.v.GetString(keyRuleSets) }

func (s *settings) format() string { return strings.ToLower(s.v.GetString(keyFormat)) }
