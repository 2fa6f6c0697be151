package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fakegen/internal/sample"
)

// errInvalid marks a validation report that has already been printed.
var errInvalid = errors.New("rule sets are invalid")

func NewGenerateCmd(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate MODEL",
		Short: "Print generated records of MODEL",
		Long: `Print generated records of MODEL (people or accounts).

Examples:
  fakegen generate people --count 3 --seed 7
  fakegen generate accounts --rulesets default,premium -o yaml`,

		Args:      cobra.ExactArgs(1),
		ValidArgs: sample.Models(),

		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := s.modelOptions()
			if err != nil {
				return err
			}
			m, err := sample.Open(args[0], opts)
			if err != nil {
				return err
			}

			count := s.v.GetInt(keyCount)
			s.log.Debug("generating", "model", m.Name(), "count", count, "rulesets", s.ruleSets())

			out, err := m.Generate(count, s.ruleSets())
			if err != nil {
				return err
			}

			return encode(cmd.OutOrStdout(), s.format(), out)
		},
	}
	cmd.Flags().IntP(keyCount, "n", 10, "number of records")

	return cmd
}

func NewValidateCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "validate MODEL",
		Short: "Print the validation report of MODEL's rule sets",
		Long: `Print the validation report of MODEL's rule sets. Without --rulesets
every registered set is checked. Exits non-zero when the report is invalid.`,

		Args:      cobra.ExactArgs(1),
		ValidArgs: sample.Models(),

		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := s.modelOptions()
			if err != nil {
				return err
			}
			m, err := sample.Open(args[0], opts)
			if err != nil {
				return err
			}

			res := m.Validate(s.ruleSets())
			if err := encode(cmd.OutOrStdout(), s.format(), res); err != nil {
				return err
			}
			if !res.Valid {
				s.log.Info("validation failed", "model", m.Name(), "missing", res.Missing, "forbidden", res.Forbidden)
				return errInvalid
			}

			return nil
		},
	}
}

// encode writes v as indented JSON or as YAML.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	return fmt.Errorf("unknown format %q (want json or yaml)", format)
}
