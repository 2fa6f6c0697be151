// Command fakegen prints generated demo records as JSON or YAML.
//
//	fakegen generate people --count 5 --seed 42 --rulesets default,vip
//	fakegen validate accounts --strict
//
// Every flag can also come from a YAML file (--config) or from the
// environment with the FAKEGEN_ prefix, e.g. FAKEGEN_SEED=42.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := mainE(); err != nil {
		os.Exit(1)
	}
}

func mainE() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errInvalid) {
			fmt.Fprintln(os.Stderr, "fakegen:", err)
		}
		return err
	}

	return nil
}

// NewRootCmd assembles the command tree around one settings holder.
func NewRootCmd() *cobra.Command {
	s := newSettings()

	rootCmd := &cobra.Command{
		Use:   "fakegen SUBCOMMAND",
		Short: "Generate reproducible fake records",

		CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
		SilenceUsage:      true,
		SilenceErrors:     true,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.load(cmd)
		},
	}
	s.addPersistentFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		NewGenerateCmd(s),
		NewValidateCmd(s),
	)

	return rootCmd
}
