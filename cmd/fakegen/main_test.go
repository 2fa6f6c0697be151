package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fakegen/internal/sample"
)

const testRef = "2025-01-01T00:00:00Z"

// run executes the command tree with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestGenerate_JSONReproducible(t *testing.T) {
	t.Parallel()

	args := []string{"generate", "people", "-n", "3", "--seed", "7", "--time-ref", testRef}
	first, err := run(t, args...)
	require.NoError(t, err)
	second, err := run(t, args...)
	require.NoError(t, err)
	require.Equal(t, first, second)

	var people []map[string]any
	require.NoError(t, json.Unmarshal([]byte(first), &people))
	require.Len(t, people, 3)
	require.Equal(t, "A", people[0]["handle"])
	require.Equal(t, false, people[0]["vip"])
}

func TestGenerate_YAMLWithRuleSets(t *testing.T) {
	t.Parallel()

	out, err := run(t, "generate", "accounts", "-n", "2", "--seed", "1",
		"--time-ref", testRef, "--rulesets", "default,premium", "-o", "yaml")
	require.NoError(t, err)

	var accounts []sample.Account
	require.NoError(t, yaml.Unmarshal([]byte(out), &accounts))
	require.Len(t, accounts, 2)
	require.Equal(t, "PRM-0", accounts[0].Number)
	require.NotNil(t, accounts[0].Owner)
	require.True(t, accounts[0].Owner.VIP)
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	_, err := run(t, "generate", "widgets")
	require.ErrorIs(t, err, sample.ErrUnknownModel)

	_, err = run(t, "generate", "people", "-o", "xml", "--time-ref", testRef)
	require.ErrorContains(t, err, "unknown format")

	_, err = run(t, "generate", "people", "--time-ref", "yesterday")
	require.ErrorContains(t, err, "--time-ref")

	_, err = run(t, "generate")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	out, err := run(t, "validate", "accounts", "--strict")
	require.NoError(t, err)
	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Equal(t, true, res["valid"])

	out, err = run(t, "validate", "people", "--rulesets", "ghost", "-o", "yaml")
	require.ErrorIs(t, err, errInvalid)
	require.Contains(t, out, "valid: false")
	require.Contains(t, out, "- id")
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fakegen.yaml")
	cfg := "seed: 7\ncount: 3\ntime-ref: " + testRef + "\n"
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))

	fromFile, err := run(t, "generate", "people", "--config", path)
	require.NoError(t, err)
	fromFlags, err := run(t, "generate", "people", "-n", "3", "--seed", "7", "--time-ref", testRef)
	require.NoError(t, err)
	require.Equal(t, fromFlags, fromFile)

	// A quoted time-ref stays a string in YAML and must resolve the same way.
	quoted := filepath.Join(t.TempDir(), "quoted.yaml")
	cfg = "seed: 7\ncount: 3\ntime-ref: \"" + testRef + "\"\n"
	require.NoError(t, os.WriteFile(quoted, []byte(cfg), 0o600))
	fromQuoted, err := run(t, "generate", "people", "--config", quoted)
	require.NoError(t, err)
	require.Equal(t, fromFlags, fromQuoted)

	_, err = run(t, "generate", "people", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "reading config")
}

func TestEnvironment(t *testing.T) {
	t.Setenv("FAKEGEN_COUNT", "4")
	t.Setenv("FAKEGEN_TIME_REF", testRef)

	out, err := run(t, "generate", "people", "--seed", "2")
	require.NoError(t, err)
	var people []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &people))
	require.Len(t, people, 4)

	// Flags beat the environment.
	out, err = run(t, "generate", "people", "--seed", "2", "-n", "1")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &people))
	require.Len(t, people, 1)
}

func TestVerboseLogging(t *testing.T) {
	t.Parallel()

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"generate", "people", "-n", "1", "-v", "--time-ref", testRef})
	require.NoError(t, root.Execute())
	require.Contains(t, errOut.String(), "validated rule sets")
	require.Contains(t, errOut.String(), "level=DEBUG")
}
