package config

import (
	"os"
	"path/filepath"
	"testing"

	"toai/pkg/combine"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("to-ai", pflag.ContinueOnError)
	RegisterFlags(flags)
	require.NoError(t, flags.Parse(args))
	return flags
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "to-ai.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	args, err := Load(parseFlags(t), "")

	require.NoError(t, err)
	assert.Equal(t, &combine.Arguments{Path: "."}, args)
	assert.Equal(t, combine.DestinationClipboard, args.Destination())
}

func TestLoadFlags(t *testing.T) {
	flags := parseFlags(t,
		"--path", "src",
		"--out", "dump.md",
		"--ignore", "*.log",
		"--ignore", "{a,b}.go",
		"--no-ignore-default",
		"--skip-unreadable",
		"--tree",
	)

	args, err := Load(flags, "")

	require.NoError(t, err)
	assert.Equal(t, "src", args.Path)
	assert.Equal(t, "dump.md", args.Output)
	assert.Equal(t, []string{"*.log", "{a,b}.go"}, args.IgnorePatterns)
	assert.True(t, args.NoIgnoreDefault)
	assert.True(t, args.SkipUnreadable)
	assert.True(t, args.Tree)
}

func TestLoadConfigFile(t *testing.T) {
	cfg := writeConfig(t, `
path: project
stdout: true
tree: true
ignore:
  - "*.md"
  - vendor
`)

	args, err := Load(parseFlags(t, "--ignore", "*.log"), cfg)

	require.NoError(t, err)
	assert.Equal(t, "project", args.Path)
	assert.True(t, args.Stdout)
	assert.True(t, args.Tree)
	assert.Equal(t, []string{"*.md", "vendor", "*.log"}, args.IgnorePatterns)
}

func TestLoadFlagsOverrideConfigFile(t *testing.T) {
	cfg := writeConfig(t, "path: project\n")

	args, err := Load(parseFlags(t, "--path", "elsewhere"), cfg)

	require.NoError(t, err)
	assert.Equal(t, "elsewhere", args.Path)
}

func TestLoadConflictingSinks(t *testing.T) {
	cfg := writeConfig(t, "output: dump.md\n")

	_, err := Load(parseFlags(t, "--stdout"), cfg)

	assert.ErrorIs(t, err, combine.ErrConflictingSinks)
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load(parseFlags(t), filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}
