// Package config merges command-line flags with an optional YAML config file.
package config

import (
	"fmt"

	"toai/pkg/combine"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys shared by flags and the config file.
const (
	KeyPath            = "path"
	KeyOutput          = "output"
	KeyStdout          = "stdout"
	KeyIgnore          = "ignore"
	KeyNoIgnoreDefault = "no-ignore-default"
	KeySkipUnreadable  = "skip-unreadable"
	KeyTree            = "tree"
	KeyConfig          = "config"
)

// boundKeys are resolved flag-over-file. KeyIgnore is concatenated instead.
var boundKeys = []string{KeyPath, KeyOutput, KeyStdout, KeyNoIgnoreDefault, KeySkipUnreadable, KeyTree}

// RegisterFlags defines the dump flags on flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(KeyPath, ".", "Root directory to dump")
	flags.String(KeyOutput, "", "Write the dump to `FILE` (parent directories are created)")
	flags.Bool(KeyStdout, false, "Write the dump to standard output instead of the clipboard")
	flags.StringArray(KeyIgnore, nil, "Additional ignore `PATTERN` (repeatable)")
	flags.Bool(KeyNoIgnoreDefault, false, "Do not apply the built-in ignore list")
	flags.Bool(KeySkipUnreadable, false, "Skip files that cannot be read instead of failing")
	flags.Bool(KeyTree, false, "Prepend a tree of the included files")
	flags.String(KeyConfig, "", "Read defaults from a YAML config `FILE`")
	flags.SetNormalizeFunc(NormalizeAliases)
}

// NormalizeAliases maps flag aliases to their canonical names.
func NormalizeAliases(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "out" {
		name = KeyOutput
	}
	return pflag.NormalizedName(name)
}

// Load builds the run arguments from parsed flags and, when configPath is set,
// the YAML file it names. Flags given on the command line win over file
// values; ignore tokens from both sources are kept, file tokens first.
func Load(flags *pflag.FlagSet, configPath string) (*combine.Arguments, error) {
	v := viper.New()
	for _, key := range boundKeys {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", key, err)
		}
	}

	var fileIgnores []string
	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
		fileIgnores = v.GetStringSlice(KeyIgnore)
	}

	flagIgnores, err := flags.GetStringArray(KeyIgnore)
	if err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}

	args := &combine.Arguments{
		Path:            v.GetString(KeyPath),
		Output:          v.GetString(KeyOutput),
		Stdout:          v.GetBool(KeyStdout),
		IgnorePatterns:  append(fileIgnores, flagIgnores...),
		NoIgnoreDefault: v.GetBool(KeyNoIgnoreDefault),
		SkipUnreadable:  v.GetBool(KeySkipUnreadable),
		Tree:            v.GetBool(KeyTree),
	}
	if err := args.Validate(); err != nil {
		return nil, err
	}
	return args, nil
}
