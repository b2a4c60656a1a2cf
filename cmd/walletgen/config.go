package main

import (
	"fmt"
	"strconv"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// envPrefix prefixes every environment variable read by walletgen.
const envPrefix = "walletgen"

// envConfig holds flag defaults taken from the environment. Flags given on
// the command line always win.
type envConfig struct {
	Words    string `envconfig:"WORDS"`
	Language string `envconfig:"LANGUAGE"`
	Chains   string `envconfig:"CHAINS"`
}

func loadEnvConfig() (*envConfig, error) {
	cfg := &envConfig{}
	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return cfg, nil
}

// applyEnvDefaults copies WALLETGEN_* values into flags the user did not
// set explicitly.
func applyEnvDefaults(cmd *cobra.Command, _ []string) error {
	cfg, err := loadEnvConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if cfg.Words != "" && !flags.Changed("words") {
		count, err := parseWordCount(cfg.Words)
		if err != nil {
			return fmt.Errorf("WALLETGEN_WORDS: %w", err)
		}
		if err := setFlag(flags, "words", strconv.Itoa(count)); err != nil {
			return err
		}
	}
	if cfg.Language != "" && !flags.Changed("language") {
		if err := setFlag(flags, "language", cfg.Language); err != nil {
			return err
		}
	}
	if cfg.Chains != "" && !flags.Changed("chains") {
		if err := setFlag(flags, "chains", cfg.Chains); err != nil {
			return err
		}
	}
	return nil
}

func setFlag(flags *pflag.FlagSet, name, value string) error {
	if err := flags.Set(name, value); err != nil {
		return fmt.Errorf("could not apply %s from environment: %w", name, err)
	}
	return nil
}
