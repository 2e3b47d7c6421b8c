// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the latex-doctor CLI.
// Subcommands: acronyms (extract acronyms and infer definitions), titles
// (standardize heading capitalization), glossary (query the acronym store).
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/latex-doctor/internal/report"
	"github.com/pdiddy/latex-doctor/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rep is the reporting channel handed to every pipeline. It is rebuilt from
// the log settings before each command runs.
var rep report.Reporter = report.Discard()

// rootCmd is the base command for the latex-doctor CLI.
var rootCmd = &cobra.Command{
	Use:   "latex-doctor",
	Short: "Housekeeping for LaTeX manuscripts",
	Long: `latex-doctor inspects and tidies LaTeX sources.

The acronyms command finds parenthesized acronyms such as "(XAI)", infers
their expansions from the preceding words, and prints or exports them as a
list, JSON, YAML, a LaTeX chapter, or a SQLite glossary.

The titles command rewrites the text of \part, \chapter, \section and the
smaller sectioning commands to a consistent capitalization style.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		rep = report.New(cmd.ErrOrStderr(),
			report.ParseLevel(viper.GetString("log.level")),
			report.Format(viper.GetString("log.format")))
		if used := viper.ConfigFileUsed(); used != "" {
			rep.Info("using config file", "path", used)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./latex-doctor.yaml or ~/.config/latex-doctor/latex-doctor.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "text", "log format: text or json")

	mustBind("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	mustBind("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
	setDefaults(types.DefaultConfig())
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("latex-doctor")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "latex-doctor"))
		}
	}

	viper.SetEnvPrefix("LATEX_DOCTOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		fmt.Fprintf(os.Stderr, "warning: could not read config %s: %v\n", cfgFile, err)
	}
}

// setDefaults registers the built-in configuration with viper so that
// loadConfig sees every key even without a config file.
func setDefaults(cfg types.Config) {
	viper.SetDefault("log.level", cfg.Log.Level)
	viper.SetDefault("log.format", cfg.Log.Format)
	viper.SetDefault("acronyms.extension", cfg.Acronyms.Extension)
	viper.SetDefault("acronyms.profile", string(cfg.Acronyms.Profile))
	viper.SetDefault("acronyms.window_multiplier", cfg.Acronyms.WindowMultiplier)
	viper.SetDefault("acronyms.block_title", cfg.Acronyms.BlockTitle)
	viper.SetDefault("acronyms.block_label", cfg.Acronyms.BlockLabel)
	viper.SetDefault("titles.extension", cfg.Titles.Extension)
	viper.SetDefault("titles.mode", string(cfg.Titles.Mode))
	viper.SetDefault("titles.output_dir", cfg.Titles.OutputDir)
}

// loadConfig merges defaults, config file, environment, and bound flags.
func loadConfig() (types.Config, error) {
	cfg := types.DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("parsing configuration: %w", err)
	}
	return cfg, nil
}

// mustBind binds a flag to a viper key. A failure is a programming error.
func mustBind(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag for %s: %v", key, err))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
