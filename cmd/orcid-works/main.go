// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the orcid-works CLI, which finds an
// author's claimed publications in OpenAlex and converts them to ORCID works.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/orcid-works/internal/observability"
	"github.com/pdiddy/orcid-works/internal/openalex"
	"github.com/pdiddy/orcid-works/internal/secrets"
	"github.com/pdiddy/orcid-works/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const defaultUserAgent = "orcid-works/0.1"

var (
	// logger is built from config in PersistentPreRunE.
	logger = zerolog.Nop()

	// loadedSecrets holds values read from .secrets/ at startup.
	loadedSecrets secrets.Secrets
)

// rootCmd is the base command for the orcid-works CLI.
var rootCmd = &cobra.Command{
	Use:   "orcid-works",
	Short: "Match claimed publications in OpenAlex and convert them to ORCID works",
	Long: `orcid-works resolves an author in OpenAlex by name and institution (ROR),
searches for each publication claimed for that author, picks the best match,
and converts it to an ORCID work record.

Claims without a match or without a DOI are reported and skipped. The tool
does not submit anything to ORCID.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = observability.NewLogger(types.LoggingConfig{
			Level:  viper.GetString("log.level"),
			Format: viper.GetString("log.format"),
			Output: "stderr",
		}, nil)
		if used := viper.ConfigFileUsed(); used != "" {
			logger.Debug().Str("file", used).Msg("using config file")
		}

		s, err := secrets.Load(secrets.DefaultDir, logger)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			logger.Debug().Strs("keys", s.Keys()).Msg("loaded secrets")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./orcid-works.yaml or ~/.config/orcid-works/orcid-works.yaml)")
	pf.String("log-level", "info", "log level: trace, debug, info, warn, error")
	pf.String("log-format", "console", "log format: console or json")
	pf.String("email", "", "contact email for the OpenAlex polite pool (default: .secrets/openalex-email)")
	pf.String("ror", "", "ROR identifier of the author's current institution")
	pf.Float64("rate-limit", 10, "maximum OpenAlex requests per second")
	pf.Int("max-retries", 0, "retries with backoff on HTTP 429 (0 disables)")
	pf.Duration("timeout", 30*time.Second, "HTTP request timeout")

	bind := map[string]string{
		"log.level":            "log-level",
		"log.format":           "log-format",
		"openalex.email":       "email",
		"institution.ror":      "ror",
		"openalex.rate_limit":  "rate-limit",
		"openalex.max_retries": "max-retries",
		"openalex.timeout":     "timeout",
	}
	for key, flag := range bind {
		if err := viper.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(err)
		}
	}
	viper.SetDefault("openalex.base_url", openalex.DefaultBaseURL)
	viper.SetDefault("openalex.burst", 1)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("orcid-works")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "orcid-works"))
		}
	}

	viper.SetEnvPrefix("ORCID_WORKS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "warning: reading config:", err)
		}
	}
}

// openAlexConfig assembles client settings from flags, config, env, and secrets.
func openAlexConfig() types.OpenAlexConfig {
	return types.OpenAlexConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("openalex.timeout"),
			UserAgent: defaultUserAgent,
		},
		BaseURL:    viper.GetString("openalex.base_url"),
		Email:      loadedSecrets.Get(secrets.KeyOpenAlexEmail, viper.GetString("openalex.email")),
		RateLimit:  viper.GetFloat64("openalex.rate_limit"),
		Burst:      viper.GetInt("openalex.burst"),
		MaxRetries: viper.GetInt("openalex.max_retries"),
	}
}

// interruptContext returns a context canceled on Ctrl-C.
func interruptContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
