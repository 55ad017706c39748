// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the answer-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ARMAND-cod-eng/answer-engine/internal/secrets"
	"github.com/ARMAND-cod-eng/answer-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the answer-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "answer-engine",
	Short: "Synthesize citation-annotated answers from web search results",
	Long: `answer-engine ingests a natural-language query, fetches ranked web-search
results from the configured provider, and produces a single coherent answer
with numbered citations plus a short list of follow-up questions.

Without provider credentials the engine runs fully offline, synthesizing a
response of identical shape from fabricated sources.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./answer-engine.yaml or ~/.config/answer-engine/config.yaml)")
}

func initConfig() {
	// A local .env supplies provider credentials during development.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("answer-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "answer-engine"))
		}
	}

	viper.SetDefault("client.timeout", "30s")
	viper.SetDefault("client.max_results", 10)
	viper.SetDefault("client.search_depth", "basic")
	viper.SetDefault("client.news_days", 7)
	viper.SetDefault("client.user_agent", "answer-engine/"+version)
	viper.SetDefault("history.db_path", filepath.Join("history", "answers.db"))
	viper.SetDefault("history.default_limit", 20)

	viper.SetEnvPrefix("ANSWER_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// clientConfig assembles the client configuration from viper, the
// secrets directory, and the TAVILY_API_KEY environment variable, in
// increasing precedence. The key itself is never printed.
func clientConfig() types.ClientConfig {
	cfg := types.ClientConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("client.timeout"),
			UserAgent: viper.GetString("client.user_agent"),
		},
		BaseURL:     viper.GetString("client.base_url"),
		MaxResults:  viper.GetInt("client.max_results"),
		SearchDepth: types.SearchDepth(viper.GetString("client.search_depth")),
		NewsDays:    viper.GetInt("client.news_days"),
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	cfg.APIKey = loadedSecrets[secrets.TavilyAPIKey]
	if env := os.Getenv("TAVILY_API_KEY"); env != "" {
		cfg.APIKey = env
	}
	return cfg
}

func historyConfig() types.HistoryConfig {
	return types.HistoryConfig{
		DBPath:       viper.GetString("history.db_path"),
		DefaultLimit: viper.GetInt("history.default_limit"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
