// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the medvision CLI, a terminal client
// for the medical-assistant retrieval service.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the medvision CLI.
var rootCmd = &cobra.Command{
	Use:   "medvision",
	Short: "Terminal client for the medical-assistant retrieval service",
	Long: `medvision talks to the medical-assistant service: it searches the medical
knowledge base, asks for diagnosis and treatment suggestions backed by
retrieved evidence, and loads patient history.

Each use case is a subcommand: search, diagnose, treat, patient, and status.
Outcomes are recorded in a local journal (see history). Set API_BASE_URL or
api_base_url in medvision.yaml to point at the service.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./medvision.yaml or ~/.config/medvision/medvision.yaml)")
	pf.String("api-base-url", "", "service root URL (overrides API_BASE_URL)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.Bool("json", false, "output results as JSON")
	pf.Bool("yaml", false, "output results as YAML")
	pf.Bool("no-journal", false, "do not record this dispatch in the journal")

	_ = viper.BindPFlag("api_base_url", pf.Lookup("api-base-url"))
	_ = viper.BindPFlag("log_level", pf.Lookup("log-level"))
}

func initConfig() {
	// A missing .env is normal.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("medvision")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "medvision"))
		}
	}

	viper.SetEnvPrefix("MEDVISION")
	viper.AutomaticEnv()
	_ = viper.BindEnv("api_base_url", "MEDVISION_API_BASE_URL", "API_BASE_URL")
	setDefaults()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		// Flow failures were already shown by the notifier.
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
