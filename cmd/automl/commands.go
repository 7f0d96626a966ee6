// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/AleutianAutoML/cmd/automl/config"
	"github.com/AleutianAI/AleutianAutoML/pkg/backend"
	"github.com/AleutianAI/AleutianAutoML/pkg/logging"
)

// --- Global Command Variables ---
var (
	sortMetric    string // leaderboard sort column override
	modelFamily   string // best-model family tag
	modelCriteria string // best-model ranking metric
	exportFormat  string // export artifact format (mojo/pojo)
	exportDir     string // export target directory
	logLevel      string // CLI override for logging.level

	logger *logging.Logger

	rootCmd = &cobra.Command{
		Use:   "automl",
		Short: "A cli for inspecting Aleutian AutoML runs",
		Long: `automl talks to a running Aleutian AutoML backend: it shows
				leaderboards and event logs, picks the best model of a family,
				and exports deployment artifacts.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(); err != nil {
				return err
			}
			level := config.Global.Logging.Level
			if logLevel != "" {
				level = logLevel
			}
			logger = logging.New(logging.Config{
				Level:   logging.ParseLevel(level),
				LogDir:  config.Global.Logging.LogDir,
				Service: "automl-cli",
			})
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				logger.Close()
			}
		},
	}

	leaderboardCmd = &cobra.Command{
		Use:   "leaderboard [project]",
		Short: "Show the ranked candidate models of a run",
		Args:  cobra.ExactArgs(1),
		Run:   runLeaderboard, // Defined in cmd_leaderboard.go
	}

	bestModelCmd = &cobra.Command{
		Use:   "best-model [project]",
		Short: "Pick the best model of a family from the leaderboard",
		Args:  cobra.ExactArgs(1),
		Run:   runBestModel, // Defined in cmd_model.go
	}

	exportCmd = &cobra.Command{
		Use:   "export [project]",
		Short: "Export the leader model's deployment artifact (MOJO or POJO)",
		Args:  cobra.ExactArgs(1),
		Run:   runExport, // Defined in cmd_model.go
	}

	eventsCmd = &cobra.Command{
		Use:   "events [project]",
		Short: "Show the backend event log of a run",
		Args:  cobra.ExactArgs(1),
		Run:   runEvents, // Defined in cmd_events.go
	}

	infoCmd = &cobra.Command{
		Use:   "info [project]",
		Short: "Show the training info key/value pairs of a run",
		Args:  cobra.ExactArgs(1),
		Run:   runInfo, // Defined in cmd_events.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug/info/warn/error)")

	leaderboardCmd.Flags().StringVar(&sortMetric, "sort", "", "Metric column to sort by (default: backend order)")

	bestModelCmd.Flags().StringVar(&modelFamily, "family", "", "Model family (base_model, deep_learning, drf, gbm, glm, stacked_ensemble, xgboost, xrt)")
	bestModelCmd.Flags().StringVar(&modelCriteria, "criterion", "", "Ranking metric (default: derived from the leader model)")
	bestModelCmd.MarkFlagRequired("family")

	exportCmd.Flags().StringVar(&exportFormat, "format", "mojo", "Artifact format: mojo or pojo")
	exportCmd.Flags().StringVar(&exportDir, "dir", ".", "Target directory (empty dumps POJO source to stdout)")

	rootCmd.AddCommand(leaderboardCmd, bestModelCmd, exportCmd, eventsCmd, infoCmd)
}

// newBackendClient builds the client from the loaded config.
func newBackendClient() (*backend.Client, error) {
	return backend.NewClient(backend.Config{
		BaseURL: config.Global.Backend.BaseURL,
		Timeout: time.Duration(config.Global.Backend.Timeout),
		Logger:  logger.Slog(),
	})
}

// fail prints an actionable error and exits. Backend errors carry
// remediation text; show it.
func fail(err error) {
	var be *backend.BackendError
	if errors.As(err, &be) {
		fmt.Fprintln(os.Stderr, "Error:", be.FullError())
	} else {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(1)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
