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
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/AleutianAutoML/pkg/automl"
)

// runBestModel resolves the top model of a family. "No model of that
// family" is a normal outcome and exits 0 with a message.
func runBestModel(cmd *cobra.Command, args []string) {
	client, err := newBackendClient()
	if err != nil {
		fail(err)
	}
	run := client.AutoML(args[0])

	best, err := automl.GetBestModel(context.Background(), run, client, modelFamily, modelCriteria)
	if err != nil {
		fail(err)
	}
	if best == nil {
		fmt.Printf("No %s model in run %s\n", strings.ToLower(modelFamily), run.ProjectName())
		return
	}

	fmt.Printf("Best %s model: %s\n", strings.ToLower(modelFamily), best.ModelID)
	if best.Algorithm != "" {
		fmt.Printf("  algorithm: %s\n", best.Algorithm)
	}
	if best.Category != "" {
		fmt.Printf("  category:  %s\n", best.Category)
	}
	for metric, value := range best.Metrics {
		fmt.Printf("  %s: %g\n", metric, value)
	}
}

// runExport downloads the leader model's artifact.
func runExport(cmd *cobra.Command, args []string) {
	client, err := newBackendClient()
	if err != nil {
		fail(err)
	}
	run := client.AutoML(args[0])
	ctx := context.Background()

	var path string
	switch strings.ToLower(exportFormat) {
	case "mojo":
		path, err = automl.DownloadMOJO(ctx, run, client, exportDir)
	case "pojo":
		path, err = automl.DownloadPOJO(ctx, run, client, exportDir)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q, use mojo or pojo\n", exportFormat)
		os.Exit(1)
	}
	if err != nil {
		fail(err)
	}
	if path != "" {
		fmt.Printf("Exported %s artifact to %s\n", strings.ToUpper(exportFormat), path)
	}
}
