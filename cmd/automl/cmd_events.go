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
	"sort"

	"github.com/spf13/cobra"
)

// runEvents prints the backend event log of a run.
func runEvents(cmd *cobra.Command, args []string) {
	client, err := newBackendClient()
	if err != nil {
		fail(err)
	}
	run := client.AutoML(args[0])

	events, err := run.EventLog(context.Background())
	if err != nil {
		fail(err)
	}
	fmt.Print(renderFrame(events, stdoutIsTTY()))
}

// runInfo prints the training-info key/value pairs of a run.
func runInfo(cmd *cobra.Command, args []string) {
	client, err := newBackendClient()
	if err != nil {
		fail(err)
	}
	run := client.AutoML(args[0])

	info, err := run.TrainingInfo(context.Background())
	if err != nil {
		fail(err)
	}

	keys := make([]string, 0, len(info))
	for k := range info {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s: %s\n", k, info[k])
	}
}
