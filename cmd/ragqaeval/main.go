//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

// Command ragqaeval runs RAG QA benchmark evaluations and writes
// leaderboard reports.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/AQ-MedAI/RagQALeaderboard/dataset/registry"
	"github.com/AQ-MedAI/RagQALeaderboard/log"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "ragqaeval",
		Short:         "Evaluate RAG QA models against benchmark datasets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCommand())
	root.AddCommand(newDatasetsCommand())
	return root
}

func newDatasetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "datasets",
		Short: "List the supported dataset tags",
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := registry.Default()
			tags := reg.List()
			sort.Strings(tags)
			for _, tag := range tags {
				entry, err := reg.Get(tag)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", tag, entry.Adapter.HopType())
			}
			return nil
		},
	}
}
