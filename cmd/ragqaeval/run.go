//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/AQ-MedAI/RagQALeaderboard/dataset"
	datasetlocal "github.com/AQ-MedAI/RagQALeaderboard/dataset/local"
	"github.com/AQ-MedAI/RagQALeaderboard/dataset/registry"
	"github.com/AQ-MedAI/RagQALeaderboard/log"
	modelopenai "github.com/AQ-MedAI/RagQALeaderboard/model/openai"
	"github.com/AQ-MedAI/RagQALeaderboard/report"
	reportlocal "github.com/AQ-MedAI/RagQALeaderboard/report/local"
	reportmysql "github.com/AQ-MedAI/RagQALeaderboard/report/mysql"
	"github.com/AQ-MedAI/RagQALeaderboard/runner"
)

// runConfig is the YAML file consumed by the run command.
type runConfig struct {
	runner.Config `yaml:",inline"`

	// Datasets lists the dataset tags to evaluate. Empty means all
	// registered datasets.
	Datasets []string `yaml:"datasets"`
	// DataDir is the directory holding <tag>.jsonl dataset files.
	DataDir string `yaml:"data_dir"`
	// ResultsDir is where leaderboard reports are written.
	ResultsDir string `yaml:"results_dir"`
	// MySQLDSN additionally persists reports to MySQL when set.
	MySQLDSN string `yaml:"mysql_dsn"`
	// LogLevel sets the logging verbosity (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// OpenAI configures the chat completion predictor.
	OpenAI struct {
		BaseURL      string `yaml:"base_url"`
		APIKey       string `yaml:"api_key"`
		SystemPrompt string `yaml:"system_prompt"`
	} `yaml:"openai"`
}

func loadRunConfig(path string) (*runConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := &runConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func newRunCommand() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run an evaluation and write the leaderboard report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadRunConfig(configPath)
			if err != nil {
				return err
			}
			if cfg.LogLevel != "" {
				log.SetLevel(cfg.LogLevel)
			}
			return runEvaluation(cmd, cfg)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the run configuration file")
	return cmd
}

func runEvaluation(cmd *cobra.Command, cfg *runConfig) error {
	var predictorOpts []modelopenai.Option
	if cfg.OpenAI.BaseURL != "" {
		predictorOpts = append(predictorOpts, modelopenai.WithBaseURL(cfg.OpenAI.BaseURL))
	}
	if cfg.OpenAI.APIKey != "" {
		predictorOpts = append(predictorOpts, modelopenai.WithAPIKey(cfg.OpenAI.APIKey))
	}
	if cfg.OpenAI.SystemPrompt != "" {
		predictorOpts = append(predictorOpts, modelopenai.WithSystemPrompt(cfg.OpenAI.SystemPrompt))
	}
	predictor := modelopenai.New(cfg.ModelName, predictorOpts...)

	var datasetOpts []dataset.Option
	if cfg.DataDir != "" {
		datasetOpts = append(datasetOpts, dataset.WithBaseDir(cfg.DataDir))
	}
	datasets := datasetlocal.New(registry.Default(), datasetOpts...)

	r, err := runner.New(cfg.Config, predictor, datasets)
	if err != nil {
		return err
	}
	defer r.Close()

	log.Infof("evaluating model %s on datasets %v", cfg.ModelName, cfg.Datasets)
	lb, err := r.Run(cmd.Context(), cfg.Datasets)
	if err != nil {
		return err
	}

	if err := saveReport(cmd, cfg, lb); err != nil {
		return err
	}
	printSummary(cmd, lb)
	return nil
}

func saveReport(cmd *cobra.Command, cfg *runConfig, lb *report.LeaderboardReport) error {
	var reportOpts []report.Option
	if cfg.ResultsDir != "" {
		reportOpts = append(reportOpts, report.WithBaseDir(cfg.ResultsDir))
	}
	id, err := reportlocal.New(reportOpts...).Save(cmd.Context(), lb)
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	log.Infof("report %s saved", id)

	if cfg.MySQLDSN == "" {
		return nil
	}
	mgr, err := reportmysql.New(reportmysql.WithDSN(cfg.MySQLDSN))
	if err != nil {
		return fmt.Errorf("connect mysql: %w", err)
	}
	if _, err := mgr.Save(cmd.Context(), lb); err != nil {
		return fmt.Errorf("save report to mysql: %w", err)
	}
	return nil
}

func printSummary(cmd *cobra.Command, lb *report.LeaderboardReport) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "model: %s\n", lb.ModelName)

	tags := make([]string, 0, len(lb.DatasetReports))
	for tag := range lb.DatasetReports {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	for _, tag := range tags {
		dr := lb.DatasetReports[tag]
		fmt.Fprintf(out, "%-12s scored=%d failed=%d skipped=%d", tag, dr.ScoredItems, dr.FailedItems, dr.SkippedItems)
		for _, name := range sortedMetricNames(dr.AggregateMetrics) {
			fmt.Fprintf(out, " %s=%s", name, formatScore(dr.AggregateMetrics[name]))
		}
		fmt.Fprintln(out)
	}

	fmt.Fprint(out, "overall:")
	for _, name := range sortedMetricNames(lb.OverallMetrics) {
		fmt.Fprintf(out, " %s=%s", name, formatScore(lb.OverallMetrics[name]))
	}
	fmt.Fprintln(out)
}

func sortedMetricNames(metrics map[string]report.Score) []string {
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func formatScore(score report.Score) string {
	if !score.Defined() {
		return "undefined"
	}
	return fmt.Sprintf("%.4f", float64(score))
}
