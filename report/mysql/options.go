//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

package mysql

import (
	"database/sql"
	"time"
)

const (
	defaultTable       = "leaderboard_reports"
	defaultInitTimeout = 10 * time.Second
)

type options struct {
	dsn            string
	table          string
	db             *sql.DB
	skipSchemaInit bool
	initTimeout    time.Duration
}

func newOptions(opt ...Option) *options {
	opts := &options{
		table:       defaultTable,
		initTimeout: defaultInitTimeout,
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option is a functional option for configuring the MySQL report manager.
type Option func(*options)

// WithDSN sets the MySQL data source name.
func WithDSN(dsn string) Option {
	return func(o *options) {
		o.dsn = dsn
	}
}

// WithTable overrides the report table name.
func WithTable(table string) Option {
	return func(o *options) {
		o.table = table
	}
}

// WithDB injects an existing database handle instead of opening one from
// the DSN. The caller keeps ownership of the handle.
func WithDB(db *sql.DB) Option {
	return func(o *options) {
		o.db = db
	}
}

// WithSkipSchemaInit skips the CREATE TABLE statement on startup.
func WithSkipSchemaInit() Option {
	return func(o *options) {
		o.skipSchemaInit = true
	}
}

// WithInitTimeout bounds the schema initialization on startup.
func WithInitTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.initTimeout = timeout
	}
}
