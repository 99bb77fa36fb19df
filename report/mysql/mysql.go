//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

// Package mysql provides a MySQL-backed report manager implementation.
package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/AQ-MedAI/RagQALeaderboard/epochtime"
	"github.com/AQ-MedAI/RagQALeaderboard/report"
)

var _ report.Manager = (*manager)(nil)

type manager struct {
	db    *sql.DB
	table string
}

// New creates a MySQL-backed report manager. The schema is created on first
// use unless WithSkipSchemaInit is set.
func New(opt ...Option) (report.Manager, error) {
	opts := newOptions(opt...)
	db := opts.db
	if db == nil {
		if opts.dsn == "" {
			return nil, errors.New("mysql dsn is empty")
		}
		var err error
		db, err = sql.Open("mysql", opts.dsn)
		if err != nil {
			return nil, fmt.Errorf("open mysql: %w", err)
		}
	}
	m := &manager{db: db, table: opts.table}
	if !opts.skipSchemaInit {
		ctx, cancel := context.WithTimeout(context.Background(), opts.initTimeout)
		defer cancel()
		if err := m.ensureSchema(ctx); err != nil {
			return nil, fmt.Errorf("init schema: %w", err)
		}
	}
	return m, nil
}

func (m *manager) ensureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		report_id VARCHAR(191) NOT NULL,
		model_name VARCHAR(191) NOT NULL,
		payload LONGTEXT NOT NULL,
		created_at TIMESTAMP(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
		updated_at TIMESTAMP(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6) ON UPDATE CURRENT_TIMESTAMP(6),
		PRIMARY KEY (report_id)
	)`, m.table)
	_, err := m.db.ExecContext(ctx, query)
	return err
}

// Save upserts a report into MySQL, generating an ID and timestamp when
// absent.
func (m *manager) Save(ctx context.Context, r *report.LeaderboardReport) (string, error) {
	if r == nil {
		return "", errors.New("report is nil")
	}
	if r.ReportID == "" {
		r.ReportID = uuid.New().String()
	}
	if r.CreationTimestamp == nil {
		r.CreationTimestamp = &epochtime.EpochTime{Time: time.Now()}
	}
	payload, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("marshal report %s: %w", r.ReportID, err)
	}
	query := fmt.Sprintf(
		`INSERT INTO %s (report_id, model_name, payload)
		 VALUES (?, ?, ?)
		 ON DUPLICATE KEY UPDATE
		   model_name = VALUES(model_name),
		   payload = VALUES(payload),
		   updated_at = CURRENT_TIMESTAMP(6)`,
		m.table,
	)
	if _, err := m.db.ExecContext(ctx, query, r.ReportID, r.ModelName, payload); err != nil {
		return "", fmt.Errorf("store report %s: %w", r.ReportID, err)
	}
	return r.ReportID, nil
}

// Get loads a report from MySQL.
// Returns an error wrapping os.ErrNotExist if the report does not exist.
func (m *manager) Get(ctx context.Context, reportID string) (*report.LeaderboardReport, error) {
	if reportID == "" {
		return nil, errors.New("report id is empty")
	}
	var payload []byte
	query := fmt.Sprintf("SELECT payload FROM %s WHERE report_id = ?", m.table)
	if err := m.db.QueryRowContext(ctx, query, reportID).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("report %s not found: %w", reportID, os.ErrNotExist)
		}
		return nil, fmt.Errorf("load report %s: %w", reportID, err)
	}
	var r report.LeaderboardReport
	if err := json.Unmarshal(payload, &r); err != nil {
		return nil, fmt.Errorf("unmarshal report %s: %w", reportID, err)
	}
	return &r, nil
}

// List lists report IDs from MySQL, newest first.
func (m *manager) List(ctx context.Context) ([]string, error) {
	query := fmt.Sprintf("SELECT report_id FROM %s ORDER BY created_at DESC", m.table)
	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()
	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan report id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return ids, nil
}

// Close closes the underlying database handle.
func (m *manager) Close() error {
	if m.db == nil {
		return nil
	}
	return m.db.Close()
}
