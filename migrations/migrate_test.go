// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose talks to the db itself; no expectations set

	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestEmbeddedMigrations_ContainJournal(t *testing.T) {
	b, err := embedMigrations.ReadFile("00001_backup_journal.sql")
	if err != nil {
		t.Fatalf("journal migration not embedded: %v", err)
	}
	if !strings.Contains(string(b), "CREATE TABLE IF NOT EXISTS backup_journal") {
		t.Error("journal migration does not create backup_journal")
	}
	if !strings.Contains(string(b), "-- +goose Down") {
		t.Error("journal migration has no down section")
	}
}
