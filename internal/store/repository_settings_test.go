package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/snapsift/snapsift/internal/logger"
)

func newTestSettingsRepo(t *testing.T) (*settingsRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &settingsRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestGetBool_StoredTrue(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"value"}).AddRow("true")
	mock.ExpectQuery("SELECT value FROM settings").
		WithArgs("entitlement.pro").
		WillReturnRows(rows)

	value, err := repo.GetBool(context.Background(), "entitlement.pro")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !value {
		t.Error("expected true, got false")
	}
}

func TestGetBool_MissingKeyReadsFalse(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM settings").
		WithArgs("entitlement.pro").
		WillReturnError(sql.ErrNoRows)

	value, err := repo.GetBool(context.Background(), "entitlement.pro")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value {
		t.Error("expected false for missing key")
	}
}

func TestGetBool_GarbageValueReadsFalse(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"value"}).AddRow("not-a-bool")
	mock.ExpectQuery("SELECT value FROM settings").
		WithArgs("entitlement.pro").
		WillReturnRows(rows)

	value, err := repo.GetBool(context.Background(), "entitlement.pro")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value {
		t.Error("expected false for unparsable value")
	}
}

func TestGetBool_QueryError(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM settings").
		WithArgs("entitlement.pro").
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.GetBool(context.Background(), "entitlement.pro")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestSetBool_Upserts(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO settings").
		WithArgs("entitlement.pro", "true").
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.SetBool(context.Background(), "entitlement.pro", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestSetBool_ExecError(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO settings").
		WithArgs("entitlement.pro", "false").
		WillReturnError(errors.New("database is locked"))

	err := repo.SetBool(context.Background(), "entitlement.pro", false)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
