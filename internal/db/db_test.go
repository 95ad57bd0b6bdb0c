package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE Vehicles").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = WithTx(context.Background(), conn, func(tx *sql.Tx) error {
		_, err := tx.Exec("UPDATE Vehicles SET available = 1")
		return err
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	want := errors.New("vehicle is not available")
	err = WithTx(context.Background(), conn, func(*sql.Tx) error { return want })
	if !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWithTx_RollsBackOnPanic(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic to propagate")
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	}()
	_ = WithTx(context.Background(), conn, func(*sql.Tx) error { panic("boom") })
}

func TestWithTx_NilConnection(t *testing.T) {
	if err := WithTx(context.Background(), nil, func(*sql.Tx) error { return nil }); err == nil {
		t.Fatalf("expected error for nil connection")
	}
}

func TestEnsureSchema_CreatesTablesAndSeeds(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	for range schemaDDL {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
	}
	for _, v := range StarterFleet {
		mock.ExpectExec("INSERT IGNORE INTO Vehicles").
			WithArgs(v.Category, v.Brand, v.Model, v.RegNo, v.RentPerDay).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	if err := EnsureSchema(context.Background(), conn); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMissingTables(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	for _, table := range Tables {
		rows := sqlmock.NewRows([]string{"table_name"})
		if table != "Payments" {
			rows.AddRow(table)
		}
		mock.ExpectQuery("FROM information_schema.tables").WithArgs(table).WillReturnRows(rows)
	}

	missing := MissingTables(context.Background(), conn)
	if len(missing) != 1 || missing[0] != "Payments" {
		t.Fatalf("expected [Payments], got %v", missing)
	}
}
