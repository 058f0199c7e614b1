package db

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBuildDSN_MySQLTCP(t *testing.T) {
	t.Parallel()

	cfg := Config{Driver: DriverMySQL, User: "testuser", Password: "testpass", Name: "testdb", Host: "localhost", Port: "3306"}

	expected := "testuser:testpass@tcp(localhost:3306)/testdb?charset=utf8mb4&parseTime=true&loc=Local"
	assert.Equal(t, expected, BuildDSN(cfg))
}

func TestBuildDSN_CloudSQLTakesPrecedence(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Driver:       DriverMySQL,
		User:         "testuser",
		Password:     "testpass",
		Name:         "testdb",
		Host:         "localhost",
		Port:         "3306",
		InstanceName: "project:region:instance",
	}

	expected := "testuser:testpass@unix(/cloudsql/project:region:instance)/testdb?charset=utf8mb4&parseTime=true&loc=Local"
	assert.Equal(t, expected, BuildDSN(cfg))
}

func TestBuildDSN_Postgres(t *testing.T) {
	t.Parallel()

	cfg := Config{Driver: DriverPostgres, User: "u", Password: "p", Name: "n", Host: "db", Port: "5432"}
	assert.Equal(t, "host=db user=u password=p dbname=n port=5432 sslmode=disable", BuildDSN(cfg))

	cfg.InstanceName = "proj:region:inst"
	assert.Equal(t, "host=/cloudsql/proj:region:inst user=u password=p dbname=n port=5432 sslmode=disable", BuildDSN(cfg))
}

func TestBuildDSN_SQLite(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "./greenthumb.db", BuildDSN(Config{Driver: DriverSQLite, SQLitePath: "./greenthumb.db"}))
}

func TestNewOpener(t *testing.T) {
	t.Parallel()

	for _, driver := range []string{"", DriverMySQL, DriverPostgres, DriverSQLite} {
		open, err := NewOpener(driver)
		assert.NoError(t, err, driver)
		assert.NotNil(t, open, driver)
	}

	_, err := NewOpener("oracle")
	assert.Error(t, err)
}

func TestNewOpener_SQLiteInMemory(t *testing.T) {
	t.Parallel()

	open, err := NewOpener(DriverSQLite)
	require.NoError(t, err)

	db, err := open(":memory:")
	require.NoError(t, err)

	type probe struct {
		ID   uint `gorm:"primaryKey"`
		Name string
	}
	require.NoError(t, Migrate(db, &probe{}))
	assert.True(t, db.Migrator().HasTable(&probe{}))
}

func TestConnectWithRetry_SuccessOnFirstTry(t *testing.T) {
	mockDB := &gorm.DB{}
	opener := func(dsn string) (*gorm.DB, error) {
		return mockDB, nil
	}

	db, err := ConnectWithRetry("test-dsn", 5*time.Second, opener)

	require.NoError(t, err)
	assert.Same(t, mockDB, db)
}

func TestConnectWithRetry_RetriesOnFailure(t *testing.T) {
	prev := retryInterval
	retryInterval = 10 * time.Millisecond
	t.Cleanup(func() { retryInterval = prev })

	mockDB := &gorm.DB{}
	attemptCount := 0
	opener := func(dsn string) (*gorm.DB, error) {
		attemptCount++
		if attemptCount < 3 {
			return nil, errors.New("connection refused")
		}
		return mockDB, nil
	}

	db, err := ConnectWithRetry("test-dsn", time.Second, opener)

	require.NoError(t, err)
	assert.Same(t, mockDB, db)
	assert.Equal(t, 3, attemptCount)
}

func TestConnectWithRetry_TimeoutAfterRetries(t *testing.T) {
	prev := retryInterval
	retryInterval = 10 * time.Millisecond
	t.Cleanup(func() { retryInterval = prev })

	attemptCount := 0
	opener := func(dsn string) (*gorm.DB, error) {
		attemptCount++
		return nil, errors.New("connection refused")
	}

	_, err := ConnectWithRetry("test-dsn", 50*time.Millisecond, opener)

	assert.Error(t, err)
	assert.Positive(t, attemptCount)
}

func TestIsDuplicateKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm translated", gorm.ErrDuplicatedKey, true},
		{"wrapped gorm translated", fmt.Errorf("create: %w", gorm.ErrDuplicatedKey), true},
		{"mysql 1062", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, true},
		{"mysql other", &mysql.MySQLError{Number: 1045}, false},
		{"postgres 23505", &pgconn.PgError{Code: "23505"}, true},
		{"postgres other", &pgconn.PgError{Code: "42P01"}, false},
		{"plain", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDuplicateKey(tt.err))
		})
	}
}
