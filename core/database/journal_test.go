package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func setupJournal(t *testing.T) *Journal {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	j := NewJournal(db)
	require.NoError(t, j.Migrate(context.Background()))
	return j
}

func TestJournal_RecordAndRecent(t *testing.T) {
	ctx := context.Background()
	j := setupJournal(t)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, target := range []string{"ozon", "yandex/fbs", "yandex/dbs"} {
		run := &Run{
			ID:           target + "-run",
			Target:       target,
			Status:       StatusOK,
			StockRecords: i + 1,
			StartedAt:    base.Add(time.Duration(i) * time.Minute),
			FinishedAt:   base.Add(time.Duration(i)*time.Minute + time.Second),
		}
		require.NoError(t, j.Record(ctx, run))
	}

	runs, err := j.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "yandex/dbs", runs[0].Target)
	assert.Equal(t, "yandex/fbs", runs[1].Target)
	assert.Equal(t, 3, runs[0].StockRecords)

	err = j.Record(ctx, &Run{ID: "ozon-run", Target: "ozon"})
	assert.Error(t, err, "duplicate id must fail")
}

func TestJournal_CheckSchema(t *testing.T) {
	ctx := context.Background()

	t.Run("Migrated", func(t *testing.T) {
		assert.NoError(t, setupJournal(t).CheckSchema(ctx))
	})

	t.Run("MissingColumns", func(t *testing.T) {
		db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)
		require.NoError(t, db.Exec("CREATE TABLE sync_runs (id TEXT PRIMARY KEY, target TEXT)").Error)

		err = NewJournal(db).CheckSchema(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status")
		assert.NotContains(t, err.Error(), "target,")
	})
}

func TestJournal_MySQL(t *testing.T) {
	ctx := context.Background()
	db, mock := setupMockDB(t)
	j := NewJournal(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `sync_runs`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	require.NoError(t, j.Record(ctx, &Run{ID: "abc", Target: "ozon", Status: StatusOK}))

	rows := sqlmock.NewRows([]string{"id", "target", "status"}).AddRow("abc", "ozon", "ok")
	mock.ExpectQuery("SELECT \\* FROM `sync_runs` ORDER BY started_at DESC LIMIT").WillReturnRows(rows)
	runs, err := j.Recent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "abc", runs[0].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}
