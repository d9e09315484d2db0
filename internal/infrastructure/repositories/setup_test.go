package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createTokenTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE token (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		ticker TEXT NOT NULL UNIQUE,
		image_url TEXT,
		amount REAL NOT NULL DEFAULT 0,
		creator_address TEXT NOT NULL,
		contract_address TEXT,
		website TEXT,
		created_at DATETIME
	);`)
}

func createWaitlistTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE waitlist (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE,
		created_at DATETIME
	);`)
}
