package dbtest

import (
	"database/sql"
	"os"
	"testing"

	"github.com/KirkDiggler/secretsanta/internal/db"
	_ "github.com/lib/pq"
)

// URLEnv names the environment variable holding the test database connection string
const URLEnv = "SANTA_TEST_DATABASE_URL"

// Open connects to the test database and recreates the schema.
// The test is skipped when no database is configured.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv(URLEnv)
	if url == "" {
		t.Skipf("%s not set, skipping Postgres test", URLEnv)
	}

	conn, err := sql.Open("postgres", url)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.DropSchema(conn); err != nil {
		t.Fatalf("Failed to clean database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		conn.Close()
	})

	return conn
}
