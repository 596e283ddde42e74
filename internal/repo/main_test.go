package repo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/pressly/goose/v3"

	"github.com/pkordes/itinerary-planner/migrations"
	"github.com/pkordes/itinerary-planner/testutil"
)

// TestMain applies all pending migrations to the test database before any
// test in the package runs, so Postgres tests never think about schema state.
// Without TEST_DATABASE_URL only the memory, cache and pgxmock tests do real
// work; the Postgres integration tests skip themselves.
func TestMain(m *testing.M) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		os.Exit(m.Run())
	}

	// goose needs a *sql.DB, not a pgx pool, and TestMain has no *testing.T.
	db := testutil.MustOpenSQLDB(os.Getenv("TEST_DATABASE_URL"))
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		log.Fatalf("TestMain: create goose provider: %v", err)
	}

	if _, err := provider.Up(context.Background()); err != nil {
		log.Fatalf("TestMain: run migrations: %v", err)
	}

	os.Exit(m.Run())
}
