// migrate-snapshot loads the stored record snapshot, runs the schema
// migration (backfilling fields added after the records were written) and
// saves the result back. Safe to run repeatedly: migration is idempotent.
//
// Usage (from backend directory):
//
//	go run ./cmd/migrate-snapshot
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/volttrack/mis_backend/config"
	"github.com/volttrack/mis_backend/models"
)

func main() {
	ctx := context.Background()
	config.ConnectDatabase()
	models.MigrateTable()

	raw, err := models.LoadSnapshot(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load snapshot: %v\n", err)
		os.Exit(1)
	}
	if raw == nil {
		fmt.Println("no snapshot found; nothing to migrate")
		return
	}

	migrated := models.MigrateRecords(raw)
	if err := models.SaveSnapshot(ctx, migrated); err != nil {
		fmt.Fprintf(os.Stderr, "failed to save snapshot: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("migrated %d record(s)\n", len(migrated))
}
