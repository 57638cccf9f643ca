package models_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/volttrack/mis_backend/config"
	"github.com/volttrack/mis_backend/models"
)

// round-trip through the real sqlite-backed key-value table
func TestSnapshotRoundTrip(t *testing.T) {
	if strings.TrimSpace(os.Getenv("INTEGRATION_TESTS")) == "" {
		t.Skip("set INTEGRATION_TESTS=1 to run integration tests (opens a sqlite database)")
	}

	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "volttrack.db"))
	config.ConnectDatabase()
	models.MigrateTable()

	ctx := context.Background()

	// fresh install: no key yet
	raw, err := models.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if raw != nil {
		t.Fatalf("expected empty snapshot, got %d records", len(raw))
	}

	store := models.NewRecordStore(models.SaveSnapshot)
	if _, err := store.Create(ctx, draft("TR-1", "PowerCorp")); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := store.Create(ctx, draft("TR-2", "City Infra")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	raw, err = models.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if len(raw) != 2 {
		t.Fatalf("got %d records, want 2", len(raw))
	}

	reloaded := models.NewRecordStore(nil)
	reloaded.Load(raw)
	all := reloaded.All()
	if all[0].SerialNumber != "TR-2" || all[1].SerialNumber != "TR-1" {
		t.Fatalf("order lost across reload: %q, %q", all[0].SerialNumber, all[1].SerialNumber)
	}
	if all[0].PBGAmount.String() != "15000" {
		t.Fatalf("pbgAmount = %s, want 15000", all[0].PBGAmount)
	}
}
