package models_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/volttrack/mis_backend/models"
)

// decode a legacy snapshot fragment the way LoadSnapshot does
func decodeRaw(t *testing.T, payload string) []models.RawRecord {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(payload))
	dec.UseNumber()
	var raw []models.RawRecord
	if err := dec.Decode(&raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return raw
}

const legacySnapshot = `[
  {
    "id": "1",
    "serialNumber": "TR-2023-007",
    "customerName": "Legacy Power",
    "project": "Old Grid",
    "dispatchDate": "2023-03-01",
    "ratingKVA": 750,
    "voltageRatio": "11/0.433",
    "commissioningDueDate": "2023-04-01",
    "sourceWarehouse": "Taloja",
    "shippingAddress": "",
    "warrantyMonthsComm": 12,
    "warrantyMonthsDispatch": 18,
    "pbgDueDate": "2023-05-01",
    "pbgAmount": 5000,
    "commissioningDoneDate": null,
    "status": "Overdue"
  }
]`

func TestMigrateBackfillsNewerFields(t *testing.T) {
	raw := decodeRaw(t, legacySnapshot)
	recs := models.MigrateRecords(raw)
	if len(recs) != 1 {
		t.Fatalf("got %d records", len(recs))
	}
	rec := recs[0]

	if rec.SalesPerson != "N/A" {
		t.Fatalf("salesPerson = %q, want N/A", rec.SalesPerson)
	}
	if rec.Territory != "" || rec.State != "" || rec.Narration != "" {
		t.Fatalf("territory/state/narration should default to empty, got %q/%q/%q", rec.Territory, rec.State, rec.Narration)
	}
	// degraded fallback, not a recompute
	if rec.WarrantyDateDispatch != "2023-03-01" {
		t.Fatalf("warrantyDateDispatch = %q, want dispatch date fallback 2023-03-01", rec.WarrantyDateDispatch)
	}
	// the commissioning warranty is recomputed from the due date
	if rec.WarrantyDateComm != "2024-04-01" {
		t.Fatalf("warrantyDateComm = %q, want 2024-04-01", rec.WarrantyDateComm)
	}
	// the legacy persisted "Overdue" is normalized away: only two statuses
	// survive a load
	if rec.Status != models.RecordStatusDispatched {
		t.Fatalf("status = %q, want Dispatched", rec.Status)
	}
	if rec.PBGAmount.String() != "5000" {
		t.Fatalf("pbgAmount = %s, want 5000", rec.PBGAmount)
	}
}

func TestMigratePreservesCompleteRecords(t *testing.T) {
	payload := `[
  {
    "id": "2",
    "serialNumber": "TR-2024-002",
    "customerName": "City Infra Ltd",
    "project": "Metro Expansion",
    "dispatchDate": "2024-02-01",
    "ratingKVA": 1000,
    "voltageRatio": "33/11",
    "commissioningDueDate": "2024-03-01",
    "sourceWarehouse": "Taloja",
    "shippingAddress": "45 Metro Way, Chicago, IL",
    "warrantyMonthsComm": 24,
    "warrantyMonthsDispatch": 30,
    "warrantyDateDispatch": "2026-08-01",
    "warrantyDateComm": "2026-03-01",
    "pbgAmount": 25000,
    "pbgDueDate": "2024-04-15",
    "commissioningDoneDate": "2024-02-20",
    "status": "Commissioned",
    "salesPerson": "Jane Smith",
    "territory": "Midwest",
    "state": "Illinois",
    "narration": "Delay in site readiness."
  }
]`
	rec := models.MigrateRecords(decodeRaw(t, payload))[0]

	// present values pass through untouched
	if rec.WarrantyDateDispatch != "2026-08-01" || rec.WarrantyDateComm != "2026-03-01" {
		t.Fatalf("stored warranty dates must not be recomputed: %q / %q", rec.WarrantyDateDispatch, rec.WarrantyDateComm)
	}
	if rec.SalesPerson != "Jane Smith" || rec.Territory != "Midwest" {
		t.Fatalf("existing fields overwritten: %q / %q", rec.SalesPerson, rec.Territory)
	}
	if rec.CommissioningDoneDate == nil || *rec.CommissioningDoneDate != "2024-02-20" {
		t.Fatal("done date lost in migration")
	}
	if rec.Status != models.RecordStatusCommissioned {
		t.Fatalf("status = %q, want Commissioned", rec.Status)
	}
}

func TestMigrationIsIdempotent(t *testing.T) {
	once := models.MigrateRecords(decodeRaw(t, legacySnapshot))

	// feed the migrated collection back through the same path a reload takes
	payload, err := json.Marshal(once)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	twice := models.MigrateRecords(decodeRaw(t, string(payload)))

	onceJSON, _ := json.Marshal(once)
	twiceJSON, _ := json.Marshal(twice)
	if string(onceJSON) != string(twiceJSON) {
		t.Fatalf("migration not idempotent:\nonce:  %s\ntwice: %s", onceJSON, twiceJSON)
	}
}
