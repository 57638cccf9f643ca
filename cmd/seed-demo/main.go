// seed-demo writes two demo dispatch records into an empty snapshot so a
// fresh install has something to render. It refuses to touch a non-empty
// snapshot.
//
// Usage (from backend directory):
//
//	go run ./cmd/seed-demo
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

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
	if len(raw) > 0 {
		fmt.Fprintf(os.Stderr, "snapshot already has %d record(s); refusing to seed\n", len(raw))
		os.Exit(2)
	}

	store := models.NewRecordStore(models.SaveSnapshot)

	// Created oldest first; the store prepends, so the newest ends up on top.
	drafts := []*models.NewTransformerRecord{
		{
			SerialNumber:           "TR-2024-001",
			CustomerName:           "PowerCorp Ind",
			Project:                "Substation Alpha",
			DispatchDate:           "2024-01-15",
			RatingKVA:              500,
			VoltageRatio:           "11/0.433",
			CommissioningDueDate:   "2024-02-15",
			SourceWarehouse:        models.WarehouseRabale,
			ShippingAddress:        "123 Power Ln, Houston, TX",
			WarrantyMonthsComm:     12,
			WarrantyMonthsDispatch: 18,
			PBGAmount:              decimal.NewFromInt(15000),
			PBGDueDate:             "2024-03-01",
			CommissioningDoneDate:  "2024-02-10",
			SalesPerson:            "John Doe",
			Territory:              "North",
			State:                  "Texas",
			Narration:              "Priority installation requested.",
		},
		{
			SerialNumber:           "TR-2024-002",
			CustomerName:           "City Infra Ltd",
			Project:                "Metro Expansion",
			DispatchDate:           "2024-02-01",
			RatingKVA:              1000,
			VoltageRatio:           "33/11",
			CommissioningDueDate:   "2024-03-01",
			SourceWarehouse:        models.WarehouseTaloja,
			ShippingAddress:        "45 Metro Way, Chicago, IL",
			WarrantyMonthsComm:     24,
			WarrantyMonthsDispatch: 30,
			PBGAmount:              decimal.NewFromInt(25000),
			PBGDueDate:             "2024-04-15",
			SalesPerson:            "Jane Smith",
			Territory:              "Midwest",
			State:                  "Illinois",
			Narration:              "Delay in site readiness.",
		},
	}

	for _, draft := range drafts {
		rec, err := store.Create(ctx, draft)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to seed %s: %v\n", draft.SerialNumber, err)
			os.Exit(1)
		}
		fmt.Printf("seeded %s (%s, status %s)\n", rec.SerialNumber, rec.ID, rec.Status)
	}
}
