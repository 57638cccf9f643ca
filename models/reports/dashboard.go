package reports

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/volttrack/mis_backend/models"
)

// Dashboard is the full dashboard payload: KPI summary plus the grouped
// series the charts render. Everything is a read-only projection over the
// record collection, rebuilt from scratch on every request (the dataset is
// small; no incremental aggregation state).
type Dashboard struct {
	Summary        Summary        `json:"summary"`
	ByRating       []CountBucket  `json:"byRating"`
	ByState        []CountBucket  `json:"byState"`
	ByWarrantyYear []CountBucket  `json:"byWarrantyYear"`
	TopCustomers   []CountBucket  `json:"topCustomers"`
	PBGByMonth     []AmountBucket `json:"pbgByMonth"`
}

type Summary struct {
	TotalUnits   int             `json:"totalUnits"`
	Commissioned int             `json:"commissioned"`
	Overdue      int             `json:"overdue"`
	TotalPBG     decimal.Decimal `json:"totalPBG"`
}

type CountBucket struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type AmountBucket struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// BuildDashboard aggregates the collection as of the given date
// (zero-padded ISO, used only for the overdue predicate).
func BuildDashboard(records []*models.TransformerRecord, today string) *Dashboard {
	return &Dashboard{
		Summary:        buildSummary(records, today),
		ByRating:       countByRating(records),
		ByState:        countByState(records),
		ByWarrantyYear: countByWarrantyYear(records),
		TopCustomers:   topCustomers(records, 5),
		PBGByMonth:     pbgByMonth(records, 10),
	}
}

func buildSummary(records []*models.TransformerRecord, today string) Summary {
	s := Summary{TotalPBG: decimal.Zero}
	for _, rec := range records {
		s.TotalUnits++
		if rec.Status == models.RecordStatusCommissioned {
			s.Commissioned++
		}
		if models.IsOverdue(rec, today) {
			s.Overdue++
		}
		s.TotalPBG = s.TotalPBG.Add(rec.PBGAmount)
	}
	return s
}

// "<value> KVA" buckets, first-encountered order.
func countByRating(records []*models.TransformerRecord) []CountBucket {
	counts := map[string]int{}
	var order []string
	for _, rec := range records {
		key := strconv.FormatFloat(rec.RatingKVA, 'f', -1, 64) + " KVA"
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}
	out := make([]CountBucket, 0, len(order))
	for _, key := range order {
		out = append(out, CountBucket{Name: key, Count: counts[key]})
	}
	return out
}

// empty state groups under "Unknown"; buckets sorted by count descending,
// ties by first-encountered order.
func countByState(records []*models.TransformerRecord) []CountBucket {
	counts := map[string]int{}
	var order []string
	for _, rec := range records {
		key := rec.State
		if key == "" {
			key = "Unknown"
		}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}
	out := make([]CountBucket, 0, len(order))
	for _, key := range order {
		out = append(out, CountBucket{Name: key, Count: counts[key]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// dispatch-warranty expiry year (substring before the first '-'), ascending.
func countByWarrantyYear(records []*models.TransformerRecord) []CountBucket {
	counts := map[string]int{}
	for _, rec := range records {
		if rec.WarrantyDateDispatch == "" {
			continue
		}
		year, _, _ := strings.Cut(rec.WarrantyDateDispatch, "-")
		counts[year]++
	}
	years := make([]string, 0, len(counts))
	for year := range counts {
		years = append(years, year)
	}
	sort.Strings(years)
	out := make([]CountBucket, 0, len(years))
	for _, year := range years {
		out = append(out, CountBucket{Name: year, Count: counts[year]})
	}
	return out
}

// top-n customers by record count, descending; ties keep first-encountered
// order.
func topCustomers(records []*models.TransformerRecord, n int) []CountBucket {
	counts := map[string]int{}
	var order []string
	for _, rec := range records {
		if _, seen := counts[rec.CustomerName]; !seen {
			order = append(order, rec.CustomerName)
		}
		counts[rec.CustomerName]++
	}
	out := make([]CountBucket, 0, len(order))
	for _, name := range order {
		out = append(out, CountBucket{Name: name, Count: counts[name]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// PBG amount summed per YYYY-MM of the PBG due date, ascending, truncated to
// the first maxPeriods periods after sorting.
func pbgByMonth(records []*models.TransformerRecord, maxPeriods int) []AmountBucket {
	sums := map[string]decimal.Decimal{}
	for _, rec := range records {
		if len(rec.PBGDueDate) < 7 {
			continue
		}
		month := rec.PBGDueDate[:7]
		sums[month] = sums[month].Add(rec.PBGAmount)
	}
	months := make([]string, 0, len(sums))
	for month := range sums {
		months = append(months, month)
	}
	sort.Strings(months)
	if len(months) > maxPeriods {
		months = months[:maxPeriods]
	}
	out := make([]AmountBucket, 0, len(months))
	for _, month := range months {
		out = append(out, AmountBucket{Name: month, Amount: sums[month]})
	}
	return out
}
