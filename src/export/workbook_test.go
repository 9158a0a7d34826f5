package export

import (
	"errors"
	"kakeibo-server/src/apperr"
	"kakeibo-server/src/models"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func sampleTransactions() []models.Transaction {
	note := "groceries"
	return []models.Transaction{
		{
			Type:          models.TypeExpense,
			Amount:        decimal.RequireFromString("42.50"),
			Category:      "food",
			CategoryLabel: "Dining",
			Date:          time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			Note:          &note,
		},
		{
			Type:          models.TypeIncome,
			Amount:        decimal.RequireFromString("3000"),
			Category:      "salary",
			CategoryLabel: "Salary",
			Date:          time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			Type:          models.TypeExpense,
			Amount:        decimal.RequireFromString("7.50"),
			Category:      "food",
			CategoryLabel: "Dining",
			Date:          time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestBuildWorkbookEmptyIsNoData(t *testing.T) {
	_, err := BuildWorkbook(nil)
	if !errors.Is(err, apperr.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestBuildWorkbookTransactionRows(t *testing.T) {
	f, err := BuildWorkbook(sampleTransactions())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer f.Close()

	cases := []struct {
		cell string
		want string
	}{
		{"A1", "Date"},
		{"B1", "Type"},
		{"C1", "Amount"},
		{"D1", "Category"},
		{"E1", "Note"},
		{"A2", "2024-03-05"},
		{"B2", "Expense"},
		{"C2", "42.5"},
		{"D2", "Dining"},
		{"E2", "groceries"},
		{"B3", "Income"},
		{"D3", "Salary"},
	}
	for _, tc := range cases {
		got, err := f.GetCellValue("Transactions", tc.cell)
		if err != nil {
			t.Fatalf("read %s: %v", tc.cell, err)
		}
		if got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.cell, tc.want, got)
		}
	}
}

func TestBuildWorkbookSummarySheet(t *testing.T) {
	f, err := BuildWorkbook(sampleTransactions())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer f.Close()

	cases := []struct {
		cell string
		want string
	}{
		{"A1", "Total Income"},
		{"B1", "3000"},
		{"A2", "Total Expense"},
		{"B2", "50"},
		{"A3", "Balance"},
		{"B3", "2950"},
		{"A5", "Category"},
		// sorted descending by amount
		{"A6", "Salary"},
		{"B6", "3000"},
		{"A7", "Dining"},
		{"B7", "50"},
	}
	for _, tc := range cases {
		got, err := f.GetCellValue("Summary", tc.cell)
		if err != nil {
			t.Fatalf("read %s: %v", tc.cell, err)
		}
		if got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.cell, tc.want, got)
		}
	}
}

func TestFilenameEmbedsTimestamp(t *testing.T) {
	now := time.Date(2024, 3, 5, 13, 4, 5, 0, time.UTC)
	if got := Filename(now); got != "transactions_20240305_130405.xlsx" {
		t.Fatalf("unexpected filename %q", got)
	}
}
