// Package export materializes a user's transaction history as an XLSX
// workbook: one sheet of raw rows plus a summary sheet with totals and a
// category breakdown.
package export

import (
	"fmt"
	"kakeibo-server/src/apperr"
	"kakeibo-server/src/models"
	"kakeibo-server/src/summary"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	transactionsSheet = "Transactions"
	summarySheet      = "Summary"
)

// Filename embeds a timestamp so repeated exports never collide.
func Filename(now time.Time) string {
	return fmt.Sprintf("transactions_%s.xlsx", now.Format("20060102_150405"))
}

// BuildWorkbook renders the full transaction set. An empty set is an
// ErrNoData, not an empty file.
func BuildWorkbook(transactions []models.Transaction) (*excelize.File, error) {
	if len(transactions) == 0 {
		return nil, fmt.Errorf("%w: no transactions to export", apperr.ErrNoData)
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", transactionsSheet); err != nil {
		return nil, fmt.Errorf("xlsx sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, fmt.Errorf("xlsx sheet: %w", err)
	}

	if err := writeTransactionRows(f, transactions); err != nil {
		return nil, err
	}
	if err := writeSummary(f, transactions); err != nil {
		return nil, err
	}

	index, err := f.GetSheetIndex(transactionsSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	return f, nil
}

func writeTransactionRows(f *excelize.File, transactions []models.Transaction) error {
	headers := []string{"Date", "Type", "Amount", "Category", "Note"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(transactionsSheet, cell, h); err != nil {
			return fmt.Errorf("xlsx write: %w", err)
		}
	}

	for row, t := range transactions {
		note := ""
		if t.Note != nil {
			note = *t.Note
		}
		values := []interface{}{
			t.Date.Format("2006-01-02"),
			typeLabel(t.Type),
			t.Amount.String(),
			t.CategoryLabel,
			note,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(transactionsSheet, cell, v); err != nil {
				return fmt.Errorf("xlsx write: %w", err)
			}
		}
	}

	_ = f.SetColWidth(transactionsSheet, "A", "A", 14)
	_ = f.SetColWidth(transactionsSheet, "B", "B", 10)
	_ = f.SetColWidth(transactionsSheet, "C", "C", 14)
	_ = f.SetColWidth(transactionsSheet, "D", "D", 20)
	_ = f.SetColWidth(transactionsSheet, "E", "E", 48)
	return nil
}

type categoryTotal struct {
	label string
	total decimal.Decimal
}

func writeSummary(f *excelize.File, transactions []models.Transaction) error {
	income := summary.TotalByType(transactions, models.TypeIncome)
	expense := summary.TotalByType(transactions, models.TypeExpense)

	rows := [][]interface{}{
		{"Total Income", income.String()},
		{"Total Expense", expense.String()},
		{"Balance", income.Sub(expense).String()},
		{},
		{"Category", "Total"},
	}
	for _, ct := range categoryTotals(transactions) {
		rows = append(rows, []interface{}{ct.label, ct.total.String()})
	}

	for r, values := range rows {
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			if err := f.SetCellValue(summarySheet, cell, v); err != nil {
				return fmt.Errorf("xlsx write: %w", err)
			}
		}
	}

	_ = f.SetColWidth(summarySheet, "A", "A", 20)
	_ = f.SetColWidth(summarySheet, "B", "B", 14)
	return nil
}

// categoryTotals groups amounts by category label, largest first.
func categoryTotals(transactions []models.Transaction) []categoryTotal {
	totals := make(map[string]decimal.Decimal)
	var order []string
	for _, t := range transactions {
		label := t.CategoryLabel
		if label == "" {
			label = t.Category
		}
		if _, seen := totals[label]; !seen {
			order = append(order, label)
		}
		totals[label] = totals[label].Add(t.Amount)
	}

	out := make([]categoryTotal, 0, len(order))
	for _, label := range order {
		out = append(out, categoryTotal{label: label, total: totals[label]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].total.GreaterThan(out[j].total)
	})
	return out
}

func typeLabel(txType string) string {
	if txType == models.TypeIncome {
		return "Income"
	}
	return "Expense"
}
