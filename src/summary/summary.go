// Package summary derives monthly totals, the daily-available-budget figure
// and the per-day chart series from an in-memory transaction set.
package summary

import (
	"kakeibo-server/src/models"
	"time"

	"github.com/shopspring/decimal"
)

// Point is one calendar day of the chart series. Date is the zero-padded
// day-of-month label.
type Point struct {
	Date    string          `json:"date"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

type MonthSummary struct {
	Income         decimal.Decimal  `json:"income"`
	Expense        decimal.Decimal  `json:"expense"`
	Balance        decimal.Decimal  `json:"balance"`
	DailyAvailable *decimal.Decimal `json:"daily_available"`
}

func TotalByType(transactions []models.Transaction, txType string) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if t.Type == txType {
			total = total.Add(t.Amount)
		}
	}
	return total
}

func Balance(transactions []models.Transaction) decimal.Decimal {
	return TotalByType(transactions, models.TypeIncome).Sub(TotalByType(transactions, models.TypeExpense))
}

// RemainingDaysInMonth counts today through the last day of today's month,
// inclusive. On the last day of the month it is 1.
func RemainingDaysInMonth(today time.Time) int {
	lastDay := time.Date(today.Year(), today.Month()+1, 0, 0, 0, 0, 0, today.Location()).Day()
	return lastDay - today.Day() + 1
}

// DailyAvailable is the balance spread over the remaining days of the month.
// It is nil when the balance is zero or negative; callers present that as an
// "insufficient balance" state, never as a number.
func DailyAvailable(transactions []models.Transaction, today time.Time) *decimal.Decimal {
	balance := Balance(transactions)
	if !balance.IsPositive() {
		return nil
	}
	available := balance.DivRound(decimal.NewFromInt(int64(RemainingDaysInMonth(today))), 2)
	return &available
}

// DailySeries produces one point per calendar day from the 1st of today's
// month through today. Days without transactions yield zero-valued points,
// so the series always has exactly today.Day() entries.
func DailySeries(transactions []models.Transaction, today time.Time) []Point {
	series := make([]Point, today.Day())
	for i := range series {
		day := time.Date(today.Year(), today.Month(), i+1, 0, 0, 0, 0, today.Location())
		series[i] = Point{
			Date:    day.Format("02"),
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
	}

	for _, t := range transactions {
		if t.Date.Year() != today.Year() || t.Date.Month() != today.Month() {
			continue
		}
		day := t.Date.Day()
		if day < 1 || day > today.Day() {
			continue
		}
		p := &series[day-1]
		switch t.Type {
		case models.TypeIncome:
			p.Income = p.Income.Add(t.Amount)
		case models.TypeExpense:
			p.Expense = p.Expense.Add(t.Amount)
		}
	}
	return series
}

// Summarize bundles the dashboard numbers for one month of transactions.
func Summarize(transactions []models.Transaction, today time.Time) MonthSummary {
	income := TotalByType(transactions, models.TypeIncome)
	expense := TotalByType(transactions, models.TypeExpense)
	return MonthSummary{
		Income:         income,
		Expense:        expense,
		Balance:        income.Sub(expense),
		DailyAvailable: DailyAvailable(transactions, today),
	}
}
