package summary

import (
	"kakeibo-server/src/models"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func tx(txType, amount, date string) models.Transaction {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.Transaction{
		Type:   txType,
		Amount: decimal.RequireFromString(amount),
		Date:   d,
	}
}

func day(date string) time.Time {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return d
}

func TestBalanceMatchesTotals(t *testing.T) {
	transactions := []models.Transaction{
		tx(models.TypeIncome, "1000", "2024-01-01"),
		tx(models.TypeIncome, "0.10", "2024-01-02"),
		tx(models.TypeExpense, "200", "2024-01-05"),
		tx(models.TypeExpense, "0.30", "2024-01-05"),
	}

	income := TotalByType(transactions, models.TypeIncome)
	expense := TotalByType(transactions, models.TypeExpense)
	balance := Balance(transactions)

	if !income.Sub(expense).Equal(balance) {
		t.Fatalf("income - expense = %s, balance = %s", income.Sub(expense), balance)
	}
	if balance.String() != "799.8" {
		t.Fatalf("expected exact balance 799.8, got %s", balance)
	}
}

func TestRemainingDaysInMonth(t *testing.T) {
	cases := []struct {
		today string
		want  int
	}{
		{"2024-01-10", 22},
		{"2024-01-31", 1},
		{"2024-02-01", 29}, // leap year
		{"2023-02-28", 1},
		{"2024-04-30", 1},
	}
	for _, tc := range cases {
		if got := RemainingDaysInMonth(day(tc.today)); got != tc.want {
			t.Errorf("%s: expected %d remaining days, got %d", tc.today, tc.want, got)
		}
	}
}

func TestDailyAvailableScenario(t *testing.T) {
	transactions := []models.Transaction{
		tx(models.TypeIncome, "1000", "2024-01-01"),
		tx(models.TypeExpense, "200", "2024-01-05"),
	}
	today := day("2024-01-10")

	if got := Balance(transactions); got.String() != "800" {
		t.Fatalf("expected balance 800, got %s", got)
	}

	available := DailyAvailable(transactions, today)
	if available == nil {
		t.Fatal("expected a daily available figure")
	}
	if available.String() != "36.36" {
		t.Fatalf("expected 800/22 rounded to 36.36, got %s", available)
	}
}

func TestDailyAvailableNilWhenNotPositive(t *testing.T) {
	cases := [][]models.Transaction{
		nil,
		{tx(models.TypeExpense, "50", "2024-01-02")},
		{
			tx(models.TypeIncome, "100", "2024-01-01"),
			tx(models.TypeExpense, "100", "2024-01-02"),
		},
	}
	for i, transactions := range cases {
		if got := DailyAvailable(transactions, day("2024-01-10")); got != nil {
			t.Errorf("case %d: expected nil, got %s", i, got)
		}
	}
}

func TestDailySeriesLengthAndSums(t *testing.T) {
	transactions := []models.Transaction{
		tx(models.TypeIncome, "1000", "2024-01-01"),
		tx(models.TypeExpense, "200", "2024-01-05"),
		tx(models.TypeExpense, "50", "2024-01-05"),
		tx(models.TypeExpense, "10", "2024-01-20"), // after today, excluded
		tx(models.TypeExpense, "10", "2023-12-31"), // prior month, excluded
	}
	today := day("2024-01-10")

	series := DailySeries(transactions, today)
	if len(series) != today.Day() {
		t.Fatalf("expected %d points, got %d", today.Day(), len(series))
	}

	if series[0].Date != "01" || !series[0].Income.Equal(decimal.RequireFromString("1000")) {
		t.Fatalf("day 1: got %+v", series[0])
	}
	if !series[4].Expense.Equal(decimal.RequireFromString("250")) {
		t.Fatalf("day 5: expected expense 250, got %s", series[4].Expense)
	}
	for _, i := range []int{1, 2, 3, 5, 6, 7, 8, 9} {
		if !series[i].Income.IsZero() || !series[i].Expense.IsZero() {
			t.Fatalf("day %d: expected zero point, got %+v", i+1, series[i])
		}
	}
}

func TestSummarize(t *testing.T) {
	transactions := []models.Transaction{
		tx(models.TypeIncome, "1000", "2024-01-01"),
		tx(models.TypeExpense, "200", "2024-01-05"),
	}
	s := Summarize(transactions, day("2024-01-10"))
	if s.Income.String() != "1000" || s.Expense.String() != "200" || s.Balance.String() != "800" {
		t.Fatalf("unexpected summary %+v", s)
	}
	if s.DailyAvailable == nil || s.DailyAvailable.String() != "36.36" {
		t.Fatalf("unexpected daily available %v", s.DailyAvailable)
	}
}
