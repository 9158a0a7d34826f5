package handlers

import (
	"kakeibo-server/src/models"
	"testing"
)

func TestMonthRange(t *testing.T) {
	from, to, err := monthRange("2024-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if from.Format("2006-01-02") != "2024-02-01" || to.Format("2006-01-02") != "2024-02-29" {
		t.Fatalf("expected leap February bounds, got %s .. %s", from, to)
	}

	for _, month := range []string{"", "all"} {
		from, to, err := monthRange(month)
		if err != nil || from != nil || to != nil {
			t.Fatalf("%q: expected unbounded range, got %v %v %v", month, from, to, err)
		}
	}

	if _, _, err := monthRange("February"); err == nil {
		t.Fatal("expected error for malformed month")
	}
}

func TestFilterBySearch(t *testing.T) {
	note := "Lunch with Sam"
	transactions := []models.Transaction{
		{CategoryLabel: "Dining", Note: &note},
		{CategoryLabel: "Transport"},
		{CategoryLabel: "Salary"},
	}

	cases := []struct {
		term string
		want int
	}{
		{"", 3},
		{"dining", 1},
		{"LUNCH", 1},
		{"sam", 1},
		{"trans", 1},
		{"rent", 0},
	}
	for _, tc := range cases {
		got := filterBySearch(transactions, tc.term)
		if len(got) != tc.want {
			t.Errorf("%q: expected %d matches, got %d", tc.term, tc.want, len(got))
		}
	}
}
