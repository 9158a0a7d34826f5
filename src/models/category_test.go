package models

import "testing"

func TestLookupCategory(t *testing.T) {
	c, ok := LookupCategory(TypeExpense, "food")
	if !ok || c.Name != "Dining" {
		t.Fatalf("expected Dining, got %+v (ok=%v)", c, ok)
	}

	// "other" exists for both types under distinct ids
	if _, ok := LookupCategory(TypeIncome, "other_income"); !ok {
		t.Fatal("expected other_income for income type")
	}
	if _, ok := LookupCategory(TypeIncome, "food"); ok {
		t.Fatal("food must not resolve as an income category")
	}
	if _, ok := LookupCategory(TypeExpense, "unknown"); ok {
		t.Fatal("unknown id must not resolve")
	}
}

func TestCategoryLabelFallsBackToID(t *testing.T) {
	if got := CategoryLabel(TypeExpense, "food"); got != "Dining" {
		t.Fatalf("expected Dining, got %q", got)
	}
	if got := CategoryLabel(TypeExpense, "legacy-label"); got != "legacy-label" {
		t.Fatalf("expected raw id passthrough, got %q", got)
	}
}

func TestCategoriesForType(t *testing.T) {
	for _, txType := range []string{TypeIncome, TypeExpense} {
		for _, c := range CategoriesForType(txType) {
			if c.Type != txType {
				t.Fatalf("category %s leaked into %s list", c.ID, txType)
			}
		}
	}
	if len(CategoriesForType(TypeExpense)) == 0 || len(CategoriesForType(TypeIncome)) == 0 {
		t.Fatal("catalog must cover both types")
	}
}
