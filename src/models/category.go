package models

// Category is a static catalog entry used for validation and display lookup.
// Transactions reference the catalog by ID; the display name is denormalized
// at read time so a catalog rename never orphans historic records.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
	Type string `json:"type"`
}

var Categories = []Category{
	{ID: "food", Name: "Dining", Icon: "utensils", Type: TypeExpense},
	{ID: "transport", Name: "Transport", Icon: "bus", Type: TypeExpense},
	{ID: "shopping", Name: "Shopping", Icon: "shopping-bag", Type: TypeExpense},
	{ID: "housing", Name: "Housing", Icon: "home", Type: TypeExpense},
	{ID: "utilities", Name: "Utilities", Icon: "zap", Type: TypeExpense},
	{ID: "entertainment", Name: "Entertainment", Icon: "gamepad-2", Type: TypeExpense},
	{ID: "education", Name: "Education", Icon: "graduation-cap", Type: TypeExpense},
	{ID: "medical", Name: "Medical", Icon: "stethoscope", Type: TypeExpense},
	{ID: "travel", Name: "Travel", Icon: "plane", Type: TypeExpense},
	{ID: "other", Name: "Other", Icon: "more-horizontal", Type: TypeExpense},
	{ID: "fixed", Name: "Fixed Income", Icon: "briefcase", Type: TypeIncome},
	{ID: "salary", Name: "Salary", Icon: "wallet", Type: TypeIncome},
	{ID: "bonus", Name: "Bonus", Icon: "dollar-sign", Type: TypeIncome},
	{ID: "investment", Name: "Investment", Icon: "trending-up", Type: TypeIncome},
	{ID: "gift", Name: "Gift", Icon: "gift", Type: TypeIncome},
	{ID: "other_income", Name: "Other", Icon: "more-horizontal", Type: TypeIncome},
}

func LookupCategory(txType, id string) (Category, bool) {
	for _, c := range Categories {
		if c.Type == txType && c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryLabel resolves the display name for a stored category id,
// falling back to the raw id for records older than the catalog.
func CategoryLabel(txType, id string) string {
	if c, ok := LookupCategory(txType, id); ok {
		return c.Name
	}
	return id
}

func CategoriesForType(txType string) []Category {
	var out []Category
	for _, c := range Categories {
		if c.Type == txType {
			out = append(out, c)
		}
	}
	return out
}
