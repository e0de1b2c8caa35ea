package core

// Expense is one stored transaction. Dates are YYYY-MM-DD strings and
// are stored and compared lexically; amounts carry no currency unit and
// no sign constraint (negative values are refunds/credits).
type Expense struct {
	ID          int64   `json:"id"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
	Note        string  `json:"note"`
}

// ExpensePatch carries the fields of a partial update. A nil field is
// left untouched, which also means a field cannot be explicitly cleared
// as distinct from "don't change it" — a documented limitation of the
// update contract.
type ExpensePatch struct {
	Date        *string  `json:"date"`
	Amount      *float64 `json:"amount"`
	Category    *string  `json:"category"`
	Subcategory *string  `json:"subcategory"`
	Note        *string  `json:"note"`
}

// Empty reports whether no field was supplied.
func (p ExpensePatch) Empty() bool {
	return p.Date == nil && p.Amount == nil && p.Category == nil &&
		p.Subcategory == nil && p.Note == nil
}

// CategorySummary is one row of a grouped amount aggregation.
type CategorySummary struct {
	Category    string  `json:"category"`
	TotalAmount float64 `json:"total_amount"`
}
