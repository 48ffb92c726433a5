package trip

// SetCostRequest represents the request to set the total accommodation cost
type SetCostRequest struct {
	TotalCost float64 `json:"total_cost"`
}

// AddParticipantRequest represents the request to add a participant.
// Both fields are optional; a blank name becomes PersonN and omitted nights
// default to 1, matching the add-row behavior of the input form.
type AddParticipantRequest struct {
	Name         string `json:"name,omitempty"`
	NightsStayed *int   `json:"nights_stayed,omitempty"`
}

// UpdateParticipantRequest represents the request to edit a participant row
type UpdateParticipantRequest struct {
	Name         *string `json:"name,omitempty"`
	NightsStayed *int    `json:"nights_stayed,omitempty"`
}

// AddExpenseRequest represents the request to add or overwrite a shared expense.
// A blank label becomes ExpenseN.
type AddExpenseRequest struct {
	Label  string  `json:"label,omitempty"`
	Amount float64 `json:"amount"`
}
