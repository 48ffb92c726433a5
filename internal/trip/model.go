package trip

import (
	"time"

	"github.com/fkhayef/tripsplit/internal/split"
)

// Trip represents one in-progress expense-planning session: the total
// accommodation cost, the participant rows, and the shared expenses being
// edited before a compute. Sessions live in memory only.
type Trip struct {
	ID           string              `json:"id"`
	TotalCost    float64             `json:"total_cost"`
	Participants []split.Participant `json:"participants"`
	Expenses     map[string]float64  `json:"expenses"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// Clone returns a deep copy so callers can't mutate the stored session
func (t *Trip) Clone() *Trip {
	clone := *t
	clone.Participants = make([]split.Participant, len(t.Participants))
	copy(clone.Participants, t.Participants)
	clone.Expenses = make(map[string]float64, len(t.Expenses))
	for label, amount := range t.Expenses {
		clone.Expenses[label] = amount
	}
	return &clone
}
