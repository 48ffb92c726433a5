package breakdown

import "github.com/fkhayef/tripsplit/internal/split"

// ParticipantInput is one participant row in a compute request
type ParticipantInput struct {
	Name         string `json:"name" validate:"required"`
	NightsStayed int    `json:"nights_stayed" validate:"gte=0"`
}

// ComputeRequest represents the request to compute an expense breakdown
type ComputeRequest struct {
	TotalCost          float64            `json:"total_cost"`
	Participants       []ParticipantInput `json:"participants"`
	AdditionalExpenses map[string]float64 `json:"additional_expenses"`
}

// Row is the response for a single participant's breakdown, carrying both the
// raw values and the display-formatted currency strings
type Row struct {
	Name                      string  `json:"name"`
	NightsStayed              int     `json:"nights_stayed"`
	AccommodationShare        float64 `json:"accommodation_share"`
	AdditionalShare           float64 `json:"additional_share"`
	TotalOwed                 float64 `json:"total_owed"`
	AccommodationShareDisplay string  `json:"accommodation_share_display"`
	AdditionalShareDisplay    string  `json:"additional_share_display"`
	TotalOwedDisplay          string  `json:"total_owed_display"`
}

// ToSplitInput converts the request participants to the split package's input type
func (r *ComputeRequest) ToSplitInput() []split.Participant {
	participants := make([]split.Participant, len(r.Participants))
	for i, p := range r.Participants {
		participants[i] = split.Participant{
			Name:         p.Name,
			NightsStayed: p.NightsStayed,
		}
	}
	return participants
}
