package split

import "github.com/shopspring/decimal"

// Participant represents one person on the trip and how many nights they stayed.
// A participant with zero nights pays no accommodation share but still pays an
// equal share of the additional expenses.
type Participant struct {
	Name         string `json:"name"`
	NightsStayed int    `json:"nights_stayed"`
}

// AdditionalExpenses maps an expense label (e.g. "Groceries") to its amount.
// These are always split evenly across all participants, never pro-rated by nights.
type AdditionalExpenses map[string]float64

// Breakdown is the calculated result for a single participant.
// AccommodationShare and AdditionalShare are unrounded; rounding happens once,
// on TotalOwed.
type Breakdown struct {
	Name               string  `json:"name"`
	NightsStayed       int     `json:"nights_stayed"`
	AccommodationShare float64 `json:"accommodation_share"`
	AdditionalShare    float64 `json:"additional_share"`
	TotalOwed          float64 `json:"total_owed"`
}

// ComputeBreakdown distributes totalCost across participants proportionally to
// nights stayed, adds an even per-person share of the additional expenses, and
// returns one Breakdown per participant in input order.
//
// If no participant has a positive night count the accommodation cost is split
// equally instead. An empty participant list yields an empty result; no division
// happens. The function is pure and performs no input validation.
func ComputeBreakdown(totalCost float64, participants []Participant, additional AdditionalExpenses) []Breakdown {
	if len(participants) == 0 {
		return []Breakdown{}
	}

	totalNightUnits := 0
	for _, p := range participants {
		if p.NightsStayed > 0 {
			totalNightUnits += p.NightsStayed
		}
	}

	var totalAdditional float64
	for _, amount := range additional {
		totalAdditional += amount
	}
	perPersonAdditional := totalAdditional / float64(len(participants))

	results := make([]Breakdown, len(participants))
	for i, p := range participants {
		var accommodationShare float64
		if totalNightUnits == 0 {
			accommodationShare = totalCost / float64(len(participants))
		} else {
			accommodationShare = totalCost * (float64(p.NightsStayed) / float64(totalNightUnits))
		}

		results[i] = Breakdown{
			Name:               p.Name,
			NightsStayed:       p.NightsStayed,
			AccommodationShare: accommodationShare,
			AdditionalShare:    perPersonAdditional,
			TotalOwed:          RoundHalfUp(accommodationShare + perPersonAdditional),
		}
	}

	return results
}

// RoundHalfUp rounds value to 2 decimal places, with exact midpoints rounding
// away from zero (0.005 -> 0.01). The quantize goes through a decimal
// representation because naive binary floating-point rounding misrounds exact
// .005 boundaries.
func RoundHalfUp(value float64) float64 {
	rounded, _ := decimal.NewFromFloat(value).Round(2).Float64()
	return rounded
}
