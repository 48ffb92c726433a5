package breakdown

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/fkhayef/tripsplit/internal/split"
	"github.com/fkhayef/tripsplit/pkg/currency"
)

// Common errors
var (
	ErrNegativeNights = errors.New("nights stayed cannot be negative")
)

// CSVHeader is the column layout of the exported breakdown file. Downstream
// consumers parse these exact names; do not reorder.
var CSVHeader = []string{"Participant", "Nights Stayed", "Accommodation Share", "Additional Share", "Total Owed"}

// CSVFilename is the suggested filename for the exported breakdown
const CSVFilename = "trip_expense_breakdown.csv"

// Service handles breakdown computation and export
type Service struct {
	currencySymbol string
}

// NewService creates a new breakdown service
func NewService(currencySymbol string) *Service {
	return &Service{currencySymbol: currencySymbol}
}

// Compute validates the request and runs the splitter over it.
// Monetary amounts are passed through unvalidated; negative costs or expenses
// reduce the pool algebraically. Only negative night counts are rejected, since
// the input form never produces them.
func (s *Service) Compute(ctx context.Context, req *ComputeRequest) ([]Row, error) {
	for _, p := range req.Participants {
		if p.NightsStayed < 0 {
			return nil, fmt.Errorf("%w: %s has %d nights", ErrNegativeNights, p.Name, p.NightsStayed)
		}
	}

	results := split.ComputeBreakdown(req.TotalCost, req.ToSplitInput(), req.AdditionalExpenses)
	return s.toRows(results), nil
}

// WriteCSV writes breakdown rows as delimited text with currency-formatted columns
func (s *Service) WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Name,
			strconv.Itoa(row.NightsStayed),
			row.AccommodationShareDisplay,
			row.AdditionalShareDisplay,
			row.TotalOwedDisplay,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// toRows attaches display formatting to the splitter's raw output
func (s *Service) toRows(results []split.Breakdown) []Row {
	rows := make([]Row, len(results))
	for i, r := range results {
		rows[i] = Row{
			Name:                      r.Name,
			NightsStayed:              r.NightsStayed,
			AccommodationShare:        r.AccommodationShare,
			AdditionalShare:           r.AdditionalShare,
			TotalOwed:                 r.TotalOwed,
			AccommodationShareDisplay: currency.Format(s.currencySymbol, r.AccommodationShare),
			AdditionalShareDisplay:    currency.Format(s.currencySymbol, r.AdditionalShare),
			TotalOwedDisplay:          currency.Format(s.currencySymbol, r.TotalOwed),
		}
	}
	return rows
}
