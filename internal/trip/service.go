package trip

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/fkhayef/tripsplit/internal/breakdown"
	"github.com/fkhayef/tripsplit/internal/split"
)

// Common errors
var (
	ErrTripNotFound     = errors.New("trip not found")
	ErrParticipantIndex = errors.New("participant index out of range")
	ErrExpenseNotFound  = errors.New("expense not found")
	ErrNegativeNights   = errors.New("nights stayed cannot be negative")
)

// Service handles trip session business logic
type Service struct {
	repo      *Repository
	breakdown *breakdown.Service
}

// NewService creates a new trip service with dependencies injected
func NewService(repo *Repository, breakdownService *breakdown.Service) *Service {
	return &Service{
		repo:      repo,
		breakdown: breakdownService,
	}
}

// defaultParticipants are the rows a fresh session starts with
func defaultParticipants() []split.Participant {
	return []split.Participant{
		{Name: "Person1", NightsStayed: 2},
		{Name: "Person2", NightsStayed: 2},
	}
}

// defaultExpenses are the shared expenses a fresh session starts with
func defaultExpenses() map[string]float64 {
	return map[string]float64{"Groceries": 100}
}

// Create starts a new trip session seeded with the default rows
func (s *Service) Create(ctx context.Context) *Trip {
	now := time.Now()
	trip := &Trip{
		ID:           uuid.NewString(),
		TotalCost:    0,
		Participants: defaultParticipants(),
		Expenses:     defaultExpenses(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.repo.Create(trip)
	return trip.Clone()
}

// GetByID retrieves a trip session
func (s *Service) GetByID(ctx context.Context, id string) (*Trip, error) {
	trip := s.repo.GetByID(id)
	if trip == nil {
		return nil, ErrTripNotFound
	}
	return trip, nil
}

// SetTotalCost sets the total accommodation cost for the session
func (s *Service) SetTotalCost(ctx context.Context, id string, totalCost float64) (*Trip, error) {
	return s.repo.Update(id, func(t *Trip) error {
		t.TotalCost = totalCost
		return nil
	})
}

// AddParticipant appends a participant row, filling in PersonN / 1 night defaults
func (s *Service) AddParticipant(ctx context.Context, id string, req *AddParticipantRequest) (*Trip, error) {
	nights := 1
	if req.NightsStayed != nil {
		nights = *req.NightsStayed
	}
	if nights < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeNights, nights)
	}

	return s.repo.Update(id, func(t *Trip) error {
		name := req.Name
		if name == "" {
			name = fmt.Sprintf("Person%d", len(t.Participants)+1)
		}
		t.Participants = append(t.Participants, split.Participant{
			Name:         name,
			NightsStayed: nights,
		})
		return nil
	})
}

// UpdateParticipant edits the participant row at the given position
func (s *Service) UpdateParticipant(ctx context.Context, id string, index int, req *UpdateParticipantRequest) (*Trip, error) {
	if req.NightsStayed != nil && *req.NightsStayed < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeNights, *req.NightsStayed)
	}

	return s.repo.Update(id, func(t *Trip) error {
		if index < 0 || index >= len(t.Participants) {
			return fmt.Errorf("%w: %d", ErrParticipantIndex, index)
		}
		if req.Name != nil {
			t.Participants[index].Name = *req.Name
		}
		if req.NightsStayed != nil {
			t.Participants[index].NightsStayed = *req.NightsStayed
		}
		return nil
	})
}

// RemoveParticipant deletes the participant row at the given position
func (s *Service) RemoveParticipant(ctx context.Context, id string, index int) (*Trip, error) {
	return s.repo.Update(id, func(t *Trip) error {
		if index < 0 || index >= len(t.Participants) {
			return fmt.Errorf("%w: %d", ErrParticipantIndex, index)
		}
		t.Participants = append(t.Participants[:index], t.Participants[index+1:]...)
		return nil
	})
}

// AddExpense adds or overwrites a shared expense, filling in an ExpenseN label
func (s *Service) AddExpense(ctx context.Context, id string, req *AddExpenseRequest) (*Trip, error) {
	return s.repo.Update(id, func(t *Trip) error {
		label := req.Label
		if label == "" {
			label = fmt.Sprintf("Expense%d", len(t.Expenses)+1)
		}
		t.Expenses[label] = req.Amount
		return nil
	})
}

// RemoveExpense deletes a shared expense by label
func (s *Service) RemoveExpense(ctx context.Context, id string, label string) (*Trip, error) {
	return s.repo.Update(id, func(t *Trip) error {
		if _, ok := t.Expenses[label]; !ok {
			return fmt.Errorf("%w: %s", ErrExpenseNotFound, label)
		}
		delete(t.Expenses, label)
		return nil
	})
}

// Reset restores the session to its default rows and clears the total cost
func (s *Service) Reset(ctx context.Context, id string) (*Trip, error) {
	return s.repo.Update(id, func(t *Trip) error {
		t.TotalCost = 0
		t.Participants = defaultParticipants()
		t.Expenses = defaultExpenses()
		return nil
	})
}

// Compute runs the splitter over the session's current contents
func (s *Service) Compute(ctx context.Context, id string) ([]breakdown.Row, error) {
	trip, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req := &breakdown.ComputeRequest{
		TotalCost:          trip.TotalCost,
		Participants:       toParticipantInputs(trip.Participants),
		AdditionalExpenses: trip.Expenses,
	}
	return s.breakdown.Compute(ctx, req)
}

// ExportCSV computes the session's breakdown and writes it as delimited text
func (s *Service) ExportCSV(ctx context.Context, id string, w io.Writer) error {
	rows, err := s.Compute(ctx, id)
	if err != nil {
		return err
	}
	return s.breakdown.WriteCSV(w, rows)
}

// Delete discards a trip session
func (s *Service) Delete(ctx context.Context, id string) error {
	if !s.repo.Delete(id) {
		return ErrTripNotFound
	}
	return nil
}

func toParticipantInputs(participants []split.Participant) []breakdown.ParticipantInput {
	inputs := make([]breakdown.ParticipantInput, len(participants))
	for i, p := range participants {
		inputs[i] = breakdown.ParticipantInput{
			Name:         p.Name,
			NightsStayed: p.NightsStayed,
		}
	}
	return inputs
}
