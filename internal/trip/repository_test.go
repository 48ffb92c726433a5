package trip

import (
	"errors"
	"testing"
	"time"

	"github.com/fkhayef/tripsplit/internal/split"
)

func seedTrip() *Trip {
	now := time.Now()
	return &Trip{
		ID:           "t1",
		Participants: []split.Participant{{Name: "A", NightsStayed: 1}},
		Expenses:     map[string]float64{"Groceries": 100},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestRepositoryGetReturnsCopy(t *testing.T) {
	repo := NewRepository()
	repo.Create(seedTrip())

	got := repo.GetByID("t1")
	got.Participants[0].Name = "mutated"
	got.Expenses["Groceries"] = 0

	fresh := repo.GetByID("t1")
	if fresh.Participants[0].Name != "A" {
		t.Errorf("stored participant mutated through returned copy: %+v", fresh.Participants[0])
	}
	if fresh.Expenses["Groceries"] != 100 {
		t.Errorf("stored expenses mutated through returned copy: %v", fresh.Expenses)
	}
}

func TestRepositoryUpdate(t *testing.T) {
	repo := NewRepository()
	trip := seedTrip()
	repo.Create(trip)
	before := trip.UpdatedAt

	updated, err := repo.Update("t1", func(tr *Trip) error {
		tr.TotalCost = 42
		return nil
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.TotalCost != 42 {
		t.Errorf("total cost = %v, want 42", updated.TotalCost)
	}
	if !updated.UpdatedAt.After(before) && !updated.UpdatedAt.Equal(before) {
		t.Errorf("UpdatedAt went backwards: %v -> %v", before, updated.UpdatedAt)
	}

	failure := errors.New("boom")
	if _, err := repo.Update("t1", func(tr *Trip) error { return failure }); !errors.Is(err, failure) {
		t.Errorf("got err = %v, want passthrough failure", err)
	}
	if _, err := repo.Update("missing", func(tr *Trip) error { return nil }); !errors.Is(err, ErrTripNotFound) {
		t.Errorf("got err = %v, want ErrTripNotFound", err)
	}
}
