package trip

import (
	"sync"
	"time"
)

// Repository holds trip sessions in memory. Sessions do not survive a process
// restart; durable storage is out of scope for a one-shot calculator.
type Repository struct {
	mu    sync.Mutex
	trips map[string]*Trip
}

// NewRepository creates a new in-memory trip repository
func NewRepository() *Repository {
	return &Repository{trips: make(map[string]*Trip)}
}

// Create stores a new trip session
func (r *Repository) Create(trip *Trip) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trips[trip.ID] = trip
}

// GetByID retrieves a trip by its ID, or nil if it doesn't exist
func (r *Repository) GetByID(id string) *Trip {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip, ok := r.trips[id]
	if !ok {
		return nil
	}
	return trip.Clone()
}

// Update applies fn to the stored trip under the store lock and returns the
// updated copy. Returns ErrTripNotFound if the session doesn't exist; any error
// from fn is passed through and leaves UpdatedAt untouched.
func (r *Repository) Update(id string, fn func(*Trip) error) (*Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip, ok := r.trips[id]
	if !ok {
		return nil, ErrTripNotFound
	}
	if err := fn(trip); err != nil {
		return nil, err
	}
	trip.UpdatedAt = time.Now()

	return trip.Clone(), nil
}

// Delete removes a trip session, reporting whether it existed
func (r *Repository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.trips[id]
	delete(r.trips, id)
	return ok
}
