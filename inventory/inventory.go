// Package inventory defines the vehicle record shape and the storage
// collaborator contract the search pipeline depends on. The core only ever
// reads inventory; any backend able to return price-ordered records matching
// a Filter satisfies the contract (in-memory slice, SQLite, a property
// graph behind an adapter).
package inventory

import (
	"context"
	"errors"
)

// ErrUnavailable signals an infrastructure failure (timeout, connection
// loss) as opposed to an empty result set. The search orchestrator turns it
// into a degraded "temporarily unavailable" reply instead of propagating it.
var ErrUnavailable = errors.New("inventory store unavailable")

// Vehicle is one inventory record. Owned by the storage collaborator and
// read-only to the assistant core.
type Vehicle struct {
	ID          string   `json:"id"`
	Make        string   `json:"make"`
	Model       string   `json:"model"`
	Year        int      `json:"year"`
	Price       float64  `json:"price"`
	Features    []string `json:"features"`
	Stock       int      `json:"stock"`
	Image       string   `json:"image,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Store fetches vehicles matching a filter, ordered by price ascending,
// up to limit records. Implementations must return ErrUnavailable (possibly
// wrapped) for infrastructure failures so callers can distinguish "store
// down" from "no matches".
type Store interface {
	FetchVehicles(ctx context.Context, f Filter, limit int) ([]Vehicle, error)
}
