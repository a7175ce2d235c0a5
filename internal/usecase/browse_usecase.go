package usecase

import (
	"context"
	"time"

	"directorio/internal/domain/entity"
	"directorio/internal/domain/filter"

	"github.com/google/uuid"
)

// BrowseStatus is the state of the latest fetch of a session.
type BrowseStatus string

const (
	BrowseStatusLoading BrowseStatus = "loading"
	BrowseStatusReady   BrowseStatus = "ready"
	BrowseStatusFailed  BrowseStatus = "failed"
)

// BrowseError describes a failed fetch. The client retries with Refresh.
type BrowseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// BrowseSnapshot is a consistent copy of a session.
type BrowseSnapshot struct {
	SessionID      uuid.UUID          `json:"session_id"`
	Generation     uint64             `json:"generation"`
	Status         BrowseStatus       `json:"status"`
	Active         filter.State       `json:"active"`
	Staged         filter.State       `json:"staged"`
	Items          []*entity.Business `json:"items"`
	HasMore        bool               `json:"has_more"`
	Flags          filter.Flags       `json:"flags"`
	Error          *BrowseError       `json:"error,omitempty"`
	Favorites      []uuid.UUID        `json:"favorites"`
	RecentlyViewed []uuid.UUID        `json:"recently_viewed"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// BrowseUsecase keeps per-client filter state and business lists.
// Every commit of the active filter starts a fetch; a newer fetch supersedes older ones.
type BrowseUsecase interface {
	// Open creates a session and starts its first fetch
	Open(ctx context.Context, initial filter.State) (*BrowseSnapshot, error)

	// Snapshot returns the current state without waiting
	Snapshot(id uuid.UUID) (*BrowseSnapshot, error)

	// Await blocks until no fetch is in flight or ctx is done
	Await(ctx context.Context, id uuid.UUID) (*BrowseSnapshot, error)

	SetFilter(id uuid.UUID, patch filter.Patch) (*BrowseSnapshot, error)
	ClearFilters(id uuid.UUID) (*BrowseSnapshot, error)

	// StageFilter changes only the draft; results are untouched
	StageFilter(id uuid.UUID, patch filter.Patch) (*BrowseSnapshot, error)
	ApplyStaged(id uuid.UUID) (*BrowseSnapshot, error)
	DiscardStaged(id uuid.UUID) (*BrowseSnapshot, error)

	// Refresh re-issues the query of the active filter
	Refresh(id uuid.UUID) (*BrowseSnapshot, error)

	// LoadMore appends the next page
	LoadMore(id uuid.UUID) (*BrowseSnapshot, error)

	// ToggleFavorite reports whether the business is a favorite afterwards
	ToggleFavorite(id, businessID uuid.UUID) (bool, error)

	// View returns a business and records it as recently viewed
	View(ctx context.Context, id, businessID uuid.UUID) (*entity.Business, error)

	Close(id uuid.UUID) error

	// EvictIdle closes sessions untouched since before cutoff and returns how many were closed
	EvictIdle(cutoff time.Time) int
}
