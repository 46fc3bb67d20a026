package ports

import "go.trai.ch/assemble/internal/core/domain"

// PlanStore defines the interface for saving and retrieving plan snapshots.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type PlanStore interface {
	// Get retrieves the saved snapshot for mode under the project root.
	// Returns nil, nil if not found.
	Get(root string, mode domain.BuildMode) (*domain.PlanSnapshot, error)

	// Put stores the snapshot under the project root, replacing any previous one for its mode.
	Put(root string, snapshot domain.PlanSnapshot) error
}
