// Package impexp serializes whole-dataset snapshots for backup and restore.
package impexp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"brothertrans/backend/internal/domain"
	"brothertrans/backend/internal/ports"
)

// Snapshot exports every collection as one JSON document and restores from
// the same shape. A restore rewrites all four collections; records are taken
// as-is, ids included.
type Snapshot struct {
	repo ports.Repository
}

var _ ports.ImportExport = (*Snapshot)(nil)

func NewSnapshot(repo ports.Repository) (*Snapshot, error) {
	if repo == nil {
		return nil, fmt.Errorf("new snapshot: repository is nil")
	}
	return &Snapshot{repo: repo}, nil
}

func (s *Snapshot) Export(ctx context.Context) ([]byte, error) {
	dataset, err := s.repo.ExportDataset(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(dataset, "", "  ")
}

func (s *Snapshot) Import(ctx context.Context, raw []byte) error {
	var dataset domain.Dataset
	if err := json.Unmarshal(raw, &dataset); err != nil {
		return errors.Join(domain.ErrValidation, fmt.Errorf("decode snapshot: %w", err))
	}
	return s.repo.ImportDataset(ctx, dataset)
}
