// Package persistence stores each collection as one JSON array file on disk,
// mirroring the flat-file layout the frontend data was created with.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"brothertrans/backend/internal/domain"
	"brothertrans/backend/internal/ports"
)

const (
	unitsFile        = "data-units.json"
	servicesFile     = "data-service.json"
	transactionsFile = "data-transactions.json"
	partsFile        = "data-parts.json"
)

// Store reads and writes whole collections from a data directory. Reads go to
// disk on every call; nothing is cached. A single RWMutex serializes whole
// load-mutate-save cycles so two requests cannot lose each other's writes.
type Store struct {
	dir       string
	mu        sync.RWMutex
	logger    *zap.Logger
	telemetry ports.Telemetry
}

func NewStore(dir string, logger *zap.Logger, telemetry ports.Telemetry) (*Store, error) {
	if dir == "" {
		dir = "./data"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if telemetry == nil {
		return nil, fmt.Errorf("new store: telemetry is nil")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %q: %w", dir, err)
	}
	return &Store{dir: dir, logger: logger, telemetry: telemetry}, nil
}

// loadCollection reads a whole collection file. A missing file is initialized
// to an empty array on disk; unreadable or malformed content degrades to an
// empty collection WITHOUT rewriting the file, so a corrupt collection can
// still be recovered by hand.
func loadCollection[T any](s *Store, name string) []T {
	content, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if writeErr := writeCollection(s, name, []T{}); writeErr != nil {
				s.logger.Warn("initialize collection failed",
					zap.String("collection", name), zap.Error(writeErr))
			}
			return []T{}
		}
		s.logger.Warn("read collection failed",
			zap.String("collection", name), zap.Error(err))
		return []T{}
	}
	if len(content) == 0 {
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(content, &records); err != nil {
		s.logger.Warn("malformed collection, treating as empty",
			zap.String("collection", name), zap.Error(err))
		s.telemetry.Record("store.malformed", map[string]string{"collection": name})
		return []T{}
	}
	if records == nil {
		records = []T{}
	}
	return records
}

// writeCollection rewrites a collection file in full, via a temp file and
// rename so a crashed write never leaves a half-written collection behind.
func writeCollection[T any](s *Store, name string, records []T) error {
	if records == nil {
		records = []T{}
	}
	body, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, body, 0o600); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

func (s *Store) ListUnits(_ context.Context) ([]domain.Unit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return loadCollection[domain.Unit](s, unitsFile), nil
}

func (s *Store) ListServices(_ context.Context) ([]domain.ServiceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return loadCollection[domain.ServiceRecord](s, servicesFile), nil
}

func (s *Store) ListTransactions(_ context.Context) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return loadCollection[domain.Transaction](s, transactionsFile), nil
}

func (s *Store) ListParts(_ context.Context) ([]domain.Part, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return loadCollection[domain.Part](s, partsFile), nil
}

func (s *Store) AppendServicePair(_ context.Context, record domain.ServiceRecord, txn domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	services := append(loadCollection[domain.ServiceRecord](s, servicesFile), record)
	transactions := append(loadCollection[domain.Transaction](s, transactionsFile), txn)

	if err := writeCollection(s, servicesFile, services); err != nil {
		return fmt.Errorf("persist services: %w", err)
	}
	// The services write is not rolled back if this fails; the caller fails
	// the request and the collections stay out of step until the next intake.
	if err := writeCollection(s, transactionsFile, transactions); err != nil {
		return fmt.Errorf("persist transactions: %w", err)
	}
	return nil
}

func (s *Store) AppendTransaction(_ context.Context, txn domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	transactions := append(loadCollection[domain.Transaction](s, transactionsFile), txn)
	if err := writeCollection(s, transactionsFile, transactions); err != nil {
		return fmt.Errorf("persist transactions: %w", err)
	}
	return nil
}

func (s *Store) DeductPartStock(_ context.Context, partID, quantity int64) (domain.Part, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	parts := loadCollection[domain.Part](s, partsFile)
	for idx := range parts {
		if parts[idx].ID != partID {
			continue
		}
		parts[idx].Stock -= quantity
		if err := writeCollection(s, partsFile, parts); err != nil {
			return domain.Part{}, false, fmt.Errorf("persist parts: %w", err)
		}
		return parts[idx], true, nil
	}
	return domain.Part{}, false, nil
}

func (s *Store) ExportDataset(_ context.Context) (domain.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.Dataset{
		Units:        loadCollection[domain.Unit](s, unitsFile),
		Services:     loadCollection[domain.ServiceRecord](s, servicesFile),
		Transactions: loadCollection[domain.Transaction](s, transactionsFile),
		Parts:        loadCollection[domain.Part](s, partsFile),
	}, nil
}

func (s *Store) ImportDataset(_ context.Context, dataset domain.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeCollection(s, unitsFile, dataset.Units); err != nil {
		return fmt.Errorf("persist units: %w", err)
	}
	if err := writeCollection(s, servicesFile, dataset.Services); err != nil {
		return fmt.Errorf("persist services: %w", err)
	}
	if err := writeCollection(s, transactionsFile, dataset.Transactions); err != nil {
		return fmt.Errorf("persist transactions: %w", err)
	}
	if err := writeCollection(s, partsFile, dataset.Parts); err != nil {
		return fmt.Errorf("persist parts: %w", err)
	}
	return nil
}
