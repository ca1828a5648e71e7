// Package ports declares the interfaces between the bookkeeping core and its
// adapters.
package ports

import (
	"context"

	"brothertrans/backend/internal/domain"
)

// Telemetry records named events emitted by the core workflows.
type Telemetry interface {
	Record(name string, attributes map[string]string)
}

// ImportExport moves a whole-dataset snapshot in and out of the store.
type ImportExport interface {
	Import(ctx context.Context, raw []byte) error
	Export(ctx context.Context) ([]byte, error)
}

// Repository is the persistence surface of the core. Collections are whole
// ordered sequences; every mutation rewrites the full backing collection.
type Repository interface {
	ListUnits(ctx context.Context) ([]domain.Unit, error)
	ListServices(ctx context.Context) ([]domain.ServiceRecord, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	ListParts(ctx context.Context) ([]domain.Part, error)

	// AppendServicePair appends a service record and its derived transaction
	// and persists both collections, services first. There is no rollback of
	// the first write if the second fails.
	AppendServicePair(ctx context.Context, record domain.ServiceRecord, txn domain.Transaction) error

	AppendTransaction(ctx context.Context, txn domain.Transaction) error

	// DeductPartStock subtracts quantity from the part's stock and persists
	// the parts collection. An unknown part id is reported via the boolean,
	// not as an error, and leaves the collection untouched.
	DeductPartStock(ctx context.Context, partID, quantity int64) (domain.Part, bool, error)

	ExportDataset(ctx context.Context) (domain.Dataset, error)
	ImportDataset(ctx context.Context, dataset domain.Dataset) error
}
