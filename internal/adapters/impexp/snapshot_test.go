package impexp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"brothertrans/backend/internal/adapters/persistence"
	"brothertrans/backend/internal/adapters/telemetry"
	"brothertrans/backend/internal/domain"
)

func newTestSnapshot(t *testing.T) *Snapshot {
	t.Helper()
	store, err := persistence.NewStore(t.TempDir(), nil, telemetry.NewNoopTelemetry())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	snapshot, err := NewSnapshot(store)
	if err != nil {
		t.Fatalf("new snapshot: %v", err)
	}
	return snapshot
}

func TestSnapshotRoundTrip(t *testing.T) {
	snapshot := newTestSnapshot(t)
	ctx := context.Background()

	seed := domain.Dataset{
		Units: []domain.Unit{{Plate: "B 9 XX", Category: "CUSTOMER"}},
		Parts: []domain.Part{{ID: 5, Name: "Spark Plug", Price: 250, Stock: 12}},
	}
	raw, err := json.Marshal(seed)
	if err != nil {
		t.Fatalf("marshal seed: %v", err)
	}
	if err := snapshot.Import(ctx, raw); err != nil {
		t.Fatalf("import: %v", err)
	}

	exported, err := snapshot.Export(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	var dataset domain.Dataset
	if err := json.Unmarshal(exported, &dataset); err != nil {
		t.Fatalf("unmarshal export: %v", err)
	}
	if len(dataset.Units) != 1 || dataset.Units[0].Plate != "B 9 XX" {
		t.Fatalf("unexpected units: %+v", dataset.Units)
	}
	if len(dataset.Parts) != 1 || dataset.Parts[0].Stock != 12 {
		t.Fatalf("unexpected parts: %+v", dataset.Parts)
	}
	if len(dataset.Services) != 0 || len(dataset.Transactions) != 0 {
		t.Fatalf("expected empty services and transactions, got %+v", dataset)
	}
}

func TestSnapshotImportRejectsMalformedInput(t *testing.T) {
	snapshot := newTestSnapshot(t)

	err := snapshot.Import(context.Background(), []byte("not json"))
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
