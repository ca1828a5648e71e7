package persistence

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"brothertrans/backend/internal/adapters/telemetry"
	"brothertrans/backend/internal/domain"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewStore(dir, nil, telemetry.NewNoopTelemetry())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store, dir
}

func TestLoadAbsentCollectionCreatesEmptyFile(t *testing.T) {
	store, dir := newTestStore(t)

	units, err := store.ListUnits(context.Background())
	if err != nil {
		t.Fatalf("list units: %v", err)
	}
	if len(units) != 0 {
		t.Fatalf("expected empty collection, got %d records", len(units))
	}

	content, err := os.ReadFile(filepath.Join(dir, unitsFile))
	if err != nil {
		t.Fatalf("expected backing file to exist after first load: %v", err)
	}
	var decoded []domain.Unit
	if err := json.Unmarshal(content, &decoded); err != nil {
		t.Fatalf("created file does not decode as a collection: %v", err)
	}
	if len(decoded) != 0 {
		t.Fatalf("expected created file to decode as empty, got %d records", len(decoded))
	}
}

func TestLoadMalformedCollectionLeavesFileUntouched(t *testing.T) {
	store, dir := newTestStore(t)
	corrupt := []byte("{this is not a JSON array")
	path := filepath.Join(dir, partsFile)
	if err := os.WriteFile(path, corrupt, 0o600); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	parts, err := store.ListParts(context.Background())
	if err != nil {
		t.Fatalf("list parts: %v", err)
	}
	if len(parts) != 0 {
		t.Fatalf("expected malformed collection to read as empty, got %d records", len(parts))
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("re-read corrupt file: %v", err)
	}
	if string(after) != string(corrupt) {
		t.Fatalf("malformed file was rewritten: %q", after)
	}
}

func TestAppendServicePairPersistsBothCollectionsInOrder(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first := domain.ServiceRecord{ID: 100, PlateNumber: "B 1 A", WorkshopName: "Acme", Cost: 1000}
	firstTxn := domain.Transaction{ID: 101, Type: domain.TransactionIncome, Amount: 1000, RelatedID: 100}
	if err := store.AppendServicePair(ctx, first, firstTxn); err != nil {
		t.Fatalf("append first pair: %v", err)
	}

	second := domain.ServiceRecord{ID: 200, PlateNumber: "B 2 B", WorkshopName: "Acme", Cost: 2000}
	secondTxn := domain.Transaction{ID: 201, Type: domain.TransactionExpense, Amount: 2000, RelatedID: 200}
	if err := store.AppendServicePair(ctx, second, secondTxn); err != nil {
		t.Fatalf("append second pair: %v", err)
	}

	services, err := store.ListServices(ctx)
	if err != nil {
		t.Fatalf("list services: %v", err)
	}
	if len(services) != 2 || services[0].ID != 100 || services[1].ID != 200 {
		t.Fatalf("services out of order: %+v", services)
	}

	transactions, err := store.ListTransactions(ctx)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(transactions) != 2 || transactions[0].ID != 101 || transactions[1].ID != 201 {
		t.Fatalf("transactions out of order: %+v", transactions)
	}
}

func TestDeductPartStock(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	seed := domain.Dataset{
		Parts: []domain.Part{
			{ID: 1, Name: "Oil Filter", Price: 5000, Stock: 10},
			{ID: 2, Name: "Brake Pad", Price: 9000, Stock: 4},
		},
	}
	if err := store.ImportDataset(ctx, seed); err != nil {
		t.Fatalf("seed parts: %v", err)
	}

	part, found, err := store.DeductPartStock(ctx, 1, 2)
	if err != nil {
		t.Fatalf("deduct stock: %v", err)
	}
	if !found {
		t.Fatal("expected part 1 to be found")
	}
	if part.Stock != 8 {
		t.Fatalf("expected stock 8 after deduction, got %d", part.Stock)
	}

	_, found, err = store.DeductPartStock(ctx, 999, 1)
	if err != nil {
		t.Fatalf("deduct missing part: %v", err)
	}
	if found {
		t.Fatal("expected unknown part id to report not found")
	}

	parts, err := store.ListParts(ctx)
	if err != nil {
		t.Fatalf("list parts: %v", err)
	}
	if parts[0].Stock != 8 || parts[1].Stock != 4 {
		t.Fatalf("unexpected stocks after deductions: %+v", parts)
	}
}

func TestDeductPartStockCanGoNegative(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.ImportDataset(ctx, domain.Dataset{Parts: []domain.Part{{ID: 7, Name: "Belt", Price: 100, Stock: 1}}}); err != nil {
		t.Fatalf("seed parts: %v", err)
	}

	part, found, err := store.DeductPartStock(ctx, 7, 5)
	if err != nil || !found {
		t.Fatalf("deduct stock: found=%v err=%v", found, err)
	}
	if part.Stock != -4 {
		t.Fatalf("expected oversold stock -4, got %d", part.Stock)
	}
}

func TestDatasetRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	seed := domain.Dataset{
		Units:        []domain.Unit{{Plate: "B 1 A", Category: domain.CategoryBrother}},
		Services:     []domain.ServiceRecord{{ID: 1, PlateNumber: "B 1 A", Cost: 50}},
		Transactions: []domain.Transaction{{ID: 2, Type: domain.TransactionExpense, Amount: 50, RelatedID: 1}},
		Parts:        []domain.Part{{ID: 3, Name: "Hose", Price: 10, Stock: 3}},
	}
	if err := store.ImportDataset(ctx, seed); err != nil {
		t.Fatalf("import dataset: %v", err)
	}

	exported, err := store.ExportDataset(ctx)
	if err != nil {
		t.Fatalf("export dataset: %v", err)
	}
	if len(exported.Units) != 1 || exported.Units[0].Plate != "B 1 A" {
		t.Fatalf("unexpected units: %+v", exported.Units)
	}
	if len(exported.Services) != 1 || exported.Services[0].ID != 1 {
		t.Fatalf("unexpected services: %+v", exported.Services)
	}
	if len(exported.Transactions) != 1 || exported.Transactions[0].RelatedID != 1 {
		t.Fatalf("unexpected transactions: %+v", exported.Transactions)
	}
	if len(exported.Parts) != 1 || exported.Parts[0].Stock != 3 {
		t.Fatalf("unexpected parts: %+v", exported.Parts)
	}
}
