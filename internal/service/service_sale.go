package service

import (
	"context"
	"strings"

	"brothertrans/backend/internal/domain"
)

// WorkshopSale is the input for a point-of-sale transaction. SelectedPartID
// zero means labor only; PartQty at or below zero falls back to one.
type WorkshopSale struct {
	PlateNumber    string
	LaborFee       int64
	CustomAction   string
	SelectedPartID int64
	PartQty        int64
	Status         string
}

// RecordSale books an income transaction for labor plus an optional part line
// item. A matched part has its stock reduced and the parts collection is
// persisted before the transaction is appended; a part id that matches
// nothing silently degrades to a labor-only sale.
func (s *Service) RecordSale(ctx context.Context, input WorkshopSale) (domain.Transaction, error) {
	plate := domain.NormalizePlate(input.PlateNumber)
	total := input.LaborFee
	description := strings.TrimSpace(input.CustomAction)
	if description == "" {
		description = domain.DefaultSaleDescription
	}

	if input.SelectedPartID != 0 {
		quantity := input.PartQty
		if quantity <= 0 {
			quantity = 1
		}
		part, found, err := s.repo.DeductPartStock(ctx, input.SelectedPartID, quantity)
		if err != nil {
			return domain.Transaction{}, err
		}
		if found {
			total += part.Price * quantity
			description += " + " + part.Name
		}
	}

	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = domain.StatusPaid
	}

	txn := domain.Transaction{
		ID:          s.ids.Next(),
		Type:        domain.TransactionIncome,
		Amount:      total,
		Category:    domain.CategoryWorkshopSale,
		Description: description,
		PlateNumber: plate,
		Status:      status,
		Date:        s.now().Format(domain.DateLayout),
	}

	if err := s.repo.AppendTransaction(ctx, txn); err != nil {
		return domain.Transaction{}, err
	}

	s.telemetry.Record("sale.recorded", map[string]string{"plate": plate})
	return txn, nil
}
