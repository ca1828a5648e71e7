package service

import (
	"context"
	"errors"
	"fmt"

	"brothertrans/backend/internal/domain"
)

func (s *Service) ListUnits(ctx context.Context) ([]domain.Unit, error) {
	return s.repo.ListUnits(ctx)
}

func (s *Service) ListServices(ctx context.Context) ([]domain.ServiceRecord, error) {
	return s.repo.ListServices(ctx)
}

func (s *Service) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return s.repo.ListTransactions(ctx)
}

func (s *Service) ListParts(ctx context.Context) ([]domain.Part, error) {
	return s.repo.ListParts(ctx)
}

// UnitDetail resolves a plate to its unit plus every service and transaction
// referencing it, in collection order. Plate matching is case-insensitive and
// trimmed; records without a plate are skipped.
func (s *Service) UnitDetail(ctx context.Context, plate string) (domain.UnitDetail, error) {
	normalized := domain.NormalizePlate(plate)
	if normalized == "" {
		return domain.UnitDetail{}, errors.Join(domain.ErrValidation, fmt.Errorf("plate is required"))
	}

	units, err := s.repo.ListUnits(ctx)
	if err != nil {
		return domain.UnitDetail{}, err
	}
	unit := findUnit(units, normalized)
	if unit == nil {
		return domain.UnitDetail{}, domain.ErrNotFound
	}

	services, err := s.repo.ListServices(ctx)
	if err != nil {
		return domain.UnitDetail{}, err
	}
	transactions, err := s.repo.ListTransactions(ctx)
	if err != nil {
		return domain.UnitDetail{}, err
	}

	detail := domain.UnitDetail{
		Unit:         *unit,
		Services:     make([]domain.ServiceRecord, 0, len(services)),
		Transactions: make([]domain.Transaction, 0, len(transactions)),
	}
	for _, record := range services {
		if record.PlateNumber != "" && domain.NormalizePlate(record.PlateNumber) == normalized {
			detail.Services = append(detail.Services, record)
		}
	}
	for _, txn := range transactions {
		if txn.PlateNumber != "" && domain.NormalizePlate(txn.PlateNumber) == normalized {
			detail.Transactions = append(detail.Transactions, txn)
		}
	}
	return detail, nil
}

// findUnit returns the first unit whose normalized plate matches. Duplicate
// plates are not rejected at write time, so first match wins.
func findUnit(units []domain.Unit, normalizedPlate string) *domain.Unit {
	for idx := range units {
		if domain.NormalizePlate(units[idx].Plate) == normalizedPlate {
			return &units[idx]
		}
	}
	return nil
}
