package service

import (
	"context"
	"errors"
	"fmt"

	"brothertrans/backend/internal/domain"
)

// ServiceIntake is the input for recording a workshop visit. Numeric fields
// are already parsed; non-numeric form input is rejected at the HTTP edge.
type ServiceIntake struct {
	PlateNumber  string
	Mileage      int64
	ServiceDate  string
	WorkshopName string
	Cost         int64
	Description  string
}

// RecordService stores a service record together with exactly one derived
// transaction. The transaction is an expense when the plate resolves to an
// owned unit (category BROTHER) and workshop income otherwise, including when
// the plate resolves to nothing at all.
func (s *Service) RecordService(ctx context.Context, input ServiceIntake) (domain.ServiceRecord, domain.Transaction, error) {
	plate := domain.NormalizePlate(input.PlateNumber)
	if plate == "" {
		return domain.ServiceRecord{}, domain.Transaction{}, errors.Join(domain.ErrValidation, fmt.Errorf("plate number is required"))
	}

	units, err := s.repo.ListUnits(ctx)
	if err != nil {
		return domain.ServiceRecord{}, domain.Transaction{}, err
	}
	isExpense := domain.IsExpenseFor(findUnit(units, plate))

	transactionType := domain.TransactionIncome
	category := domain.CategoryWorkshopSale
	if isExpense {
		transactionType = domain.TransactionExpense
		category = domain.CategoryMaintenance
	}

	serviceID, transactionID := s.ids.Pair()
	record := domain.ServiceRecord{
		ID:           serviceID,
		PlateNumber:  plate,
		Mileage:      input.Mileage,
		ServiceDate:  input.ServiceDate,
		WorkshopName: input.WorkshopName,
		Cost:         input.Cost,
		Description:  input.Description,
	}
	txn := domain.Transaction{
		ID:          transactionID,
		Type:        transactionType,
		Amount:      input.Cost,
		Category:    category,
		Description: "Servis: " + input.WorkshopName,
		PlateNumber: plate,
		Status:      domain.StatusPaid,
		RelatedID:   serviceID,
		Date:        input.ServiceDate,
	}

	if err := s.repo.AppendServicePair(ctx, record, txn); err != nil {
		return domain.ServiceRecord{}, domain.Transaction{}, err
	}

	s.telemetry.Record("service.recorded", map[string]string{"plate": plate, "type": txn.Type})
	return record, txn, nil
}
