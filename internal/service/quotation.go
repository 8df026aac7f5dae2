// internal/service/quotation.go

package service

import (
	"errors"
	"fmt"
	"strings"

	"solarhub/internal/db"
	"solarhub/internal/events"
	"solarhub/internal/load"
	"solarhub/internal/logger"
	"solarhub/internal/sizing"
	"solarhub/internal/types"

	"github.com/google/uuid"
)

// QuotationInput is what the installation wizard collects.
type QuotationInput struct {
	CustomerName string
	Phone        string
	Email        string
	Address      string
	City         string
	PropertyType string
	MonthlyBill  int64
	Inventory    load.Inventory
	Amount       *int64 // negotiated price; defaults to the estimated cost
	Status       types.QuotationStatus
	Notes        string
}

// referenceAttempts bounds retries when a generated reference is already taken.
const referenceAttempts = 3

type QuotationService struct {
	repo         db.IQuotationRepository
	bus          *events.EventBus
	newReference func() string
}

func NewQuotationService(repo db.IQuotationRepository, bus *events.EventBus) *QuotationService {
	return &QuotationService{repo: repo, bus: bus, newReference: newReference}
}

// Create sizes the inventory with the wizard strategy and stores the quotation.
func (s *QuotationService) Create(in QuotationInput) (*db.Quotation, error) {
	q := &db.Quotation{}
	if err := s.apply(q, in); err != nil {
		return nil, err
	}
	if q.Status == "" {
		q.Status = string(types.QuotationPending)
	}

	var err error
	for attempt := 1; attempt <= referenceAttempts; attempt++ {
		q.Reference = s.newReference()
		if err = s.repo.Create(q); !errors.Is(err, db.ErrDuplicate) {
			break
		}
		logger.Warn("Quotation reference %s already taken (attempt %d)", q.Reference, attempt)
		q.ID = 0
	}
	if err != nil {
		return nil, err
	}
	logger.Info("Quotation %s created for %s: %.0f kW, %d PKR", q.Reference, q.CustomerName, q.SystemSize, q.Amount)
	s.publish(events.EventQuotationCreated, q)
	return q, nil
}

// Update re-sizes an existing quotation from a fresh wizard submission.
// A negotiated amount survives when in.Amount is nil; an amount that was
// tracking the estimate follows the new estimate.
func (s *QuotationService) Update(id uint, in QuotationInput) (*db.Quotation, error) {
	q, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(q, in); err != nil {
		return nil, err
	}
	if err := s.repo.Update(q); err != nil {
		return nil, err
	}
	s.publish(events.EventQuotationUpdated, q)
	return q, nil
}

// SetStatus moves a quotation through review.
func (s *QuotationService) SetStatus(id uint, status types.QuotationStatus) (*db.Quotation, error) {
	if !validQuotationStatus(status) {
		verr := types.NewValidationError()
		verr.Add("status", fmt.Sprintf("unknown status %q", status))
		return nil, verr
	}
	q, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	q.Status = string(status)
	if err := s.repo.Update(q); err != nil {
		return nil, err
	}
	s.publish(events.EventQuotationUpdated, q)
	return q, nil
}

func (s *QuotationService) Get(id uint) (*db.Quotation, error) {
	return s.repo.GetByID(id)
}

func (s *QuotationService) List(filter db.QuotationFilter) ([]db.Quotation, int64, error) {
	return s.repo.List(filter)
}

func (s *QuotationService) Delete(id uint) error {
	q, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publish(events.EventQuotationDeleted, q)
	return nil
}

// apply validates in and copies it, with its wizard sizing, onto q.
func (s *QuotationService) apply(q *db.Quotation, in QuotationInput) error {
	verr := types.NewValidationError()
	if strings.TrimSpace(in.CustomerName) == "" {
		verr.Add("customerName", "customer name is required")
	}
	if in.Status != "" && !validQuotationStatus(in.Status) {
		verr.Add("status", fmt.Sprintf("unknown status %q", in.Status))
	}
	if in.Amount != nil && *in.Amount < 0 {
		verr.Add("amount", "amount cannot be negative")
	}

	total := load.Aggregate(in.Inventory)
	var lerr *types.ValidationError
	if err := load.Validate(total); errors.As(err, &lerr) {
		for field, msg := range lerr.Fields {
			verr.Add(field, msg)
		}
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	result := sizing.SizeForWizard(total.TotalWatts)
	negotiated := q.ID != 0 && q.Amount != q.EstimatedCost

	q.CustomerName = strings.TrimSpace(in.CustomerName)
	q.Phone = strings.TrimSpace(in.Phone)
	q.Email = strings.TrimSpace(in.Email)
	q.Address = strings.TrimSpace(in.Address)
	q.City = strings.TrimSpace(in.City)
	q.PropertyType = in.PropertyType
	q.MonthlyBill = in.MonthlyBill
	q.Notes = in.Notes

	q.Appliances = make(map[string]int, len(in.Inventory.Counts))
	for appliance, count := range in.Inventory.Counts {
		if count > 0 {
			q.Appliances[string(appliance)] = count
		}
	}
	q.OtherWatts = in.Inventory.OtherWatts
	q.OtherDescription = in.Inventory.OtherDescription
	q.TotalLoad = total.TotalWatts

	q.SystemSize = result.SystemSizeKW
	q.PanelsRequired = result.PanelsRequired
	q.InverterSize = result.InverterSizeKW
	q.BatteryCapacityCalc = result.BatteryCapacityKWh
	q.EstimatedCost = result.EstimatedCost
	switch {
	case in.Amount != nil:
		q.Amount = *in.Amount
	case !negotiated:
		q.Amount = result.EstimatedCost
	}
	if in.Status != "" {
		q.Status = string(in.Status)
	}
	return nil
}

func (s *QuotationService) publish(t events.EventType, q *db.Quotation) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(events.Event{
		Type:     t,
		RecordID: q.ID,
		Data: events.QuotationEventData{
			Reference:     q.Reference,
			CustomerName:  q.CustomerName,
			SystemSize:    q.SystemSize,
			EstimatedCost: q.EstimatedCost,
			Status:        q.Status,
		},
	})
}

func validQuotationStatus(s types.QuotationStatus) bool {
	switch s {
	case types.QuotationPending, types.QuotationApproved, types.QuotationRejected:
		return true
	}
	return false
}

func newReference() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "Q-" + strings.ToUpper(id[:8])
}
