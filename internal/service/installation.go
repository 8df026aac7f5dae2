// internal/service/installation.go

package service

import (
	"errors"
	"fmt"
	"strings"

	"solarhub/internal/db"
	"solarhub/internal/events"
	"solarhub/internal/logger"
	"solarhub/internal/pricing"
	"solarhub/internal/types"
)

// InstallationInput is what the new installation configurator submits.
type InstallationInput struct {
	QuotationID  *uint
	CustomerName string
	Phone        string
	Address      string
	City         string
	Components   pricing.Input
	Status       types.InstallationStatus
}

type InstallationService struct {
	repo          db.IInstallationRepository
	quotationRepo db.IQuotationRepository
	bus           *events.EventBus
}

func NewInstallationService(repo db.IInstallationRepository, quotationRepo db.IQuotationRepository, bus *events.EventBus) *InstallationService {
	return &InstallationService{repo: repo, quotationRepo: quotationRepo, bus: bus}
}

// Create prices the bundle and stores the order.
func (s *InstallationService) Create(in InstallationInput) (*db.Installation, error) {
	inst := &db.Installation{}
	if err := s.apply(inst, in); err != nil {
		return nil, err
	}
	if inst.Status == "" {
		inst.Status = string(types.InstallationRequested)
	}

	if err := s.repo.Create(inst); err != nil {
		return nil, err
	}
	logger.Info("Installation %d created for %s: %d PKR", inst.ID, inst.CustomerName, inst.TotalPrice)
	s.publish(events.EventInstallationCreated, inst)
	return inst, nil
}

// Update re-prices an existing order.
func (s *InstallationService) Update(id uint, in InstallationInput) (*db.Installation, error) {
	inst, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(inst, in); err != nil {
		return nil, err
	}
	if err := s.repo.Update(inst); err != nil {
		return nil, err
	}
	s.publish(events.EventInstallationUpdated, inst)
	return inst, nil
}

func (s *InstallationService) Get(id uint) (*db.Installation, error) {
	return s.repo.GetByID(id)
}

func (s *InstallationService) List(status string) ([]db.Installation, error) {
	return s.repo.List(status)
}

func (s *InstallationService) Delete(id uint) error {
	inst, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publish(events.EventInstallationDeleted, inst)
	return nil
}

func (s *InstallationService) apply(inst *db.Installation, in InstallationInput) error {
	verr := types.NewValidationError()
	if strings.TrimSpace(in.CustomerName) == "" {
		verr.Add("customerName", "customer name is required")
	}
	if in.Status != "" && !validInstallationStatus(in.Status) {
		verr.Add("status", fmt.Sprintf("unknown status %q", in.Status))
	}
	if in.QuotationID != nil && s.quotationRepo != nil {
		if _, err := s.quotationRepo.GetByID(*in.QuotationID); err != nil {
			if !errors.Is(err, db.ErrNotFound) {
				return err
			}
			verr.Add("quotationId", fmt.Sprintf("quotation %d does not exist", *in.QuotationID))
		}
	}

	price, err := pricing.Price(in.Components)
	var perr *types.ValidationError
	if errors.As(err, &perr) {
		for field, msg := range perr.Fields {
			verr.Add(field, msg)
		}
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	c := in.Components
	inst.QuotationID = in.QuotationID
	inst.CustomerName = strings.TrimSpace(in.CustomerName)
	inst.Phone = strings.TrimSpace(in.Phone)
	inst.Address = strings.TrimSpace(in.Address)
	inst.City = strings.TrimSpace(in.City)

	inst.PanelQuantity = c.PanelQuantity
	inst.StandType = string(c.StandType)
	inst.StandLevel = c.StandLevel
	inst.InverterCompany = c.InverterCompany
	inst.InverterCapacity = c.InverterCapacity
	inst.InverterCategory = c.InverterCategory
	inst.InverterModel = c.InverterModel
	inst.BatteryType = string(c.BatteryType)

	inst.StandLabel = price.StandLabel
	inst.StandPrice = price.StandPrice
	inst.InverterPrice = price.InverterPrice
	inst.BatteryPrice = price.BatteryPrice
	inst.TotalPrice = price.TotalPrice
	inst.Amount = price.TotalPrice
	if in.Status != "" {
		inst.Status = string(in.Status)
	}
	return nil
}

func (s *InstallationService) publish(t events.EventType, inst *db.Installation) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(events.Event{
		Type:     t,
		RecordID: inst.ID,
		Data: events.InstallationEventData{
			CustomerName: inst.CustomerName,
			TotalPrice:   inst.TotalPrice,
			Status:       inst.Status,
		},
	})
}

func validInstallationStatus(s types.InstallationStatus) bool {
	switch s {
	case types.InstallationRequested, types.InstallationScheduled, types.InstallationCompleted:
		return true
	}
	return false
}
