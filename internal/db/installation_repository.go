// internal/db/installation_repository.go
package db

import (
	"fmt"

	"solarhub/internal/logger"

	"gorm.io/gorm"
)

// IInstallationRepository is the data access contract for installation orders.
type IInstallationRepository interface {
	Create(inst *Installation) error
	GetByID(id uint) (*Installation, error)
	List(status string) ([]Installation, error)
	Update(inst *Installation) error
	Delete(id uint) error
}

type InstallationRepository struct {
	db *gorm.DB
}

func NewInstallationRepository(db *gorm.DB) IInstallationRepository {
	return &InstallationRepository{db: db}
}

func (r *InstallationRepository) Create(inst *Installation) error {
	if err := r.db.Create(inst).Error; err != nil {
		logger.Error("Create installation failed - customer: %s, err: %v", inst.CustomerName, err)
		return fmt.Errorf("create installation: %w", err)
	}
	logger.Debug("Created installation %d - %d panels, total %d", inst.ID, inst.PanelQuantity, inst.TotalPrice)
	return nil
}

func (r *InstallationRepository) GetByID(id uint) (*Installation, error) {
	var inst Installation
	if err := r.db.First(&inst, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &inst, nil
}

func (r *InstallationRepository) List(status string) ([]Installation, error) {
	query := r.db.Model(&Installation{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var installations []Installation
	if err := query.Order("created_at DESC, id DESC").Find(&installations).Error; err != nil {
		return nil, fmt.Errorf("list installations: %w", err)
	}
	return installations, nil
}

func (r *InstallationRepository) Update(inst *Installation) error {
	if inst.ID == 0 {
		return fmt.Errorf("update installation: missing id")
	}
	result := r.db.Model(&Installation{}).Where("id = ?", inst.ID).Select("*").Omit("id", "created_at").Updates(inst)
	if result.Error != nil {
		return fmt.Errorf("update installation %d: %w", inst.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *InstallationRepository) Delete(id uint) error {
	result := r.db.Delete(&Installation{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete installation %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
