// internal/db/quotation_repository.go
package db

import (
	"fmt"
	"time"

	"solarhub/internal/logger"

	"gorm.io/gorm"
)

// QuotationFilter narrows List results. Zero values are ignored.
type QuotationFilter struct {
	Status string
	Search string // customer name, phone or reference
	Limit  int
	Offset int
}

// IQuotationRepository is the data access contract for quotations.
type IQuotationRepository interface {
	Create(q *Quotation) error
	GetByID(id uint) (*Quotation, error)
	GetByReference(ref string) (*Quotation, error)
	List(filter QuotationFilter) ([]Quotation, int64, error)
	ListBetween(start, end time.Time) ([]Quotation, error)
	Update(q *Quotation) error
	Delete(id uint) error
}

type QuotationRepository struct {
	db *gorm.DB
}

func NewQuotationRepository(db *gorm.DB) IQuotationRepository {
	return &QuotationRepository{db: db}
}

func (r *QuotationRepository) Create(q *Quotation) error {
	if err := r.db.Create(q).Error; err != nil {
		logger.Error("Create quotation failed - ref: %s, err: %v", q.Reference, err)
		return fmt.Errorf("create quotation: %w", wrapDuplicate(err))
	}
	logger.Debug("Created quotation %d (%s) - %.0f kW, cost %d", q.ID, q.Reference, q.SystemSize, q.EstimatedCost)
	return nil
}

func (r *QuotationRepository) GetByID(id uint) (*Quotation, error) {
	var q Quotation
	if err := r.db.First(&q, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &q, nil
}

func (r *QuotationRepository) GetByReference(ref string) (*Quotation, error) {
	var q Quotation
	if err := r.db.Where("reference = ?", ref).First(&q).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &q, nil
}

// List returns a page of quotations, newest first, and the total matching count.
func (r *QuotationRepository) List(filter QuotationFilter) ([]Quotation, int64, error) {
	query := r.db.Model(&Quotation{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("customer_name LIKE ? OR phone LIKE ? OR reference LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count quotations: %w", err)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var quotations []Quotation
	if err := query.Order("created_at DESC, id DESC").Find(&quotations).Error; err != nil {
		return nil, 0, fmt.Errorf("list quotations: %w", err)
	}
	return quotations, total, nil
}

// ListBetween returns quotations created in [start, end).
func (r *QuotationRepository) ListBetween(start, end time.Time) ([]Quotation, error) {
	var quotations []Quotation
	err := r.db.Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at ASC").
		Find(&quotations).Error
	if err != nil {
		logger.Error("List quotations between %s and %s failed: %v",
			start.Format("2006-01-02 15:04:05"), end.Format("2006-01-02 15:04:05"), err)
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	return quotations, nil
}

func (r *QuotationRepository) Update(q *Quotation) error {
	if q.ID == 0 {
		return fmt.Errorf("update quotation: missing id")
	}
	result := r.db.Model(&Quotation{}).Where("id = ?", q.ID).Select("*").Omit("id", "reference", "created_at").Updates(q)
	if result.Error != nil {
		return fmt.Errorf("update quotation %d: %w", q.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *QuotationRepository) Delete(id uint) error {
	result := r.db.Delete(&Quotation{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete quotation %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	logger.Debug("Deleted quotation %d", id)
	return nil
}
