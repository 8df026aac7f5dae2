package db

import "time"

// Quotation is a sized quote produced by the installation wizard.
type Quotation struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"type:varchar(32);uniqueIndex" json:"reference"`

	CustomerName string `gorm:"type:varchar(255)" json:"customerName"`
	Phone        string `gorm:"type:varchar(32)" json:"phone"`
	Email        string `gorm:"type:varchar(255)" json:"email"`
	Address      string `gorm:"type:varchar(512)" json:"address"`
	City         string `gorm:"type:varchar(128)" json:"city"`
	PropertyType string `gorm:"type:varchar(32)" json:"propertyType"` // residential/commercial
	MonthlyBill  int64  `json:"monthlyBill"`

	Appliances       map[string]int `gorm:"serializer:json" json:"appliances"`
	OtherWatts       int            `json:"otherWatts"`
	OtherDescription string         `gorm:"type:varchar(255)" json:"otherDescription"`
	TotalLoad        int            `json:"totalLoad"` // watts

	SystemSize          float64 `json:"systemSize"`
	PanelsRequired      int     `json:"panelsRequired"`
	InverterSize        int     `json:"inverterSize"`
	BatteryCapacityCalc int     `json:"batteryCapacityCalc"`
	EstimatedCost       int64   `json:"estimatedCost"`
	Amount              int64   `json:"amount"`

	Status    string    `gorm:"type:varchar(16);index" json:"status"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Installation is an order for a priced hardware bundle.
type Installation struct {
	ID          uint  `gorm:"primaryKey" json:"id"`
	QuotationID *uint `gorm:"index" json:"quotationId,omitempty"`

	CustomerName string `gorm:"type:varchar(255)" json:"customerName"`
	Phone        string `gorm:"type:varchar(32)" json:"phone"`
	Address      string `gorm:"type:varchar(512)" json:"address"`
	City         string `gorm:"type:varchar(128)" json:"city"`

	PanelQuantity    int    `json:"panelQuantity"`
	StandType        string `gorm:"type:varchar(16)" json:"standType"`
	StandLevel       string `gorm:"type:varchar(16)" json:"standLevel"`
	InverterCompany  string `gorm:"type:varchar(64)" json:"inverterCompany"`
	InverterCapacity string `gorm:"type:varchar(16)" json:"inverterCapacity"`
	InverterCategory string `gorm:"type:varchar(64)" json:"inverterCategory"`
	InverterModel    string `gorm:"type:varchar(16)" json:"inverterModel"`
	BatteryType      string `gorm:"type:varchar(16)" json:"batteryType"`

	StandLabel    string `gorm:"type:varchar(64)" json:"standLabel"`
	StandPrice    int64  `json:"standPrice"`
	InverterPrice int64  `json:"inverterPrice"`
	BatteryPrice  int64  `json:"batteryPrice"`
	TotalPrice    int64  `json:"totalPrice"`
	Amount        int64  `json:"amount"`

	Status    string    `gorm:"type:varchar(16);index" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
