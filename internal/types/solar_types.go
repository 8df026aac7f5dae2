// internal/types/solar_types.go

package types

import (
	"fmt"
	"sort"
	"strings"
)

// StandType is the mounting structure chosen for the panels.
type StandType string

const (
	StandCustom   StandType = "custom"
	StandStandard StandType = "standard"
)

// BatteryType is the battery bank option of an installation bundle.
type BatteryType string

const (
	BatteryLithium BatteryType = "lithium"
	BatteryTubular BatteryType = "tubular"
	BatteryTruck   BatteryType = "truck"
	BatteryNone    BatteryType = "none"
)

// QuotationStatus tracks a quotation through review.
type QuotationStatus string

const (
	QuotationPending  QuotationStatus = "pending"
	QuotationApproved QuotationStatus = "approved"
	QuotationRejected QuotationStatus = "rejected"
)

// InstallationStatus tracks an installation order.
type InstallationStatus string

const (
	InstallationRequested InstallationStatus = "requested"
	InstallationScheduled InstallationStatus = "scheduled"
	InstallationCompleted InstallationStatus = "completed"
)

// ValidationError carries field-level messages for input the end user has to correct.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records msg for field, keeping the first message reported for that field.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = msg
	}
}

func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// OrNil returns e as an error only when it holds at least one field.
func (e *ValidationError) OrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
