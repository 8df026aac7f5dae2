package events

import "time"

// EventType identifies what happened to a record.
type EventType int

const (
	EventQuotationCreated EventType = iota
	EventQuotationUpdated
	EventQuotationDeleted

	EventInstallationCreated
	EventInstallationUpdated
	EventInstallationDeleted
)

var eventNames = map[EventType]string{
	EventQuotationCreated:    "quotation.created",
	EventQuotationUpdated:    "quotation.updated",
	EventQuotationDeleted:    "quotation.deleted",
	EventInstallationCreated: "installation.created",
	EventInstallationUpdated: "installation.updated",
	EventInstallationDeleted: "installation.deleted",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// AllTypes lists every event type the bus carries.
func AllTypes() []EventType {
	return []EventType{
		EventQuotationCreated, EventQuotationUpdated, EventQuotationDeleted,
		EventInstallationCreated, EventInstallationUpdated, EventInstallationDeleted,
	}
}

// Event is what the bus delivers to handlers.
type Event struct {
	Type      EventType   `json:"type"`
	RecordID  uint        `json:"record_id"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// Handler reacts to a published event.
type Handler func(Event)

// Subscription is returned by Subscribe and accepted by Unsubscribe.
type Subscription struct {
	EventType EventType
	id        uint64
}

// QuotationEventData is attached to quotation events.
type QuotationEventData struct {
	Reference     string  `json:"reference"`
	CustomerName  string  `json:"customer_name"`
	SystemSize    float64 `json:"system_size"`
	EstimatedCost int64   `json:"estimated_cost"`
	Status        string  `json:"status"`
}

// InstallationEventData is attached to installation events.
type InstallationEventData struct {
	CustomerName string `json:"customer_name"`
	TotalPrice   int64  `json:"total_price"`
	Status       string `json:"status"`
}
