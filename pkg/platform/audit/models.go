package audit

import "time"

// EventCategory classifies audit events by their primary purpose. This enables
// different retention policies and sink routing.
type EventCategory string

const (
	// CategoryCompliance covers checkout outcomes: who borrowed what, when,
	// and why a request was refused.
	CategoryCompliance EventCategory = "compliance"

	// CategoryOperations covers informational notices useful for debugging
	// and operational visibility. These can be sampled or dropped.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from the checkout pipeline to capture key actions. It is
// transport-agnostic so sinks can fan out (log, memory, Kafka). Emission is
// fire-and-forget: no event may influence the checkout outcome.
type Event struct {
	ID           string        `json:"id"`
	Category     EventCategory `json:"category"`
	Timestamp    time.Time     `json:"timestamp"`
	RequesterUID string        `json:"requester_uid"`
	AssetID      string        `json:"asset_id"`
	Action       Action        `json:"action"`
	Decision     string        `json:"decision,omitempty"`
	Reason       string        `json:"reason,omitempty"`
	Hours        int           `json:"hours,omitempty"`
	RequestID    string        `json:"request_id,omitempty"`
}

// Action names an auditable moment in the checkout pipeline.
type Action string

const (
	ActionCheckoutSucceeded   Action = "checkout_succeeded"
	ActionCheckoutRejected    Action = "checkout_rejected"
	ActionMaxDurationSelected Action = "max_duration_selected"
	ActionDurationRestricted  Action = "duration_restricted"
)

// actionCategories maps each action to its category. Outcomes are compliance
// events; advisory notices are operations events.
var actionCategories = map[Action]EventCategory{
	ActionCheckoutSucceeded:   CategoryCompliance,
	ActionCheckoutRejected:    CategoryCompliance,
	ActionMaxDurationSelected: CategoryOperations,
	ActionDurationRestricted:  CategoryOperations,
}

// Category returns the EventCategory for this action. Unknown actions default
// to CategoryOperations.
func (a Action) Category() EventCategory {
	if cat, ok := actionCategories[a]; ok {
		return cat
	}
	return CategoryOperations
}
