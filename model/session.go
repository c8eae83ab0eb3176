package model

import "time"

type SetupStep string

const (
	StepBusiness   SetupStep = "business"
	StepCategories SetupStep = "categories"
	StepProducts   SetupStep = "products"
	StepMarketing  SetupStep = "marketing"
)

type SessionStatus string

const (
	SessionPending    SessionStatus = "pending"
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
)

// SetupSession is one merchant's resumable progress through the setup
// flow. It owns the step and percentage; it never owns remote catalog
// entities. Sessions are never hard-deleted.
type SetupSession struct {
	ID                   string        `json:"id"`
	StoreID              string        `json:"store_id"`
	Status               SessionStatus `json:"status"`
	CurrentStep          SetupStep     `json:"current_step"`
	CompletionPercentage int           `json:"completion_percentage"`
	ConfirmedProducts    int           `json:"confirmed_products"`
	LandingPage          *string       `json:"landing_page,omitempty"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}
