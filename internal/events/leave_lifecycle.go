package events

import "time"

const LeaveLifecycleTopic = "leave.lifecycle.v1"

const (
	LeaveCreatedEventType  = "leave_created"
	LeaveReviewedEventType = "leave_reviewed"
)

type LeaveCreatedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	LeaveID      string    `json:"leave_id"`
	MembershipID string    `json:"membership_id"`
	CompanyID    string    `json:"company_id"`
	Type         string    `json:"type"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	Days         string    `json:"days"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type LeaveReviewedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	LeaveID      string    `json:"leave_id"`
	MembershipID string    `json:"membership_id"`
	CompanyID    string    `json:"company_id"`
	Status       string    `json:"status"`
	ManagerID    string    `json:"manager_id"`
	OccurredAt   time.Time `json:"occurred_at"`
}
