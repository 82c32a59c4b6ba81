package events

import "time"

const (
	MembershipTopic            = "company.membership.v1"
	MembershipCreatedEventType = "membership_created"
)

type MembershipCreatedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	MembershipID string    `json:"membership_id"`
	CompanyID    string    `json:"company_id"`
	UserID       string    `json:"user_id"`
	Role         string    `json:"role"`
	InvitedBy    string    `json:"invited_by"`
	OccurredAt   time.Time `json:"occurred_at"`
}
