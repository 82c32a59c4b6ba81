package events

import "time"

const (
	LeaveBalanceTopic            = "leave.balance.v1"
	LeaveBalanceChangedEventType = "leave_balance_changed"
)

// LeaveBalanceChangedEvent carries decimals as strings so consumers never
// round half-days through float64.
type LeaveBalanceChangedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	BalanceID     string    `json:"balance_id"`
	MembershipID  string    `json:"membership_id"`
	CompanyID     string    `json:"company_id"`
	Type          string    `json:"type"`
	Change        string    `json:"change"`
	RemainingDays string    `json:"remaining_days"`
	Reason        string    `json:"reason"`
	ActorID       string    `json:"actor_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}
