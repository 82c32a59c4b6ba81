package leavebalance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ApplyChangeRequest struct {
	Type   LeaveType       `json:"type" binding:"required,oneof=PAID RTT SICK UNPAID OTHER"`
	Change decimal.Decimal `json:"change"`
	Reason string          `json:"reason" binding:"required,max=500"`
}

// DebitRequest is issued by the leave lifecycle inside its own transaction.
type DebitRequest struct {
	CompanyID    string
	MembershipID uuid.UUID
	Type         LeaveType
	Days         decimal.Decimal
	Reason       string
	ActorID      uuid.UUID
}

type BalanceResponse struct {
	ID            string          `json:"id"`
	MembershipID  string          `json:"membershipId"`
	Type          LeaveType       `json:"type"`
	RemainingDays decimal.Decimal `json:"remainingDays"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type ActorResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type HistoryResponse struct {
	ID             string          `json:"id"`
	LeaveBalanceID string          `json:"leaveBalanceId"`
	Type           LeaveType       `json:"type"`
	Change         decimal.Decimal `json:"change"`
	Reason         string          `json:"reason"`
	Actor          ActorResponse   `json:"actor"`
	CreatedAt      time.Time       `json:"createdAt"`
}
