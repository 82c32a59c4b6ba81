package leavebalance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LeaveType string

const (
	LeaveTypePaid   LeaveType = "PAID"
	LeaveTypeRTT    LeaveType = "RTT"
	LeaveTypeSick   LeaveType = "SICK"
	LeaveTypeUnpaid LeaveType = "UNPAID"
	LeaveTypeOther  LeaveType = "OTHER"
)

var LeaveTypes = []LeaveType{LeaveTypePaid, LeaveTypeRTT, LeaveTypeSick, LeaveTypeUnpaid, LeaveTypeOther}

func (t LeaveType) Valid() bool {
	for _, lt := range LeaveTypes {
		if t == lt {
			return true
		}
	}
	return false
}

type LeaveBalance struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	MembershipID  uuid.UUID       `gorm:"column:membership_id;type:uuid;not null;uniqueIndex:uq_leave_balance_membership_type"`
	Type          LeaveType       `gorm:"column:type;type:varchar(16);not null;uniqueIndex:uq_leave_balance_membership_type"`
	RemainingDays decimal.Decimal `gorm:"column:remaining_days;type:numeric(6,1);not null"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (LeaveBalance) TableName() string {
	return "leave_balances"
}

// LeaveBalanceHistory is append-only. Change keeps the signed delta as
// requested, even when the balance itself was clamped.
type LeaveBalanceHistory struct {
	ID             uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	LeaveBalanceID uuid.UUID       `gorm:"column:leave_balance_id;type:uuid;not null;index"`
	Change         decimal.Decimal `gorm:"column:change;type:numeric(6,1);not null"`
	Reason         string          `gorm:"column:reason;type:varchar(500);not null"`
	ActorID        uuid.UUID       `gorm:"column:actor_id;type:uuid;not null"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (LeaveBalanceHistory) TableName() string {
	return "leave_balance_histories"
}

type HistoryRow struct {
	LeaveBalanceHistory
	Type       LeaveType `gorm:"column:type"`
	ActorName  string    `gorm:"column:actor_name"`
	ActorEmail string    `gorm:"column:actor_email"`
}

type OwnerRow struct {
	UserName    string `gorm:"column:user_name"`
	UserEmail   string `gorm:"column:user_email"`
	CompanyName string `gorm:"column:company_name"`
}
