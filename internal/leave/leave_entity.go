package leave

import (
	"time"

	"go-leave/internal/leavebalance"
	"go-leave/internal/membership"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LeaveStatus string

const (
	StatusPending  LeaveStatus = "PENDING"
	StatusApproved LeaveStatus = "APPROVED"
	StatusRejected LeaveStatus = "REJECTED"
	StatusCanceled LeaveStatus = "CANCELED"
)

var LeaveStatuses = []LeaveStatus{StatusPending, StatusApproved, StatusRejected, StatusCanceled}

func (s LeaveStatus) Valid() bool {
	for _, v := range LeaveStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type HalfDayPeriod string

const (
	HalfDayMorning   HalfDayPeriod = "MORNING"
	HalfDayAfternoon HalfDayPeriod = "AFTERNOON"
)

func (p HalfDayPeriod) Valid() bool {
	return p == HalfDayMorning || p == HalfDayAfternoon
}

type Leave struct {
	ID            uuid.UUID              `gorm:"column:id;type:uuid;primaryKey"`
	MembershipID  uuid.UUID              `gorm:"column:membership_id;type:uuid;not null;index:idx_leaves_membership_dates"`
	Type          leavebalance.LeaveType `gorm:"column:type;type:varchar(16);not null"`
	StartDate     time.Time              `gorm:"column:start_date;type:date;not null;index:idx_leaves_membership_dates"`
	EndDate       time.Time              `gorm:"column:end_date;type:date;not null;index:idx_leaves_membership_dates"`
	HalfDayPeriod *HalfDayPeriod         `gorm:"column:half_day_period;type:varchar(16)"`
	Status        LeaveStatus            `gorm:"column:status;type:varchar(16);not null;default:'PENDING';index"`
	Reason        string                 `gorm:"column:reason;type:text"`
	ManagerID     *uuid.UUID             `gorm:"column:manager_id;type:uuid"`
	ManagerNote   *string                `gorm:"column:manager_note;type:text"`
	ReviewedAt    *time.Time             `gorm:"column:reviewed_at"`
	CreatedAt     time.Time              `gorm:"column:created_at"`
	UpdatedAt     time.Time              `gorm:"column:updated_at"`
}

func (Leave) TableName() string {
	return "leaves"
}

// Days is the working-day cost of the leave. It is never persisted.
func (l Leave) Days() decimal.Decimal {
	return WorkingDays(l.StartDate, l.EndDate, l.HalfDayPeriod)
}

// LeaveRow is a leave with the company of its membership.
type LeaveRow struct {
	Leave
	CompanyID uuid.UUID `gorm:"column:company_id"`
}

type CalendarRow struct {
	Leave
	CompanyID uuid.UUID       `gorm:"column:company_id"`
	Role      membership.Role `gorm:"column:role"`
	UserID    uuid.UUID       `gorm:"column:user_id"`
	UserName  string          `gorm:"column:user_name"`
	UserEmail string          `gorm:"column:user_email"`
}

type StatusCount struct {
	Status LeaveStatus `gorm:"column:status"`
	Count  int64       `gorm:"column:count"`
}
