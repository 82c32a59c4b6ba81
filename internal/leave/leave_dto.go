package leave

import (
	"time"

	"go-leave/internal/leavebalance"
	"go-leave/internal/membership"

	"github.com/shopspring/decimal"
)

type CreateLeaveRequest struct {
	Type          leavebalance.LeaveType `json:"type" binding:"required,oneof=PAID RTT SICK UNPAID OTHER"`
	StartDate     string                 `json:"startDate" binding:"required"`
	EndDate       string                 `json:"endDate" binding:"required"`
	Reason        string                 `json:"reason" binding:"max=500"`
	HalfDayPeriod *HalfDayPeriod         `json:"halfDayPeriod" binding:"omitempty,oneof=MORNING AFTERNOON"`
}

type UpdateLeaveRequest struct {
	Type          leavebalance.LeaveType `json:"type" binding:"required,oneof=PAID RTT SICK UNPAID OTHER"`
	StartDate     string                 `json:"startDate" binding:"required"`
	EndDate       string                 `json:"endDate" binding:"required"`
	Reason        string                 `json:"reason" binding:"max=500"`
	HalfDayPeriod *HalfDayPeriod         `json:"halfDayPeriod" binding:"omitempty,oneof=MORNING AFTERNOON"`
}

type ReviewLeaveRequest struct {
	Status      LeaveStatus `json:"status" binding:"required,oneof=APPROVED REJECTED"`
	ManagerNote string      `json:"managerNote" binding:"max=1000"`
}

type CompanyLeavesFilter struct {
	Status string `form:"status"`
}

type LeaveResponse struct {
	ID            string                 `json:"id"`
	MembershipID  string                 `json:"membershipId"`
	CompanyID     string                 `json:"companyId,omitempty"`
	Type          leavebalance.LeaveType `json:"type"`
	StartDate     string                 `json:"startDate"`
	EndDate       string                 `json:"endDate"`
	HalfDayPeriod *HalfDayPeriod         `json:"halfDayPeriod,omitempty"`
	Status        LeaveStatus            `json:"status"`
	Reason        string                 `json:"reason"`
	Days          decimal.Decimal        `json:"days"`
	ManagerID     *string                `json:"managerId,omitempty"`
	ManagerNote   *string                `json:"managerNote,omitempty"`
	ReviewedAt    *time.Time             `json:"reviewedAt,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

type LeaveStatsResponse struct {
	CompanyID          string                                     `json:"companyId"`
	Total              int64                                      `json:"total"`
	ByStatus           map[LeaveStatus]int64                      `json:"byStatus"`
	ApprovedDaysByType map[leavebalance.LeaveType]decimal.Decimal `json:"approvedDaysByType"`
}

type CalendarMember struct {
	MembershipID string          `json:"membershipId"`
	Role         membership.Role `json:"role"`
	UserID       string          `json:"userId"`
	UserName     string          `json:"userName"`
	UserEmail    string          `json:"userEmail"`
}

type CalendarEntryResponse struct {
	LeaveID       string                 `json:"leaveId"`
	Type          leavebalance.LeaveType `json:"type"`
	StartDate     string                 `json:"startDate"`
	EndDate       string                 `json:"endDate"`
	HalfDayPeriod *HalfDayPeriod         `json:"halfDayPeriod,omitempty"`
	Status        LeaveStatus            `json:"status"`
	Days          decimal.Decimal        `json:"days"`
	Membership    CalendarMember         `json:"membership"`
}
