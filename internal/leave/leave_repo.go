package leave

import (
	"context"
	"time"

	"go-leave/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const leaveWithCompany = "leaves.*, memberships.company_id AS company_id"

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, l *Leave) error
	Update(ctx context.Context, l *Leave) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id string) (*LeaveRow, error)
	FindByIDForUpdate(ctx context.Context, id string) (*LeaveRow, error)
	ListByMembership(ctx context.Context, membershipID string) ([]Leave, error)
	ListByCompany(ctx context.Context, companyID string, status *LeaveStatus) ([]LeaveRow, error)
	CountByStatus(ctx context.Context, companyID string) ([]StatusCount, error)
	ListCalendar(ctx context.Context, companyID string, from, to time.Time) ([]CalendarRow, error)
	HasOverlap(ctx context.Context, membershipID uuid.UUID, startDate, endDate time.Time, excludeID *uuid.UUID) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) Update(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Leave{}, "id = ?", id).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRow, error) {
	var row LeaveRow
	err := r.withCompany(ctx).
		Where("leaves.id = ?", id).
		Take(&row).Error
	return &row, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*LeaveRow, error) {
	var row LeaveRow
	err := r.withCompany(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "leaves"}}).
		Where("leaves.id = ?", id).
		Take(&row).Error
	return &row, err
}

func (r *repository) ListByMembership(ctx context.Context, membershipID string) ([]Leave, error) {
	var leaves []Leave
	err := r.db.WithContext(ctx).
		Where("membership_id = ?", membershipID).
		Order("created_at DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) ListByCompany(ctx context.Context, companyID string, status *LeaveStatus) ([]LeaveRow, error) {
	db := r.withCompany(ctx).
		Where("memberships.company_id = ?", companyID)
	if status != nil {
		db = db.Where("leaves.status = ?", *status)
	}

	var rows []LeaveRow
	err := db.Order("leaves.start_date DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) CountByStatus(ctx context.Context, companyID string) ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.WithContext(ctx).
		Table("leaves").
		Select("leaves.status AS status, COUNT(*) AS count").
		Scopes(tenant.MembershipScope("leaves", companyID)).
		Group("leaves.status").
		Scan(&counts).Error
	return counts, err
}

// ListCalendar returns the leaves intersecting [from, to] that are still
// pending or approved.
func (r *repository) ListCalendar(ctx context.Context, companyID string, from, to time.Time) ([]CalendarRow, error) {
	var rows []CalendarRow
	err := r.db.WithContext(ctx).
		Table("leaves").
		Select("leaves.*, m.company_id AS company_id, m.role AS role, m.user_id AS user_id, u.name AS user_name, u.email AS user_email").
		Joins("JOIN memberships AS m ON m.id = leaves.membership_id").
		Joins("JOIN users AS u ON u.id = m.user_id").
		Where("m.company_id = ?", companyID).
		Where("leaves.status IN ?", []LeaveStatus{StatusPending, StatusApproved}).
		Where("leaves.start_date <= ? AND leaves.end_date >= ?", to, from).
		Order("leaves.start_date ASC, u.name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) HasOverlap(ctx context.Context, membershipID uuid.UUID, startDate, endDate time.Time, excludeID *uuid.UUID) (bool, error) {
	db := r.db.WithContext(ctx).
		Model(&Leave{}).
		Where("membership_id = ?", membershipID).
		Where("status IN ?", []LeaveStatus{StatusPending, StatusApproved}).
		Where("NOT (end_date < ? OR start_date > ?)", startDate, endDate)

	if excludeID != nil {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *repository) withCompany(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("leaves").
		Select(leaveWithCompany).
		Joins("JOIN memberships ON memberships.id = leaves.membership_id")
}
