package leavebalance

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	ListByMembership(ctx context.Context, membershipID string) ([]LeaveBalance, error)
	Find(ctx context.Context, membershipID uuid.UUID, leaveType LeaveType) (*LeaveBalance, error)
	FindForUpdate(ctx context.Context, membershipID uuid.UUID, leaveType LeaveType) (*LeaveBalance, error)
	CreateIfAbsent(ctx context.Context, b *LeaveBalance) (bool, error)
	UpdateRemaining(ctx context.Context, id uuid.UUID, remaining decimal.Decimal) error
	AppendHistory(ctx context.Context, h *LeaveBalanceHistory) error
	ListHistory(ctx context.Context, membershipID string) ([]HistoryRow, error)
	FindOwner(ctx context.Context, membershipID string) (*OwnerRow, error)
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

func (r *repository) ListByMembership(ctx context.Context, membershipID string) ([]LeaveBalance, error) {
	var balances []LeaveBalance
	err := r.db.WithContext(ctx).
		Where("membership_id = ?", membershipID).
		Order("type ASC").
		Find(&balances).Error
	return balances, err
}

func (r *repository) Find(ctx context.Context, membershipID uuid.UUID, leaveType LeaveType) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.db.WithContext(ctx).
		Where("membership_id = ? AND type = ?", membershipID, leaveType).
		First(&b).Error
	return &b, err
}

func (r *repository) FindForUpdate(ctx context.Context, membershipID uuid.UUID, leaveType LeaveType) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("membership_id = ? AND type = ?", membershipID, leaveType).
		First(&b).Error
	return &b, err
}

// CreateIfAbsent reports false when a concurrent transaction inserted the
// same (membership, type) first.
func (r *repository) CreateIfAbsent(ctx context.Context, b *LeaveBalance) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "membership_id"}, {Name: "type"}},
			DoNothing: true,
		}).
		Create(b)
	return res.RowsAffected == 1, res.Error
}

func (r *repository) UpdateRemaining(ctx context.Context, id uuid.UUID, remaining decimal.Decimal) error {
	return r.db.WithContext(ctx).
		Model(&LeaveBalance{}).
		Where("id = ?", id).
		Update("remaining_days", remaining).Error
}

func (r *repository) AppendHistory(ctx context.Context, h *LeaveBalanceHistory) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *repository) ListHistory(ctx context.Context, membershipID string) ([]HistoryRow, error) {
	var rows []HistoryRow
	err := r.db.WithContext(ctx).
		Table("leave_balance_histories AS h").
		Select("h.*, b.type AS type, u.name AS actor_name, u.email AS actor_email").
		Joins("JOIN leave_balances AS b ON b.id = h.leave_balance_id").
		Joins("LEFT JOIN users AS u ON u.id = h.actor_id").
		Where("b.membership_id = ?", membershipID).
		Order("h.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindOwner(ctx context.Context, membershipID string) (*OwnerRow, error) {
	var row OwnerRow
	err := r.db.WithContext(ctx).
		Table("memberships AS m").
		Select("u.name AS user_name, u.email AS user_email, c.name AS company_name").
		Joins("JOIN users AS u ON u.id = m.user_id").
		Joins("JOIN companies AS c ON c.id = m.company_id").
		Where("m.id = ?", membershipID).
		Take(&row).Error
	return &row, err
}
