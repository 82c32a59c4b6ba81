package membership

import (
	"context"

	"go-leave/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, m *Membership) error
	FindByID(ctx context.Context, id string) (*Membership, error)
	FindByUserAndCompany(ctx context.Context, userID, companyID string) (*Membership, error)
	ListByCompany(ctx context.Context, companyID string) ([]MemberRow, error)
	ListByUser(ctx context.Context, userID string) ([]CompanyRow, error)
	LockManagerIDs(ctx context.Context, companyID string) ([]uuid.UUID, error)
	UpdateRole(ctx context.Context, id string, role Role) error
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, m *Membership) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Membership, error) {
	var m Membership
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	return &m, err
}

func (r *repository) FindByUserAndCompany(ctx context.Context, userID, companyID string) (*Membership, error) {
	var m Membership
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("user_id = ?", userID).
		First(&m).Error
	return &m, err
}

func (r *repository) ListByCompany(ctx context.Context, companyID string) ([]MemberRow, error) {
	var rows []MemberRow
	err := r.db.WithContext(ctx).
		Table("memberships").
		Select("memberships.*, users.name AS user_name, users.email AS user_email").
		Joins("JOIN users ON users.id = memberships.user_id").
		Where("memberships.company_id = ?", companyID).
		Order("users.name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) ListByUser(ctx context.Context, userID string) ([]CompanyRow, error) {
	var rows []CompanyRow
	err := r.db.WithContext(ctx).
		Table("memberships").
		Select("memberships.*, companies.name AS company_name").
		Joins("JOIN companies ON companies.id = memberships.company_id").
		Where("memberships.user_id = ?", userID).
		Order("companies.name ASC").
		Scan(&rows).Error
	return rows, err
}

// LockManagerIDs row-locks every manager of the company so concurrent
// demotions serialise on the last-manager check.
func (r *repository) LockManagerIDs(ctx context.Context, companyID string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&Membership{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		Where("role = ?", RoleManager).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *repository) UpdateRole(ctx context.Context, id string, role Role) error {
	return r.db.WithContext(ctx).
		Model(&Membership{}).
		Where("id = ?", id).
		Update("role", role).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Membership{}, "id = ?", id).Error
}
