package membership

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleManager  Role = "MANAGER"
)

func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleManager
}

type Membership struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_membership_user_company"`
	CompanyID uuid.UUID `gorm:"column:company_id;type:uuid;not null;uniqueIndex:uq_membership_user_company"`
	Role      Role      `gorm:"column:role;type:varchar(16);not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Membership) TableName() string {
	return "memberships"
}

func (m Membership) IsManager() bool {
	return m.Role == RoleManager
}

// MemberRow is a membership joined with the user's display fields.
type MemberRow struct {
	Membership
	UserName  string `gorm:"column:user_name"`
	UserEmail string `gorm:"column:user_email"`
}

// CompanyRow is a membership joined with its company name.
type CompanyRow struct {
	Membership
	CompanyName string `gorm:"column:company_name"`
}
