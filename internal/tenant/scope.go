package tenant

import "gorm.io/gorm"

// Scope filters a table that carries company_id directly.
func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}

// MembershipScope restricts a table keyed by membership_id to the
// memberships of one company.
func MembershipScope(table, companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		sub := db.Session(&gorm.Session{NewDB: true}).
			Table("memberships").
			Select("id").
			Where("company_id = ?", companyID)
		return db.Where(table+".membership_id IN (?)", sub)
	}
}
