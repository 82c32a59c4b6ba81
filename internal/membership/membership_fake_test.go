package membership

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn               func(ctx context.Context, m *Membership) error
	findByIDFn             func(ctx context.Context, id string) (*Membership, error)
	findByUserAndCompanyFn func(ctx context.Context, userID, companyID string) (*Membership, error)
	listByCompanyFn        func(ctx context.Context, companyID string) ([]MemberRow, error)
	listByUserFn           func(ctx context.Context, userID string) ([]CompanyRow, error)
	lockManagerIDsFn       func(ctx context.Context, companyID string) ([]uuid.UUID, error)
	updateRoleFn           func(ctx context.Context, id string, role Role) error
	deleteFn               func(ctx context.Context, id string) error
}

func (f *fakeRepo) WithTx(tx *gorm.DB) Repository { return f }

func (f *fakeRepo) Create(ctx context.Context, m *Membership) error { return f.createFn(ctx, m) }

func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Membership, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeRepo) FindByUserAndCompany(ctx context.Context, userID, companyID string) (*Membership, error) {
	return f.findByUserAndCompanyFn(ctx, userID, companyID)
}

func (f *fakeRepo) ListByCompany(ctx context.Context, companyID string) ([]MemberRow, error) {
	return f.listByCompanyFn(ctx, companyID)
}

func (f *fakeRepo) ListByUser(ctx context.Context, userID string) ([]CompanyRow, error) {
	return f.listByUserFn(ctx, userID)
}

func (f *fakeRepo) LockManagerIDs(ctx context.Context, companyID string) ([]uuid.UUID, error) {
	return f.lockManagerIDsFn(ctx, companyID)
}

func (f *fakeRepo) UpdateRole(ctx context.Context, id string, role Role) error {
	return f.updateRoleFn(ctx, id, role)
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error { return f.deleteFn(ctx, id) }

// membersOf answers FindByUserAndCompany from a fixed user -> role table.
func membersOf(companyID uuid.UUID, roles map[uuid.UUID]Role) func(ctx context.Context, userID, cid string) (*Membership, error) {
	return func(_ context.Context, userID, cid string) (*Membership, error) {
		uid, err := uuid.Parse(userID)
		if err != nil || cid != companyID.String() {
			return nil, gorm.ErrRecordNotFound
		}
		role, ok := roles[uid]
		if !ok {
			return nil, gorm.ErrRecordNotFound
		}
		return &Membership{ID: uuid.New(), UserID: uid, CompanyID: companyID, Role: role}, nil
	}
}
