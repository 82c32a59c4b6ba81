package membership

import (
	"context"
	"errors"

	membershiperrors "go-leave/internal/membership/errors"
	"go-leave/internal/rbac"
	"go-leave/internal/shared/principal"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Access resolves the requester's membership in a company and checks it
// against the role policy. Ownership rules live with the callers.
type Access struct {
	repo   Repository
	policy rbac.Service
	logger *zap.Logger
}

func NewAccess(repo Repository, policy rbac.Service, logger ...*zap.Logger) *Access {
	l := zap.L().Named("membership.access")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("membership.access")
	}
	return &Access{repo: repo, policy: policy, logger: l}
}

// Member returns the requester's own membership in companyID.
func (a *Access) Member(ctx context.Context, companyID string, requester principal.User) (*Membership, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, membershiperrors.ErrNotCompanyMember
	}
	if _, ok := requester.UUID(); !ok {
		return nil, membershiperrors.ErrNotCompanyMember
	}

	m, err := a.repo.FindByUserAndCompany(ctx, requester.ID, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, membershiperrors.ErrNotCompanyMember
		}
		return nil, err
	}
	return m, nil
}

// Authorize is Member followed by a policy check of resource/action against
// the requester's role.
func (a *Access) Authorize(ctx context.Context, companyID string, requester principal.User, resource, action string) (*Membership, error) {
	m, err := a.Member(ctx, companyID, requester)
	if err != nil {
		return nil, err
	}

	if !a.policy.Can(string(m.Role), resource, action) {
		a.logger.Warn("access denied",
			zap.String("company_id", companyID),
			zap.String("user_id", requester.ID),
			zap.String("role", string(m.Role)),
			zap.String("resource", resource),
			zap.String("action", action),
		)
		return nil, membershiperrors.ErrManagerRequired
	}
	return m, nil
}

// Target loads a membership by id. A malformed or unknown id is NotFound.
func (a *Access) Target(ctx context.Context, membershipID string) (*Membership, error) {
	if _, err := uuid.Parse(membershipID); err != nil {
		return nil, membershiperrors.ErrMembershipNotFound
	}

	m, err := a.repo.FindByID(ctx, membershipID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, membershiperrors.ErrMembershipNotFound
		}
		return nil, err
	}
	return m, nil
}

// OwnerOr lets the target's own user through, otherwise requires the
// requester to be allowed resource/action in the target's company.
func (a *Access) OwnerOr(ctx context.Context, target *Membership, requester principal.User, resource, action string) error {
	if target.UserID.String() == requester.ID {
		return nil
	}

	_, err := a.Authorize(ctx, target.CompanyID.String(), requester, resource, action)
	if errors.Is(err, membershiperrors.ErrNotCompanyMember) {
		return membershiperrors.ErrManagerRequired
	}
	return err
}
