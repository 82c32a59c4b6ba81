package membership

import (
	"context"
	"errors"
	"time"

	"go-leave/internal/events"
	membershiperrors "go-leave/internal/membership/errors"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/rbac"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/shared/principal"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	List(ctx context.Context, companyID string, requester principal.User) ([]MembershipResponse, error)
	ListMine(ctx context.Context, requester principal.User) ([]MyMembershipResponse, error)
	Add(ctx context.Context, companyID string, req AddMemberRequest, requester principal.User) (MembershipResponse, error)
	UpdateRole(ctx context.Context, companyID, membershipID string, req UpdateRoleRequest, requester principal.User) (MembershipResponse, error)
	Delete(ctx context.Context, companyID, membershipID string, requester principal.User) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	access *Access
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, access *Access, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("membership.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("membership.service")
	}
	return &service{db: db, repo: repo, access: access, outbox: outbox, logger: l}
}

func (s *service) List(ctx context.Context, companyID string, requester principal.User) ([]MembershipResponse, error) {
	if _, err := s.access.Authorize(ctx, companyID, requester, rbac.ResourceMembership, rbac.ActionRead); err != nil {
		return nil, err
	}

	rows, err := s.repo.ListByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("list memberships failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, err
	}

	resp := make([]MembershipResponse, 0, len(rows))
	for _, row := range rows {
		r := mapToResponse(row.Membership)
		r.UserName = row.UserName
		r.UserEmail = row.UserEmail
		resp = append(resp, r)
	}
	return resp, nil
}

func (s *service) ListMine(ctx context.Context, requester principal.User) ([]MyMembershipResponse, error) {
	if _, ok := requester.UUID(); !ok {
		return nil, membershiperrors.ErrNotCompanyMember
	}

	rows, err := s.repo.ListByUser(ctx, requester.ID)
	if err != nil {
		s.logger.Error("list my memberships failed", zap.String("user_id", requester.ID), zap.Error(err))
		return nil, err
	}

	resp := make([]MyMembershipResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, MyMembershipResponse{
			ID:          row.ID.String(),
			CompanyID:   row.CompanyID.String(),
			CompanyName: row.CompanyName,
			Role:        row.Role,
		})
	}
	return resp, nil
}

func (s *service) Add(ctx context.Context, companyID string, req AddMemberRequest, requester principal.User) (MembershipResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("add membership requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("user_id", req.UserID),
		zap.String("role", string(req.Role)),
	)

	if _, err := s.access.Authorize(ctx, companyID, requester, rbac.ResourceMembership, rbac.ActionManage); err != nil {
		return MembershipResponse{}, err
	}
	if !req.Role.Valid() {
		return MembershipResponse{}, membershiperrors.ErrInvalidRole
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return MembershipResponse{}, membershiperrors.ErrUserNotFound
	}

	m := &Membership{
		ID:        uuid.New(),
		UserID:    userID,
		CompanyID: uuid.MustParse(companyID),
		Role:      req.Role,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, m); err != nil {
			s.logger.Error("add membership persist failed", zap.String("request_id", rid), zap.Error(err))
			return mapRepositoryError(err)
		}

		if s.outbox == nil {
			return nil
		}
		event, err := kafka.NewOutboxEvent(rid, "membership", m.ID.String(),
			events.MembershipCreatedEventType, events.MembershipTopic,
			events.MembershipCreatedEvent{
				EventType:    events.MembershipCreatedEventType,
				RequestID:    rid,
				MembershipID: m.ID.String(),
				CompanyID:    companyID,
				UserID:       req.UserID,
				Role:         string(m.Role),
				InvitedBy:    requester.ID,
				OccurredAt:   time.Now().UTC(),
			})
		if err != nil {
			return err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			s.logger.Error("add membership outbox persist failed",
				zap.String("membership_id", m.ID.String()),
				zap.Error(err),
			)
			return err
		}
		return nil
	})
	if err != nil {
		return MembershipResponse{}, err
	}

	s.logger.Info("add membership success",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("membership_id", m.ID.String()),
	)
	return mapToResponse(*m), nil
}

func (s *service) UpdateRole(ctx context.Context, companyID, membershipID string, req UpdateRoleRequest, requester principal.User) (MembershipResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update membership role requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("membership_id", membershipID),
		zap.String("role", string(req.Role)),
	)

	if _, err := s.access.Authorize(ctx, companyID, requester, rbac.ResourceMembership, rbac.ActionManage); err != nil {
		return MembershipResponse{}, err
	}
	if !req.Role.Valid() {
		return MembershipResponse{}, membershiperrors.ErrInvalidRole
	}

	var updated Membership
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		target, err := s.findInCompany(ctx, qtx, companyID, membershipID)
		if err != nil {
			return err
		}

		if target.IsManager() && req.Role != RoleManager {
			if err := s.ensureAnotherManager(ctx, qtx, companyID); err != nil {
				return err
			}
		}

		if err := qtx.UpdateRole(ctx, membershipID, req.Role); err != nil {
			s.logger.Error("update membership role persist failed", zap.String("request_id", rid), zap.Error(err))
			return err
		}

		target.Role = req.Role
		updated = *target
		return nil
	})
	if err != nil {
		return MembershipResponse{}, err
	}

	s.logger.Info("update membership role success",
		zap.String("request_id", rid),
		zap.String("membership_id", membershipID),
		zap.String("role", string(req.Role)),
	)
	return mapToResponse(updated), nil
}

func (s *service) Delete(ctx context.Context, companyID, membershipID string, requester principal.User) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete membership requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("membership_id", membershipID),
	)

	if _, err := s.access.Authorize(ctx, companyID, requester, rbac.ResourceMembership, rbac.ActionManage); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		target, err := s.findInCompany(ctx, qtx, companyID, membershipID)
		if err != nil {
			return err
		}

		if target.IsManager() {
			if err := s.ensureAnotherManager(ctx, qtx, companyID); err != nil {
				return err
			}
		}

		if err := qtx.Delete(ctx, membershipID); err != nil {
			s.logger.Error("delete membership persist failed", zap.String("request_id", rid), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("delete membership success",
		zap.String("request_id", rid),
		zap.String("membership_id", membershipID),
	)
	return nil
}

func (s *service) findInCompany(ctx context.Context, repo Repository, companyID, membershipID string) (*Membership, error) {
	if _, err := uuid.Parse(membershipID); err != nil {
		return nil, membershiperrors.ErrMembershipNotFound
	}

	target, err := repo.FindByID(ctx, membershipID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, membershiperrors.ErrMembershipNotFound
		}
		return nil, err
	}
	if target.CompanyID.String() != uuid.MustParse(companyID).String() {
		return nil, membershiperrors.ErrMembershipNotFound
	}
	return target, nil
}

func (s *service) ensureAnotherManager(ctx context.Context, repo Repository, companyID string) error {
	ids, err := repo.LockManagerIDs(ctx, companyID)
	if err != nil {
		return err
	}
	if len(ids) <= 1 {
		s.logger.Warn("last manager guard", zap.String("company_id", companyID))
		return membershiperrors.ErrLastManager
	}
	return nil
}

func mapToResponse(m Membership) MembershipResponse {
	return MembershipResponse{
		ID:        m.ID.String(),
		UserID:    m.UserID.String(),
		CompanyID: m.CompanyID.String(),
		Role:      m.Role,
		CreatedAt: m.CreatedAt,
	}
}
