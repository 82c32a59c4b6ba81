package company

import (
	"context"
	"errors"
	"strings"
	"time"

	companyerrors "go-leave/internal/company/errors"
	"go-leave/internal/events"
	"go-leave/internal/membership"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/rbac"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/shared/principal"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateCompanyRequest, requester principal.User) (CompanyResponse, error)
	GetByID(ctx context.Context, id string, requester principal.User) (CompanyResponse, error)
}

type service struct {
	db          *gorm.DB
	repo        Repository
	memberships membership.Repository
	access      *membership.Access
	outbox      kafka.OutboxRepository
	logger      *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	memberships membership.Repository,
	access *membership.Access,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		memberships: memberships,
		access:      access,
		outbox:      outbox,
		logger:      l,
	}
}

// Create registers a company and makes the requester its first manager.
func (s *service) Create(ctx context.Context, req CreateCompanyRequest, requester principal.User) (CompanyResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create company requested", zap.String("request_id", rid), zap.String("user_id", requester.ID))

	userID, ok := requester.UUID()
	if !ok {
		return CompanyResponse{}, apperror.ErrUnauthorized
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return CompanyResponse{}, companyerrors.ErrCompanyNameRequired
	}

	comp := &Company{ID: uuid.New(), Name: name}
	founder := &membership.Membership{
		ID:        uuid.New(),
		UserID:    userID,
		CompanyID: comp.ID,
		Role:      membership.RoleManager,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, comp); err != nil {
			s.logger.Error("create company persist failed", zap.String("request_id", rid), zap.Error(err))
			return err
		}
		if err := s.memberships.WithTx(tx).Create(ctx, founder); err != nil {
			s.logger.Error("create company founder membership failed", zap.String("request_id", rid), zap.Error(err))
			return err
		}

		if s.outbox == nil {
			return nil
		}
		event, err := kafka.NewOutboxEvent(rid, "membership", founder.ID.String(),
			events.MembershipCreatedEventType, events.MembershipTopic,
			events.MembershipCreatedEvent{
				EventType:    events.MembershipCreatedEventType,
				RequestID:    rid,
				MembershipID: founder.ID.String(),
				CompanyID:    comp.ID.String(),
				UserID:       requester.ID,
				Role:         string(founder.Role),
				InvitedBy:    requester.ID,
				OccurredAt:   time.Now().UTC(),
			})
		if err != nil {
			return err
		}
		return s.outbox.WithTx(tx).Create(ctx, event)
	})
	if err != nil {
		return CompanyResponse{}, err
	}

	s.logger.Info("create company success",
		zap.String("request_id", rid),
		zap.String("company_id", comp.ID.String()),
	)
	resp := mapToResponse(comp)
	resp.Role = string(founder.Role)
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string, requester principal.User) (CompanyResponse, error) {
	m, err := s.access.Authorize(ctx, id, requester, rbac.ResourceCompany, rbac.ActionRead)
	if err != nil {
		return CompanyResponse{}, err
	}

	comp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CompanyResponse{}, companyerrors.ErrCompanyNotFound
		}
		s.logger.Error("get company failed", zap.String("company_id", id), zap.Error(err))
		return CompanyResponse{}, err
	}

	resp := mapToResponse(comp)
	resp.Role = string(m.Role)
	return resp, nil
}

func mapToResponse(c *Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}
