package leavebalance

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"go-leave/internal/events"
	leavebalanceerrors "go-leave/internal/leavebalance/errors"
	"go-leave/internal/membership"
	membershiperrors "go-leave/internal/membership/errors"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/rbac"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/shared/principal"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const maxReasonLen = 500

// numeric(6,1)
var maxAbsChange = decimal.RequireFromString("99999.9")

type Service interface {
	GetBalances(ctx context.Context, membershipID string, requester principal.User) ([]BalanceResponse, error)
	ApplyChange(ctx context.Context, companyID, membershipID string, req ApplyChangeRequest, requester principal.User) (BalanceResponse, error)
	GetHistory(ctx context.Context, membershipID string, requester principal.User) ([]HistoryResponse, error)
	ExportHistoryPDF(ctx context.Context, membershipID string, requester principal.User) ([]byte, error)
	SeedInitialBalances(ctx context.Context, companyID, membershipID string, allocations map[LeaveType]decimal.Decimal, actor principal.User) (int, error)

	// RemainingDays reads the current balance without locking; a missing row is zero.
	RemainingDays(ctx context.Context, membershipID uuid.UUID, leaveType LeaveType) (decimal.Decimal, error)
	// Debit withdraws days inside tx and fails when the balance cannot cover them.
	Debit(ctx context.Context, tx *gorm.DB, req DebitRequest) (BalanceResponse, error)
	InvalidateCache(ctx context.Context, membershipID string)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	access *membership.Access
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	access *membership.Access,
	outbox kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leavebalance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavebalance.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		access: access,
		outbox: outbox,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// mutation is one ledger entry. requireFunds refuses to take the balance
// below zero; onlyIfMissing leaves existing balances untouched.
type mutation struct {
	companyID     string
	membershipID  uuid.UUID
	leaveType     LeaveType
	change        decimal.Decimal
	reason        string
	actorID       uuid.UUID
	requireFunds  bool
	onlyIfMissing bool
}

func (s *service) GetBalances(ctx context.Context, membershipID string, requester principal.User) ([]BalanceResponse, error) {
	if err := s.authorizeRead(ctx, membershipID, requester); err != nil {
		return nil, err
	}
	return s.cachedBalances(ctx, membershipID)
}

func (s *service) ApplyChange(
	ctx context.Context,
	companyID, membershipID string,
	req ApplyChangeRequest,
	requester principal.User,
) (BalanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("apply balance change requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("membership_id", membershipID),
		zap.String("type", string(req.Type)),
		zap.String("change", req.Change.String()),
	)

	actor, err := s.access.Authorize(ctx, companyID, requester, rbac.ResourceLeaveBalance, rbac.ActionAdjust)
	if err != nil {
		return BalanceResponse{}, err
	}

	target, err := s.access.Target(ctx, membershipID)
	if err != nil {
		return BalanceResponse{}, err
	}
	if target.CompanyID != actor.CompanyID {
		s.logger.Warn("apply balance change membership outside company",
			zap.String("company_id", companyID),
			zap.String("membership_id", membershipID),
		)
		return BalanceResponse{}, membershiperrors.ErrMembershipNotFound
	}

	reason, err := validateChange(req)
	if err != nil {
		return BalanceResponse{}, err
	}

	var bal *LeaveBalance
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		bal, _, txErr = s.apply(ctx, tx, mutation{
			companyID:    actor.CompanyID.String(),
			membershipID: target.ID,
			leaveType:    req.Type,
			change:       req.Change,
			reason:       reason,
			actorID:      actor.UserID,
		})
		return txErr
	})
	if err != nil {
		return BalanceResponse{}, err
	}

	s.InvalidateCache(ctx, target.ID.String())
	s.logger.Info("apply balance change success",
		zap.String("request_id", rid),
		zap.String("membership_id", membershipID),
		zap.String("balance_id", bal.ID.String()),
		zap.String("remaining_days", bal.RemainingDays.String()),
	)
	return mapToResponse(*bal), nil
}

func (s *service) GetHistory(ctx context.Context, membershipID string, requester principal.User) ([]HistoryResponse, error) {
	if err := s.authorizeRead(ctx, membershipID, requester); err != nil {
		return nil, err
	}

	rows, err := s.repo.ListHistory(ctx, membershipID)
	if err != nil {
		s.logger.Error("list balance history failed", zap.String("membership_id", membershipID), zap.Error(err))
		return nil, err
	}

	resp := make([]HistoryResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, mapToHistoryResponse(row))
	}
	return resp, nil
}

func (s *service) ExportHistoryPDF(ctx context.Context, membershipID string, requester principal.User) ([]byte, error) {
	history, err := s.GetHistory(ctx, membershipID, requester)
	if err != nil {
		return nil, err
	}

	balances, err := s.cachedBalances(ctx, membershipID)
	if err != nil {
		return nil, err
	}

	owner, err := s.repo.FindOwner(ctx, membershipID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, membershiperrors.ErrMembershipNotFound
		}
		return nil, err
	}

	return renderStatement(statement{
		owner:       *owner,
		balances:    balances,
		history:     history,
		generatedAt: time.Now().UTC(),
	})
}

// SeedInitialBalances creates the configured allocations for the types the
// membership has no balance for yet, so redelivered events are harmless.
func (s *service) SeedInitialBalances(
	ctx context.Context,
	companyID, membershipID string,
	allocations map[LeaveType]decimal.Decimal,
	actor principal.User,
) (int, error) {
	rid := contextutil.GetRequestID(ctx)
	target, err := s.access.Target(ctx, membershipID)
	if err != nil {
		return 0, err
	}
	if target.CompanyID.String() != companyID {
		return 0, membershiperrors.ErrMembershipNotFound
	}
	actorID, ok := actor.UUID()
	if !ok {
		actorID = target.UserID
	}

	types := make([]LeaveType, 0, len(allocations))
	for t, days := range allocations {
		if t.Valid() && days.IsPositive() {
			types = append(types, t)
		}
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	seeded := 0
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, t := range types {
			_, applied, err := s.apply(ctx, tx, mutation{
				companyID:     companyID,
				membershipID:  target.ID,
				leaveType:     t,
				change:        allocations[t],
				reason:        "Allocation initiale",
				actorID:       actorID,
				onlyIfMissing: true,
			})
			if err != nil {
				return err
			}
			if applied {
				seeded++
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("seed initial balances failed",
			zap.String("request_id", rid),
			zap.String("membership_id", membershipID),
			zap.Error(err),
		)
		return 0, err
	}

	if seeded > 0 {
		s.InvalidateCache(ctx, membershipID)
	}
	s.logger.Info("seed initial balances done",
		zap.String("request_id", rid),
		zap.String("membership_id", membershipID),
		zap.Int("seeded", seeded),
	)
	return seeded, nil
}

func (s *service) RemainingDays(ctx context.Context, membershipID uuid.UUID, leaveType LeaveType) (decimal.Decimal, error) {
	b, err := s.repo.Find(ctx, membershipID, leaveType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	return b.RemainingDays, nil
}

func (s *service) Debit(ctx context.Context, tx *gorm.DB, req DebitRequest) (BalanceResponse, error) {
	if !req.Days.IsPositive() {
		return BalanceResponse{}, leavebalanceerrors.ErrZeroChange
	}

	reason := req.Reason
	if utf8.RuneCountInString(reason) > maxReasonLen {
		reason = string([]rune(reason)[:maxReasonLen])
	}

	bal, _, err := s.apply(ctx, tx, mutation{
		companyID:    req.CompanyID,
		membershipID: req.MembershipID,
		leaveType:    req.Type,
		change:       req.Days.Neg(),
		reason:       reason,
		actorID:      req.ActorID,
		requireFunds: true,
	})
	if err != nil {
		return BalanceResponse{}, err
	}
	return mapToResponse(*bal), nil
}

// apply must run inside tx. It returns the resulting balance and whether a
// history row was written.
func (s *service) apply(ctx context.Context, tx *gorm.DB, m mutation) (*LeaveBalance, bool, error) {
	qtx := s.repo.WithTx(tx)

	bal, err := qtx.FindForUpdate(ctx, m.membershipID, m.leaveType)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if m.requireFunds {
			return nil, false, leavebalanceerrors.ErrInsufficientBalance
		}

		bal = &LeaveBalance{
			ID:            uuid.New(),
			MembershipID:  m.membershipID,
			Type:          m.leaveType,
			RemainingDays: decimal.Max(decimal.Zero, m.change),
		}
		created, err := qtx.CreateIfAbsent(ctx, bal)
		if err != nil {
			s.logger.Error("create balance failed", zap.String("membership_id", m.membershipID.String()), zap.Error(err))
			return nil, false, err
		}
		if !created {
			// lost the insert race; the row exists now
			bal, err = qtx.FindForUpdate(ctx, m.membershipID, m.leaveType)
			if err != nil {
				return nil, false, err
			}
			if m.onlyIfMissing {
				return bal, false, nil
			}
			if err := s.add(ctx, qtx, bal, m); err != nil {
				return nil, false, err
			}
		}
	case err != nil:
		s.logger.Error("lock balance failed", zap.String("membership_id", m.membershipID.String()), zap.Error(err))
		return nil, false, err
	default:
		if m.onlyIfMissing {
			return bal, false, nil
		}
		if err := s.add(ctx, qtx, bal, m); err != nil {
			return nil, false, err
		}
	}

	if err := qtx.AppendHistory(ctx, &LeaveBalanceHistory{
		ID:             uuid.New(),
		LeaveBalanceID: bal.ID,
		Change:         m.change,
		Reason:         m.reason,
		ActorID:        m.actorID,
	}); err != nil {
		s.logger.Error("append balance history failed", zap.String("balance_id", bal.ID.String()), zap.Error(err))
		return nil, false, err
	}

	if err := s.enqueueChanged(ctx, tx, bal, m); err != nil {
		return nil, false, err
	}
	return bal, true, nil
}

// add applies the delta to an existing row. Existing balances may go
// negative unless funds are required.
func (s *service) add(ctx context.Context, qtx Repository, bal *LeaveBalance, m mutation) error {
	next := bal.RemainingDays.Add(m.change)
	if m.requireFunds && next.IsNegative() {
		s.logger.Warn("balance insufficient",
			zap.String("membership_id", m.membershipID.String()),
			zap.String("type", string(m.leaveType)),
			zap.String("remaining_days", bal.RemainingDays.String()),
			zap.String("change", m.change.String()),
		)
		return leavebalanceerrors.ErrInsufficientBalance
	}
	if next.Abs().GreaterThan(maxAbsChange) {
		s.logger.Warn("balance out of range",
			zap.String("membership_id", m.membershipID.String()),
			zap.String("type", string(m.leaveType)),
			zap.String("remaining_days", bal.RemainingDays.String()),
			zap.String("change", m.change.String()),
		)
		return leavebalanceerrors.ErrInvalidChange
	}

	if err := qtx.UpdateRemaining(ctx, bal.ID, next); err != nil {
		s.logger.Error("update balance failed", zap.String("balance_id", bal.ID.String()), zap.Error(err))
		return err
	}
	bal.RemainingDays = next
	return nil
}

func (s *service) enqueueChanged(ctx context.Context, tx *gorm.DB, bal *LeaveBalance, m mutation) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event, err := kafka.NewOutboxEvent(rid, "leave_balance", m.membershipID.String(),
		events.LeaveBalanceChangedEventType, events.LeaveBalanceTopic,
		events.LeaveBalanceChangedEvent{
			EventType:     events.LeaveBalanceChangedEventType,
			RequestID:     rid,
			BalanceID:     bal.ID.String(),
			MembershipID:  m.membershipID.String(),
			CompanyID:     m.companyID,
			Type:          string(m.leaveType),
			Change:        m.change.String(),
			RemainingDays: bal.RemainingDays.String(),
			Reason:        m.reason,
			ActorID:       m.actorID.String(),
			OccurredAt:    time.Now().UTC(),
		})
	if err != nil {
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		s.logger.Error("balance outbox persist failed", zap.String("balance_id", bal.ID.String()), zap.Error(err))
		return err
	}
	return nil
}

func (s *service) authorizeRead(ctx context.Context, membershipID string, requester principal.User) error {
	target, err := s.access.Target(ctx, membershipID)
	if err != nil {
		return err
	}
	return s.access.OwnerOr(ctx, target, requester, rbac.ResourceLeaveBalance, rbac.ActionReadAny)
}

func validateChange(req ApplyChangeRequest) (string, error) {
	if !req.Type.Valid() {
		return "", leavebalanceerrors.ErrInvalidLeaveType
	}
	if req.Change.IsZero() {
		return "", leavebalanceerrors.ErrZeroChange
	}
	if !req.Change.Equal(req.Change.Round(1)) || req.Change.Abs().GreaterThan(maxAbsChange) {
		return "", leavebalanceerrors.ErrInvalidChange
	}

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return "", leavebalanceerrors.ErrReasonRequired
	}
	if utf8.RuneCountInString(reason) > maxReasonLen {
		return "", leavebalanceerrors.ErrReasonTooLong
	}
	return reason, nil
}

func mapToResponse(b LeaveBalance) BalanceResponse {
	return BalanceResponse{
		ID:            b.ID.String(),
		MembershipID:  b.MembershipID.String(),
		Type:          b.Type,
		RemainingDays: b.RemainingDays,
		UpdatedAt:     b.UpdatedAt,
	}
}

func mapToHistoryResponse(row HistoryRow) HistoryResponse {
	return HistoryResponse{
		ID:             row.ID.String(),
		LeaveBalanceID: row.LeaveBalanceID.String(),
		Type:           row.Type,
		Change:         row.Change,
		Reason:         row.Reason,
		Actor: ActorResponse{
			ID:    row.ActorID.String(),
			Name:  row.ActorName,
			Email: row.ActorEmail,
		},
		CreatedAt: row.CreatedAt,
	}
}
