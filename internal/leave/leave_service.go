package leave

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-leave/internal/events"
	leaveerrors "go-leave/internal/leave/errors"
	"go-leave/internal/leavebalance"
	leavebalanceerrors "go-leave/internal/leavebalance/errors"
	"go-leave/internal/membership"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/rbac"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/shared/principal"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// Ledger is the part of the balance ledger the lifecycle depends on.
type Ledger interface {
	RemainingDays(ctx context.Context, membershipID uuid.UUID, leaveType leavebalance.LeaveType) (decimal.Decimal, error)
	Debit(ctx context.Context, tx *gorm.DB, req leavebalance.DebitRequest) (leavebalance.BalanceResponse, error)
	InvalidateCache(ctx context.Context, membershipID string)
}

type Service interface {
	Create(ctx context.Context, membershipID string, req CreateLeaveRequest, requester principal.User) (LeaveResponse, error)
	Review(ctx context.Context, companyID, leaveID string, req ReviewLeaveRequest, requester principal.User) (LeaveResponse, error)
	Update(ctx context.Context, companyID, leaveID string, req UpdateLeaveRequest, requester principal.User) (LeaveResponse, error)
	Delete(ctx context.Context, companyID, leaveID string, requester principal.User) error
	GetByID(ctx context.Context, companyID, leaveID string, requester principal.User) (LeaveResponse, error)
	GetMembershipLeaves(ctx context.Context, membershipID string, requester principal.User) ([]LeaveResponse, error)
	GetCompanyLeaves(ctx context.Context, companyID string, filter CompanyLeavesFilter, requester principal.User) ([]LeaveResponse, error)
	GetLeaveStats(ctx context.Context, companyID string, requester principal.User) (LeaveStatsResponse, error)
	GetLeaveCalendar(ctx context.Context, companyID, from, to string, requester principal.User) ([]CalendarEntryResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	access *membership.Access
	ledger Ledger
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	access *membership.Access,
	ledger Ledger,
	outbox kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		access: access,
		ledger: ledger,
		outbox: outbox,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

type period struct {
	start   time.Time
	end     time.Time
	halfDay *HalfDayPeriod
	days    decimal.Decimal
}

func (s *service) Create(ctx context.Context, membershipID string, req CreateLeaveRequest, requester principal.User) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create leave requested",
		zap.String("request_id", rid),
		zap.String("membership_id", membershipID),
		zap.String("type", string(req.Type)),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	target, err := s.access.Target(ctx, membershipID)
	if err != nil {
		return LeaveResponse{}, err
	}
	if target.UserID.String() != requester.ID {
		s.logger.Warn("create leave for another member",
			zap.String("membership_id", membershipID),
			zap.String("user_id", requester.ID),
		)
		return LeaveResponse{}, leaveerrors.ErrNotLeaveOwner
	}
	companyID := target.CompanyID.String()
	if _, err := s.access.Authorize(ctx, companyID, requester, rbac.ResourceLeave, rbac.ActionCreate); err != nil {
		return LeaveResponse{}, err
	}

	p, err := parsePeriod(req.Type, req.StartDate, req.EndDate, req.HalfDayPeriod)
	if err != nil {
		s.logger.Warn("create leave validation failed", zap.String("membership_id", membershipID), zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := s.ensureAffordable(ctx, target.ID, req.Type, p.days); err != nil {
		return LeaveResponse{}, err
	}

	l := &Leave{
		ID:            uuid.New(),
		MembershipID:  target.ID,
		Type:          req.Type,
		StartDate:     p.start,
		EndDate:       p.end,
		HalfDayPeriod: p.halfDay,
		Status:        StatusPending,
		Reason:        strings.TrimSpace(req.Reason),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := s.ensureNoOverlap(ctx, qtx, l); err != nil {
			return err
		}
		if err := qtx.Create(ctx, l); err != nil {
			s.logger.Error("create leave persist failed", zap.String("membership_id", membershipID), zap.Error(err))
			return err
		}
		return s.enqueueCreated(ctx, tx, companyID, l, p.days)
	})
	if err != nil {
		return LeaveResponse{}, err
	}

	s.invalidateStats(ctx, companyID)
	s.logger.Info("create leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", l.ID.String()),
		zap.String("membership_id", membershipID),
		zap.String("days", p.days.String()),
	)
	return mapToResponse(*l, companyID), nil
}

func (s *service) Review(ctx context.Context, companyID, leaveID string, req ReviewLeaveRequest, requester principal.User) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("review leave requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("leave_id", leaveID),
		zap.String("status", string(req.Status)),
	)

	actor, err := s.access.Authorize(ctx, companyID, requester, rbac.ResourceLeave, rbac.ActionReview)
	if err != nil {
		return LeaveResponse{}, err
	}
	if req.Status != StatusApproved && req.Status != StatusRejected {
		return LeaveResponse{}, leaveerrors.ErrInvalidReviewStatus
	}

	var reviewed Leave
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		row, err := s.findInCompany(ctx, qtx, leaveID, actor.CompanyID, true)
		if err != nil {
			return err
		}
		if row.Status != StatusPending {
			s.logger.Warn("review leave not pending",
				zap.String("leave_id", leaveID),
				zap.String("status", string(row.Status)),
			)
			return leaveerrors.ErrLeaveNotPending
		}
		if row.MembershipID == actor.ID {
			s.logger.Warn("review own leave refused", zap.String("leave_id", leaveID), zap.String("user_id", requester.ID))
			return leaveerrors.ErrSelfReview
		}

		reviewed = row.Leave
		managerID := actor.UserID
		now := time.Now().UTC()
		reviewed.Status = req.Status
		reviewed.ManagerID = &managerID
		reviewed.ManagerNote = nil
		if note := strings.TrimSpace(req.ManagerNote); note != "" {
			reviewed.ManagerNote = &note
		}
		reviewed.ReviewedAt = &now

		if err := qtx.Update(ctx, &reviewed); err != nil {
			s.logger.Error("review leave persist failed", zap.String("leave_id", leaveID), zap.Error(err))
			return err
		}

		if reviewed.Status == StatusApproved {
			if _, err := s.ledger.Debit(ctx, tx, leavebalance.DebitRequest{
				CompanyID:    actor.CompanyID.String(),
				MembershipID: reviewed.MembershipID,
				Type:         reviewed.Type,
				Days:         reviewed.Days(),
				Reason:       approvalReason(reviewed),
				ActorID:      actor.UserID,
			}); err != nil {
				s.logger.Warn("review leave debit failed", zap.String("leave_id", leaveID), zap.Error(err))
				return err
			}
		}

		return s.enqueueReviewed(ctx, tx, actor.CompanyID.String(), &reviewed)
	})
	if err != nil {
		return LeaveResponse{}, err
	}

	if reviewed.Status == StatusApproved {
		s.ledger.InvalidateCache(ctx, reviewed.MembershipID.String())
	}
	s.invalidateStats(ctx, actor.CompanyID.String())
	s.logger.Info("review leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", leaveID),
		zap.String("status", string(reviewed.Status)),
	)
	return mapToResponse(reviewed, actor.CompanyID.String()), nil
}

func (s *service) Update(ctx context.Context, companyID, leaveID string, req UpdateLeaveRequest, requester principal.User) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update leave requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("leave_id", leaveID),
	)

	member, err := s.access.Member(ctx, companyID, requester)
	if err != nil {
		return LeaveResponse{}, err
	}

	var updated Leave
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		row, err := s.findInCompany(ctx, qtx, leaveID, member.CompanyID, true)
		if err != nil {
			return err
		}
		if err := s.authorizeOwnerOrManager(ctx, member, row, requester); err != nil {
			return err
		}
		if row.Status != StatusPending {
			return leaveerrors.ErrLeaveNotEditable
		}

		p, err := parsePeriod(req.Type, req.StartDate, req.EndDate, req.HalfDayPeriod)
		if err != nil {
			return err
		}
		if err := s.ensureAffordable(ctx, row.MembershipID, req.Type, p.days); err != nil {
			return err
		}

		updated = row.Leave
		updated.Type = req.Type
		updated.StartDate = p.start
		updated.EndDate = p.end
		updated.HalfDayPeriod = p.halfDay
		updated.Reason = strings.TrimSpace(req.Reason)

		if err := s.ensureNoOverlap(ctx, qtx, &updated); err != nil {
			return err
		}
		if err := qtx.Update(ctx, &updated); err != nil {
			s.logger.Error("update leave persist failed", zap.String("leave_id", leaveID), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("update leave failed", zap.String("leave_id", leaveID), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.invalidateStats(ctx, member.CompanyID.String())
	s.logger.Info("update leave success", zap.String("request_id", rid), zap.String("leave_id", leaveID))
	return mapToResponse(updated, member.CompanyID.String()), nil
}

func (s *service) Delete(ctx context.Context, companyID, leaveID string, requester principal.User) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete leave requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("leave_id", leaveID),
	)

	member, err := s.access.Member(ctx, companyID, requester)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		row, err := s.findInCompany(ctx, qtx, leaveID, member.CompanyID, true)
		if err != nil {
			return err
		}
		if err := s.authorizeOwnerOrManager(ctx, member, row, requester); err != nil {
			return err
		}
		if row.Status != StatusPending {
			return leaveerrors.ErrLeaveNotEditable
		}
		if err := qtx.Delete(ctx, row.ID); err != nil {
			s.logger.Error("delete leave persist failed", zap.String("leave_id", leaveID), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateStats(ctx, member.CompanyID.String())
	s.logger.Info("delete leave success", zap.String("request_id", rid), zap.String("leave_id", leaveID))
	return nil
}

func (s *service) GetByID(ctx context.Context, companyID, leaveID string, requester principal.User) (LeaveResponse, error) {
	member, err := s.access.Member(ctx, companyID, requester)
	if err != nil {
		return LeaveResponse{}, err
	}

	row, err := s.findInCompany(ctx, s.repo, leaveID, member.CompanyID, false)
	if err != nil {
		return LeaveResponse{}, err
	}
	if row.MembershipID != member.ID {
		if _, err := s.access.Authorize(ctx, companyID, requester, rbac.ResourceLeave, rbac.ActionReadCompany); err != nil {
			return LeaveResponse{}, err
		}
	}
	return mapToResponse(row.Leave, row.CompanyID.String()), nil
}

func (s *service) GetMembershipLeaves(ctx context.Context, membershipID string, requester principal.User) ([]LeaveResponse, error) {
	target, err := s.access.Target(ctx, membershipID)
	if err != nil {
		return nil, err
	}
	if err := s.access.OwnerOr(ctx, target, requester, rbac.ResourceLeave, rbac.ActionReadCompany); err != nil {
		return nil, err
	}

	leaves, err := s.repo.ListByMembership(ctx, target.ID.String())
	if err != nil {
		s.logger.Error("list membership leaves failed", zap.String("membership_id", membershipID), zap.Error(err))
		return nil, err
	}

	resp := make([]LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		resp = append(resp, mapToResponse(l, target.CompanyID.String()))
	}
	return resp, nil
}

func (s *service) GetCompanyLeaves(ctx context.Context, companyID string, filter CompanyLeavesFilter, requester principal.User) ([]LeaveResponse, error) {
	actor, err := s.access.Authorize(ctx, companyID, requester, rbac.ResourceLeave, rbac.ActionReadCompany)
	if err != nil {
		return nil, err
	}

	var status *LeaveStatus
	if filter.Status != "" {
		st := LeaveStatus(strings.ToUpper(strings.TrimSpace(filter.Status)))
		if !st.Valid() {
			return nil, leaveerrors.ErrInvalidStatusFilter
		}
		status = &st
	}

	rows, err := s.repo.ListByCompany(ctx, actor.CompanyID.String(), status)
	if err != nil {
		s.logger.Error("list company leaves failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, err
	}

	resp := make([]LeaveResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, mapToResponse(row.Leave, row.CompanyID.String()))
	}
	return resp, nil
}

func (s *service) GetLeaveStats(ctx context.Context, companyID string, requester principal.User) (LeaveStatsResponse, error) {
	actor, err := s.access.Authorize(ctx, companyID, requester, rbac.ResourceLeave, rbac.ActionReadCompany)
	if err != nil {
		return LeaveStatsResponse{}, err
	}
	return s.cachedStats(ctx, actor.CompanyID.String())
}

func (s *service) GetLeaveCalendar(ctx context.Context, companyID, from, to string, requester principal.User) ([]CalendarEntryResponse, error) {
	actor, err := s.access.Authorize(ctx, companyID, requester, rbac.ResourceLeave, rbac.ActionReadCompany)
	if err != nil {
		return nil, err
	}

	fromDate, err := parseDate(from)
	if err != nil {
		return nil, err
	}
	toDate, err := parseDate(to)
	if err != nil {
		return nil, err
	}
	if fromDate.After(toDate) {
		return nil, leaveerrors.ErrInvalidDateRange
	}

	rows, err := s.repo.ListCalendar(ctx, actor.CompanyID.String(), fromDate, toDate)
	if err != nil {
		s.logger.Error("list leave calendar failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, err
	}

	resp := make([]CalendarEntryResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, mapToCalendarEntry(row))
	}
	return resp, nil
}

func (s *service) computeStats(ctx context.Context, companyID string) (LeaveStatsResponse, error) {
	counts, err := s.repo.CountByStatus(ctx, companyID)
	if err != nil {
		s.logger.Error("count leaves by status failed", zap.String("company_id", companyID), zap.Error(err))
		return LeaveStatsResponse{}, err
	}

	approved := StatusApproved
	rows, err := s.repo.ListByCompany(ctx, companyID, &approved)
	if err != nil {
		s.logger.Error("list approved leaves failed", zap.String("company_id", companyID), zap.Error(err))
		return LeaveStatsResponse{}, err
	}

	resp := LeaveStatsResponse{
		CompanyID:          companyID,
		ByStatus:           make(map[LeaveStatus]int64, len(LeaveStatuses)),
		ApprovedDaysByType: make(map[leavebalance.LeaveType]decimal.Decimal, len(leavebalance.LeaveTypes)),
	}
	for _, st := range LeaveStatuses {
		resp.ByStatus[st] = 0
	}
	for _, t := range leavebalance.LeaveTypes {
		resp.ApprovedDaysByType[t] = decimal.Zero
	}

	for _, c := range counts {
		resp.ByStatus[c.Status] += c.Count
		resp.Total += c.Count
	}
	for _, row := range rows {
		resp.ApprovedDaysByType[row.Type] = resp.ApprovedDaysByType[row.Type].Add(row.Days())
	}
	return resp, nil
}

func (s *service) findInCompany(ctx context.Context, repo Repository, leaveID string, companyID uuid.UUID, lock bool) (*LeaveRow, error) {
	if _, err := uuid.Parse(leaveID); err != nil {
		return nil, leaveerrors.ErrLeaveNotFound
	}

	find := repo.FindByID
	if lock {
		find = repo.FindByIDForUpdate
	}

	row, err := find(ctx, leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveerrors.ErrLeaveNotFound
		}
		s.logger.Error("find leave failed", zap.String("leave_id", leaveID), zap.Error(err))
		return nil, err
	}
	if row.CompanyID != companyID {
		s.logger.Warn("leave outside company",
			zap.String("leave_id", leaveID),
			zap.String("company_id", companyID.String()),
		)
		return nil, leaveerrors.ErrLeaveNotFound
	}
	return row, nil
}

func (s *service) authorizeOwnerOrManager(ctx context.Context, member *membership.Membership, row *LeaveRow, requester principal.User) error {
	if row.MembershipID == member.ID {
		return nil
	}
	_, err := s.access.Authorize(ctx, member.CompanyID.String(), requester, rbac.ResourceLeave, rbac.ActionManage)
	return err
}

func (s *service) ensureAffordable(ctx context.Context, membershipID uuid.UUID, leaveType leavebalance.LeaveType, days decimal.Decimal) error {
	remaining, err := s.ledger.RemainingDays(ctx, membershipID, leaveType)
	if err != nil {
		s.logger.Error("read balance failed", zap.String("membership_id", membershipID.String()), zap.Error(err))
		return err
	}
	if remaining.LessThan(days) {
		s.logger.Warn("leave exceeds balance",
			zap.String("membership_id", membershipID.String()),
			zap.String("type", string(leaveType)),
			zap.String("remaining_days", remaining.String()),
			zap.String("days", days.String()),
		)
		return leavebalanceerrors.ErrInsufficientBalance
	}
	return nil
}

// ensureNoOverlap ignores l itself so updates can keep their own period.
func (s *service) ensureNoOverlap(ctx context.Context, qtx Repository, l *Leave) error {
	overlap, err := qtx.HasOverlap(ctx, l.MembershipID, l.StartDate, l.EndDate, &l.ID)
	if err != nil {
		s.logger.Error("leave overlap check failed", zap.String("membership_id", l.MembershipID.String()), zap.Error(err))
		return err
	}
	if overlap {
		s.logger.Warn("leave overlap detected",
			zap.String("membership_id", l.MembershipID.String()),
			zap.String("start_date", l.StartDate.Format(dateLayout)),
			zap.String("end_date", l.EndDate.Format(dateLayout)),
		)
		return leaveerrors.ErrLeaveOverlap
	}
	return nil
}

func (s *service) enqueueCreated(ctx context.Context, tx *gorm.DB, companyID string, l *Leave, days decimal.Decimal) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event, err := kafka.NewOutboxEvent(rid, "leave", l.ID.String(),
		events.LeaveCreatedEventType, events.LeaveLifecycleTopic,
		events.LeaveCreatedEvent{
			EventType:    events.LeaveCreatedEventType,
			RequestID:    rid,
			LeaveID:      l.ID.String(),
			MembershipID: l.MembershipID.String(),
			CompanyID:    companyID,
			Type:         string(l.Type),
			StartDate:    l.StartDate.Format(dateLayout),
			EndDate:      l.EndDate.Format(dateLayout),
			Days:         days.String(),
			OccurredAt:   time.Now().UTC(),
		})
	if err != nil {
		return err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		s.logger.Error("leave outbox persist failed", zap.String("leave_id", l.ID.String()), zap.Error(err))
		return err
	}
	return nil
}

func (s *service) enqueueReviewed(ctx context.Context, tx *gorm.DB, companyID string, l *Leave) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event, err := kafka.NewOutboxEvent(rid, "leave", l.ID.String(),
		events.LeaveReviewedEventType, events.LeaveLifecycleTopic,
		events.LeaveReviewedEvent{
			EventType:    events.LeaveReviewedEventType,
			RequestID:    rid,
			LeaveID:      l.ID.String(),
			MembershipID: l.MembershipID.String(),
			CompanyID:    companyID,
			Status:       string(l.Status),
			ManagerID:    l.ManagerID.String(),
			OccurredAt:   time.Now().UTC(),
		})
	if err != nil {
		return err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		s.logger.Error("leave outbox persist failed", zap.String("leave_id", l.ID.String()), zap.Error(err))
		return err
	}
	return nil
}

func parsePeriod(leaveType leavebalance.LeaveType, startDate, endDate string, halfDay *HalfDayPeriod) (period, error) {
	if !leaveType.Valid() {
		return period{}, leavebalanceerrors.ErrInvalidLeaveType
	}

	start, err := parseDate(startDate)
	if err != nil {
		return period{}, err
	}
	end, err := parseDate(endDate)
	if err != nil {
		return period{}, err
	}
	if start.After(end) {
		return period{}, leaveerrors.ErrInvalidDateRange
	}

	if halfDay != nil {
		if !halfDay.Valid() {
			return period{}, apperror.InvalidField("HalfDayPeriod")
		}
		if !start.Equal(end) {
			return period{}, leaveerrors.ErrHalfDayMultiDay
		}
	}

	days := WorkingDays(start, end, halfDay)
	if days.IsZero() {
		return period{}, leaveerrors.ErrNoWorkingDays
	}
	return period{start: start, end: end, halfDay: halfDay, days: days}, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func approvalReason(l Leave) string {
	return fmt.Sprintf("Congé approuvé du %s au %s", l.StartDate.Format("02/01/2006"), l.EndDate.Format("02/01/2006"))
}

func mapToResponse(l Leave, companyID string) LeaveResponse {
	resp := LeaveResponse{
		ID:            l.ID.String(),
		MembershipID:  l.MembershipID.String(),
		CompanyID:     companyID,
		Type:          l.Type,
		StartDate:     l.StartDate.Format(dateLayout),
		EndDate:       l.EndDate.Format(dateLayout),
		HalfDayPeriod: l.HalfDayPeriod,
		Status:        l.Status,
		Reason:        l.Reason,
		Days:          l.Days(),
		ManagerNote:   l.ManagerNote,
		ReviewedAt:    l.ReviewedAt,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
	if l.ManagerID != nil {
		v := l.ManagerID.String()
		resp.ManagerID = &v
	}
	return resp
}

func mapToCalendarEntry(row CalendarRow) CalendarEntryResponse {
	return CalendarEntryResponse{
		LeaveID:       row.ID.String(),
		Type:          row.Type,
		StartDate:     row.StartDate.Format(dateLayout),
		EndDate:       row.EndDate.Format(dateLayout),
		HalfDayPeriod: row.HalfDayPeriod,
		Status:        row.Status,
		Days:          row.Days(),
		Membership: CalendarMember{
			MembershipID: row.MembershipID.String(),
			Role:         row.Role,
			UserID:       row.UserID.String(),
			UserName:     row.UserName,
			UserEmail:    row.UserEmail,
		},
	}
}
