package leave_test

import (
	"context"
	"sort"
	"time"

	"go-leave/internal/leave"
	"go-leave/internal/leavebalance"
	leavebalanceerrors "go-leave/internal/leavebalance/errors"
	"go-leave/internal/membership"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type fakeMemberships struct {
	membership.Repository
	byID map[string]*membership.Membership
}

func (f *fakeMemberships) add(companyID uuid.UUID, role membership.Role) *membership.Membership {
	m := &membership.Membership{ID: uuid.New(), UserID: uuid.New(), CompanyID: companyID, Role: role}
	f.byID[m.ID.String()] = m
	return m
}

func (f *fakeMemberships) FindByID(_ context.Context, id string) (*membership.Membership, error) {
	if m, ok := f.byID[id]; ok {
		return m, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMemberships) FindByUserAndCompany(_ context.Context, userID, companyID string) (*membership.Membership, error) {
	for _, m := range f.byID {
		if m.UserID.String() == userID && m.CompanyID.String() == companyID {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// memLeaves is an in-memory Repository resolving companies through members.
type memLeaves struct {
	members  *fakeMemberships
	leaves   map[uuid.UUID]leave.Leave
	updates  int
	createFn func(l *leave.Leave) error
}

func newMemLeaves(members *fakeMemberships) *memLeaves {
	return &memLeaves{members: members, leaves: map[uuid.UUID]leave.Leave{}}
}

func (m *memLeaves) put(membershipID uuid.UUID, t leavebalance.LeaveType, start, end string, status leave.LeaveStatus) leave.Leave {
	l := leave.Leave{
		ID:           uuid.New(),
		MembershipID: membershipID,
		Type:         t,
		StartDate:    mustDate(start),
		EndDate:      mustDate(end),
		Status:       status,
		CreatedAt:    time.Now().Add(time.Duration(len(m.leaves)) * time.Second),
	}
	m.leaves[l.ID] = l
	return l
}

func (m *memLeaves) row(l leave.Leave) *leave.LeaveRow {
	companyID := uuid.Nil
	if mem, ok := m.members.byID[l.MembershipID.String()]; ok {
		companyID = mem.CompanyID
	}
	return &leave.LeaveRow{Leave: l, CompanyID: companyID}
}

func (m *memLeaves) WithTx(*gorm.DB) leave.Repository { return m }

func (m *memLeaves) Create(_ context.Context, l *leave.Leave) error {
	if m.createFn != nil {
		if err := m.createFn(l); err != nil {
			return err
		}
	}
	m.leaves[l.ID] = *l
	return nil
}

func (m *memLeaves) Update(_ context.Context, l *leave.Leave) error {
	m.updates++
	m.leaves[l.ID] = *l
	return nil
}

func (m *memLeaves) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.leaves, id)
	return nil
}

func (m *memLeaves) FindByID(_ context.Context, id string) (*leave.LeaveRow, error) {
	l, ok := m.leaves[uuid.MustParse(id)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m.row(l), nil
}

func (m *memLeaves) FindByIDForUpdate(ctx context.Context, id string) (*leave.LeaveRow, error) {
	return m.FindByID(ctx, id)
}

func (m *memLeaves) ListByMembership(_ context.Context, membershipID string) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, l := range m.leaves {
		if l.MembershipID.String() == membershipID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memLeaves) ListByCompany(_ context.Context, companyID string, status *leave.LeaveStatus) ([]leave.LeaveRow, error) {
	var out []leave.LeaveRow
	for _, l := range m.leaves {
		row := m.row(l)
		if row.CompanyID.String() != companyID {
			continue
		}
		if status != nil && l.Status != *status {
			continue
		}
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

func (m *memLeaves) CountByStatus(ctx context.Context, companyID string) ([]leave.StatusCount, error) {
	rows, _ := m.ListByCompany(ctx, companyID, nil)
	byStatus := map[leave.LeaveStatus]int64{}
	for _, r := range rows {
		byStatus[r.Status]++
	}
	var out []leave.StatusCount
	for st, n := range byStatus {
		out = append(out, leave.StatusCount{Status: st, Count: n})
	}
	return out, nil
}

func (m *memLeaves) ListCalendar(ctx context.Context, companyID string, from, to time.Time) ([]leave.CalendarRow, error) {
	rows, _ := m.ListByCompany(ctx, companyID, nil)
	var out []leave.CalendarRow
	for _, r := range rows {
		if r.Status != leave.StatusPending && r.Status != leave.StatusApproved {
			continue
		}
		if r.StartDate.After(to) || r.EndDate.Before(from) {
			continue
		}
		mem := m.members.byID[r.MembershipID.String()]
		out = append(out, leave.CalendarRow{
			Leave:     r.Leave,
			CompanyID: r.CompanyID,
			Role:      mem.Role,
			UserID:    mem.UserID,
			UserName:  "User " + mem.UserID.String()[:4],
			UserEmail: mem.UserID.String()[:4] + "@mail.com",
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (m *memLeaves) HasOverlap(_ context.Context, membershipID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (bool, error) {
	for _, l := range m.leaves {
		if l.MembershipID != membershipID || (excludeID != nil && l.ID == *excludeID) {
			continue
		}
		if l.Status != leave.StatusPending && l.Status != leave.StatusApproved {
			continue
		}
		if !(l.EndDate.Before(start) || l.StartDate.After(end)) {
			return true, nil
		}
	}
	return false, nil
}

// fakeLedger mirrors the debit rule of the balance ledger.
type fakeLedger struct {
	remaining   map[string]decimal.Decimal
	debits      []leavebalance.DebitRequest
	invalidated []string
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{remaining: map[string]decimal.Decimal{}}
}

func ledgerKey(membershipID uuid.UUID, t leavebalance.LeaveType) string {
	return membershipID.String() + "/" + string(t)
}

func (f *fakeLedger) set(membershipID uuid.UUID, t leavebalance.LeaveType, days string) {
	f.remaining[ledgerKey(membershipID, t)] = decimal.RequireFromString(days)
}

func (f *fakeLedger) RemainingDays(_ context.Context, membershipID uuid.UUID, t leavebalance.LeaveType) (decimal.Decimal, error) {
	return f.remaining[ledgerKey(membershipID, t)], nil
}

func (f *fakeLedger) Debit(_ context.Context, _ *gorm.DB, req leavebalance.DebitRequest) (leavebalance.BalanceResponse, error) {
	key := ledgerKey(req.MembershipID, req.Type)
	cur, ok := f.remaining[key]
	if !ok || cur.LessThan(req.Days) {
		return leavebalance.BalanceResponse{}, leavebalanceerrors.ErrInsufficientBalance
	}
	f.remaining[key] = cur.Sub(req.Days)
	f.debits = append(f.debits, req)
	return leavebalance.BalanceResponse{MembershipID: req.MembershipID.String(), Type: req.Type, RemainingDays: f.remaining[key]}, nil
}

func (f *fakeLedger) InvalidateCache(_ context.Context, membershipID string) {
	f.invalidated = append(f.invalidated, membershipID)
}

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
