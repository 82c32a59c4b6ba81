package leavebalance

import (
	"context"
	"sort"

	"go-leave/internal/membership"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// memLedger is an in-memory Repository. History is kept in append order.
type memLedger struct {
	balances  map[string]*LeaveBalance
	history   []LeaveBalanceHistory
	appendErr error
	owner     *OwnerRow
}

func newMemLedger() *memLedger {
	return &memLedger{balances: map[string]*LeaveBalance{}}
}

func ledgerKey(membershipID uuid.UUID, t LeaveType) string {
	return membershipID.String() + "/" + string(t)
}

func (m *memLedger) seed(membershipID uuid.UUID, t LeaveType, days string) *LeaveBalance {
	b := &LeaveBalance{ID: uuid.New(), MembershipID: membershipID, Type: t, RemainingDays: decimal.RequireFromString(days)}
	m.balances[ledgerKey(membershipID, t)] = b
	return b
}

func (m *memLedger) remaining(membershipID uuid.UUID, t LeaveType) decimal.Decimal {
	return m.balances[ledgerKey(membershipID, t)].RemainingDays
}

func (m *memLedger) WithTx(*gorm.DB) Repository { return m }

func (m *memLedger) ListByMembership(_ context.Context, membershipID string) ([]LeaveBalance, error) {
	var out []LeaveBalance
	for _, b := range m.balances {
		if b.MembershipID.String() == membershipID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out, nil
}

func (m *memLedger) Find(_ context.Context, membershipID uuid.UUID, t LeaveType) (*LeaveBalance, error) {
	b, ok := m.balances[ledgerKey(membershipID, t)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *memLedger) FindForUpdate(ctx context.Context, membershipID uuid.UUID, t LeaveType) (*LeaveBalance, error) {
	return m.Find(ctx, membershipID, t)
}

func (m *memLedger) CreateIfAbsent(_ context.Context, b *LeaveBalance) (bool, error) {
	key := ledgerKey(b.MembershipID, b.Type)
	if _, ok := m.balances[key]; ok {
		return false, nil
	}
	cp := *b
	m.balances[key] = &cp
	return true, nil
}

func (m *memLedger) UpdateRemaining(_ context.Context, id uuid.UUID, remaining decimal.Decimal) error {
	for _, b := range m.balances {
		if b.ID == id {
			b.RemainingDays = remaining
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *memLedger) AppendHistory(_ context.Context, h *LeaveBalanceHistory) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.history = append(m.history, *h)
	return nil
}

func (m *memLedger) ListHistory(_ context.Context, membershipID string) ([]HistoryRow, error) {
	types := map[uuid.UUID]LeaveType{}
	for _, b := range m.balances {
		if b.MembershipID.String() == membershipID {
			types[b.ID] = b.Type
		}
	}

	var rows []HistoryRow
	for i := len(m.history) - 1; i >= 0; i-- {
		h := m.history[i]
		if t, ok := types[h.LeaveBalanceID]; ok {
			rows = append(rows, HistoryRow{LeaveBalanceHistory: h, Type: t, ActorName: "Manager", ActorEmail: "manager@mail.com"})
		}
	}
	return rows, nil
}

func (m *memLedger) FindOwner(context.Context, string) (*OwnerRow, error) {
	if m.owner == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.owner, nil
}

// fakeMemberships implements the reads membership.Access needs.
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
