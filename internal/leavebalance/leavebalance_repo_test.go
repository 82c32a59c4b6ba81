package leavebalance

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"go-leave/internal/shared/dbtest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// sqlLike matches the fragments in order, anywhere in the statement.
func sqlLike(fragments ...string) string {
	quoted := make([]string, len(fragments))
	for i, f := range fragments {
		quoted[i] = regexp.QuoteMeta(f)
	}
	return strings.Join(quoted, ".*")
}

func TestRepository_CreateIfAbsent(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		created  bool
	}{
		{name: "inserts a new row", affected: 1, created: true},
		{name: "concurrent insert wins", affected: 0, created: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := dbtest.New(t)
			b := &LeaveBalance{
				ID:            uuid.New(),
				MembershipID:  uuid.New(),
				Type:          LeaveTypePaid,
				RemainingDays: decimal.NewFromInt(25),
			}

			mock.ExpectBegin()
			mock.ExpectExec(sqlLike(
				`INSERT INTO "leave_balances"`,
				`ON CONFLICT ("membership_id","type") DO NOTHING`,
			)).
				WithArgs(b.ID.String(), b.MembershipID.String(), "PAID", "25", sqlmock.AnyArg()).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))
			mock.ExpectCommit()

			var created bool
			err := db.Transaction(func(tx *gorm.DB) error {
				var txErr error
				created, txErr = NewRepository(db).WithTx(tx).CreateIfAbsent(context.Background(), b)
				return txErr
			})

			assert.NoError(t, err)
			assert.Equal(t, tt.created, created)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindForUpdate_LocksRow(t *testing.T) {
	db, mock := dbtest.New(t)
	membershipID := uuid.New()
	id := uuid.New()

	mock.ExpectQuery(sqlLike(
		`SELECT * FROM "leave_balances"`,
		`membership_id = $1 AND type = $2`,
		`FOR UPDATE`,
	)).
		WithArgs(membershipID.String(), "RTT", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "membership_id", "type", "remaining_days"}).
			AddRow(id.String(), membershipID.String(), "RTT", "10.5"))

	b, err := NewRepository(db).FindForUpdate(context.Background(), membershipID, LeaveTypeRTT)

	assert.NoError(t, err)
	assert.Equal(t, id, b.ID)
	assert.Equal(t, "10.5", b.RemainingDays.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListHistory(t *testing.T) {
	db, mock := dbtest.New(t)
	membershipID := uuid.New().String()
	balanceID, actorID := uuid.New(), uuid.New()
	newer := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	older := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(sqlLike(
		`SELECT h.*, b.type AS type, u.name AS actor_name, u.email AS actor_email`,
		`FROM leave_balance_histories AS h`,
		`JOIN leave_balances AS b ON b.id = h.leave_balance_id`,
		`LEFT JOIN users AS u ON u.id = h.actor_id`,
		`b.membership_id = $1`,
		`ORDER BY h.created_at DESC`,
	)).
		WithArgs(membershipID).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "leave_balance_id", "change", "reason", "actor_id", "created_at", "type", "actor_name", "actor_email",
		}).
			AddRow(uuid.NewString(), balanceID.String(), "-2.5", "Congé approuvé", actorID.String(), newer, "PAID", "Bob Manager", "bob@example.com").
			AddRow(uuid.NewString(), balanceID.String(), "25", "Allocation initiale", actorID.String(), older, "PAID", "Bob Manager", "bob@example.com"))

	rows, err := NewRepository(db).ListHistory(context.Background(), membershipID)

	assert.NoError(t, err)
	if assert.Len(t, rows, 2) {
		assert.Equal(t, "-2.5", rows[0].Change.String())
		assert.Equal(t, LeaveTypePaid, rows[0].Type)
		assert.Equal(t, actorID, rows[0].ActorID)
		assert.Equal(t, "Bob Manager", rows[0].ActorName)
		assert.True(t, rows[0].CreatedAt.After(rows[1].CreatedAt))
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
