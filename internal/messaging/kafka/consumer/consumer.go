package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-leave/internal/events"
	"go-leave/internal/leavebalance"
	membershiperrors "go-leave/internal/membership/errors"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/shared/principal"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// MessageReader is the subset of *kafkago.Reader the consumers use.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type BalanceSeeder interface {
	SeedInitialBalances(ctx context.Context, companyID, membershipID string, allocations map[leavebalance.LeaveType]decimal.Decimal, actor principal.User) (int, error)
}

// Allocations keeps the configured entries that name a known leave type.
func Allocations(raw map[string]decimal.Decimal) map[leavebalance.LeaveType]decimal.Decimal {
	out := make(map[leavebalance.LeaveType]decimal.Decimal, len(raw))
	for k, v := range raw {
		t := leavebalance.LeaveType(k)
		if t.Valid() && v.IsPositive() {
			out[t] = v
		}
	}
	return out
}

var (
	retryBaseDelay = time.Second
	retryMaxDelay  = 30 * time.Second
)

// retryDelay doubles from retryBaseDelay and caps at retryMaxDelay.
func retryDelay(attempt int) time.Duration {
	d := retryBaseDelay
	for i := 1; i < attempt && d < retryMaxDelay; i++ {
		d *= 2
	}
	if d > retryMaxDelay {
		d = retryMaxDelay
	}
	return d
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// ConsumeMembershipCreated seeds the initial balances of every new
// membership until ctx is done. A message that fails to seed is retried in
// place, so the committed offset never moves past it.
func ConsumeMembershipCreated(
	ctx context.Context,
	reader MessageReader,
	seeder BalanceSeeder,
	allocations map[leavebalance.LeaveType]decimal.Decimal,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.membership_created")
	log.Info("membership consumer started", zap.Int("allocations", len(allocations)))

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("membership consumer stopped")
				return
			}
			log.Error("fetch membership message failed", zap.Error(err))
			continue
		}

		for attempt := 1; !handleMembershipCreated(ctx, msg, seeder, allocations, log); attempt++ {
			delay := retryDelay(attempt)
			log.Warn("retrying membership message",
				zap.Int64("offset", msg.Offset),
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay),
			)
			if !sleepCtx(ctx, delay) {
				log.Info("membership consumer stopped")
				return
			}
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit membership message failed", zap.Error(err))
		}
	}
}

// handleMembershipCreated reports whether msg is done with and can be
// committed.
func handleMembershipCreated(
	ctx context.Context,
	msg kafkago.Message,
	seeder BalanceSeeder,
	allocations map[leavebalance.LeaveType]decimal.Decimal,
	log *zap.Logger,
) bool {
	var event events.MembershipCreatedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode membership_created event failed", zap.Error(err))
		return true
	}
	if event.EventType != "" && event.EventType != events.MembershipCreatedEventType {
		log.Debug("skipping membership event", zap.String("event_type", event.EventType))
		return true
	}
	if len(allocations) == 0 {
		return true
	}

	if event.RequestID != "" {
		ctx = contextutil.WithRequestID(ctx, event.RequestID)
	}

	seeded, err := seeder.SeedInitialBalances(ctx, event.CompanyID, event.MembershipID, allocations, principal.New(event.InvitedBy))
	if err != nil {
		if errors.Is(err, membershiperrors.ErrMembershipNotFound) {
			log.Warn("membership gone before seeding, skipping",
				zap.String("membership_id", event.MembershipID),
				zap.String("company_id", event.CompanyID),
			)
			return true
		}

		log.Error("seed initial balances failed",
			zap.String("membership_id", event.MembershipID),
			zap.String("company_id", event.CompanyID),
			zap.Error(err),
		)
		return false
	}

	log.Info("initial balances seeded from membership_created event",
		zap.String("membership_id", event.MembershipID),
		zap.String("company_id", event.CompanyID),
		zap.Int("seeded", seeded),
	)
	return true
}
