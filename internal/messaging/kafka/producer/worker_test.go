package producer

import (
	"context"
	"errors"
	"testing"

	"go-leave/internal/messaging/kafka"
	mock_kafka "go-leave/internal/messaging/kafka/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	written []kafkago.Message
	failFor map[string]error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if err, ok := w.failFor[string(m.Key)]; ok {
			return err
		}
		w.written = append(w.written, m)
	}
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes and marks sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_kafka.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{}

		repo.EXPECT().ListPending(gomock.Any(), batchSize).Return([]kafka.OutboxEvent{
			{ID: "e1", AggregateID: "m1", Topic: "leave.balance.v1", EventType: "leave_balance_changed", RequestID: "rid-1", Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkSent(gomock.Any(), "e1").Return(nil)

		sent, err := ProcessPendingEvents(ctx, repo, writer, zap.NewNop())

		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
		assert.Len(t, writer.written, 1)
		msg := writer.written[0]
		assert.Equal(t, "leave.balance.v1", msg.Topic)
		assert.Equal(t, []byte("m1"), msg.Key)
		assert.Len(t, msg.Headers, 3)
		assert.Equal(t, "request_id", msg.Headers[2].Key)
	})

	t.Run("publish failure marks failed and continues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_kafka.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{failFor: map[string]error{"bad": errors.New("broker down")}}

		repo.EXPECT().ListPending(gomock.Any(), batchSize).Return([]kafka.OutboxEvent{
			{ID: "e1", AggregateID: "bad", Topic: "t", Payload: []byte(`{}`)},
			{ID: "e2", AggregateID: "good", Topic: "t", Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkFailed(gomock.Any(), "e1", "broker down").Return(nil)
		repo.EXPECT().MarkSent(gomock.Any(), "e2").Return(nil)

		sent, err := ProcessPendingEvents(ctx, repo, writer, zap.NewNop())

		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_kafka.NewMockOutboxRepository(ctrl)

		repo.EXPECT().ListPending(gomock.Any(), batchSize).Return(nil, errors.New("db error"))

		_, err := ProcessPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop())

		assert.Error(t, err)
	})
}
