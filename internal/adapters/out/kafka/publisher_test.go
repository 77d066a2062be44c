package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"tms/internal/adapters/out/kafka"
	"tms/internal/core/domain/events"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/load"
	"tms/internal/testutil"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWriter struct {
	mock.Mock
}

func (m *MockWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockWriter) Close() error {
	return m.Called().Error(0)
}

func TestPublisher_Publish_KeysByLoad(t *testing.T) {
	companyID := kernel.NewUUID()
	l := testutil.BuildLoad(t, companyID, testutil.LoadSpec{Number: "L-7"})
	writer := &MockWriter{}
	var written []kafkago.Message
	writer.On("WriteMessages", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { written = args.Get(1).([]kafkago.Message) }).
		Return(nil).Once()

	publisher := kafka.NewPublisherWithWriter(writer, kafka.DefaultTopic, nil)
	err := publisher.Publish(t.Context(), events.NewLoadCreated(l), events.NewLoadStatusChanged(l, load.Pending))

	require.NoError(t, err)
	writer.AssertExpectations(t)
	require.Len(t, written, 2)
	for _, msg := range written {
		assert.Equal(t, l.ID().String(), string(msg.Key))
	}
	assert.Equal(t, "event_type", written[0].Headers[0].Key)
	assert.Equal(t, "load.created", string(written[0].Headers[0].Value))

	var body map[string]any
	require.NoError(t, json.Unmarshal(written[0].Value, &body))
	assert.Equal(t, "load.created", body["type"])
	assert.Equal(t, companyID.String(), body["company_id"])
	assert.Equal(t, l.ID().String(), body["load_id"])
	assert.Equal(t, "L-7", body["load_number"])
	assert.Contains(t, body, "occurred_at")
}

func TestPublisher_Publish_SummaryKeyedByCompany(t *testing.T) {
	companyID := kernel.NewUUID()
	writer := &MockWriter{}
	writer.On("WriteMessages", mock.Anything, mock.MatchedBy(func(msgs []kafkago.Message) bool {
		return len(msgs) == 1 && string(msgs[0].Key) == companyID.String()
	})).Return(nil).Once()

	evt := events.NewFinancialSummaryReported(companyID, testutil.Window(t, "2024-01-01", "2024-01-01"),
		events.Totals{TotalLoads: 1, TotalRevenue: decimal.NewFromInt(10)}, time.Now())
	err := kafka.NewPublisherWithWriter(writer, kafka.DefaultTopic, nil).Publish(t.Context(), evt)

	require.NoError(t, err)
	writer.AssertExpectations(t)
}

func TestPublisher_Publish_WriteError(t *testing.T) {
	writer := &MockWriter{}
	broken := errors.New("broker unreachable")
	writer.On("WriteMessages", mock.Anything, mock.Anything).Return(broken)
	l := testutil.BuildLoad(t, kernel.NewUUID(), testutil.LoadSpec{})

	err := kafka.NewPublisherWithWriter(writer, "loads", nil).Publish(t.Context(), events.NewLoadCreated(l))

	require.ErrorIs(t, err, broken)
	assert.Contains(t, err.Error(), "loads")
}

func TestPublisher_Publish_NothingToSend(t *testing.T) {
	writer := &MockWriter{}

	require.NoError(t, kafka.NewPublisherWithWriter(writer, kafka.DefaultTopic, nil).Publish(t.Context()))
	writer.AssertNotCalled(t, "WriteMessages", mock.Anything, mock.Anything)
}

func TestPublisher_Close(t *testing.T) {
	writer := &MockWriter{}
	writer.On("Close").Return(nil).Once()

	require.NoError(t, kafka.NewPublisherWithWriter(writer, kafka.DefaultTopic, nil).Close())
	writer.AssertExpectations(t)
}
