//go:build integration

package audit_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"

	"tracegrid/internal/audit"
	"tracegrid/pkg/testutil/containers"
)

const kafkaTestTopic = "tracegrid.audit.test"

type KafkaPublisherSuite struct {
	suite.Suite
	redpanda *containers.RedpandaContainer
	consumer *kgo.Client
}

func TestKafkaPublisherSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(KafkaPublisherSuite))
}

func (s *KafkaPublisherSuite) SetupSuite() {
	s.redpanda = containers.NewRedpandaContainer(s.T())

	admin, err := kgo.NewClient(kgo.SeedBrokers(s.redpanda.Broker))
	s.Require().NoError(err)
	defer admin.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_, err = kadm.NewClient(admin).CreateTopics(ctx, 1, 1, nil, kafkaTestTopic)
	s.Require().NoError(err)

	s.consumer, err = kgo.NewClient(
		kgo.SeedBrokers(s.redpanda.Broker),
		kgo.ConsumeTopics(kafkaTestTopic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	s.Require().NoError(err)
	s.T().Cleanup(s.consumer.Close)
}

func (s *KafkaPublisherSuite) TestPublishDeliversKeyedEvent() {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	publisher, err := audit.NewKafkaPublisher([]string{s.redpanda.Broker}, kafkaTestTopic, logger)
	s.Require().NoError(err)
	defer publisher.Close()

	event := audit.Event{
		ID:        uuid.New(),
		Timestamp: time.Now().UTC().Truncate(time.Microsecond),
		ProjectID: "p1",
		Action:    "assessment_run",
		Detail:    "standard=iso-27001",
	}
	publisher.Publish(ctx, event)
	s.Require().NoError(publisher.Flush(ctx))

	pollCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	fetches := s.consumer.PollFetches(pollCtx)
	s.Require().NoError(fetches.Err())

	records := fetches.Records()
	s.Require().Len(records, 1)
	s.Equal("p1", string(records[0].Key), "records are keyed by project id")

	var got audit.Event
	s.Require().NoError(json.Unmarshal(records[0].Value, &got))
	s.Equal(event.ID, got.ID)
	s.Equal("assessment_run", got.Action)
	s.Equal("standard=iso-27001", got.Detail)
}

func (s *KafkaPublisherSuite) TestNilPublisherIsSafe() {
	var publisher *audit.KafkaPublisher
	publisher.Publish(context.Background(), audit.Event{})
	s.NoError(publisher.Flush(context.Background()))
	publisher.Close()
}
