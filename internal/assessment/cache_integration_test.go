//go:build integration

package assessment_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"tracegrid/internal/assessment"
	"tracegrid/internal/platform/config"
	platformredis "tracegrid/internal/platform/redis"
	"tracegrid/pkg/testutil/containers"
)

type RedisCacheSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	cache *assessment.RedisCache
}

func TestRedisCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())

	client, err := platformredis.New(config.RedisConfig{
		URL:          s.redis.URL,
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	s.Require().NoError(err)
	s.Require().NotNil(client)
	s.T().Cleanup(func() { _ = client.Close() })

	s.cache = assessment.NewRedisCache(client)
}

func (s *RedisCacheSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisCacheSuite) TestMissThenHit() {
	ctx := context.Background()
	key := "tracegrid:assessment:p1:soc2:abc123"

	_, found, err := s.cache.Get(ctx, key)
	s.Require().NoError(err)
	s.False(found)

	payload := []byte(`{"projectId":"p1"}`)
	s.Require().NoError(s.cache.Set(ctx, key, payload, time.Minute))

	got, found, err := s.cache.Get(ctx, key)
	s.Require().NoError(err)
	s.True(found)
	s.Equal(payload, got)
}

func (s *RedisCacheSuite) TestSetAppliesTTL() {
	ctx := context.Background()
	key := "tracegrid:assessment:p1:none:def456"

	s.Require().NoError(s.cache.Set(ctx, key, []byte("{}"), time.Minute))

	ttl, err := s.redis.Client.TTL(ctx, key).Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))
	s.LessOrEqual(ttl, time.Minute)
}

func (s *RedisCacheSuite) TestExpiredEntryMisses() {
	ctx := context.Background()
	key := "tracegrid:assessment:p2:soc2:short"

	s.Require().NoError(s.cache.Set(ctx, key, []byte("{}"), 100*time.Millisecond))
	time.Sleep(200 * time.Millisecond)

	_, found, err := s.cache.Get(ctx, key)
	s.Require().NoError(err)
	s.False(found)
}

func (s *RedisCacheSuite) TestOverwriteReplacesPayload() {
	ctx := context.Background()
	key := "tracegrid:assessment:p3:soc2:xyz"

	s.Require().NoError(s.cache.Set(ctx, key, []byte(`{"v":1}`), time.Minute))
	s.Require().NoError(s.cache.Set(ctx, key, []byte(`{"v":2}`), time.Minute))

	got, found, err := s.cache.Get(ctx, key)
	s.Require().NoError(err)
	s.True(found)
	s.Equal([]byte(`{"v":2}`), got)
}
