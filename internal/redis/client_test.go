package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-cards/internal/redis"
)

type ClientTestSuite struct {
	suite.Suite
	mr *miniredis.Miniredis
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
}

func (s *ClientTestSuite) TearDownTest() {
	s.mr.Close()
}

func (s *ClientTestSuite) TestNewClient() {
	testCases := []struct {
		name     string
		endpoint string
	}{
		{"host and port", s.mr.Addr()},
		{"url", "redis://" + s.mr.Addr() + "/0"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			client, err := redis.NewClient(tc.endpoint, nil)
			s.Require().NoError(err)
			defer func() { _ = client.Close() }()

			s.Require().NoError(client.Set(context.Background(), "k", "v", 0).Err())
			got, err := client.Get(context.Background(), "k").Result()
			s.Require().NoError(err)
			s.Assert().Equal("v", got)
		})
	}
}

func (s *ClientTestSuite) TestNewClientRequiresEndpoint() {
	_, err := redis.NewClient("", nil)
	s.Assert().Error(err)
}
