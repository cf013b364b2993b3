package pagecache_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-cards/internal/errors"
	"github.com/KirkDiggler/rpg-cards/internal/pkg/clock"
	pagecache "github.com/KirkDiggler/rpg-cards/internal/repositories/page_cache"
)

type DiskRepositoryTestSuite struct {
	suite.Suite
	dir  string
	repo pagecache.Repository
	ctx  context.Context
}

func TestDiskRepositorySuite(t *testing.T) {
	suite.Run(t, new(DiskRepositoryTestSuite))
}

func (s *DiskRepositoryTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.ctx = context.Background()

	repo, err := pagecache.NewDiskRepository(&pagecache.DiskConfig{
		Dir:   s.dir,
		Clock: clock.Fixed{At: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *DiskRepositoryTestSuite) TestConfigValidation() {
	_, err := pagecache.NewDiskRepository(&pagecache.DiskConfig{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *DiskRepositoryTestSuite) TestMissIsNotFound() {
	_, err := s.repo.Get(s.ctx, pagecache.GetInput{Resource: "spell", Key: "fr:boule-de-feu"})
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *DiskRepositoryTestSuite) TestPutThenGet() {
	out, err := s.repo.Put(s.ctx, pagecache.PutInput{Resource: "spell", Key: "fr:boule-de-feu", HTML: "<h1>Boule de feu</h1>"})
	s.Require().NoError(err)
	s.Assert().Equal(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), out.Page.FetchedAt)

	// stored as a file named by the key
	raw, err := os.ReadFile(filepath.Join(s.dir, "spell", "fr:boule-de-feu"))
	s.Require().NoError(err)
	s.Assert().Equal("<h1>Boule de feu</h1>", string(raw))

	got, err := s.repo.Get(s.ctx, pagecache.GetInput{Resource: "spell", Key: "fr:boule-de-feu"})
	s.Require().NoError(err)
	s.Assert().Equal("<h1>Boule de feu</h1>", got.Page.HTML)
	s.Assert().Equal("fr:boule-de-feu", got.Page.Key)
}

func (s *DiskRepositoryTestSuite) TestResourcesDoNotCollide() {
	_, err := s.repo.Put(s.ctx, pagecache.PutInput{Resource: "spell", Key: "en:light", HTML: "spell"})
	s.Require().NoError(err)
	_, err = s.repo.Put(s.ctx, pagecache.PutInput{Resource: "feat", Key: "en:light", HTML: "feat"})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, pagecache.GetInput{Resource: "spell", Key: "en:light"})
	s.Require().NoError(err)
	s.Assert().Equal("spell", got.Page.HTML)
}

func (s *DiskRepositoryTestSuite) TestConcurrentWritersLeaveCompletePage() {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.repo.Put(s.ctx, pagecache.PutInput{Resource: "spell", Key: "en:fireball", HTML: "<h1>Fireball</h1>"})
			s.Assert().NoError(err)
		}()
	}
	wg.Wait()

	got, err := s.repo.Get(s.ctx, pagecache.GetInput{Resource: "spell", Key: "en:fireball"})
	s.Require().NoError(err)
	s.Assert().Equal("<h1>Fireball</h1>", got.Page.HTML)

	entries, err := os.ReadDir(filepath.Join(s.dir, "spell"))
	s.Require().NoError(err)
	s.Assert().Len(entries, 1, "temporary files must not be left behind")
}

func (s *DiskRepositoryTestSuite) TestRejectsBadKeys() {
	testCases := []struct {
		name     string
		resource string
		key      string
	}{
		{"empty resource", "", "fr:x"},
		{"empty key", "spell", ""},
		{"path traversal", "spell", "../../etc"},
		{"separator in key", "spell", "fr:a/b"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Put(s.ctx, pagecache.PutInput{Resource: tc.resource, Key: tc.key, HTML: "x"})
			s.Assert().True(errors.IsInvalidArgument(err))
		})
	}
}
