package batch_test

import (
	"context"
	"hash/fnv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-cards/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-cards/internal/errors"
	"github.com/KirkDiggler/rpg-cards/internal/orchestrators/batch"
	"github.com/KirkDiggler/rpg-cards/internal/vocab"
)

type ResolverTestSuite struct {
	suite.Suite
	ctx    context.Context
	spells map[string]*dnd5e.Spell
	items  map[string]*dnd5e.MagicItem
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) SetupTest() {
	s.ctx = context.Background()

	s.spells = map[string]*dnd5e.Spell{}
	for _, sp := range []struct {
		slug  string
		title string
		level int
	}{
		{"fireball", "Fireball", 3},
		{"counterspell", "Counterspell", 3},
		{"bless", "Bless", 1},
		{"fire-bolt", "Fire Bolt", 0},
		{"wish", "Wish", 9},
		{"identify", "Identify", 1},
	} {
		ref := dnd5e.Reference{Language: vocab.English, Slug: sp.slug}
		s.spells[ref.String()] = &dnd5e.Spell{Reference: ref, Title: sp.title, Level: sp.level}
	}

	s.items = map[string]*dnd5e.MagicItem{}
	for _, it := range []struct {
		slug   string
		title  string
		rarity vocab.MagicItemRarity
	}{
		{"ring-of-protection", "Ring of Protection", vocab.RarityRare},
		{"wand-of-magic-missiles", "Wand of Magic Missiles", vocab.RarityUncommon},
		{"bag-of-holding", "Bag of Holding", vocab.RarityUncommon},
		{"vorpal-sword", "Vorpal Sword", vocab.RarityLegendary},
	} {
		ref := dnd5e.Reference{Language: vocab.English, Slug: it.slug}
		s.items[ref.String()] = &dnd5e.MagicItem{Reference: ref, Title: it.title, Rarity: it.rarity}
	}
}

// latency derives a delay from the reference so completion order differs
// from request order
func latency(ref dnd5e.Reference, salt string) time.Duration {
	h := fnv.New32a()
	_, _ = h.Write([]byte(salt + ref.String()))
	return time.Duration(h.Sum32()%20) * time.Millisecond
}

func (s *ResolverTestSuite) scrapeSpell(salt string) func(context.Context, dnd5e.Reference) (*dnd5e.Spell, error) {
	return func(ctx context.Context, ref dnd5e.Reference) (*dnd5e.Spell, error) {
		select {
		case <-time.After(latency(ref, salt)):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		spell, ok := s.spells[ref.String()]
		if !ok {
			return nil, errors.ScrapingFailed(ref.Slug, "div.content")
		}
		return spell, nil
	}
}

func (s *ResolverTestSuite) spellRefs(slugs ...string) []dnd5e.Reference {
	refs := make([]dnd5e.Reference, len(slugs))
	for i, slug := range slugs {
		refs[i] = dnd5e.Reference{Language: vocab.English, Slug: slug}
	}
	return refs
}

func titles[T any](records []T, title func(T) string) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = title(r)
	}
	return out
}

func spellTitle(s *dnd5e.Spell) string    { return s.Title }
func itemTitle(i *dnd5e.MagicItem) string { return i.Title }

func (s *ResolverTestSuite) TestSpellsAreSortedByLevelThenTitle() {
	out, err := batch.Resolve(s.ctx, &batch.ResolveInput[dnd5e.Reference, *dnd5e.Spell]{
		Kind:       "spell",
		References: s.spellRefs("wish", "fireball", "identify", "fire-bolt", "counterspell", "bless"),
		Scrape:     s.scrapeSpell("a"),
		Compare:    batch.CompareSpells,
	})
	s.Require().NoError(err)
	s.Assert().Empty(out.Failures)
	s.Assert().Equal(
		[]string{"Fire Bolt", "Bless", "Identify", "Counterspell", "Fireball", "Wish"},
		titles(out.Records, spellTitle))
}

func (s *ResolverTestSuite) TestOrderIsIndependentOfRequestOrderAndLatency() {
	first, err := batch.Resolve(s.ctx, &batch.ResolveInput[dnd5e.Reference, *dnd5e.Spell]{
		Kind:       "spell",
		References: s.spellRefs("fireball", "bless", "wish", "counterspell", "fire-bolt", "identify"),
		Scrape:     s.scrapeSpell("first"),
		Compare:    batch.CompareSpells,
		Options:    batch.Options{Workers: 3},
	})
	s.Require().NoError(err)

	second, err := batch.Resolve(s.ctx, &batch.ResolveInput[dnd5e.Reference, *dnd5e.Spell]{
		Kind:       "spell",
		References: s.spellRefs("identify", "fire-bolt", "counterspell", "wish", "bless", "fireball"),
		Scrape:     s.scrapeSpell("second"),
		Compare:    batch.CompareSpells,
		Options:    batch.Options{Workers: 6},
	})
	s.Require().NoError(err)

	s.Assert().Equal(titles(first.Records, spellTitle), titles(second.Records, spellTitle))
}

func (s *ResolverTestSuite) TestItemsAreSortedByRarity() {
	refs := make([]dnd5e.Reference, 0, len(s.items))
	for _, slug := range []string{"vorpal-sword", "ring-of-protection", "wand-of-magic-missiles", "bag-of-holding"} {
		refs = append(refs, dnd5e.Reference{Language: vocab.English, Slug: slug})
	}

	out, err := batch.Resolve(s.ctx, &batch.ResolveInput[dnd5e.Reference, *dnd5e.MagicItem]{
		Kind:       "magic item",
		References: refs,
		Scrape: func(_ context.Context, ref dnd5e.Reference) (*dnd5e.MagicItem, error) {
			time.Sleep(latency(ref, "items"))
			return s.items[ref.String()], nil
		},
		Compare: batch.CompareMagicItems,
	})
	s.Require().NoError(err)
	s.Assert().Equal(
		[]string{"Bag of Holding", "Wand of Magic Missiles", "Ring of Protection", "Vorpal Sword"},
		titles(out.Records, itemTitle))
}

func (s *ResolverTestSuite) TestTiesAreBrokenByReference() {
	fr := dnd5e.Reference{Language: vocab.French, Slug: "alerte"}
	en := dnd5e.Reference{Language: vocab.English, Slug: "alert"}

	out, err := batch.Resolve(s.ctx, &batch.ResolveInput[dnd5e.Reference, *dnd5e.Feat]{
		Kind:       "feat",
		References: []dnd5e.Reference{fr, en},
		Scrape: func(_ context.Context, ref dnd5e.Reference) (*dnd5e.Feat, error) {
			return &dnd5e.Feat{Reference: ref, Title: "Alert"}, nil
		},
		Compare: batch.CompareFeats,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Records, 2)
	s.Assert().Equal(en, out.Records[0].Reference)
	s.Assert().Equal(fr, out.Records[1].Reference)
}

func (s *ResolverTestSuite) TestFailuresAreIsolated() {
	out, err := batch.Resolve(s.ctx, &batch.ResolveInput[dnd5e.Reference, *dnd5e.Spell]{
		Kind:       "spell",
		References: s.spellRefs("fireball", "no-such-spell", "bless", "missing-too"),
		Scrape:     s.scrapeSpell("iso"),
		Compare:    batch.CompareSpells,
	})
	s.Require().NoError(err)

	s.Assert().Equal([]string{"Bless", "Fireball"}, titles(out.Records, spellTitle))
	s.Require().Len(out.Failures, 2)
	s.Assert().Equal("en:no-such-spell", out.Failures[0].Reference)
	s.Assert().Equal("en:missing-too", out.Failures[1].Reference)
	s.Assert().True(errors.IsScrapingFailure(out.Failures[0].Err))
}

func (s *ResolverTestSuite) TestFailFast() {
	var scraped atomic.Int32
	_, err := batch.Resolve(s.ctx, &batch.ResolveInput[dnd5e.Reference, *dnd5e.Spell]{
		Kind:       "spell",
		References: s.spellRefs("no-such-spell", "fireball", "bless", "wish", "identify", "fire-bolt", "counterspell"),
		Scrape: func(ctx context.Context, ref dnd5e.Reference) (*dnd5e.Spell, error) {
			scraped.Add(1)
			if ref.Slug == "no-such-spell" {
				return nil, errors.ScrapingFailed(ref.Slug, "div.content")
			}
			select {
			case <-time.After(50 * time.Millisecond):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			return s.spells[ref.String()], nil
		},
		Compare: batch.CompareSpells,
		Options: batch.Options{Workers: 1, FailFast: true},
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsScrapingFailure(err))
	s.Assert().Equal(int32(1), scraped.Load(), "remaining references are not scraped")
}

func (s *ResolverTestSuite) TestWorkersBoundConcurrency() {
	var running, peak atomic.Int32
	_, err := batch.Resolve(s.ctx, &batch.ResolveInput[dnd5e.Reference, *dnd5e.Spell]{
		Kind:       "spell",
		References: s.spellRefs("fireball", "bless", "wish", "identify", "fire-bolt", "counterspell"),
		Scrape: func(_ context.Context, ref dnd5e.Reference) (*dnd5e.Spell, error) {
			n := running.Add(1)
			defer running.Add(-1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			return s.spells[ref.String()], nil
		},
		Compare: batch.CompareSpells,
		Options: batch.Options{Workers: 2},
	})
	s.Require().NoError(err)
	s.Assert().LessOrEqual(peak.Load(), int32(2))
}

func (s *ResolverTestSuite) TestDuplicatesAreScrapedOnce() {
	var scraped atomic.Int32
	out, err := batch.Resolve(s.ctx, &batch.ResolveInput[dnd5e.Reference, *dnd5e.Spell]{
		Kind:       "spell",
		References: s.spellRefs("fireball", "fireball", "bless"),
		Scrape: func(ctx context.Context, ref dnd5e.Reference) (*dnd5e.Spell, error) {
			scraped.Add(1)
			return s.spells[ref.String()], nil
		},
		Compare: batch.CompareSpells,
	})
	s.Require().NoError(err)
	s.Assert().Len(out.Records, 2)
	s.Assert().Equal(int32(2), scraped.Load())
}

func (s *ResolverTestSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := batch.Resolve(ctx, &batch.ResolveInput[dnd5e.Reference, *dnd5e.Spell]{
		Kind:       "spell",
		References: s.spellRefs("fireball"),
		Scrape:     s.scrapeSpell("cancel"),
		Compare:    batch.CompareSpells,
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsCanceled(err))
}

func (s *ResolverTestSuite) TestInvalidInput() {
	testCases := []struct {
		name  string
		input *batch.ResolveInput[dnd5e.Reference, *dnd5e.Spell]
	}{
		{name: "nil input", input: nil},
		{name: "missing scraper", input: &batch.ResolveInput[dnd5e.Reference, *dnd5e.Spell]{Compare: batch.CompareSpells}},
		{name: "missing ordering", input: &batch.ResolveInput[dnd5e.Reference, *dnd5e.Spell]{Scrape: s.scrapeSpell("x")}},
		{
			name: "negative workers",
			input: &batch.ResolveInput[dnd5e.Reference, *dnd5e.Spell]{
				Scrape:  s.scrapeSpell("x"),
				Compare: batch.CompareSpells,
				Options: batch.Options{Workers: -1},
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := batch.Resolve(s.ctx, tc.input)
			s.Require().Error(err)
			s.Assert().True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *ResolverTestSuite) TestEmptyBatch() {
	out, err := batch.Resolve(s.ctx, &batch.ResolveInput[dnd5e.Reference, *dnd5e.Spell]{
		Scrape:  s.scrapeSpell("x"),
		Compare: batch.CompareSpells,
	})
	s.Require().NoError(err)
	s.Assert().Empty(out.Records)
	s.Assert().Empty(out.Failures)
}
