package cards_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-cards/internal/clients/aidedd"
	aideddmock "github.com/KirkDiggler/rpg-cards/internal/clients/aidedd/mock"
	"github.com/KirkDiggler/rpg-cards/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-cards/internal/errors"
	"github.com/KirkDiggler/rpg-cards/internal/orchestrators/cards"
	"github.com/KirkDiggler/rpg-cards/internal/palette"
	"github.com/KirkDiggler/rpg-cards/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-cards/internal/render"
	scrapingmock "github.com/KirkDiggler/rpg-cards/internal/scraping/mock"
	"github.com/KirkDiggler/rpg-cards/internal/vocab"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockScraper *scrapingmock.MockScraper
	mockClient  *aideddmock.MockClient
	service     cards.Service
	ctx         context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockScraper = scrapingmock.NewMockScraper(s.ctrl)
	s.mockClient = aideddmock.NewMockClient(s.ctrl)
	s.ctx = context.Background()

	renderer, err := render.New(&render.Config{SpellLevelColors: palette.Default()})
	s.Require().NoError(err)

	svc, err := cards.New(&cards.Config{
		Scraper:     s.mockScraper,
		Client:      s.mockClient,
		Renderer:    renderer,
		IDGenerator: idgen.NewSequential("run"),
		Workers:     2,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func ref(lang vocab.Language, slug string) dnd5e.Reference {
	return dnd5e.Reference{Language: lang, Slug: slug}
}

func spell(r dnd5e.Reference, title string, level int) *dnd5e.Spell {
	return &dnd5e.Spell{
		Reference:      r,
		Title:          title,
		Language:       r.Language,
		Level:          level,
		School:         vocab.SchoolEvocation,
		CastingTime:    "1 action",
		CastingRange:   "60 feet",
		EffectDuration: "Instantaneous",
		Paragraphs:     []string{"A spell."},
	}
}

func (s *OrchestratorTestSuite) TestNew() {
	s.Run("requires dependencies", func() {
		_, err := cards.New(&cards.Config{})
		s.Require().Error(err)
		s.Assert().True(errors.IsInvalidArgument(err))
	})

	s.Run("requires a config", func() {
		_, err := cards.New(nil)
		s.Assert().True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestGenerateOrdersCardsByKind() {
	fireball := ref(vocab.English, "fireball")
	bless := ref(vocab.English, "bless")
	ring := ref(vocab.English, "ring-of-protection")
	acolyte := ref(vocab.English, "acolyte")
	turnUndead := dnd5e.ClassFeatureReference{Language: vocab.English, Class: vocab.ClassCleric, Title: "Turn Undead"}

	s.mockScraper.EXPECT().ScrapeSpell(gomock.Any(), fireball).Return(spell(fireball, "Fireball", 3), nil)
	s.mockScraper.EXPECT().ScrapeSpell(gomock.Any(), bless).Return(spell(bless, "Bless", 1), nil)
	s.mockScraper.EXPECT().ScrapeMagicItem(gomock.Any(), ring).Return(&dnd5e.MagicItem{
		Reference: ring,
		Language:  vocab.English,
		Title:     "Ring of Protection",
		Kind:      vocab.ItemKindRing,
		Rarity:    vocab.RarityRare,
	}, nil)
	s.mockScraper.EXPECT().ScrapeClassFeature(gomock.Any(), turnUndead).Return(&dnd5e.ClassFeature{
		Reference: turnUndead,
		Language:  vocab.English,
		Class:     vocab.ClassCleric,
		Title:     "Turn Undead",
	}, nil)
	s.mockScraper.EXPECT().ScrapeBackground(gomock.Any(), acolyte).Return(&dnd5e.Background{
		Reference: acolyte,
		Language:  vocab.English,
		Title:     "Acolyte",
	}, nil)

	out, err := s.service.Generate(s.ctx, &cards.GenerateInput{
		Backgrounds:    []dnd5e.Reference{acolyte},
		Spells:         []dnd5e.Reference{fireball, bless},
		ClassFeatures:  []dnd5e.ClassFeatureReference{turnUndead},
		MagicItems:     []dnd5e.Reference{ring},
		LegendLanguage: vocab.English,
	})
	s.Require().NoError(err)

	s.Assert().Equal("run_1", out.RunID)
	s.Assert().Empty(out.Failures)

	var titles []string
	for _, card := range out.Cards {
		titles = append(titles, card.Title)
	}
	s.Assert().Equal([]string{"Bless", "Fireball", "Ring of Protection", "Turn Undead", "Acolyte", "Legend"}, titles)
}

func (s *OrchestratorTestSuite) TestGenerateReportsFailures() {
	fireball := ref(vocab.English, "fireball")
	missing := ref(vocab.English, "no-such-spell")
	broken := ref(vocab.English, "broken")

	s.mockScraper.EXPECT().ScrapeSpell(gomock.Any(), fireball).Return(spell(fireball, "Fireball", 3), nil)
	s.mockScraper.EXPECT().ScrapeSpell(gomock.Any(), missing).
		Return(nil, errors.FetchFailed("en", "no-such-spell", "https://www.aidedd.org/dnd/sorts.php?vo=no-such-spell", 404))
	s.mockScraper.EXPECT().ScrapeSpell(gomock.Any(), broken).Return(spell(broken, "Broken", 12), nil)

	out, err := s.service.Generate(s.ctx, &cards.GenerateInput{
		Spells: []dnd5e.Reference{fireball, missing, broken},
	})
	s.Require().NoError(err)

	s.Require().Len(out.Cards, 1)
	s.Assert().Equal("Fireball", out.Cards[0].Title)

	s.Require().Len(out.Failures, 2)
	s.Assert().Equal("en:no-such-spell", out.Failures[0].Reference)
	s.Assert().True(errors.IsFetchFailure(out.Failures[0].Err))
	s.Assert().Equal("en:broken", out.Failures[1].Reference)
	s.Assert().True(errors.IsInvalidArgument(out.Failures[1].Err))
}

func (s *OrchestratorTestSuite) TestGenerateFailFast() {
	missing := ref(vocab.English, "no-such-spell")
	s.mockScraper.EXPECT().ScrapeSpell(gomock.Any(), missing).
		Return(nil, errors.ScrapingFailed("no-such-spell", "div.content"))

	_, err := s.service.Generate(s.ctx, &cards.GenerateInput{
		Spells:   []dnd5e.Reference{missing},
		FailFast: true,
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsScrapingFailure(err))
}

func (s *OrchestratorTestSuite) TestGenerateExpandsSpellFilters() {
	filter := aidedd.SpellFilter{Class: vocab.ClassWizard, MinLevel: 0, MaxLevel: 0}
	fireBolt := ref(vocab.French, "trait-de-feu")

	s.mockClient.EXPECT().
		ResolveSpellFilter(gomock.Any(), &aidedd.ResolveSpellFilterInput{Filter: filter}).
		Return(&aidedd.ResolveSpellFilterOutput{References: []dnd5e.Reference{fireBolt}}, nil)
	s.mockScraper.EXPECT().ScrapeSpell(gomock.Any(), fireBolt).Return(spell(fireBolt, "Trait de feu", 0), nil)

	out, err := s.service.Generate(s.ctx, &cards.GenerateInput{
		SpellFilters: []aidedd.SpellFilter{filter},
	})
	s.Require().NoError(err)
	s.Require().Len(out.Cards, 1)
	s.Assert().Equal("Trait de feu", out.Cards[0].Title)
	s.Assert().Equal("subtitle | Tour de magie | Évocation", out.Cards[0].Contents[1])
}

func (s *OrchestratorTestSuite) TestGenerateReportsFilterFailure() {
	filter := aidedd.SpellFilter{Class: vocab.ClassWizard, MinLevel: 1, MaxLevel: 2}

	s.mockClient.EXPECT().
		ResolveSpellFilter(gomock.Any(), gomock.Any()).
		Return(nil, errors.FetchFailed("fr", "", "https://www.aidedd.org/dnd-filters/sorts.php", 503))

	out, err := s.service.Generate(s.ctx, &cards.GenerateInput{
		SpellFilters: []aidedd.SpellFilter{filter},
	})
	s.Require().NoError(err)
	s.Assert().Empty(out.Cards)
	s.Require().Len(out.Failures, 1)
	s.Assert().Equal("filter:wizard:1:2", out.Failures[0].Reference)
}

func (s *OrchestratorTestSuite) TestGenerateRejectsEmptyInput() {
	testCases := []struct {
		name  string
		input *cards.GenerateInput
	}{
		{name: "nil input", input: nil},
		{name: "no references", input: &cards.GenerateInput{}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.service.Generate(s.ctx, tc.input)
			s.Require().Error(err)
			s.Assert().True(errors.IsInvalidArgument(err))
		})
	}
}
