package scraping_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-cards/internal/clients/aidedd"
	aideddmock "github.com/KirkDiggler/rpg-cards/internal/clients/aidedd/mock"
	"github.com/KirkDiggler/rpg-cards/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-cards/internal/errors"
	spellmetadata "github.com/KirkDiggler/rpg-cards/internal/repositories/spell_metadata"
	spellmetadatamock "github.com/KirkDiggler/rpg-cards/internal/repositories/spell_metadata/mock"
	"github.com/KirkDiggler/rpg-cards/internal/scraping"
	"github.com/KirkDiggler/rpg-cards/internal/testutils"
	"github.com/KirkDiggler/rpg-cards/internal/vocab"
)

type ScraperTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockClient   *aideddmock.MockClient
	mockMetadata *spellmetadatamock.MockRepository
	scraper      scraping.Scraper
	ctx          context.Context
}

func TestScraperSuite(t *testing.T) {
	suite.Run(t, new(ScraperTestSuite))
}

func (s *ScraperTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = aideddmock.NewMockClient(s.ctrl)
	s.mockMetadata = spellmetadatamock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	sc, err := scraping.New(&scraping.Config{
		Client:        s.mockClient,
		SpellMetadata: s.mockMetadata,
	})
	s.Require().NoError(err)
	s.scraper = sc
}

func (s *ScraperTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ScraperTestSuite) expectPage(resource aidedd.Resource, ref dnd5e.Reference, fixture string) {
	s.mockClient.EXPECT().
		FetchPage(s.ctx, &aidedd.FetchPageInput{Resource: resource, Reference: ref}).
		Return(&aidedd.FetchPageOutput{HTML: testutils.ReadFixture(s.T(), fixture)}, nil)
}

func (s *ScraperTestSuite) expectHTML(resource aidedd.Resource, ref dnd5e.Reference, html string) {
	s.mockClient.EXPECT().
		FetchPage(s.ctx, &aidedd.FetchPageInput{Resource: resource, Reference: ref}).
		Return(&aidedd.FetchPageOutput{HTML: html}, nil)
}

func (s *ScraperTestSuite) expectNoMetadata() {
	s.mockMetadata.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("no metadata"))
}

func ref(lang vocab.Language, slug string) dnd5e.Reference {
	return dnd5e.Reference{Language: lang, Slug: slug}
}

func (s *ScraperTestSuite) TestNew() {
	s.Run("requires config", func() {
		_, err := scraping.New(nil)
		s.Require().Error(err)
		s.Assert().True(errors.IsInvalidArgument(err))
	})

	s.Run("requires client", func() {
		_, err := scraping.New(&scraping.Config{})
		s.Require().Error(err)
		s.Assert().True(errors.IsInvalidArgument(err))
	})

	s.Run("metadata is optional", func() {
		_, err := scraping.New(&scraping.Config{Client: s.mockClient})
		s.Assert().NoError(err)
	})
}

func (s *ScraperTestSuite) TestScrapeSpellFireball() {
	r := ref(vocab.English, "fireball")
	s.expectPage(aidedd.ResourceSpell, r, "spell_fireball_en.html")
	aoe := vocab.SpellTypeAreaOfEffect
	s.mockMetadata.EXPECT().
		Get(s.ctx, spellmetadata.GetInput{Title: "Fireball"}).
		Return(&spellmetadata.GetOutput{Metadata: &spellmetadata.Metadata{
			Title:     "Fireball",
			Tags:      []string{"S"},
			SpellType: &aoe,
		}}, nil)

	spell, err := s.scraper.ScrapeSpell(s.ctx, r)
	s.Require().NoError(err)

	s.Assert().Equal(r, spell.Reference)
	s.Assert().Equal("Fireball", spell.Title)
	s.Assert().Equal("Fireball", spell.CanonicalTitle)
	s.Assert().Equal(3, spell.Level)
	s.Assert().Equal(vocab.SchoolEvocation, spell.School)
	s.Assert().Equal("1 action", spell.CastingTime)
	s.Assert().Equal("150 feet", spell.CastingRange)
	s.Assert().Equal("Instantaneous", spell.EffectDuration)
	s.Assert().True(spell.Verbal)
	s.Assert().True(spell.Somatic)
	s.Assert().True(spell.Material)
	s.Assert().Empty(spell.PayingComponentsText)
	s.Assert().False(spell.Concentration)
	s.Assert().False(spell.Ritual)
	s.Assert().Empty(spell.ReactionCondition)
	s.Assert().Equal([]string{"Sorcerer", "Wizard"}, spell.ClassTags)

	s.Require().Len(spell.Paragraphs, 2)
	s.Assert().Contains(spell.Paragraphs[0], "8d6 fire damage")
	s.Assert().Equal(
		"When you cast this spell using a spell slot of 4th level or higher, the damage increases by 1d6 for each slot level above 3rd.",
		spell.UpcastingText)

	s.Require().NotNil(spell.DamageType)
	s.Assert().Equal(vocab.DamageFire, *spell.DamageType)
	s.Require().NotNil(spell.Shape)
	s.Assert().Equal(vocab.ShapeSphere, *spell.Shape)
	s.Require().NotNil(spell.SpellType)
	s.Assert().Equal(vocab.SpellTypeAreaOfEffect, *spell.SpellType)
}

func (s *ScraperTestSuite) TestScrapeSpellFrench() {
	r := ref(vocab.French, "boule-de-feu")
	s.expectPage(aidedd.ResourceSpell, r, "spell_boule-de-feu_fr.html")
	s.mockMetadata.EXPECT().
		Get(s.ctx, spellmetadata.GetInput{Title: "Fireball"}).
		Return(&spellmetadata.GetOutput{Metadata: &spellmetadata.Metadata{Title: "Fireball", Tags: []string{"S"}}}, nil)

	spell, err := s.scraper.ScrapeSpell(s.ctx, r)
	s.Require().NoError(err)

	s.Assert().Equal("Boule de feu", spell.Title)
	s.Assert().Equal("Fireball", spell.CanonicalTitle)
	s.Assert().Equal(vocab.French, spell.Language)
	s.Assert().Equal(3, spell.Level)
	s.Assert().Equal(vocab.SchoolEvocation, spell.School)
	s.Assert().Equal("45 mètres", spell.CastingRange)
	s.Assert().Equal("Instantanée", spell.EffectDuration)
	s.Assert().Contains(spell.UpcastingText, "niveau 4 ou supérieur")
	s.Require().NotNil(spell.DamageType)
	s.Assert().Equal(vocab.DamageFire, *spell.DamageType)
	s.Require().NotNil(spell.Shape)
	s.Assert().Equal(vocab.ShapeSphere, *spell.Shape)
	s.Assert().Nil(spell.SpellType)
}

func (s *ScraperTestSuite) TestScrapeSpellVariants() {
	s.Run("reaction condition", func() {
		r := ref(vocab.English, "counterspell")
		s.expectPage(aidedd.ResourceSpell, r, "spell_counterspell_en.html")
		s.expectNoMetadata()

		spell, err := s.scraper.ScrapeSpell(s.ctx, r)
		s.Require().NoError(err)
		s.Assert().Equal("1 reaction", spell.CastingTime)
		s.Assert().Equal("which you take when you see a creature within 60 feet of you casting a spell",
			spell.ReactionCondition)
		s.Assert().False(spell.Verbal)
		s.Assert().True(spell.Somatic)
		s.Assert().False(spell.Material)
		s.Assert().Nil(spell.DamageType)
		s.Assert().Nil(spell.Shape)
	})

	s.Run("ritual with paying components", func() {
		r := ref(vocab.English, "identify")
		s.expectPage(aidedd.ResourceSpell, r, "spell_identify_en.html")
		s.expectNoMetadata()

		spell, err := s.scraper.ScrapeSpell(s.ctx, r)
		s.Require().NoError(err)
		s.Assert().True(spell.Ritual)
		s.Assert().Equal(vocab.SchoolDivination, spell.School)
		s.Assert().Equal("Touch", spell.CastingRange)
		s.Assert().Equal("A pearl worth at least 100 gp and an owl feather.", spell.PayingComponentsText)
		s.Assert().Empty(spell.UpcastingText)
	})

	s.Run("concentration", func() {
		r := ref(vocab.French, "benediction")
		s.expectPage(aidedd.ResourceSpell, r, "spell_bless_fr.html")
		s.expectNoMetadata()

		spell, err := s.scraper.ScrapeSpell(s.ctx, r)
		s.Require().NoError(err)
		s.Assert().True(spell.Concentration)
		s.Assert().Equal("Jusqu'à 1 minute", spell.EffectDuration)
		s.Assert().Equal(vocab.SchoolEnchantment, spell.School)
		s.Assert().Equal("Bless", spell.CanonicalTitle)
		s.Assert().Nil(spell.DamageType)
	})
}

func spellPage(title, description string) string {
	return `<html><body><div class="content"><h1>` + title + `</h1>
<div class="ecole">level 2 - necromancy</div>
<div class="t"><strong>Casting Time:</strong> 1 action</div>
<div class="r"><strong>Range:</strong> 60 feet</div>
<div class="c"><strong>Components:</strong> V, S</div>
<div class="d"><strong>Duration:</strong> instantaneous</div>
<div class="description">` + description + `</div>
<div class="classe">Wizard</div>
</div></body></html>`
}

func (s *ScraperTestSuite) TestScrapeSpellDamageType() {
	s.Run("skips words that are not damage types", func() {
		r := ref(vocab.English, "withering-touch")
		s.expectHTML(aidedd.ResourceSpell, r, spellPage("Withering Touch",
			"The target takes extra damage equal to your level, then 2d8 necrotic damage."))
		s.expectNoMetadata()

		spell, err := s.scraper.ScrapeSpell(s.ctx, r)
		s.Require().NoError(err)
		s.Require().NotNil(spell.DamageType)
		s.Assert().Equal(vocab.DamageNecrotic, *spell.DamageType)
	})

	s.Run("no resolvable damage type", func() {
		r := ref(vocab.English, "dull-ache")
		s.expectHTML(aidedd.ResourceSpell, r, spellPage("Dull Ache",
			"The target takes extra damage, or half as much damage on a success."))
		s.expectNoMetadata()

		spell, err := s.scraper.ScrapeSpell(s.ctx, r)
		s.Require().NoError(err)
		s.Assert().Nil(spell.DamageType)
	})
}

func (s *ScraperTestSuite) TestScrapeSpellFailures() {
	s.Run("fetch failure keeps its code", func() {
		r := ref(vocab.English, "fireball")
		s.mockClient.EXPECT().
			FetchPage(s.ctx, gomock.Any()).
			Return(nil, errors.FetchFailed("en", "fireball", "https://example.test", 503))

		_, err := s.scraper.ScrapeSpell(s.ctx, r)
		s.Require().Error(err)
		s.Assert().True(errors.IsFetchFailure(err))
		s.Assert().Equal("en:fireball", errors.GetMeta(err)["reference"])
	})

	s.Run("missing content block", func() {
		r := ref(vocab.English, "nothing")
		s.mockClient.EXPECT().
			FetchPage(s.ctx, gomock.Any()).
			Return(&aidedd.FetchPageOutput{HTML: "<html><body><p>Not found</p></body></html>"}, nil)

		_, err := s.scraper.ScrapeSpell(s.ctx, r)
		s.Require().Error(err)
		s.Assert().True(errors.IsScrapingFailure(err))
		meta := errors.GetMeta(err)
		s.Assert().Equal("nothing", meta["slug"])
		s.Assert().Equal("div.content", meta["selector"])
	})

	s.Run("unknown school", func() {
		r := ref(vocab.English, "odd")
		page := `<div class="content"><h1>Odd</h1><div class="ecole">level 2 - chronomancy</div>` +
			`<div class="t">Casting Time: 1 action</div><div class="r">Range: self</div>` +
			`<div class="c">Components: V</div><div class="d">Duration: 1 round</div>` +
			`<div class="description">Nothing.</div></div>`
		s.mockClient.EXPECT().
			FetchPage(s.ctx, gomock.Any()).
			Return(&aidedd.FetchPageOutput{HTML: page}, nil)

		_, err := s.scraper.ScrapeSpell(s.ctx, r)
		s.Require().Error(err)
		s.Assert().True(errors.IsLookupFailure(err))
	})

	s.Run("level out of range", func() {
		r := ref(vocab.English, "tenth")
		page := `<div class="content"><h1>Tenth</h1><div class="ecole">level 10 - evocation</div></div>`
		s.mockClient.EXPECT().
			FetchPage(s.ctx, gomock.Any()).
			Return(&aidedd.FetchPageOutput{HTML: page}, nil)

		_, err := s.scraper.ScrapeSpell(s.ctx, r)
		s.Require().Error(err)
		s.Assert().True(errors.IsScrapingFailure(err))
	})
}

func (s *ScraperTestSuite) TestScrapeMagicItem() {
	s.Run("ring requiring attunement", func() {
		r := ref(vocab.English, "ring-of-protection")
		s.expectPage(aidedd.ResourceMagicItem, r, "item_ring-of-protection_en.html")

		item, err := s.scraper.ScrapeMagicItem(s.ctx, r)
		s.Require().NoError(err)
		s.Assert().Equal("Ring of Protection", item.Title)
		s.Assert().Equal(vocab.ItemKindRing, item.Kind)
		s.Assert().Equal(vocab.RarityRare, item.Rarity)
		s.Assert().Equal("rare", item.RarityText)
		s.Assert().True(item.RequiresAttunement)
		s.Assert().Equal("https://www.aidedd.org/dnd/images-om/ring-of-protection.jpg", item.ImageURL)
		s.Assert().Zero(item.RechargeCount)
		s.Assert().Equal([]string{"You gain a +1 bonus to AC and saving throws while wearing this ring."}, item.Paragraphs)
	})

	s.Run("wand with charges", func() {
		r := ref(vocab.English, "wand-of-magic-missiles")
		s.expectPage(aidedd.ResourceMagicItem, r, "item_wand-of-magic-missiles_en.html")

		item, err := s.scraper.ScrapeMagicItem(s.ctx, r)
		s.Require().NoError(err)
		s.Assert().Equal(vocab.ItemKindWand, item.Kind)
		s.Assert().Equal(vocab.RarityUncommon, item.Rarity)
		s.Assert().False(item.RequiresAttunement)
		s.Assert().Equal(7, item.RechargeCount)
		s.Assert().Empty(item.ImageURL)
		s.Require().Len(item.Paragraphs, 2)
		s.Assert().Contains(item.Paragraphs[0], "cast the _magic missile_ spell")
	})

	s.Run("armor subtype with commas", func() {
		r := ref(vocab.French, "armure-de-resistance")
		s.expectPage(aidedd.ResourceMagicItem, r, "item_armure-de-resistance_fr.html")

		item, err := s.scraper.ScrapeMagicItem(s.ctx, r)
		s.Require().NoError(err)
		s.Assert().Equal(vocab.ItemKindArmor, item.Kind)
		s.Assert().Equal("Armure (légère, intermédiaire ou lourde)", item.TypeText)
		s.Assert().Equal(vocab.RarityRare, item.Rarity)
		s.Assert().True(item.RequiresAttunement)
	})

	s.Run("unknown kind", func() {
		r := ref(vocab.English, "odd-thing")
		page := `<div class="content"><h1>Odd Thing</h1><div class="type">Gizmo, rare</div>` +
			`<div class="description">Odd.</div></div>`
		s.mockClient.EXPECT().
			FetchPage(s.ctx, gomock.Any()).
			Return(&aidedd.FetchPageOutput{HTML: page}, nil)

		_, err := s.scraper.ScrapeMagicItem(s.ctx, r)
		s.Require().Error(err)
		s.Assert().True(errors.IsLookupFailure(err))
	})
}

func (s *ScraperTestSuite) TestScrapeFeat() {
	s.Run("bullet list", func() {
		r := ref(vocab.English, "alert")
		s.expectPage(aidedd.ResourceFeat, r, "feat_alert_en.html")

		feat, err := s.scraper.ScrapeFeat(s.ctx, r)
		s.Require().NoError(err)
		s.Assert().Equal("Alert", feat.Title)
		s.Assert().Empty(feat.Prerequisite)
		s.Require().Len(feat.Paragraphs, 4)
		s.Assert().Equal("Always on the lookout for danger, you gain the following benefits:", feat.Paragraphs[0])
		s.Assert().Equal("• You gain a +5 bonus to initiative.", feat.Paragraphs[1])
	})

	s.Run("prerequisite", func() {
		r := ref(vocab.French, "lutteur")
		s.expectPage(aidedd.ResourceFeat, r, "feat_lutteur_fr.html")

		feat, err := s.scraper.ScrapeFeat(s.ctx, r)
		s.Require().NoError(err)
		s.Assert().Equal("Force 13 ou plus", feat.Prerequisite)
		s.Assert().Len(feat.Paragraphs, 3)
	})
}

func (s *ScraperTestSuite) TestScrapeEldritchInvocation() {
	r := ref(vocab.French, "decharge-dechirante")
	s.expectPage(aidedd.ResourceEldritchInvocation, r, "invocation_decharge-dechirante_fr.html")

	invocation, err := s.scraper.ScrapeEldritchInvocation(s.ctx, r)
	s.Require().NoError(err)
	s.Assert().Equal("Décharge déchirante", invocation.Title)
	s.Assert().Equal("sort mineur décharge occulte", invocation.Prerequisite)
	s.Assert().Equal([]string{
		"Quand vous lancez _décharge occulte_, ajoutez votre modificateur de Charisme aux dégâts qu'elle inflige en cas de coup au but.",
	}, invocation.Paragraphs)
}

func (s *ScraperTestSuite) TestScrapeClassFeature() {
	page := ref(vocab.English, "cleric")

	s.Run("base class feature with table", func() {
		s.expectPage(aidedd.ResourceClass, page, "class_cleric_en.html")

		feature, err := s.scraper.ScrapeClassFeature(s.ctx, dnd5e.ClassFeatureReference{
			Language: vocab.English, Class: vocab.ClassCleric, Title: "Channel Divinity",
		})
		s.Require().NoError(err)
		s.Assert().Equal(vocab.ClassCleric, feature.Class)
		s.Assert().Empty(feature.ClassVariant)
		s.Assert().Equal([]string{
			"At 2nd level, you gain the ability to channel divine energy directly from your deity, using that energy to fuel magical effects.",
			"When you use your Channel Divinity, you choose which effect to create. You must then finish a short or long rest to use your Channel Divinity again.",
			"• 2nd: 1",
			"• 6th: 2",
			"Channel Divinity: Turn Undead",
			"*Turn Undead.* As an action, you present your holy symbol and speak a prayer censuring the undead. Each undead that can see or hear you within 30 feet of you must make a Wisdom saving throw.",
		}, feature.Paragraphs)
	})

	s.Run("subclass feature", func() {
		s.expectPage(aidedd.ResourceClass, page, "class_cleric_en.html")

		feature, err := s.scraper.ScrapeClassFeature(s.ctx, dnd5e.ClassFeatureReference{
			Language: vocab.English, Class: vocab.ClassCleric, Title: "Disciple of Life",
		})
		s.Require().NoError(err)
		s.Assert().Equal("Life", feature.ClassVariant)
		s.Assert().Len(feature.Paragraphs, 1)
	})

	s.Run("unknown feature", func() {
		s.expectPage(aidedd.ResourceClass, page, "class_cleric_en.html")

		_, err := s.scraper.ScrapeClassFeature(s.ctx, dnd5e.ClassFeatureReference{
			Language: vocab.English, Class: vocab.ClassCleric, Title: "Wild Shape",
		})
		s.Require().Error(err)
		s.Assert().True(errors.IsScrapingFailure(err))
		s.Assert().Equal("en:cleric:Wild Shape", errors.GetMeta(err)["reference"])
	})
}

func (s *ScraperTestSuite) TestScrapeAncestryFeature() {
	page := ref(vocab.English, "elf")

	s.Run("ancestry traits skip callouts and the subrace note", func() {
		s.expectPage(aidedd.ResourceAncestry, page, "races_elf_en.html")

		feature, err := s.scraper.ScrapeAncestryFeature(s.ctx, dnd5e.AncestryFeatureReference{
			Language: vocab.English, Ancestry: vocab.AncestryElf,
		})
		s.Require().NoError(err)
		s.Assert().Equal("Elf", feature.Title)
		s.Assert().Equal([]string{
			"*Ability Score Increase.* Your Dexterity score increases by 2.",
			"*Darkvision.* Accustomed to twilit forests and the night sky, you have superior vision in dark and dim conditions.",
			"*Trance.* Elves don't need to sleep. Instead, they meditate deeply for 4 hours a day.",
		}, feature.Paragraphs)
	})

	s.Run("sub-ancestry", func() {
		s.expectPage(aidedd.ResourceAncestry, page, "races_elf_en.html")

		feature, err := s.scraper.ScrapeAncestryFeature(s.ctx, dnd5e.AncestryFeatureReference{
			Language: vocab.English, Ancestry: vocab.AncestryElf, SubAncestry: "High Elf",
		})
		s.Require().NoError(err)
		s.Assert().Equal("High Elf", feature.Title)
		s.Assert().Equal("High Elf", feature.SubAncestry)
		s.Assert().Len(feature.Paragraphs, 2)
	})
}

func (s *ScraperTestSuite) TestScrapeBackground() {
	r := ref(vocab.English, "acolyte")
	s.expectPage(aidedd.ResourceBackground, r, "background_acolyte_en.html")

	background, err := s.scraper.ScrapeBackground(s.ctx, r)
	s.Require().NoError(err)
	s.Assert().Equal("Acolyte", background.Title)
	s.Assert().Equal("Shelter of the Faithful", background.Subtitle)
	s.Require().Len(background.Paragraphs, 2)
	s.Assert().Contains(background.Paragraphs[1], "residence there")
}

func (s *ScraperTestSuite) TestScrapeBackgroundSectionEnd() {
	s.Run("stops at the next feature heading", func() {
		r := ref(vocab.English, "wanderer")
		s.expectHTML(aidedd.ResourceBackground, r, `<html><body><div class="content"><h1>Wanderer</h1>
<h2>Feature: Wanderer</h2>
<p>You have an excellent memory for maps.</p>
<h3>Feature: Variant Lodging</h3>
<p>You can always find a place to sleep.</p>
</div></body></html>`)

		background, err := s.scraper.ScrapeBackground(s.ctx, r)
		s.Require().NoError(err)
		s.Assert().Equal("Wanderer", background.Subtitle)
		s.Require().Len(background.Paragraphs, 1)
		s.Assert().Contains(background.Paragraphs[0], "maps")
	})

	s.Run("stops at a same level heading", func() {
		r := ref(vocab.English, "hermit")
		s.expectHTML(aidedd.ResourceBackground, r, `<html><body><div class="content"><h1>Hermit</h1>
<h2>Feature: Discovery</h2>
<p>The quiet seclusion of your extended hermitage gave you access to a unique discovery.</p>
<h4>Discovery Examples</h4>
<p>You found a truth about the cosmos.</p>
<h2>Suggested Characteristics</h2>
<p>Some hermits are well suited to a life of seclusion.</p>
</div></body></html>`)

		background, err := s.scraper.ScrapeBackground(s.ctx, r)
		s.Require().NoError(err)
		s.Assert().Equal("Discovery", background.Subtitle)
		s.Require().Len(background.Paragraphs, 3)
		s.Assert().Equal("Discovery Examples", background.Paragraphs[1])
		s.Assert().Equal("You found a truth about the cosmos.", background.Paragraphs[2])
	})
}
