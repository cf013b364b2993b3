package vocab_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-cards/internal/errors"
	"github.com/KirkDiggler/rpg-cards/internal/vocab"
)

type VocabTestSuite struct {
	suite.Suite
}

func TestVocabSuite(t *testing.T) {
	suite.Run(t, new(VocabTestSuite))
}

// roundTrip checks parse(translate(m)) == m for every member and language
func roundTrip[T comparable](s *VocabTestSuite, members []T, translate func(T, vocab.Language) string, parse func(string, vocab.Language) (T, error)) {
	s.Require().NotEmpty(members)
	for _, lang := range vocab.Languages {
		for _, m := range members {
			text := translate(m, lang)
			s.Require().NotEmpty(text)
			got, err := parse(text, lang)
			s.Require().NoError(err, "%s in %s", text, lang)
			s.Assert().Equal(m, got)
		}
	}
}

func (s *VocabTestSuite) TestRoundTrip() {
	s.Run("magic school", func() {
		roundTrip(s, vocab.AllMagicSchools(), vocab.MagicSchool.Translate, vocab.ParseMagicSchool)
	})
	s.Run("damage type", func() {
		roundTrip(s, vocab.AllDamageTypes(), vocab.DamageType.Translate, vocab.ParseDamageType)
	})
	s.Run("spell shape", func() {
		roundTrip(s, vocab.AllSpellShapes(), vocab.SpellShape.Translate, vocab.ParseSpellShape)
	})
	s.Run("spell type", func() {
		roundTrip(s, vocab.AllSpellTypes(), vocab.SpellType.Translate, vocab.ParseSpellType)
	})
	s.Run("magic item kind", func() {
		roundTrip(s, vocab.AllMagicItemKinds(), vocab.MagicItemKind.Translate, vocab.ParseMagicItemKind)
	})
	s.Run("rarity", func() {
		roundTrip(s, vocab.AllMagicItemRarities(), vocab.MagicItemRarity.Translate, vocab.ParseMagicItemRarity)
	})
	s.Run("character class", func() {
		roundTrip(s, vocab.AllCharacterClasses(), vocab.CharacterClass.Translate, vocab.ParseCharacterClass)
	})
	s.Run("ancestry", func() {
		roundTrip(s, vocab.AllAncestries(), vocab.Ancestry.Translate, vocab.ParseAncestry)
	})
	s.Run("creature type", func() {
		roundTrip(s, vocab.AllCreatureTypes(), vocab.CreatureType.Translate, vocab.ParseCreatureType)
	})
	s.Run("action", func() {
		roundTrip(s, vocab.AllActions(), vocab.Action.Translate, vocab.ParseAction)
	})
}

func (s *VocabTestSuite) TestParseIsLenient() {
	rarity, err := vocab.ParseMagicItemRarity("  Très   Rare ", vocab.French)
	s.Require().NoError(err)
	s.Assert().Equal(vocab.RarityVeryRare, rarity)

	rarity, err = vocab.ParseMagicItemRarity("peu commune", vocab.French)
	s.Require().NoError(err)
	s.Assert().Equal(vocab.RarityUncommon, rarity)

	class, err := vocab.ParseCharacterClass("rodeur", vocab.French)
	s.Require().NoError(err)
	s.Assert().Equal(vocab.ClassRanger, class)
}

func (s *VocabTestSuite) TestParseUnknownIsLookupFailure() {
	_, err := vocab.ParseMagicSchool("chronomancy", vocab.English)
	s.Require().Error(err)
	s.Assert().True(errors.IsLookupFailure(err))
	meta := errors.GetMeta(err)
	s.Assert().Equal("chronomancy", meta["text"])
	s.Assert().Equal("en", meta["lang"])
	s.Assert().Equal("magic school", meta["vocabulary"])

	// a French word is not an English member
	_, err = vocab.ParseMagicSchool("évocation", vocab.English)
	s.Assert().True(errors.IsLookupFailure(err))
}

func (s *VocabTestSuite) TestPatternPrefersLongestTerm() {
	testCases := []struct {
		name    string
		pattern string
		input   string
		want    string
	}{
		{"bonus action fr", vocab.ActionPattern(vocab.French), "utilise son action bonus pour", "action bonus"},
		{"bonus action en", vocab.ActionPattern(vocab.English), "as a bonus action you", "bonus action"},
		{"very rare en", vocab.MagicItemRarityPattern(vocab.English), "very rare", "very rare"},
		{"peu commun fr", vocab.MagicItemRarityPattern(vocab.French), "peu commun", "peu commun"},
		{"wondrous item", vocab.MagicItemKindPattern(vocab.English), "wondrous item", "wondrous item"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			re := regexp.MustCompile(tc.pattern)
			s.Assert().Equal(tc.want, re.FindString(tc.input))
		})
	}
}

func (s *VocabTestSuite) TestPatternQuotesMetaCharacters() {
	for _, lang := range vocab.Languages {
		s.Assert().NotPanics(func() { regexp.MustCompile(vocab.ActionPattern(lang)) })
		s.Assert().NotPanics(func() { regexp.MustCompile(vocab.DamageTypePattern(lang)) })
		s.Assert().NotPanics(func() { regexp.MustCompile(vocab.CreatureTypePattern(lang)) })
	}
}

func (s *VocabTestSuite) TestRarityOrderAndColor() {
	rarities := vocab.AllMagicItemRarities()
	for i := 1; i < len(rarities); i++ {
		s.Assert().Less(rarities[i-1].Rank(), rarities[i].Rank())
	}
	s.Assert().Equal(0, vocab.RarityCommon.Rank())
	s.Assert().Equal(5, vocab.RarityArtifact.Rank())
	s.Assert().Equal("#BDD684", vocab.RarityRare.Color())
	s.Assert().Equal("#F06060", vocab.RarityLegendary.Color())
}

func (s *VocabTestSuite) TestShapeFromTags() {
	testCases := []struct {
		name  string
		tags  []string
		want  vocab.SpellShape
		found bool
	}{
		{"sphere", []string{"S"}, vocab.ShapeSphere, true},
		{"target tags skipped", []string{"ST", "MT", "N"}, vocab.ShapeCone, true},
		{"only target tags", []string{"ST"}, 0, false},
		{"unknown tag skipped", []string{"Z", "Y"}, vocab.ShapeCylinder, true},
		{"empty", nil, 0, false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			shape, ok := vocab.ShapeFromTags(tc.tags)
			s.Assert().Equal(tc.found, ok)
			if tc.found {
				s.Assert().Equal(tc.want, shape)
			}
		})
	}
	s.Assert().Equal("N", vocab.ShapeTag(vocab.ShapeCone))
	s.Assert().Equal("", vocab.ShapeTag(vocab.ShapeRadius))
}

func (s *VocabTestSuite) TestSubclassMarker() {
	s.Assert().True(vocab.ClassCleric.StartsWithSubclassMarker("Domaine de la Vie", vocab.French))
	s.Assert().True(vocab.ClassCleric.StartsWithSubclassMarker("domain spells", vocab.English))
	s.Assert().False(vocab.ClassCleric.StartsWithSubclassMarker("Conduit divin", vocab.French))
	s.Assert().Equal("Archetype", vocab.ClassRogue.SubclassMarker(vocab.English))
}

func (s *VocabTestSuite) TestDice() {
	die, err := vocab.ParseDamageDie("d6")
	s.Require().NoError(err)
	s.Assert().Equal(6, die.Sides())
	s.Assert().Equal("<dice>b</dice>", die.Glyph())
	s.Assert().Equal("d100", vocab.DieD100.Glyph())
	s.Assert().Equal(100, vocab.DieD100.Sides())
}

func (s *VocabTestSuite) TestLanguage() {
	lang, err := vocab.ParseLanguage("FR")
	s.Require().NoError(err)
	s.Assert().Equal(vocab.French, lang)
	s.Assert().Equal("vf", lang.QueryParam())
	s.Assert().Equal(vocab.English, lang.Other())
	s.Assert().Equal("vo", vocab.English.QueryParam())

	_, err = vocab.ParseLanguage("de")
	s.Assert().True(errors.IsInvalidArgument(err))
}
