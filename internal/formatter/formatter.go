// Package formatter turns the sentinel-marked paragraphs produced by the
// scrapers into card markup. Every stage is a pure function over strings;
// Pipeline runs them in the order the markup requires.
package formatter

import (
	"regexp"
	"strings"

	"github.com/KirkDiggler/rpg-cards/internal/errors"
	"github.com/KirkDiggler/rpg-cards/internal/scraping/dom"
	"github.com/KirkDiggler/rpg-cards/internal/vocab"
)

const subClausePrefix = ". "

// Strong renders text in bold
func Strong(text string) string { return "<b>" + text + "</b>" }

// Emphasis renders text in italics
func Emphasis(text string) string { return "<em>" + text + "</em>" }

// Icon references a game-icons.net icon by name
func Icon(name string) string { return `<icon name="` + name + `">` }

// Pipeline formats paragraphs written in one language
type Pipeline struct {
	lang     vocab.Language
	patterns *languagePatterns
}

// New returns the pipeline of lang
func New(lang vocab.Language) (*Pipeline, error) {
	patterns, ok := patternsByLanguage[lang]
	if !ok {
		return nil, errors.InvalidArgumentf("no text pipeline for language %q", lang)
	}
	return &Pipeline{lang: lang, patterns: patterns}, nil
}

// Language is the language the pipeline reads
func (p *Pipeline) Language() vocab.Language {
	return p.lang
}

// Format runs every stage over the paragraphs of one record. The result
// holds one entry per text block of the card.
func (p *Pipeline) Format(paragraphs []string) []string {
	parts := MergeSubClauses(paragraphs)
	parts = AssembleBullets(parts)

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		out = append(out, p.Highlight(part))
	}
	return out
}

// Highlight applies the inline stages to a single paragraph. Damage
// formulas go first: the saving throw phrases also mention damage.
func (p *Pipeline) Highlight(text string) string {
	text = p.FixTranslations(text)
	text = p.HighlightDamageFormulas(text)
	text = p.HighlightSavingThrows(text)
	text = HighlightEmphasis(text)
	text = HighlightStrong(text)
	text = p.HighlightLevels(text)
	text = p.HighlightActions(text)
	return text
}

// MergeSubClauses glues a paragraph starting with ". " onto the previous
// one, whose lead-in is set in bold. This restores "Lead-in. Rest" sentences
// split around a bold heading. The output never starts a paragraph with ". ".
func MergeSubClauses(paragraphs []string) []string {
	out := make([]string, 0, len(paragraphs))
	merged := false
	for _, part := range paragraphs {
		if !strings.HasPrefix(part, subClausePrefix) {
			out = append(out, part)
			merged = false
			continue
		}

		if len(out) == 0 {
			if rest := strings.TrimLeft(part, ". "); rest != "" {
				out = append(out, rest)
			}
			continue
		}

		last := len(out) - 1
		if !merged {
			out[last] = Strong(out[last])
		}
		out[last] += part
		merged = true
	}
	return out
}

var fieldNamePattern = regexp.MustCompile(`^([\p{L}\p{N}'’-]+(?:\s[\p{L}\p{N}'’-]+)*)(\s?):`)

// AssembleBullets folds every run of "• " paragraphs into one closed list
// block. A field name ending with a colon at the start of an item is set in
// bold.
func AssembleBullets(paragraphs []string) []string {
	out := make([]string, 0, len(paragraphs))
	var items []string

	flush := func() {
		if len(items) == 0 {
			return
		}
		out = append(out, "<ul>"+strings.Join(items, "")+"</ul>")
		items = nil
	}

	for _, part := range paragraphs {
		text, isBullet := strings.CutPrefix(part, dom.BulletMark)
		if !isBullet {
			flush()
			out = append(out, part)
			continue
		}
		text = fieldNamePattern.ReplaceAllString(strings.TrimSpace(text), "<b>$1</b>$2:")
		items = append(items, "<li>"+text+"</li>")
	}
	flush()
	return out
}

var (
	emphasisPattern = regexp.MustCompile(`_([^_]+)_`)
	strongPattern   = regexp.MustCompile(`\*([^*]+)\*`)
)

// HighlightEmphasis turns _x_ into emphasized markup
func HighlightEmphasis(text string) string {
	return emphasisPattern.ReplaceAllString(text, "<em>$1</em>")
}

// HighlightStrong turns *x* into bold markup
func HighlightStrong(text string) string {
	return strongPattern.ReplaceAllString(text, "<b>$1</b>")
}

// HighlightSavingThrows sets saving throw phrases in bold
func (p *Pipeline) HighlightSavingThrows(text string) string {
	for _, pattern := range p.patterns.savingThrows {
		text = pattern.ReplaceAllStringFunc(text, Strong)
	}
	return text
}

// HighlightLevels emphasizes character and spell level references
func (p *Pipeline) HighlightLevels(text string) string {
	return p.patterns.level.ReplaceAllStringFunc(text, Emphasis)
}

// HighlightActions emphasizes the names of combat actions
func (p *Pipeline) HighlightActions(text string) string {
	var sb strings.Builder
	last := 0
	for _, m := range p.patterns.actions.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[2], m[3]
		if !endsAction(text, end) {
			continue
		}
		sb.WriteString(text[last:start])
		sb.WriteString("<em>" + text[start:end] + "</em>")
		last = end
	}
	sb.WriteString(text[last:])
	return sb.String()
}

// FixTranslations repairs known typos of the translated pages
func (p *Pipeline) FixTranslations(text string) string {
	if p.patterns.fixes == nil {
		return text
	}
	return p.patterns.fixes.Replace(text)
}
