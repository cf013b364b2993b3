package vocab

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/rpg-cards/internal/errors"
)

// entry is one row of a vocabulary table
type entry struct {
	id   string
	fr   string
	en   string
	icon string
	// aliases are accepted by Parse but never produced by Translate
	aliases []string
}

func (e entry) text(lang Language) string {
	if lang == French {
		return e.fr
	}
	return e.en
}

// vocabulary indexes a closed table whose row i describes member T(i)
type vocabulary[T ~int] struct {
	name    string
	entries []entry
	reverse map[Language]map[string]T
	pattern map[Language]string
}

func newVocabulary[T ~int](name string, entries []entry) *vocabulary[T] {
	v := &vocabulary[T]{
		name:    name,
		entries: entries,
		reverse: make(map[Language]map[string]T, len(Languages)),
		pattern: make(map[Language]string, len(Languages)),
	}

	for _, lang := range Languages {
		lookup := make(map[string]T, len(entries))
		texts := make([]string, 0, len(entries))
		for i, e := range entries {
			if e.text(lang) == "" {
				panic("vocab: " + name + " member " + e.id + " has no " + string(lang) + " text")
			}
			lookup[normalize(e.text(lang))] = T(i)
			texts = append(texts, e.text(lang))
		}
		for i, e := range entries {
			for _, alias := range e.aliases {
				if _, taken := lookup[normalize(alias)]; !taken {
					lookup[normalize(alias)] = T(i)
				}
			}
		}
		v.reverse[lang] = lookup
		v.pattern[lang] = alternation(texts)
	}

	return v
}

func (v *vocabulary[T]) entry(m T) entry {
	if int(m) < 0 || int(m) >= len(v.entries) {
		return entry{id: "unknown"}
	}
	return v.entries[m]
}

func (v *vocabulary[T]) translate(m T, lang Language) string {
	return v.entry(m).text(lang)
}

func (v *vocabulary[T]) parse(text string, lang Language) (T, error) {
	if m, ok := v.reverse[lang][normalize(text)]; ok {
		return m, nil
	}
	return 0, errors.LookupFailed(v.name, text, string(lang))
}

func (v *vocabulary[T]) members() []T {
	out := make([]T, len(v.entries))
	for i := range v.entries {
		out[i] = T(i)
	}
	return out
}

// alternation joins texts longest first so a compound term is tried before
// any shorter term it starts with.
func alternation(texts []string) string {
	sorted := append([]string(nil), texts...)
	sort.SliceStable(sorted, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(sorted[i]), utf8.RuneCountInString(sorted[j])
		if li != lj {
			return li > lj
		}
		return sorted[i] < sorted[j]
	})

	quoted := make([]string, 0, len(sorted))
	seen := make(map[string]bool, len(sorted))
	for _, t := range sorted {
		if seen[t] {
			continue
		}
		seen[t] = true
		quoted = append(quoted, regexp.QuoteMeta(t))
	}
	return "(?:" + strings.Join(quoted, "|") + ")"
}

var apostrophes = strings.NewReplacer("’", "'", "\u00a0", " ")

func normalize(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(apostrophes.Replace(text)), " "))
}
