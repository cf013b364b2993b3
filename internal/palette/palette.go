// Package palette builds the colors of spell cards, one per spell level
package palette

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/KirkDiggler/rpg-cards/internal/errors"
)

// SpellLevels is the number of spell levels, cantrips included
const SpellLevels = 10

var defaultSpellLevelColors = [SpellLevels]string{
	"#277DA1",
	"#577590",
	"#4D908E",
	"#43AA8B",
	"#90BE6D",
	"#F9C74F",
	"#F8961E",
	"#F9844A",
	"#F3722C",
	"#F94144",
}

// Default returns the built-in spell level colors, cantrips first
func Default() []string {
	return append([]string(nil), defaultSpellLevelColors[:]...)
}

// SpellLevelColors returns the colors of every spell level. Without an
// override the default palette is used; otherwise the override colors are
// spread over the levels.
func SpellLevelColors(override []string) ([]string, error) {
	if len(override) == 0 {
		return Default(), nil
	}
	return Interpolate(override, SpellLevels)
}

// Interpolate spreads stops evenly over steps colors, blending neighbours in
// the HCL space. The first and last colors are the first and last stops.
func Interpolate(stops []string, steps int) ([]string, error) {
	if steps < 1 {
		return nil, errors.InvalidArgumentf("palette needs at least one step, got %d", steps)
	}
	if len(stops) == 0 {
		return nil, errors.InvalidArgument("palette needs at least one color")
	}

	colors := make([]colorful.Color, len(stops))
	for i, stop := range stops {
		c, err := colorful.Hex(normalizeHex(stop))
		if err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "invalid palette color %q", stop).
				WithMeta("color", stop)
		}
		colors[i] = c
	}

	out := make([]string, steps)
	if len(colors) == 1 || steps == 1 {
		for i := range out {
			out[i] = colors[0].Hex()
		}
		return out, nil
	}

	segments := float64(len(colors) - 1)
	for i := range out {
		pos := float64(i) / float64(steps-1) * segments
		seg := int(pos)
		if seg >= len(colors)-1 {
			out[i] = colors[len(colors)-1].Hex()
			continue
		}
		t := pos - float64(seg)
		if t == 0 {
			out[i] = colors[seg].Hex()
			continue
		}
		out[i] = colors[seg].BlendHcl(colors[seg+1], t).Clamped().Hex()
	}
	return out, nil
}

// normalizeHex accepts colors with or without the leading hash
func normalizeHex(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return s
}
