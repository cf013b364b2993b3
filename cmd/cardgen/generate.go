package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/KirkDiggler/rpg-cards/internal/clients/aidedd"
	"github.com/KirkDiggler/rpg-cards/internal/config"
	"github.com/KirkDiggler/rpg-cards/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-cards/internal/errors"
	"github.com/KirkDiggler/rpg-cards/internal/orchestrators/cards"
	"github.com/KirkDiggler/rpg-cards/internal/render"
	"github.com/KirkDiggler/rpg-cards/internal/vocab"
)

// referenceFlags holds the references given on the command line
type referenceFlags struct {
	spells              []string
	spellFilters        []string
	magicItems          []string
	feats               []string
	eldritchInvocations []string
	classFeatures       []string
	ancestryFeatures    []string
	backgrounds         []string
	legend              string
}

func (f *referenceFlags) register(flags *pflag.FlagSet) {
	flags.StringArrayVar(&f.spells, "spell", nil, "spell reference lang:slug (repeatable)")
	flags.StringArrayVar(&f.spellFilters, "spell-filter", nil, "every spell of a class, class:min:max (repeatable)")
	flags.StringArrayVar(&f.magicItems, "item", nil, "magic item reference lang:slug (repeatable)")
	flags.StringArrayVar(&f.feats, "feat", nil, "feat reference lang:slug (repeatable)")
	flags.StringArrayVar(&f.eldritchInvocations, "invocation", nil, "eldritch invocation reference lang:slug (repeatable)")
	flags.StringArrayVar(&f.classFeatures, "class-feature", nil, "class feature lang:class:Feature title (repeatable)")
	flags.StringArrayVar(&f.ancestryFeatures, "ancestry", nil, "ancestry traits lang:ancestry[:sub-ancestry] (repeatable)")
	flags.StringArrayVar(&f.backgrounds, "background", nil, "background reference lang:slug (repeatable)")
	flags.StringVar(&f.legend, "legend", "", "append the legend card in this language (fr or en)")
}

// input parses every reference, reporting all malformed ones at once
func (f *referenceFlags) input() (*cards.GenerateInput, error) {
	vb := errors.NewValidationBuilder()
	input := &cards.GenerateInput{
		Spells:              parseFlag(vb, "spell", f.spells, dnd5e.ParseReference),
		SpellFilters:        parseFlag(vb, "spell-filter", f.spellFilters, aidedd.ParseSpellFilter),
		MagicItems:          parseFlag(vb, "item", f.magicItems, dnd5e.ParseReference),
		Feats:               parseFlag(vb, "feat", f.feats, dnd5e.ParseReference),
		EldritchInvocations: parseFlag(vb, "invocation", f.eldritchInvocations, dnd5e.ParseReference),
		ClassFeatures:       parseFlag(vb, "class-feature", f.classFeatures, dnd5e.ParseClassFeatureReference),
		AncestryFeatures:    parseFlag(vb, "ancestry", f.ancestryFeatures, dnd5e.ParseAncestryFeatureReference),
		Backgrounds:         parseFlag(vb, "background", f.backgrounds, dnd5e.ParseReference),
	}
	if f.legend != "" {
		lang, err := vocab.ParseLanguage(f.legend)
		if err != nil {
			vb.Fieldf("legend", "must be fr or en, got %q", f.legend)
		}
		input.LegendLanguage = lang
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}
	return input, nil
}

func parseFlag[T any](vb *errors.ValidationBuilder, name string, values []string, parse func(string) (T, error)) []T {
	var out []T
	for _, v := range values {
		parsed, err := parse(v)
		if err != nil {
			vb.Fieldf(name, "%s", errors.GetMessage(err))
			continue
		}
		out = append(out, parsed)
	}
	return out
}

var (
	refs       referenceFlags
	outputPath string
	quiet      bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate cards and write them as JSON",
	Example: `  cardgen generate --spell en:fireball --spell fr:boule-de-feu --legend fr -o cards.json
  cardgen generate --spell-filter wizard:0:1 --item en:bag-of-holding`,
	RunE: runGenerate,
}

func init() {
	flags := generateCmd.Flags()
	refs.register(flags)

	flags.StringVarP(&outputPath, "output", "o", "", "output file, stdout when empty")
	flags.BoolVarP(&quiet, "quiet", "q", false, "hide the progress spinner")
	flags.String("spell-colors", "", "comma separated spell level colors, 2 to 10 stops")
	flags.Bool("no-cache", false, "always fetch pages, still refreshing the cache")
	flags.Int("workers", 0, "concurrent fetches per kind")
	flags.String("cache-backend", "", "page cache backend, disk or redis")
	flags.String("cache-dir", "", "disk page cache directory")
	flags.String("redis-addr", "", "redis address for the shared page cache")
	flags.Bool("fail-fast", false, "stop at the first failed reference")
	flags.Float64("rate-limit", 0, "maximum page fetches per second, 0 for unlimited")
	flags.Bool("dnd5e-api", false, "look up unknown spell shapes on dnd5eapi.co")
}

// applyFlags overrides the loaded settings with the flags set explicitly
func applyFlags(flags *pflag.FlagSet, c *config.Config) error {
	var err error
	visit := func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "spell-colors":
			c.SpellColors = config.SplitList(f.Value.String())
		case "no-cache":
			c.BypassCache, err = flags.GetBool(f.Name)
		case "workers":
			c.Workers, err = flags.GetInt(f.Name)
		case "cache-backend":
			c.CacheBackend = config.CacheBackend(f.Value.String())
		case "cache-dir":
			c.CacheDir = f.Value.String()
		case "redis-addr":
			c.RedisAddr = f.Value.String()
		case "fail-fast":
			c.FailFast, err = flags.GetBool(f.Name)
		case "rate-limit":
			c.RequestsPerSecond, err = flags.GetFloat64(f.Name)
		case "dnd5e-api":
			c.UseDnd5eAPI, err = flags.GetBool(f.Name)
		case "port":
			c.GRPCPort, err = flags.GetInt(f.Name)
		}
	}
	flags.Visit(visit)
	return err
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if err := applyFlags(cmd.Flags(), cfg); err != nil {
		return err
	}
	input, err := refs.input()
	if err != nil {
		return err
	}
	input.FailFast = cfg.FailFast

	svc, cleanup, err := newCardService(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out, err := generateWithProgress(ctx, svc, input)
	if err != nil {
		return err
	}

	if err := writeCards(out, cmd.OutOrStdout()); err != nil {
		return err
	}

	for _, f := range out.Failures {
		slog.Error("reference failed", "reference", f.Reference, "code", errors.GetCode(f.Err), "error", f.Err)
	}
	slog.Info("cards generated", "run_id", out.RunID, "cards", len(out.Cards), "failures", len(out.Failures))
	if len(out.Failures) > 0 {
		return fmt.Errorf("%d reference(s) failed", len(out.Failures))
	}
	return nil
}

func generateWithProgress(ctx context.Context, svc cards.Service, input *cards.GenerateInput) (*cards.GenerateOutput, error) {
	if quiet || verbose {
		return svc.Generate(ctx, input)
	}

	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " generating cards..."
	s.Start()
	defer s.Stop()

	return svc.Generate(ctx, input)
}

// writeCards encodes the cards as a JSON array
func writeCards(out *cards.GenerateOutput, w io.Writer) error {
	list := out.Cards
	if list == nil {
		list = []*render.Card{}
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode cards: %w", err)
	}
	return writeOutput(data, w)
}

// writeOutput writes data to the output file, or to w when none is set
func writeOutput(data []byte, w io.Writer) error {
	data = append(data, '\n')

	if outputPath == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	slog.Debug("cards written", "path", outputPath)
	return nil
}
