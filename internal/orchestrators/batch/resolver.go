// Package batch resolves a list of references concurrently and returns the
// records in a deterministic order, whatever the completion order of the
// workers.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-cards/internal/errors"
)

// DefaultWorkers is the size of the worker pool when none is configured
const DefaultWorkers = 5

// Options tune a resolution
type Options struct {
	// Workers bounds the number of concurrent scrapes, DefaultWorkers when 0
	Workers int
	// FailFast aborts the batch on the first failure instead of reporting it
	// alongside the records that resolved
	FailFast bool
}

func (o Options) workers() int {
	if o.Workers <= 0 {
		return DefaultWorkers
	}
	return o.Workers
}

// Failure is a reference that could not be resolved
type Failure struct {
	Reference string
	Err       error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Reference, f.Err)
}

// ResolveInput describes one batch of references of a single kind
type ResolveInput[R fmt.Stringer, T any] struct {
	// Kind names the records in logs, e.g. "spell"
	Kind       string
	References []R
	Scrape     func(ctx context.Context, ref R) (T, error)
	// Compare orders the records; ties are broken by reference
	Compare func(a, b T) int
	Options Options
}

// Validate checks the input carries a scraper and an ordering
func (i *ResolveInput[R, T]) Validate() error {
	vb := errors.NewValidationBuilder()
	if i.Scrape == nil {
		vb.RequiredField("Scrape")
	}
	if i.Compare == nil {
		vb.RequiredField("Compare")
	}
	if i.Options.Workers < 0 {
		vb.Fieldf("Workers", "must not be negative, got %d", i.Options.Workers)
	}
	return vb.Build()
}

// ResolveOutput holds the sorted records and the failed references in
// request order
type ResolveOutput[T any] struct {
	Records  []T
	Failures []Failure
}

type outcome[T any] struct {
	ref    string
	record T
	err    error
}

// Resolve scrapes every reference with a bounded pool of workers. Duplicate
// references are scraped once.
//
// Without FailFast a failed reference is reported in Failures and the other
// references still resolve. With FailFast the first failure cancels the
// remaining scrapes and is returned as the error.
func Resolve[R fmt.Stringer, T any](ctx context.Context, input *ResolveInput[R, T]) (*ResolveOutput[T], error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := input.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid batch input")
	}

	refs := unique(input.References)
	if len(refs) == 0 {
		return &ResolveOutput[T]{}, nil
	}

	start := time.Now()
	slog.Info("Resolving batch", "kind", input.Kind, "references", len(refs), "workers", input.Options.workers())

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(input.Options.workers())

	outcomes := make([]outcome[T], len(refs))
	for i, ref := range refs {
		g.Go(func() error {
			outcomes[i].ref = ref.String()
			if err := gctx.Err(); err != nil {
				outcomes[i].err = err
				return errors.Wrapf(err, "%s batch canceled", input.Kind)
			}

			record, err := input.Scrape(gctx, ref)
			if err != nil {
				outcomes[i].err = err
				if input.Options.FailFast {
					return errors.Wrapf(err, "failed to resolve %s %s", input.Kind, ref)
				}
				slog.Warn("Failed to resolve reference", "kind", input.Kind, "reference", ref.String(), "error", err)
				return nil
			}
			outcomes[i].record = record
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrapf(err, "%s batch canceled", input.Kind)
	}

	output := &ResolveOutput[T]{}
	resolved := make([]outcome[T], 0, len(outcomes))
	for _, o := range outcomes {
		if o.err != nil {
			output.Failures = append(output.Failures, Failure{Reference: o.ref, Err: o.err})
			continue
		}
		resolved = append(resolved, o)
	}

	slices.SortStableFunc(resolved, func(a, b outcome[T]) int {
		if c := input.Compare(a.record, b.record); c != 0 {
			return c
		}
		return strings.Compare(a.ref, b.ref)
	})
	output.Records = make([]T, len(resolved))
	for i, o := range resolved {
		output.Records[i] = o.record
	}

	slog.Info("Resolved batch",
		"kind", input.Kind,
		"records", len(output.Records),
		"failures", len(output.Failures),
		"duration", time.Since(start))

	return output, nil
}

// unique drops repeated references, keeping the first occurrence
func unique[R fmt.Stringer](refs []R) []R {
	seen := make(map[string]bool, len(refs))
	out := make([]R, 0, len(refs))
	for _, ref := range refs {
		key := ref.String()
		if seen[key] {
			slog.Debug("Skipping duplicate reference", "reference", key)
			continue
		}
		seen[key] = true
		out = append(out, ref)
	}
	return out
}
