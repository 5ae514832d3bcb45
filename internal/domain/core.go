package domain

import (
	"context"

	"golang.org/x/sync/errgroup"

	m "github.com/jeqcho/pvc-playground/internal/model"
)

// VetoTable runs FindVetoCoalition once per alternative and returns the
// results in universe order. The searches are independent pure calls, so
// they fan out on an errgroup; workers <= 0 means one goroutine per
// alternative.
func VetoTable(ctx context.Context, profile m.Profile, workers int) ([]m.VetoResult, error) {
	results := make([]m.VetoResult, profile.M())

	group, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		group.SetLimit(workers)
	}

	for i, alt := range profile.Alternatives {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result, err := FindVetoCoalition(alt, profile)
			if err != nil {
				return err
			}

			results[i] = result

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// ComputeCore returns the proportional veto core: every alternative for
// which no veto coalition exists. This is the authoritative core; the
// successive-elimination result is only an overlay on top of it.
func ComputeCore(ctx context.Context, profile m.Profile) ([]m.Alternative, error) {
	table, err := VetoTable(ctx, profile, 0)
	if err != nil {
		return nil, err
	}

	return coreFromTable(table), nil
}

func coreFromTable(table []m.VetoResult) []m.Alternative {
	core := make([]m.Alternative, 0, len(table))

	for _, result := range table {
		if !result.Found() {
			core = append(core, result.Target)
		}
	}

	return core
}
