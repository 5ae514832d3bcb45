package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jeqcho/pvc-playground/internal/adapter"
	"github.com/jeqcho/pvc-playground/internal/controller"
	m "github.com/jeqcho/pvc-playground/internal/model"
)

// AnalyzeArgs holds the parameters for the full analysis workflow.
type AnalyzeArgs struct {
	Profile m.Path
}

// VetoArgs holds the parameters for a single veto-coalition query.
type VetoArgs struct {
	Profile m.Path
	Target  m.Alternative
}

// ValidateArgs holds the parameters for profile validation.
type ValidateArgs struct {
	Profile m.Path
}

// RandomArgs holds the parameters for random profile generation.
type RandomArgs struct {
	Alternatives int
	Voters       int
	Seed         int64
	Output       m.Path
}

// Workflow wires the analysis core to the profile store and the UI. Each
// method loads the profile wholesale, runs a pure computation and displays
// the fresh result; nothing is kept between calls.
type Workflow interface {
	Analyze(ctx context.Context, args AnalyzeArgs) error
	Veto(ctx context.Context, args VetoArgs) error
	Validate(ctx context.Context, args ValidateArgs) error
	Random(ctx context.Context, args RandomArgs) error
}

type workflow struct {
	store    adapter.ProfileStore
	source   adapter.ProfileSource
	ui       controller.UI
	analyzer Analyzer
}

// NewWorkflow creates a Workflow with the provided dependencies.
func NewWorkflow(
	store adapter.ProfileStore,
	source adapter.ProfileSource,
	ui controller.UI,
	analyzer Analyzer,
) Workflow {
	return &workflow{
		store:    store,
		source:   source,
		ui:       ui,
		analyzer: analyzer,
	}
}

func (w *workflow) Analyze(ctx context.Context, args AnalyzeArgs) error {
	profile, err := w.store.Load(ctx, args.Profile)
	if err != nil {
		return err
	}

	analysis, err := w.analyzer.Analyze(ctx, profile)
	if err != nil {
		return err
	}

	return w.ui.DisplayAnalysis(ctx, analysis)
}

func (w *workflow) Veto(ctx context.Context, args VetoArgs) error {
	profile, err := w.store.Load(ctx, args.Profile)
	if err != nil {
		return err
	}

	if err := ValidateProfile(profile); err != nil {
		return fmt.Errorf("refusing to search: %w", err)
	}

	result, err := FindVetoCoalition(args.Target, profile)
	if err != nil {
		return fmt.Errorf("veto-coalition search for %q: %w", args.Target, err)
	}

	slog.Debug("veto query finished",
		"target", args.Target,
		"found", result.Found(),
		"coalition", result.Coalition.String(),
	)

	return w.ui.DisplayVeto(ctx, profile, result)
}

func (w *workflow) Validate(ctx context.Context, args ValidateArgs) error {
	profile, err := w.store.Load(ctx, args.Profile)
	if err != nil {
		return err
	}

	validationErr := ValidateProfile(profile)

	if err := w.ui.DisplayValidation(ctx, profile, validationErr); err != nil {
		return err
	}

	return validationErr
}

func (w *workflow) Random(ctx context.Context, args RandomArgs) error {
	universe, err := GenerateAlternatives(args.Alternatives)
	if err != nil {
		return err
	}

	profile, err := w.source.RandomProfile(ctx, universe, args.Voters, args.Seed)
	if err != nil {
		return err
	}

	if args.Output != "" {
		if err := w.store.Save(ctx, args.Output, profile); err != nil {
			return err
		}

		slog.Info("profile written", "path", args.Output, "alternatives", args.Alternatives, "voters", args.Voters)
	}

	return w.ui.DisplayProfile(ctx, profile)
}
