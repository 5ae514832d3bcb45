package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	m "github.com/jeqcho/pvc-playground/internal/model"
)

// DefaultMaxVoters bounds the exponential coalition search unless the caller
// configures otherwise. 2^12 subsets per alternative stays comfortably
// interactive.
const DefaultMaxVoters = 12

// Analyzer produces the full veto-core report for a profile.
type Analyzer interface {
	Analyze(ctx context.Context, profile m.Profile) (m.Analysis, error)
}

// AnalyzerOptions tunes an Analyzer.
type AnalyzerOptions struct {
	// MaxVoters rejects profiles whose coalition search would be too large.
	// Zero means DefaultMaxVoters.
	MaxVoters int
	// Workers limits the per-alternative search fan-out. Zero means one
	// goroutine per alternative.
	Workers int
}

type analyzer struct {
	maxVoters int
	workers   int
}

// NewAnalyzer constructs an Analyzer with the given options.
func NewAnalyzer(opts AnalyzerOptions) Analyzer {
	maxVoters := opts.MaxVoters
	if maxVoters <= 0 {
		maxVoters = DefaultMaxVoters
	}

	return &analyzer{
		maxVoters: maxVoters,
		workers:   opts.Workers,
	}
}

// Analyze validates the profile, derives the authoritative core from one
// veto-coalition search per alternative, and attaches the advisory
// successive-elimination overlay. Every call is a pure function of the
// profile and returns a fresh Analysis; nothing is cached across edits.
func (a *analyzer) Analyze(ctx context.Context, profile m.Profile) (m.Analysis, error) {
	if err := ValidateProfile(profile); err != nil {
		return m.Analysis{}, fmt.Errorf("refusing to analyze: %w", err)
	}

	if profile.N() > a.maxVoters {
		return m.Analysis{}, fmt.Errorf("%w: %d voters, bound is %d", m.ErrTooManyVoters, profile.N(), a.maxVoters)
	}

	runID := uuid.NewString()
	start := time.Now()

	slog.Debug("analysis started", "run", runID, "alternatives", profile.M(), "voters", profile.N())

	table, err := VetoTable(ctx, profile, a.workers)
	if err != nil {
		return m.Analysis{}, fmt.Errorf("veto-coalition search: %w", err)
	}

	vetoes := make(map[m.Alternative]m.VetoResult, len(table))
	for _, result := range table {
		vetoes[result.Target] = result
	}

	sequential, err := SuccessiveCore(profile)
	if err != nil {
		// The overlay is advisory; a failed overlay does not invalidate the
		// veto-based core.
		slog.Warn("successive elimination failed", "run", runID, "error", err)
		sequential = []m.Alternative{}
	}

	analysis := m.Analysis{
		ID:         runID,
		Profile:    profile,
		Core:       coreFromTable(table),
		Sequential: sequential,
		Vetoes:     vetoes,
		Elapsed:    time.Since(start),
	}

	slog.Info("analysis finished",
		"run", runID,
		"core", analysis.Core,
		"sequential", analysis.Sequential,
		"elapsed", analysis.Elapsed,
	)

	return analysis, nil
}
