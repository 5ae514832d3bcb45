package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/jeqcho/pvc-playground/internal/model"
)

// fakeStore keeps profiles in memory so workflow tests stay off the disk.
type fakeStore struct {
	profiles map[m.Path]m.Profile
	saved    map[m.Path]m.Profile
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		profiles: make(map[m.Path]m.Profile),
		saved:    make(map[m.Path]m.Profile),
	}
}

func (s *fakeStore) Load(_ context.Context, path m.Path) (m.Profile, error) {
	profile, ok := s.profiles[path]
	if !ok {
		return m.Profile{}, errors.New("profile not found")
	}

	return profile, nil
}

func (s *fakeStore) Save(_ context.Context, path m.Path, profile m.Profile) error {
	s.saved[path] = profile
	return nil
}

// fakeSource returns a canned profile regardless of seed.
type fakeSource struct {
	profile m.Profile
}

func (s *fakeSource) RandomProfile(_ context.Context, _ []m.Alternative, _ int, _ int64) (m.Profile, error) {
	return s.profile, nil
}

// recordingUI captures what the workflow asked to display.
type recordingUI struct {
	analyses    []m.Analysis
	vetoes      []m.VetoResult
	profiles    []m.Profile
	validations []error
}

func (u *recordingUI) DisplayProfile(_ context.Context, profile m.Profile) error {
	u.profiles = append(u.profiles, profile)
	return nil
}

func (u *recordingUI) DisplayAnalysis(_ context.Context, analysis m.Analysis) error {
	u.analyses = append(u.analyses, analysis)
	return nil
}

func (u *recordingUI) DisplayVeto(_ context.Context, _ m.Profile, result m.VetoResult) error {
	u.vetoes = append(u.vetoes, result)
	return nil
}

func (u *recordingUI) DisplayValidation(_ context.Context, _ m.Profile, err error) error {
	u.validations = append(u.validations, err)
	return nil
}

func newTestWorkflow(store *fakeStore, source *fakeSource, ui *recordingUI) Workflow {
	return NewWorkflow(store, source, ui, NewAnalyzer(AnalyzerOptions{}))
}

func TestWorkflow_Analyze(t *testing.T) {
	store := newFakeStore()
	store.profiles["profile.yaml"] = unanimousProfile()
	ui := &recordingUI{}

	wf := newTestWorkflow(store, &fakeSource{}, ui)

	err := wf.Analyze(context.Background(), AnalyzeArgs{Profile: "profile.yaml"})
	require.NoError(t, err)

	require.Len(t, ui.analyses, 1)
	assert.Equal(t, []m.Alternative{"a"}, ui.analyses[0].Core)
}

func TestWorkflow_Analyze_MissingProfile(t *testing.T) {
	wf := newTestWorkflow(newFakeStore(), &fakeSource{}, &recordingUI{})

	err := wf.Analyze(context.Background(), AnalyzeArgs{Profile: "missing.yaml"})
	assert.Error(t, err)
}

func TestWorkflow_Veto(t *testing.T) {
	store := newFakeStore()
	store.profiles["profile.yaml"] = unanimousProfile()
	ui := &recordingUI{}

	wf := newTestWorkflow(store, &fakeSource{}, ui)

	err := wf.Veto(context.Background(), VetoArgs{Profile: "profile.yaml", Target: "d"})
	require.NoError(t, err)

	require.Len(t, ui.vetoes, 1)
	assert.True(t, ui.vetoes[0].Found())
	assert.Equal(t, []m.Alternative{"a", "b", "c"}, ui.vetoes[0].Preferred)
}

func TestWorkflow_Veto_RefusesInvalidProfile(t *testing.T) {
	store := newFakeStore()
	store.profiles["bad.yaml"] = m.Profile{
		Alternatives: []m.Alternative{"a", "b"},
		Rankings:     []m.Ranking{{"a", "a"}},
	}
	ui := &recordingUI{}

	wf := newTestWorkflow(store, &fakeSource{}, ui)

	err := wf.Veto(context.Background(), VetoArgs{Profile: "bad.yaml", Target: "a"})
	assert.ErrorIs(t, err, m.ErrInvalidRanking)
	assert.Empty(t, ui.vetoes)
}

func TestWorkflow_Validate(t *testing.T) {
	store := newFakeStore()
	store.profiles["good.yaml"] = condorcetProfile()
	store.profiles["bad.yaml"] = m.Profile{
		Alternatives: []m.Alternative{"a", "b"},
		Rankings:     []m.Ranking{{"a", "z"}},
	}
	ui := &recordingUI{}

	wf := newTestWorkflow(store, &fakeSource{}, ui)

	require.NoError(t, wf.Validate(context.Background(), ValidateArgs{Profile: "good.yaml"}))

	err := wf.Validate(context.Background(), ValidateArgs{Profile: "bad.yaml"})
	assert.ErrorIs(t, err, m.ErrUnknownAlternative)

	// The UI saw both outcomes, diagnostics included.
	require.Len(t, ui.validations, 2)
	assert.NoError(t, ui.validations[0])
	assert.Error(t, ui.validations[1])
}

func TestWorkflow_Random(t *testing.T) {
	store := newFakeStore()
	source := &fakeSource{profile: condorcetProfile()}
	ui := &recordingUI{}

	wf := newTestWorkflow(store, source, ui)

	err := wf.Random(context.Background(), RandomArgs{Alternatives: 3, Voters: 3, Output: "out.yaml"})
	require.NoError(t, err)

	assert.Contains(t, store.saved, m.Path("out.yaml"))
	require.Len(t, ui.profiles, 1)
	assert.Equal(t, condorcetProfile(), ui.profiles[0])
}

func TestWorkflow_Random_AlphabetExhausted(t *testing.T) {
	wf := newTestWorkflow(newFakeStore(), &fakeSource{}, &recordingUI{})

	err := wf.Random(context.Background(), RandomArgs{Alternatives: 40, Voters: 2})
	assert.ErrorIs(t, err, m.ErrAlphabetExhausted)
}
