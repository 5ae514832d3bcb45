package controller

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/jeqcho/pvc-playground/internal/model"
)

func largeAnalysis() m.Analysis {
	profile := m.Profile{}

	for i := 0; i < 20; i++ {
		profile.Alternatives = append(profile.Alternatives, m.Alternative(rune('a'+i)))
	}

	ranking := append(m.Ranking(nil), profile.Alternatives...)
	profile.Rankings = []m.Ranking{ranking}

	return m.Analysis{
		Profile: profile,
		Core:    profile.Alternatives,
		Vetoes:  map[m.Alternative]m.VetoResult{},
	}
}

func TestAnalysisModel_Pagination(t *testing.T) {
	small := newAnalysisModel(sampleAnalysis())
	assert.False(t, small.needsPagination())

	large := newAnalysisModel(largeAnalysis())
	assert.True(t, large.needsPagination())
}

func TestAnalysisModel_Scrolling(t *testing.T) {
	model := newAnalysisModel(largeAnalysis())
	model.height = 10

	next, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	scrolled, ok := next.(analysisModel)
	require.True(t, ok)
	assert.Equal(t, 1, scrolled.offset)

	next, _ = scrolled.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	scrolled = next.(analysisModel)
	assert.Equal(t, 0, scrolled.offset)

	// Scrolling above the top stays at the top.
	next, _ = scrolled.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	scrolled = next.(analysisModel)
	assert.Equal(t, 0, scrolled.offset)

	next, _ = scrolled.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	scrolled = next.(analysisModel)
	assert.Equal(t, scrolled.maxOffset(), scrolled.offset)

	next, _ = scrolled.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	scrolled = next.(analysisModel)
	assert.Equal(t, 0, scrolled.offset)
}

func TestAnalysisModel_WindowResize(t *testing.T) {
	model := newAnalysisModel(largeAnalysis())

	next, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	resized, ok := next.(analysisModel)
	require.True(t, ok)
	assert.Equal(t, 30, resized.height)
	assert.Equal(t, 27, resized.pageSize())
}

func TestAnalysisModel_Quit(t *testing.T) {
	model := newAnalysisModel(largeAnalysis())

	next, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	quit, ok := next.(analysisModel)
	require.True(t, ok)
	assert.True(t, quit.quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, quit.View())
}

func TestAnalysisModel_ViewShowsStatusLine(t *testing.T) {
	model := newAnalysisModel(largeAnalysis())
	model.height = 12

	view := model.View()
	assert.Contains(t, view, "of")
	assert.Contains(t, view, "q quit")
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 3, clamp(5, 0, 3))
	assert.Equal(t, 0, clamp(-2, 0, 3))
	assert.Equal(t, 2, clamp(2, 0, 3))
}
