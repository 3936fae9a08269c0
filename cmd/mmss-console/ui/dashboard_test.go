package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mmssconsole/internal/campaign"
	"mmssconsole/internal/console"
)

func testModel() Model {
	return NewModel(nil, campaign.StandardDefaults())
}

func TestRecorderSurface(t *testing.T) {
	t.Run("records writes in order", func(t *testing.T) {
		rec := &recorder{}
		rec.Set(console.TargetStatus, "first")
		rec.Set(console.TargetMetrics, "{}")
		rec.Set(console.TargetStatus, "second")

		require.Len(t, rec.sets, 3)
		assert.Equal(t, setOp{console.TargetStatus, "first"}, rec.sets[0])
		assert.Equal(t, setOp{console.TargetStatus, "second"}, rec.sets[2])
	})

	t.Run("carries every target", func(t *testing.T) {
		rec := &recorder{}
		assert.True(t, rec.Has(console.TargetWinding))
		assert.True(t, rec.Has(console.Target("anything")))
	})

	t.Run("rows clear a previous error", func(t *testing.T) {
		rec := &recorder{}
		rec.SetTaskListError("Error: down")
		rec.SetTaskRows([]console.TaskRow{{ID: "a1", Status: `"done"`}})
		assert.True(t, rec.rowsSet)
		assert.False(t, rec.taskErrSet)
	})
}

func TestModelApply(t *testing.T) {
	t.Run("last write wins per target", func(t *testing.T) {
		m := testModel()
		rec := &recorder{}
		rec.Set(console.TargetStatus, "stale")
		rec.Set(console.TargetStatus, "fresh")
		m.apply(rec)
		assert.Equal(t, "fresh", m.panels[console.TargetStatus])
	})

	t.Run("task input target fills the textarea", func(t *testing.T) {
		m := testModel()
		rec := &recorder{}
		rec.Set(console.TargetTaskInput, `{"task_name": "t"}`)
		m.apply(rec)
		assert.Equal(t, `{"task_name": "t"}`, m.taskInput.Value())
		assert.Empty(t, m.panels[console.TargetTaskInput])
	})

	t.Run("rows replace an earlier list error", func(t *testing.T) {
		m := testModel()

		rec := &recorder{}
		rec.SetTaskListError("Error: down")
		m.apply(rec)
		assert.Equal(t, "Error: down", m.taskErr)

		rec = &recorder{}
		rec.SetTaskRows([]console.TaskRow{{ID: "a1", Status: `"done"`}})
		m.apply(rec)
		assert.Empty(t, m.taskErr)
		require.Len(t, m.rows, 1)
		assert.Equal(t, "a1", m.rows[0].ID)
	})
}

func TestModelUpdate(t *testing.T) {
	t.Run("renderMsg drains busy counter", func(t *testing.T) {
		m := testModel()
		m.busy = 2
		next, _ := m.Update(renderMsg{rec: &recorder{}})
		m = next.(Model)
		assert.Equal(t, 1, m.busy)
	})

	t.Run("tab cycles focus and wraps", func(t *testing.T) {
		m := testModel()
		for i := 0; i < focusCount; i++ {
			next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
			m = next.(Model)
		}
		assert.Equal(t, focusTask, m.focus)
	})

	t.Run("ctrl+e toggles execute", func(t *testing.T) {
		m := testModel()
		assert.True(t, m.execute)
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlE})
		m = next.(Model)
		assert.False(t, m.execute)
	})

	t.Run("window resize reflows inputs", func(t *testing.T) {
		m := testModel()
		next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
		m = next.(Model)
		assert.Equal(t, 120, m.width)
	})
}

func TestCampaignFields(t *testing.T) {
	m := testModel()
	m.fields[focusValue-1].SetValue("9")
	m.fields[focusSteps-1].SetValue("3")

	fields := m.campaignFields()
	assert.Equal(t, "9", fields.TargetValue)
	assert.Equal(t, "3", fields.MaxSteps)
	assert.Empty(t, fields.Goal)
}

func TestViewHelpers(t *testing.T) {
	t.Run("truncate respects budget", func(t *testing.T) {
		assert.Equal(t, "abcde", truncate("abcde", 10))
		assert.Equal(t, "abc...", truncate("abcdefgh", 6))
	})

	t.Run("clampLines bounds panel height", func(t *testing.T) {
		assert.Equal(t, "a\nb", clampLines("a\nb", 5))
		assert.Equal(t, "a\nb\n…", clampLines("a\nb\nc\nd", 2))
	})

	t.Run("view renders without data", func(t *testing.T) {
		m := testModel()
		out := m.View()
		assert.Contains(t, out, "MMSS OPERATOR CONSOLE")
		assert.Contains(t, out, "Physics")
	})
}
