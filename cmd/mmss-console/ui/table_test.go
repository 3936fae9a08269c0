package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleTable(t *testing.T) {
	styles := DefaultStyles()

	t.Run("renders headers and rows in order", func(t *testing.T) {
		table := NewSimpleTable("Tasks", []string{"Task ID", "Status"})
		table.AddRow("a1", `"done"`)
		table.AddRow("a2", `{"code":1}`)

		out := table.View(styles)
		assert.Contains(t, out, "Tasks")
		assert.Contains(t, out, "Task ID")

		first := strings.Index(out, "a1")
		second := strings.Index(out, "a2")
		assert.Greater(t, first, -1)
		assert.Greater(t, second, first, "rows keep insertion order")
	})

	t.Run("empty table renders placeholder", func(t *testing.T) {
		table := NewSimpleTable("Tasks", []string{"Task ID", "Status"})
		assert.Contains(t, table.View(styles), "(empty)")
	})

	t.Run("columns widen to fit cells", func(t *testing.T) {
		table := NewSimpleTable("", []string{"ID"})
		table.AddRow("a-very-long-task-identifier")
		assert.Contains(t, table.View(styles), "a-very-long-task-identifier")
	})
}
