package ui

import (
	"mmssconsole/internal/console"
)

// setOp is one ordered write to a render target.
type setOp struct {
	target console.Target
	text   string
}

// recorder implements console.Surface by recording writes. Each workflow
// invocation runs against a fresh recorder inside a tea.Cmd goroutine; the
// recorded writes come back to the model as a renderMsg and are applied in
// order. Whichever message arrives last wins a contended target, matching
// the console's last-write-wins model.
type recorder struct {
	sets       []setOp
	rows       []console.TaskRow
	rowsSet    bool
	taskErr    string
	taskErrSet bool
}

func (r *recorder) Set(target console.Target, text string) {
	r.sets = append(r.sets, setOp{target: target, text: text})
}

// Has always reports true: the dashboard carries every render target.
func (r *recorder) Has(target console.Target) bool { return true }

func (r *recorder) SetTaskRows(rows []console.TaskRow) {
	r.rows = rows
	r.rowsSet = true
	r.taskErrSet = false
}

func (r *recorder) SetTaskListError(msg string) {
	r.taskErr = msg
	r.taskErrSet = true
}

// renderMsg carries a completed workflow's writes back to the model.
type renderMsg struct {
	rec *recorder
}
