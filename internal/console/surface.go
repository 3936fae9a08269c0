// Package console implements the operator console orchestration: the
// refresh workflows that pull state from the MMSS backend and the
// submission workflows that push operator input to it. Rendering goes
// through the Surface abstraction so the sequencing logic runs identically
// under the TUI dashboard, the single-shot CLI commands, and tests.
package console

// Target identifies a render target on the display surface.
type Target string

const (
	TargetStatus        Target = "status"         // One-line workflow status
	TargetMetrics       Target = "metrics"        // Full metrics JSON panel
	TargetElectronMass  Target = "electron_mass"  // Derived physics field
	TargetFineStructure Target = "fine_structure" // Derived physics field
	TargetCoherence     Target = "coherence"      // Derived physics field
	TargetWinding       Target = "winding"        // Derived physics field
	TargetTasks         Target = "tasks"          // Task list body
	TargetTaskInput     Target = "task_input"     // Editable task blueprint input
	TargetBlueprint     Target = "blueprint"      // LLM query response panel
	TargetVisualization Target = "visualization"  // Visualization packet panel
	TargetResearch      Target = "research"       // Research campaign result panel
)

// TaskRow is one rendered row of the task list.
type TaskRow struct {
	ID     string
	Status string
}

// Surface is where workflows render their output. Implementations decide
// how a target is displayed; the console only addresses targets by name.
//
// Optional targets degrade gracefully: Set on a target the surface does not
// have must be a no-op, and workflows probe Has before writing sub-updates
// that are meaningless without the target.
type Surface interface {
	// Set replaces the content of a target.
	Set(target Target, text string)

	// Has reports whether the surface carries the target.
	Has(target Target) bool

	// SetTaskRows replaces the task list with one row per task,
	// in the given order.
	SetTaskRows(rows []TaskRow)

	// SetTaskListError replaces the task list with a single row
	// spanning both columns showing the error message.
	SetTaskListError(msg string)
}
