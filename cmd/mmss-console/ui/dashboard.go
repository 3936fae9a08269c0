package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mmssconsole/internal/campaign"
	"mmssconsole/internal/console"
	"mmssconsole/internal/logging"
)

// Focusable inputs, in tab order. The task blueprint textarea is index 0;
// the remaining indices address fields[i-1].
const (
	focusTask = iota
	focusQuery
	focusGoal
	focusTarget
	focusValue
	focusSteps
	focusContext
	focusCount
)

var fieldLabels = [...]string{
	"Query", "Goal", "Optimization target", "Target value", "Max steps", "Context JSON",
}

// Model is the dashboard: one panel per render target, inputs for the three
// submission workflows, and key bindings that trigger refreshes. Workflows
// run in tea.Cmd goroutines against recorder surfaces; their writes are
// merged back in arrival order, so concurrent refreshes of one panel are
// last-write-wins.
type Model struct {
	client   console.Caller
	defaults campaign.Defaults

	panels  map[console.Target]string
	rows    []console.TaskRow
	taskErr string

	execute bool
	focus   int

	taskInput textarea.Model
	fields    [6]textinput.Model

	spin spinner.Model
	busy int

	width  int
	height int
	styles Styles
	log    *logging.Logger
}

// NewModel creates the dashboard over the given client.
func NewModel(client console.Caller, defaults campaign.Defaults) Model {
	ta := textarea.New()
	ta.Placeholder = `{"task_name": "...", "geometric_operator": "...", ...}`
	ta.SetHeight(4)
	ta.Focus()

	var fields [6]textinput.Model
	placeholders := [...]string{
		"describe the task in plain language",
		defaults.Goal,
		defaults.OptimizationTarget,
		"0",
		"5",
		"{}",
	}
	for i := range fields {
		fields[i] = textinput.New()
		fields[i].Placeholder = placeholders[i]
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		client:    client,
		defaults:  defaults,
		panels:    make(map[console.Target]string),
		execute:   true,
		taskInput: ta,
		fields:    fields,
		spin:      sp,
		width:     100,
		height:    40,
		styles:    DefaultStyles(),
		log:       logging.Get(logging.CategoryDashboard),
	}
}

// Init fires the initial load of all three refreshers.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, textarea.Blink, m.refreshAllCmd())
}

// workflowCmd runs one console workflow against a fresh recorder surface.
func (m Model) workflowCmd(run func(*console.Console)) tea.Cmd {
	client, defaults := m.client, m.defaults
	return func() tea.Msg {
		rec := &recorder{}
		run(console.New(client, rec, defaults))
		return renderMsg{rec: rec}
	}
}

func (m Model) refreshAllCmd() tea.Cmd {
	return m.workflowCmd(func(c *console.Console) { c.RefreshAll(context.Background()) })
}

// campaignFields collects the five campaign inputs.
func (m Model) campaignFields() campaign.Fields {
	return campaign.Fields{
		Goal:               m.fields[focusGoal-1].Value(),
		OptimizationTarget: m.fields[focusTarget-1].Value(),
		TargetValue:        m.fields[focusValue-1].Value(),
		MaxSteps:           m.fields[focusSteps-1].Value(),
		Context:            m.fields[focusContext-1].Value(),
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.taskInput.SetWidth(m.width - 6)
		for i := range m.fields {
			m.fields[i].Width = m.width - 30
		}
		return m, nil

	case spinner.TickMsg:
		if m.busy == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case renderMsg:
		if m.busy > 0 {
			m.busy--
		}
		m.apply(msg.rec)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "tab":
			m.setFocus((m.focus + 1) % focusCount)
			return m, nil
		case "shift+tab":
			m.setFocus((m.focus + focusCount - 1) % focusCount)
			return m, nil

		case "ctrl+r":
			m.busy++
			m.log.Info("manual refresh")
			return m, tea.Batch(m.refreshAllCmd(), m.spin.Tick)

		case "ctrl+e":
			m.execute = !m.execute
			return m, nil

		case "ctrl+s":
			input := m.taskInput.Value()
			execute := m.execute
			m.busy++
			return m, tea.Batch(m.workflowCmd(func(c *console.Console) {
				c.SubmitTask(context.Background(), input, execute)
			}), m.spin.Tick)

		case "ctrl+q":
			query := m.fields[focusQuery-1].Value()
			m.busy++
			return m, tea.Batch(m.workflowCmd(func(c *console.Console) {
				c.Query(context.Background(), query)
			}), m.spin.Tick)

		case "ctrl+g":
			fields := m.campaignFields()
			m.busy++
			return m, tea.Batch(m.workflowCmd(func(c *console.Console) {
				c.RunCampaign(context.Background(), fields)
			}), m.spin.Tick)
		}
	}

	// Route everything else to the focused input.
	var cmd tea.Cmd
	if m.focus == focusTask {
		m.taskInput, cmd = m.taskInput.Update(msg)
	} else {
		m.fields[m.focus-1], cmd = m.fields[m.focus-1].Update(msg)
	}
	return m, cmd
}

// apply merges a workflow's recorded writes into the model, in write order.
func (m *Model) apply(rec *recorder) {
	for _, op := range rec.sets {
		if op.target == console.TargetTaskInput {
			// The LLM query workflow pre-fills the task input.
			m.taskInput.SetValue(op.text)
			continue
		}
		m.panels[op.target] = op.text
	}
	if rec.rowsSet {
		m.rows = rec.rows
		m.taskErr = ""
	}
	if rec.taskErrSet {
		m.taskErr = rec.taskErr
	}
}

func (m *Model) setFocus(focus int) {
	m.focus = focus
	if focus == focusTask {
		m.taskInput.Focus()
	} else {
		m.taskInput.Blur()
	}
	for i := range m.fields {
		if focus != focusTask && i == focus-1 {
			m.fields[i].Focus()
		} else {
			m.fields[i].Blur()
		}
	}
}

// View renders the dashboard.
func (m Model) View() string {
	s := m.styles
	var sb strings.Builder

	title := s.Title.Render(" MMSS OPERATOR CONSOLE ")
	if m.busy > 0 {
		title += " " + m.spin.View()
	}
	sb.WriteString(title + "\n")

	if status := m.panels[console.TargetStatus]; status != "" {
		style := s.Info
		if strings.Contains(status, "error") {
			style = s.Error
		}
		sb.WriteString(style.Render("Status: "+status) + "\n")
	}
	sb.WriteString("\n")

	half := (m.width - 8) / 2
	if half < 30 {
		half = 30
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.physicsView(),
		m.panelView("Metrics", m.panels[console.TargetMetrics], half, 10),
		m.panelView("Visualization", m.panels[console.TargetVisualization], half, 6),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.tasksView(half),
		m.panelView("Blueprint", m.panels[console.TargetBlueprint], half, 8),
		m.panelView("Research", m.panels[console.TargetResearch], half, 8),
	)
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right) + "\n")

	sb.WriteString(m.inputsView() + "\n")

	execState := "on"
	if !m.execute {
		execState = "off"
	}
	help := "tab focus · ctrl+r refresh · ctrl+s submit task · ctrl+q query · " +
		"ctrl+g campaign · ctrl+e execute: " + execState + " · ctrl+c quit"
	sb.WriteString(s.Muted.Render(help))

	return sb.String()
}

// physicsView renders the four derived constants.
func (m Model) physicsView() string {
	s := m.styles
	rows := []struct {
		label  string
		target console.Target
	}{
		{"Electron mass", console.TargetElectronMass},
		{"Fine-structure const", console.TargetFineStructure},
		{"Quaternion coherence", console.TargetCoherence},
		{"Topological winding", console.TargetWinding},
	}

	var sb strings.Builder
	sb.WriteString(s.Header.Render("Physics") + "\n")
	for _, row := range rows {
		value := m.panels[row.target]
		if value == "" {
			value = s.Muted.Render("—")
		} else {
			value = s.Value.Render(value)
		}
		sb.WriteString(s.Label.Render(row.label) + value + "\n")
	}
	return sb.String()
}

// tasksView renders the task list, or its error row.
func (m Model) tasksView(width int) string {
	table := NewSimpleTable("Tasks", []string{"Task ID", "Status"})
	if m.taskErr != "" {
		table.AddRow(m.taskErr, "")
	} else {
		for _, row := range m.rows {
			table.AddRow(row.ID, truncate(row.Status, width/2))
		}
	}
	return table.View(m.styles)
}

// panelView renders a titled, height-bounded JSON panel.
func (m Model) panelView(title, content string, width, maxLines int) string {
	s := m.styles
	if content == "" {
		content = s.Muted.Render("(no data)")
	} else {
		content = clampLines(content, maxLines)
	}
	return s.Header.Render(title) + "\n" + s.Panel.Width(width).Render(content)
}

// inputsView renders the task textarea and the workflow fields.
func (m Model) inputsView() string {
	s := m.styles
	var sb strings.Builder

	taskLabel := "Task blueprint"
	if m.focus == focusTask {
		taskLabel = s.Bold.Render(taskLabel + " ◀")
	} else {
		taskLabel = s.Muted.Render(taskLabel)
	}
	sb.WriteString(taskLabel + "\n" + m.taskInput.View() + "\n")

	for i, field := range m.fields {
		label := fieldLabels[i]
		if m.focus == i+1 {
			label = s.Bold.Render(label + " ◀")
		} else {
			label = s.Muted.Render(label)
		}
		sb.WriteString(s.Label.Render(label) + field.View() + "\n")
	}
	return sb.String()
}

func truncate(text string, max int) string {
	if max > 3 && len(text) > max {
		return text[:max-3] + "..."
	}
	return text
}

func clampLines(text string, max int) string {
	lines := strings.Split(text, "\n")
	if len(lines) <= max {
		return text
	}
	return strings.Join(lines[:max], "\n") + "\n…"
}
