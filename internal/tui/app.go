// Package tui is the interactive exercise browser: pick an exercise, tweak
// its parameters, run it, and inspect the result without leaving the
// terminal.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/numlab/internal/exercises"
	"github.com/san-kum/numlab/internal/lab"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#444455"))
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555"))
)

const (
	stateMenu = iota
	stateParams
	stateResult
)

// param is one editable knob: a numeric field with a step for h/l nudging,
// or a choice field cycling through names.
type param struct {
	name    string
	value   float64
	step    float64
	choices []string
	choice  int
}

type resultMsg struct {
	result *lab.Result
	err    error
}

type App struct {
	registry *exercises.Registry
	names    []string
	describe map[string]string

	state    int
	cursor   int
	selected string

	params      []param
	paramCursor int
	editing     bool
	editBuf     string

	result  *lab.Result
	runErr  error
	running bool

	// 3-d view orientation, adjusted from the result screen.
	rotX, rotY float64

	width, height int
}

func NewApp() *App {
	registry := exercises.NewRegistry()
	names := registry.Names()
	describe := make(map[string]string, len(names))
	for _, name := range names {
		ex, _ := registry.Get(name)
		describe[name] = ex.Describe()
	}
	return &App{
		registry: registry,
		names:    names,
		describe: describe,
		state:    stateMenu,
		width:    80, height: 24,
		rotX: 0.4, rotY: 0.7,
	}
}

func (a App) Init() tea.Cmd { return nil }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil
	case resultMsg:
		a.running = false
		a.result, a.runErr = msg.result, msg.err
		a.state = stateResult
		return a, nil
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.state {
	case stateMenu:
		return a.menuKey(msg)
	case stateParams:
		return a.paramsKey(msg)
	case stateResult:
		return a.resultKey(msg)
	}
	return a, nil
}

func (a App) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.names)-1 {
			a.cursor++
		}
	case "enter", " ":
		a.selected = a.names[a.cursor]
		a.params = paramSpec(a.selected)
		a.paramCursor = 0
		a.state = stateParams
	}
	return a, nil
}

func (a App) paramsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.editing {
		switch msg.String() {
		case "enter":
			var val float64
			fmt.Sscanf(a.editBuf, "%f", &val)
			a.params[a.paramCursor].value = val
			a.editing, a.editBuf = false, ""
		case "escape":
			a.editing, a.editBuf = false, ""
		case "backspace":
			if len(a.editBuf) > 0 {
				a.editBuf = a.editBuf[:len(a.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					a.editBuf += string(c)
				}
			}
		}
		return a, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "escape":
		a.state = stateMenu
	case "up", "k":
		if a.paramCursor > 0 {
			a.paramCursor--
		}
	case "down", "j":
		if a.paramCursor < len(a.params)-1 {
			a.paramCursor++
		}
	case "left", "h":
		a.nudge(-1)
	case "right", "l":
		a.nudge(+1)
	case "enter", " ":
		p := &a.params[a.paramCursor]
		if p.choices == nil {
			a.editing = true
			a.editBuf = strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", p.value), "0"), ".")
		}
	case "r", "s":
		a.running = true
		return a, a.run()
	}
	return a, nil
}

func (a *App) nudge(dir int) {
	p := &a.params[a.paramCursor]
	if p.choices != nil {
		p.choice = (p.choice + dir + len(p.choices)) % len(p.choices)
		return
	}
	p.value += float64(dir) * p.step
}

func (a App) resultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "escape":
		a.state = stateParams
	case "r":
		a.running = true
		return a, a.run()
	case "h", "left":
		a.rotY -= 0.2
	case "l", "right":
		a.rotY += 0.2
	case "k", "up":
		a.rotX -= 0.2
	case "j", "down":
		a.rotX += 0.2
	}
	return a, nil
}

// run launches the selected exercise off the update loop.
func (a App) run() tea.Cmd {
	ex, err := a.registry.Get(a.selected)
	if err != nil {
		return func() tea.Msg { return resultMsg{err: err} }
	}
	p := buildParams(a.params)
	return func() tea.Msg {
		result, err := ex.Run(context.Background(), p)
		return resultMsg{result: result, err: err}
	}
}

func (a App) View() string {
	switch a.state {
	case stateMenu:
		return a.viewMenu()
	case stateParams:
		return a.viewParams()
	case stateResult:
		return a.viewResult()
	}
	return ""
}

func (a App) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + titleStyle.Render("NUMLAB") + "\n")
	b.WriteString("    " + subtleStyle.Render("numerical methods workbench") + "\n")
	b.WriteString("    " + subtleStyle.Render("───────────────────────────") + "\n\n")

	for i, name := range a.names {
		desc := a.describe[name]
		if len(desc) > 48 {
			desc = desc[:45] + "..."
		}
		if i == a.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n",
				cursorStyle.Render("▸"),
				activeStyle.Render(fmt.Sprintf("%-12s", name)),
				valueStyle.Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n",
				mutedStyle.Render(fmt.Sprintf("%-12s", name)),
				dimStyle.Render(desc)))
		}
	}

	b.WriteString("\n    " + keyHint("j/k", "navigate") + keyHint("enter", "select") + keyHint("q", "quit") + "\n")
	return b.String()
}

func (a App) viewParams() string {
	var b strings.Builder
	b.WriteString("\n\n    " + titleStyle.Render(strings.ToUpper(a.selected)) + "\n")
	b.WriteString("    " + subtleStyle.Render(a.describe[a.selected]) + "\n")
	b.WriteString("    " + subtleStyle.Render("───────────────────────────") + "\n\n")

	for i, p := range a.params {
		valStr := fmt.Sprintf("%10.3f", p.value)
		if p.choices != nil {
			valStr = fmt.Sprintf("%10s", p.choices[p.choice])
		}
		if a.editing && i == a.paramCursor {
			valStr = fmt.Sprintf("%10s", a.editBuf+"_")
		}
		if i == a.paramCursor {
			b.WriteString(fmt.Sprintf("    %s %s %s\n",
				cursorStyle.Render("▸"),
				activeStyle.Render(fmt.Sprintf("%-10s", p.name)),
				valueStyle.Render(valStr)))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s\n",
				mutedStyle.Render(fmt.Sprintf("%-10s", p.name)),
				dimStyle.Render(valStr)))
		}
	}

	if a.running {
		b.WriteString("\n    " + valueStyle.Render("running...") + "\n")
	}
	b.WriteString("\n    " + keyHint("j/k", "select") + keyHint("h/l", "adjust") +
		keyHint("enter", "edit") + keyHint("r", "run") + keyHint("esc", "back") + "\n")
	return b.String()
}

func keyHint(key, action string) string {
	return keyStyle.Render(key) + mutedStyle.Render(" "+action+"  ")
}
