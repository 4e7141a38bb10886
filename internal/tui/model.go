package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/salomonkoivisto/CSCE-679/internal/core"
)

const (
	gutterW  = 7 // month label column: "  Jan  "
	cellGap  = 2 // horizontal gap between cells
	minCellW = 4 // "2014" must fit under each column
	maxCellW = 14
)

// ViewMsg swaps in a freshly built view after a dataset reload.
type ViewMsg *core.View

// Model is the render surface for the temperature matrix: it draws the grid
// from the shared read-only view and feeds interaction events back into it.
// The only state it owns is the cursor, window geometry and overlay toggles.
type Model struct {
	view *core.View

	cursorX int // window year index
	cursorY int // month index, 0-11

	width  int
	height int

	showHelp   bool
	showLegend bool
}

func NewModel(view *core.View, showLegend bool) Model {
	return Model{view: view, showLegend: showLegend}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ViewMsg:
		m.view = msg
		m = m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		return m, tea.Quit

	case "m", "tab":
		// Pure state flip; the re-render right after this Update call is
		// what makes it visible.
		m.view.ToggleMode()

	case "g":
		m.showLegend = !m.showLegend

	case "?":
		m.showHelp = !m.showHelp

	case "left", "h":
		m.cursorX--
	case "right", "l":
		m.cursorX++
	case "up", "k":
		m.cursorY--
	case "down", "j":
		m.cursorY++
	}

	return m.clampCursor(), nil
}

func (m Model) clampCursor() Model {
	if m.view == nil {
		m.cursorX, m.cursorY = 0, 0
		return m
	}
	if maxX := len(m.view.Matrix.Years) - 1; m.cursorX > maxX {
		m.cursorX = maxX
	}
	if m.cursorX < 0 {
		m.cursorX = 0
	}
	if m.cursorY > 11 {
		m.cursorY = 11
	}
	if m.cursorY < 0 {
		m.cursorY = 0
	}
	return m
}

func (m Model) View() string {
	if m.view == nil {
		return "\n  " + dimStyle.Render("No data loaded.")
	}
	if m.showHelp {
		return m.helpView()
	}

	matrix := m.view.Matrix
	hot, cold := m.view.ColorDomain()
	scale := NewScale(hot, cold)
	cellW := m.cellWidth(len(matrix.Years))

	var b strings.Builder

	b.WriteString(fmt.Sprintf("\n  %s  %s\n",
		headerBrandStyle.Render("tempmatrix"),
		headerStyle.Render(m.view.Mode().Label())))
	b.WriteString("  " + dimStyle.Render(strings.Repeat("─", m.contentWidth())) + "\n")

	// Year labels.
	b.WriteString(strings.Repeat(" ", gutterW))
	for x, year := range matrix.Years {
		label := fmt.Sprintf("%-*s", cellW+cellGap, strconv.Itoa(year))
		if x == m.cursorX {
			b.WriteString(selectedStyle.Render(label))
		} else {
			b.WriteString(labelStyle.Render(label))
		}
	}
	b.WriteString("\n")

	for month := 1; month <= 12; month++ {
		label := fmt.Sprintf("  %-5s", time.Month(month).String()[:3])
		if month-1 == m.cursorY {
			b.WriteString(selectedStyle.Render(label))
		} else {
			b.WriteString(labelStyle.Render(label))
		}

		for x := range matrix.Years {
			cell := matrix.Cell(x, month)
			b.WriteString(m.renderCell(cell, scale, cellW, cold, hot,
				x == m.cursorX && month-1 == m.cursorY))
			b.WriteString(strings.Repeat(" ", cellGap))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + m.tooltipView())

	if m.showLegend {
		b.WriteString("\n  " + RenderLegend(scale, hot, cold, m.contentWidth()) + "\n")
	}

	b.WriteString("\n  " + dimStyle.Render("m toggle mode · arrows move · g legend · ? help · q quit") + "\n")
	return b.String()
}

// renderCell draws one month cell: the daily sparkline in the cell's color.
// Months with no value in the current mode stay uncolored; the selection
// carries a background so gaps remain visible inside it.
func (m Model) renderCell(cell *core.MonthCell, scale Scale, cellW int, cold, hot float64, selected bool) string {
	style := dimStyle
	if val := m.view.CurrentValue(cell); val != nil {
		style = lipgloss.NewStyle().Foreground(scale.Color(*val))
	}
	if selected {
		style = style.Background(colorSurface1)
	}
	return RenderSparkline(m.view.SparklineSeries(cell), cellW, cold, hot, style)
}

func (m Model) tooltipView() string {
	cell := m.view.Matrix.Cell(m.cursorX, m.cursorY+1)
	if cell == nil {
		return ""
	}
	info := m.view.Describe(cell)

	value := "no data"
	if info.Value != nil {
		value = fmt.Sprintf("%.1f°", *info.Value)
	}
	return fmt.Sprintf("  %s %s %s %s %s\n",
		selectedStyle.Render(info.Label),
		dimStyle.Render("·"),
		labelStyle.Render(string(info.Mode)),
		dimStyle.Render("·"),
		statusStyle.Render(value))
}

func (m Model) helpView() string {
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(colorBlue)

	rows := []struct{ key, desc string }{
		{"m / tab", "toggle between monthly max and monthly min"},
		{"← ↑ ↓ → / hjkl", "move the cell cursor"},
		{"g", "toggle the color legend"},
		{"?", "toggle this help"},
		{"q / esc", "quit"},
	}

	var b strings.Builder
	b.WriteString("\n  " + sectionStyle.Render("Keys") + "\n\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			statusStyle.Width(16).Render(r.key),
			labelStyle.Render(r.desc)))
	}
	b.WriteString("\n  " + dimStyle.Render("press ? to close") + "\n")
	return b.String()
}

func (m Model) contentWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	return w
}

func (m Model) cellWidth(years int) int {
	if years < 1 {
		years = 1
	}
	w := maxCellW
	if m.width > 0 {
		w = (m.width-gutterW)/years - cellGap
	}
	if w < minCellW {
		w = minCellW
	}
	if w > maxCellW {
		w = maxCellW
	}
	return w
}
