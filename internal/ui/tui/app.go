package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/unitconv/internal/domain"
)

type screen int

const (
	screenForm screen = iota
	screenCategories
)

type row int

const (
	rowCategory row = iota
	rowValue
	rowSource
	rowTarget
	rowCount
)

type categoryItem struct {
	category  domain.Category
	supported bool
}

func (c categoryItem) Title() string { return c.category.String() }
func (c categoryItem) Description() string {
	if c.supported {
		return "units available"
	}
	return "no unit data yet"
}
func (c categoryItem) FilterValue() string { return c.category.String() }

type model struct {
	theme Theme
	deps  Deps

	scr   screen
	focus row
	width int

	categories []domain.Category
	catIdx     int
	sel        domain.Selection
	selErr     error
	srcIdx     int
	tgtIdx     int

	input  textinput.Model
	result *domain.ConversionResult
	resErr error
	toast  string

	menu list.Model
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(guarded(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	in := textinput.New()
	in.Placeholder = "enter a value"
	in.Prompt = ""
	in.CharLimit = 32
	in.Focus()

	cats := deps.Catalog.Categories()
	items := make([]list.Item, 0, len(cats))
	for _, c := range cats {
		items = append(items, categoryItem{category: c, supported: deps.Catalog.Supported(c)})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Categories"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	m := model{
		theme:      DefaultTheme(),
		deps:       deps,
		scr:        screenForm,
		focus:      rowValue,
		categories: cats,
		input:      in,
		menu:       l,
	}

	start := deps.Category
	if start == "" {
		start = domain.CategoryLength
	}
	return m.setCategory(start)
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.menu.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case categoryChosenMsg:
		m.scr = screenForm
		return m.setCategory(msg.category), nil

	case toastClearedMsg:
		m.toast = ""
		return m, nil

	case tea.KeyMsg:
		if m.scr == screenCategories {
			return m.updateCategories(msg)
		}
		return m.updateForm(msg)
	}

	var cmd tea.Cmd
	switch {
	case m.scr == screenCategories:
		m.menu, cmd = m.menu.Update(msg)
	case m.focus == rowValue:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m model) updateCategories(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	filtering := m.menu.FilterState() == list.Filtering

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		if !filtering {
			m.scr = screenForm
			return m, nil
		}

	case "enter":
		if !filtering {
			it, ok := m.menu.SelectedItem().(categoryItem)
			if !ok {
				return m, nil
			}
			return m, cmdChooseCategory(it.category)
		}
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down":
		return m.moveFocus(1)
	case "shift+tab", "up":
		return m.moveFocus(-1)
	case "left":
		if m.focus != rowValue {
			return m.cycle(-1), nil
		}
	case "right":
		if m.focus != rowValue {
			return m.cycle(1), nil
		}
	}

	if m.focus == rowValue {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m.recompute(), cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "h":
		return m.cycle(-1), nil
	case "l":
		return m.cycle(1), nil
	case "x":
		return m.swap(), nil
	case "c":
		m.scr = screenCategories
		return m, nil
	}
	return m, nil
}

// reset returns to the form with no result and shows notice.
func (m model) reset(notice string) model {
	m.scr = screenForm
	m.result = nil
	m.resErr = nil
	m.toast = notice
	return m
}

func (m model) moveFocus(delta int) (model, tea.Cmd) {
	m.focus = row((int(m.focus) + delta + int(rowCount)) % int(rowCount))

	// Source and target rows are hidden when the category has no units.
	if !m.sel.HasDefaults && (m.focus == rowSource || m.focus == rowTarget) {
		if delta > 0 {
			m.focus = rowCategory
		} else {
			m.focus = rowValue
		}
	}

	if m.focus == rowValue {
		cmd := m.input.Focus()
		return m, cmd
	}
	m.input.Blur()
	return m, nil
}

func (m model) cycle(delta int) model {
	switch m.focus {
	case rowCategory:
		if len(m.categories) == 0 {
			return m
		}
		i := wrapIndex(m.catIdx+delta, len(m.categories))
		return m.setCategory(m.categories[i])
	case rowSource:
		if len(m.sel.Units) > 0 {
			m.srcIdx = wrapIndex(m.srcIdx+delta, len(m.sel.Units))
		}
	case rowTarget:
		if len(m.sel.Units) > 0 {
			m.tgtIdx = wrapIndex(m.tgtIdx+delta, len(m.sel.Units))
		}
	}
	return m.recompute()
}

func (m model) swap() model {
	m.srcIdx, m.tgtIdx = m.tgtIdx, m.srcIdx
	return m.recompute()
}

// setCategory switches the form to c and re-seeds the source and target
// pickers from the category defaults.
func (m model) setCategory(c domain.Category) model {
	m.catIdx = 0
	for i, cc := range m.categories {
		if cc == c {
			m.catIdx = i
			break
		}
	}
	m.menu.Select(m.catIdx)

	m.sel, m.selErr = m.deps.Select.Execute(c)
	m.srcIdx = indexOf(m.sel.Units, m.sel.Source)
	m.tgtIdx = indexOf(m.sel.Units, m.sel.Target)

	if !m.sel.HasDefaults && (m.focus == rowSource || m.focus == rowTarget) {
		m.focus = rowCategory
	}

	if m.selErr != nil {
		m.deps.Logger.Debug("tui.category.unsupported", "category", c, "err", m.selErr)
	}
	return m.recompute()
}

func (m model) recompute() model {
	m.result = nil
	m.resErr = nil

	if !m.sel.HasDefaults {
		return m
	}

	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		return m
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		m.resErr = &domain.OpError{
			Op:   "tui.parse_value",
			Kind: domain.KindInvalidValue,
			Err:  fmt.Errorf("%q is not a number: %w", raw, domain.ErrInvalidValue),
		}
		return m
	}

	req := domain.ConversionRequest{
		Value:    v,
		Source:   m.sel.Units[m.srcIdx],
		Target:   m.sel.Units[m.tgtIdx],
		Category: m.sel.Category,
	}
	res, err := m.deps.Convert.Execute(context.Background(), req)
	if err != nil {
		m.resErr = err
		return m
	}
	m.result = &res
	return m
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("unitconv") + "\n" +
		m.theme.Subtitle.Render("Convert lengths and temperatures") + "\n"

	switch m.scr {
	case screenCategories:
		help := m.theme.Help.Render("↑/↓ navigate • enter choose • / search • esc back")
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help)

	default:
		help := m.theme.Help.Render("tab/shift+tab move • ←/→ change • x swap • c categories • esc quit")
		if m.deps.Debug && m.deps.LogPath != "" {
			help += "\n" + m.theme.Help.Render("debug log: "+m.deps.LogPath)
		}
		out := header + "\n" + m.theme.Card.Render(m.formView()) + "\n" + help
		if m.toast != "" {
			out += "\n" + m.theme.Notice.Render(m.toast)
		}
		return wrap.Render(out)
	}
}

func (m model) formView() string {
	var b strings.Builder
	b.WriteString(m.renderRow(rowCategory, "Category", renderPicker(categoryNames(m.categories), m.catIdx)))
	b.WriteString(m.renderRow(rowValue, "Value", m.input.View()))

	if !m.sel.HasDefaults {
		msg := userMessage(m.selErr)
		if msg == "" {
			msg = "No units available"
		}
		b.WriteString("\n")
		b.WriteString(m.theme.Notice.Render(msg))
		return b.String()
	}

	b.WriteString(m.renderRow(rowSource, "From", renderPicker(m.sel.Units, m.srcIdx)))
	b.WriteString(m.renderRow(rowTarget, "To", renderPicker(m.sel.Units, m.tgtIdx)))
	b.WriteString("\n")
	b.WriteString(m.resultLine())
	return b.String()
}

func (m model) renderRow(r row, label, value string) string {
	marker := "  "
	if m.focus == r {
		marker = m.theme.Focused.Render("›") + " "
	}
	return marker + m.theme.Label.Render(label) + value + "\n"
}

func (m model) resultLine() string {
	maxLen := 60
	if m.width > 16 {
		maxLen = m.width - 16
	}

	switch {
	case m.resErr != nil:
		return m.theme.Notice.Render(clampString(userMessage(m.resErr), maxLen))
	case m.result != nil:
		return m.theme.Result.Render(clampString(renderResult(*m.result), maxLen))
	default:
		return m.theme.Help.Render("Enter a value to convert")
	}
}

func wrapIndex(i, n int) int {
	return ((i % n) + n) % n
}

func indexOf(list domain.UnitList, name string) int {
	for i, u := range list {
		if u == name {
			return i
		}
	}
	return 0
}
