package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"multiselect/internal/config"
	"multiselect/internal/domain"
	"multiselect/internal/i18n"
	"multiselect/internal/ui/input"
	"multiselect/internal/ui/panel"
	"multiselect/internal/ui/views"
)

// Model hosts the panel full-screen and owns the selection
type Model struct {
	config    *config.Config
	options   []domain.Option
	selection []domain.Option

	panel    *panel.Panel
	search   textinput.Model
	renderer *views.Renderer
	viewport *views.Viewport
	keys     input.KeyMap
	help     help.Model
	helpOps  *HelpOps

	width  int
	height int

	// Where the panel was last drawn, for mouse routing
	layout   views.Layout
	panelTop int

	status    string
	done      bool
	cancelled bool
}

// NewModel creates a new UI model from the configuration
func NewModel(cfg *config.Config) *Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = i18n.Resolve(i18n.Search, cfg.Strings)

	m := &Model{
		config:    cfg,
		options:   cfg.Options,
		selection: cfg.SelectedOptions(),
		search:    ti,
		renderer:  views.NewRenderer(),
		keys:      input.DefaultKeyMap(),
		help:      help.New(),
		helpOps:   NewHelpOps(nil),
	}
	m.panel = panel.New(m.props())
	m.syncSearchFocus()
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.helpOps = NewHelpOps(p)
}

// Selection returns the current selection
func (m *Model) Selection() []domain.Option {
	return m.selection
}

// Cancelled reports whether the user aborted with ctrl+c
func (m *Model) Cancelled() bool {
	return m.cancelled
}

// Panel exposes the hosted panel
func (m *Model) Panel() *panel.Panel {
	return m.panel
}

func (m *Model) props() panel.Props {
	s := m.config.Panel
	return panel.Props{
		Options:           m.options,
		Value:             m.selection,
		OnChange:          m.handleChange,
		OnMobileClose:     m.handleMobileClose,
		Disabled:          s.Disabled,
		DisableSearch:     s.DisableSearch,
		FocusSearchOnOpen: s.FocusSearchOnOpen,
		HasSelectAll:      s.HasSelectAll,
		SelectAllLabel:    s.SelectAllLabel,
		OverrideStrings:   m.config.Strings,
		MobileBreakpoint:  s.MobileBreakpoint,
	}
}

func (m *Model) handleChange(selected []domain.Option) {
	log.Printf("Selection changed: %v", domain.Values(selected))
	m.selection = selected
	m.panel.SetProps(m.props())
}

func (m *Model) handleMobileClose() {
	log.Printf("Panel closed")
	m.done = true
}

func (m *Model) title() string {
	if m.config.Title != "" {
		return m.config.Title
	}
	return "multiselect"
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	if m.search.Focused() {
		return textinput.Blink
	}
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
			m.status = fmt.Sprintf("help unavailable: %v", msg.err)
		}

	default:
		if m.search.Focused() {
			m.search, cmd = m.search.Update(msg)
		}
	}

	if m.done {
		return m, tea.Quit
	}
	return m, tea.Batch(cmd, m.syncSearchFocus())
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		m.cancelled = true
		m.done = true
		return nil
	}

	searching := m.panel.FocusIndex() == panel.FocusSearch
	if !searching && key.Matches(msg, m.keys.Help) {
		return m.showHelpCmd()
	}

	e := input.Translate(msg)
	m.panel.HandleKeyDown(e)
	if e.PropagationStopped() {
		return nil
	}

	switch e.Which {
	case panel.KeyEscape:
		if m.panel.MobileCloseVisible(m.width) {
			m.panel.HandleMobileClose(e)
		} else {
			m.done = true
		}
		return nil
	case panel.KeyEnter, panel.KeySpace:
		if !searching {
			m.panel.ActivateFocused()
			return nil
		}
		if e.Which == panel.KeyEnter {
			m.done = true
			return nil
		}
	}

	if m.config.Panel.DisableSearch {
		return nil
	}
	if !searching {
		m.panel.HandleSearchFocus()
		if key.Matches(msg, m.keys.Search) {
			return nil
		}
	}
	return m.updateSearch(msg)
}

func (m *Model) updateSearch(msg tea.Msg) tea.Cmd {
	m.syncSearchFocus()
	before := m.search.Value()

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	if after := m.search.Value(); after != before {
		m.panel.HandleSearchChange(after)
	}
	return cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.panel.HandleKeyDown(panel.NewKeyEvent(panel.KeyArrowUp, false))
		return
	case tea.MouseButtonWheelDown:
		m.panel.HandleKeyDown(panel.NewKeyEvent(panel.KeyArrowDown, false))
		return
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return
		}
	default:
		return
	}

	target := m.layout.At(msg.Y - m.panelTop)
	switch target.Kind {
	case views.TargetClose:
		m.panel.HandleMobileClose(&panel.Event{})
	case views.TargetSearch:
		if !m.config.Panel.DisableSearch {
			m.panel.HandleSearchFocus()
		}
	case views.TargetRow:
		m.panel.ClickRow(target.Index)
	}
}

// syncSearchFocus mirrors the panel's focus onto the text input
func (m *Model) syncSearchFocus() tea.Cmd {
	if m.panel.FocusIndex() == panel.FocusSearch && !m.config.Panel.DisableSearch {
		if !m.search.Focused() {
			return m.search.Focus()
		}
		return nil
	}
	m.search.Blur()
	return nil
}

// View renders the program
func (m *Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder

	title := m.renderer.RenderTitle(m.title())
	b.WriteString(title)
	b.WriteString("\n")

	tree := m.panel.Render(m.width)
	if tree.Search != nil {
		tree.Search.Input = m.search.View()
	}

	footer := m.renderer.RenderStatus(m.statusLine()) + "\n" + m.help.View(m.keys)

	vp := m.rowViewport(tree, lipgloss.Height(title), lipgloss.Height(footer))
	content, layout := m.renderer.RenderPanel(tree, m.width, vp)
	m.layout = layout
	m.panelTop = lipgloss.Height(title)

	b.WriteString(content)
	b.WriteString("\n")
	b.WriteString(footer)
	return b.String()
}

// rowViewport sizes the row window to what is left of the terminal once
// everything else is drawn. Before the first size message all rows show.
func (m *Model) rowViewport(tree views.Tree, titleHeight, footerHeight int) *views.Viewport {
	if m.height == 0 {
		return nil
	}

	fixed := titleHeight + footerHeight + 2 // panel border
	if tree.MobileClose.Visible {
		fixed++
	}
	if tree.Search != nil {
		fixed += 2
	}
	if len(tree.Rows) == 0 && tree.Empty != "" {
		fixed++
	}

	if m.viewport == nil {
		m.viewport = views.NewViewport(m.height - fixed)
	}
	m.viewport.SetHeight(m.height - fixed)

	cursor := m.panel.FocusIndex()
	if tree.SelectAll == nil {
		cursor--
	}
	m.viewport.EnsureVisible(cursor, len(tree.DisplayRows()))
	return m.viewport
}

func (m *Model) statusLine() string {
	if m.status != "" {
		return m.status
	}
	switch {
	case len(m.selection) == 0:
		return i18n.Resolve(i18n.SelectSomeItems, m.config.Strings)
	case len(m.options) > 0 && m.panel.SelectAllChecked():
		return i18n.Resolve(i18n.AllItemsAreSelected, m.config.Strings)
	default:
		return fmt.Sprintf("%d of %d selected", len(m.selection), len(m.options))
	}
}
