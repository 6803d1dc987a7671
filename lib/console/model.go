// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rollcall-hq/rollcall/lib/api"
	"github.com/rollcall-hq/rollcall/lib/router"
	"github.com/rollcall-hq/rollcall/lib/state"
	"github.com/rollcall-hq/rollcall/lib/tui"
)

// Tab identifies which data view is active.
type Tab int

const (
	// TabOverview shows the school's attendance summary.
	TabOverview Tab = iota
	// TabStudents lists the roster.
	TabStudents
	// TabAttendance lists today's attendance records.
	TabAttendance
	// TabGatePasses lists gate passes.
	TabGatePasses
	// TabVisitors lists visitor records.
	TabVisitors
	// TabUsers lists staff and parent accounts.
	TabUsers
	// TabSecurity is the gate-duty dashboard.
	TabSecurity
)

// requestTimeout bounds each thunk's API call. The console stays
// responsive regardless; a slow call just leaves its slice loading.
const requestTimeout = 15 * time.Second

// refreshMsg tells the model to re-read the store snapshot. Every
// thunk ends with one, whether the call succeeded or failed.
type refreshMsg struct{}

// Model is the console's bubbletea model.
type Model struct {
	store  *state.Store
	client *api.Client
	theme  tui.Theme
	keys   KeyMap

	app    state.App
	tab    Tab
	cursor int
	filter FilterModel

	spinner spinner.Model
	width   int
	height  int
}

// New builds the console model. The landing tab follows the session's
// role: security guards start on the gate dashboard.
func New(store *state.Store, client *api.Client) Model {
	app := store.Snapshot()

	tab := TabOverview
	if router.Landing(app.Auth) == router.ViewSecurity {
		tab = TabSecurity
	}

	loading := spinner.New()
	loading.Spinner = spinner.Dot

	return Model{
		store:   store,
		client:  client,
		theme:   tui.DefaultTheme,
		keys:    DefaultKeyMap,
		app:     app,
		tab:     tab,
		spinner: loading,
	}
}

// Init kicks off the spinner and the initial load for the landing tab.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadTab(m.tab))
}

// Update routes messages. Filter focus captures printable keys before
// the binding table sees them.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case refreshMsg:
		m.app = m.store.Snapshot()
		m.clampCursor()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.filter.Active {
			return m.updateFilterInput(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.filter.Clear()
		m.cursor = 0
	case tea.KeyEnter:
		m.filter.Active = false
	case tea.KeyBackspace:
		if m.filter.HandleBackspace() {
			m.cursor = 0
		}
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.filter.HandleRune(r)
		}
		m.cursor = 0
	case tea.KeyCtrlC:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		m.cursor++
		m.clampCursor()
	case key.Matches(msg, m.keys.PageUp):
		m.cursor -= m.pageSize()
		if m.cursor < 0 {
			m.cursor = 0
		}
	case key.Matches(msg, m.keys.PageDown):
		m.cursor += m.pageSize()
		m.clampCursor()

	case key.Matches(msg, m.keys.TabOverview):
		return m.switchTab(TabOverview)
	case key.Matches(msg, m.keys.TabStudents):
		return m.switchTab(TabStudents)
	case key.Matches(msg, m.keys.TabAttendance):
		return m.switchTab(TabAttendance)
	case key.Matches(msg, m.keys.TabGatePasses):
		return m.switchTab(TabGatePasses)
	case key.Matches(msg, m.keys.TabVisitors):
		return m.switchTab(TabVisitors)
	case key.Matches(msg, m.keys.TabUsers):
		return m.switchTab(TabUsers)
	case key.Matches(msg, m.keys.TabSecurity):
		return m.switchTab(TabSecurity)

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadTab(m.tab)

	case key.Matches(msg, m.keys.FilterActivate):
		m.filter.Active = true
	case key.Matches(msg, m.keys.FilterClear):
		m.filter.Clear()
		m.cursor = 0
	}
	return m, nil
}

func (m Model) switchTab(tab Tab) (tea.Model, tea.Cmd) {
	if m.tab == tab {
		return m, nil
	}
	m.tab = tab
	m.cursor = 0
	m.filter.Clear()
	return m, m.loadTab(tab)
}

func (m *Model) clampCursor() {
	visible := len(m.visibleRows())
	if visible == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= visible {
		m.cursor = visible - 1
	}
}

func (m Model) pageSize() int {
	page := m.height - chromeHeight
	if page < 1 {
		return 1
	}
	return page
}

// loadTab returns the thunk that fills the given tab's slice. The
// thunk dispatches the pending action synchronously, runs the API
// call, dispatches the outcome, and asks the model to re-snapshot.
func (m Model) loadTab(tab Tab) tea.Cmd {
	store, client := m.store, m.client
	switch tab {
	case TabOverview:
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			store.Dispatch(state.AttendancePending{})
			stats, err := client.AttendanceStats(ctx, "")
			if err != nil {
				store.Dispatch(state.AttendanceRejected{Message: api.Message(err)})
				return refreshMsg{}
			}
			byClass, err := client.AttendanceByClass(ctx, "")
			if err != nil {
				store.Dispatch(state.AttendanceRejected{Message: api.Message(err)})
				return refreshMsg{}
			}
			store.Dispatch(state.AttendanceStatsLoaded{Stats: stats, ByClass: byClass})
			return refreshMsg{}
		}
	case TabStudents:
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			store.Dispatch(state.StudentsPending{})
			students, err := client.ListStudents(ctx, api.StudentFilter{})
			if err != nil {
				store.Dispatch(state.StudentsRejected{Message: api.Message(err)})
			} else {
				store.Dispatch(state.StudentsFulfilled{Students: students})
			}
			return refreshMsg{}
		}
	case TabAttendance:
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			store.Dispatch(state.AttendancePending{})
			records, err := client.ListAttendance(ctx, api.AttendanceFilter{})
			if err != nil {
				store.Dispatch(state.AttendanceRejected{Message: api.Message(err)})
			} else {
				store.Dispatch(state.AttendanceFulfilled{Records: records})
			}
			return refreshMsg{}
		}
	case TabGatePasses:
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			store.Dispatch(state.GatePassesPending{})
			passes, err := client.ListGatePasses(ctx, "")
			if err != nil {
				store.Dispatch(state.GatePassesRejected{Message: api.Message(err)})
			} else {
				store.Dispatch(state.GatePassesFulfilled{Passes: passes})
			}
			return refreshMsg{}
		}
	case TabVisitors:
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			store.Dispatch(state.VisitorsPending{})
			visitors, err := client.ListVisitors(ctx, api.VisitorFilter{})
			if err != nil {
				store.Dispatch(state.VisitorsRejected{Message: api.Message(err)})
			} else {
				store.Dispatch(state.VisitorsFulfilled{Visitors: visitors})
			}
			return refreshMsg{}
		}
	case TabUsers:
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			store.Dispatch(state.UsersPending{})
			users, err := client.ListUsers(ctx, api.UserFilter{})
			if err != nil {
				store.Dispatch(state.UsersRejected{Message: api.Message(err)})
			} else {
				store.Dispatch(state.UsersFulfilled{Users: users})
			}
			return refreshMsg{}
		}
	case TabSecurity:
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			store.Dispatch(state.GatePassesPending{})
			passes, err := client.ListGatePasses(ctx, "")
			if err != nil {
				store.Dispatch(state.GatePassesRejected{Message: api.Message(err)})
			} else {
				store.Dispatch(state.GatePassesFulfilled{Passes: passes})
			}
			store.Dispatch(state.VisitorsPending{})
			visitors, err := client.ListVisitors(ctx, api.VisitorFilter{})
			if err != nil {
				store.Dispatch(state.VisitorsRejected{Message: api.Message(err)})
			} else {
				store.Dispatch(state.VisitorsFulfilled{Visitors: visitors})
			}
			return refreshMsg{}
		}
	}
	return nil
}

// Run starts the console over the alternate screen and blocks until
// the user quits.
func Run(store *state.Store, client *api.Client) error {
	program := tea.NewProgram(New(store, client), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
