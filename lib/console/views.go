// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/rollcall-hq/rollcall/lib/router"
	"github.com/rollcall-hq/rollcall/lib/state"
)

// chromeHeight is the number of screen rows taken by the header, tab
// bar, filter bar, and status bar.
const chromeHeight = 4

var tabTitles = map[Tab]string{
	TabOverview:   "overview",
	TabStudents:   "students",
	TabAttendance: "attendance",
	TabGatePasses: "gate passes",
	TabVisitors:   "visitors",
	TabUsers:      "users",
	TabSecurity:   "gate",
}

var tabViews = map[Tab]router.View{
	TabOverview:   router.ViewDashboard,
	TabStudents:   router.ViewStudents,
	TabAttendance: router.ViewAttend,
	TabGatePasses: router.ViewGatePass,
	TabVisitors:   router.ViewVisitors,
	TabUsers:      router.ViewUsers,
	TabSecurity:   router.ViewSecurity,
}

// View renders the whole console frame. The session is re-checked on
// every frame: a mid-session 401 purge drops the store back to
// anonymous and the next render lands here, not on tenant data.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	switch router.Decide(m.app.Auth, tabViews[m.tab]) {
	case router.ShowLoading:
		return lipgloss.NewStyle().
			Foreground(m.theme.FaintText).
			Render(" " + m.spinner.View() + " signing in…")
	case router.RedirectLogin:
		return lipgloss.NewStyle().
			Foreground(m.theme.ErrorForeground).
			Render(" signed out: run 'rollcall login' and reopen the console")
	}

	var frame strings.Builder
	frame.WriteString(m.headerView())
	frame.WriteByte('\n')
	frame.WriteString(m.tabBarView())
	frame.WriteByte('\n')
	frame.WriteString(m.contentView())
	if filterBar := m.filter.View(m.theme, m.width); filterBar != "" {
		frame.WriteByte('\n')
		frame.WriteString(filterBar)
	}
	frame.WriteByte('\n')
	frame.WriteString(m.statusView())
	return frame.String()
}

func (m Model) headerView() string {
	identity := "not signed in"
	if user := m.app.Auth.User; user != nil {
		identity = fmt.Sprintf("%s %s (%s)", user.FirstName, user.LastName, strings.ToLower(string(user.Role)))
	}
	title := fmt.Sprintf(" rollcall · %s · %s", m.app.Tenant.ID, identity)
	if m.app.Auth.Phase == state.PhaseCached {
		title += lipgloss.NewStyle().Foreground(m.theme.FaintText).Render(" · verifying…")
	}
	return lipgloss.NewStyle().
		Foreground(m.theme.HeaderForeground).
		Bold(true).
		Render(ansi.Truncate(title, m.width, "…"))
}

func (m Model) tabBarView() string {
	order := []Tab{TabOverview, TabStudents, TabAttendance, TabGatePasses, TabVisitors, TabUsers, TabSecurity}
	active := lipgloss.NewStyle().
		Foreground(m.theme.SelectedForeground).
		Background(m.theme.SelectedBackground).
		Bold(true)
	inactive := lipgloss.NewStyle().Foreground(m.theme.FaintText)

	parts := make([]string, 0, len(order))
	for _, tab := range order {
		label := " " + tabTitles[tab] + " "
		if tab == m.tab {
			parts = append(parts, active.Render(label))
		} else {
			parts = append(parts, inactive.Render(label))
		}
	}
	return ansi.Truncate(strings.Join(parts, " "), m.width, "…")
}

func (m Model) contentView() string {
	rows := m.visibleRows()
	height := m.pageSize()

	if len(rows) == 0 {
		empty := "nothing to show"
		if m.tabLoading() {
			empty = m.spinner.View() + " loading…"
		} else if m.filter.Input != "" {
			empty = "no rows match the filter"
		}
		return lipgloss.NewStyle().Foreground(m.theme.FaintText).Render(" " + empty)
	}

	// Keep the cursor on screen: scroll the window, not the cursor.
	top := 0
	if m.cursor >= height {
		top = m.cursor - height + 1
	}
	bottom := top + height
	if bottom > len(rows) {
		bottom = len(rows)
	}

	selected := lipgloss.NewStyle().
		Foreground(m.theme.SelectedForeground).
		Background(m.theme.SelectedBackground)
	normal := lipgloss.NewStyle().Foreground(m.theme.NormalText)

	var lines []string
	for i := top; i < bottom; i++ {
		line := ansi.Truncate(" "+rows[i], m.width, "…")
		if i == m.cursor {
			lines = append(lines, selected.Render(line))
		} else {
			lines = append(lines, normal.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) statusView() string {
	if message := m.tabError(); message != "" {
		return lipgloss.NewStyle().
			Foreground(m.theme.ErrorForeground).
			Render(ansi.Truncate(" "+message, m.width, "…"))
	}
	help := " j/k move · 1-6 tabs · 0 gate · / filter · r refresh · q quit"
	if m.tabLoading() {
		help = " " + m.spinner.View() + " loading…"
	}
	return lipgloss.NewStyle().
		Foreground(m.theme.HelpText).
		Render(ansi.Truncate(help, m.width, "…"))
}

// visibleRows is the active tab's row list after filtering.
func (m Model) visibleRows() []string {
	rows := m.tabRows()
	indices := m.filter.Apply(rows)
	visible := make([]string, len(indices))
	for i, index := range indices {
		visible[i] = rows[index]
	}
	return visible
}

// tabRows formats the active tab's slice into display rows. These
// strings double as the fuzzy filter's haystack.
func (m Model) tabRows() []string {
	switch m.tab {
	case TabOverview:
		return m.overviewRows()
	case TabStudents:
		rows := make([]string, len(m.app.Students.Items))
		for i, student := range m.app.Students.Items {
			rows[i] = fmt.Sprintf("%-24s  %s-%s  %s",
				student.FirstName+" "+student.LastName,
				student.ClassName, student.Section, student.StudentID)
		}
		return rows
	case TabAttendance:
		rows := make([]string, len(m.app.Attendance.Items))
		for i, record := range m.app.Attendance.Items {
			rows[i] = fmt.Sprintf("%-24s  %-8s  %s",
				record.Student.FirstName+" "+record.Student.LastName,
				record.Status, record.Date)
		}
		return rows
	case TabGatePasses, TabSecurity:
		rows := make([]string, len(m.app.GatePasses.Items))
		for i, pass := range m.app.GatePasses.Items {
			rows[i] = fmt.Sprintf("#%-5d %-24s  %-10s  %s",
				pass.ID, pass.Student.FirstName+" "+pass.Student.LastName,
				pass.Status, pass.Reason)
		}
		if m.tab == TabSecurity {
			rows = append(rows, m.visitorRows()...)
		}
		return rows
	case TabVisitors:
		return m.visitorRows()
	case TabUsers:
		rows := make([]string, len(m.app.Users.Items))
		for i, user := range m.app.Users.Items {
			rows[i] = fmt.Sprintf("%-24s  %-10s  %s",
				user.FullName, strings.ToLower(string(user.Role)), user.Email)
		}
		return rows
	}
	return nil
}

func (m Model) visitorRows() []string {
	rows := make([]string, len(m.app.Visitors.Items))
	for i, visitor := range m.app.Visitors.Items {
		rows[i] = fmt.Sprintf("%-24s  %-12s  %s",
			visitor.FullName, visitor.Status, visitor.Purpose)
	}
	return rows
}

func (m Model) overviewRows() []string {
	stats := m.app.Attendance.Stats
	if stats == nil {
		return nil
	}
	rows := []string{
		fmt.Sprintf("students   %d", stats.TotalStudents),
		fmt.Sprintf("present    %d", stats.Present),
		fmt.Sprintf("absent     %d", stats.Absent),
		fmt.Sprintf("late       %d", stats.Late),
		fmt.Sprintf("excused    %d", stats.Excused),
		fmt.Sprintf("rate       %.1f%%", stats.AttendanceRate),
	}
	for _, class := range m.app.Attendance.ByClass {
		rows = append(rows, fmt.Sprintf("%s-%s  %d/%d present  %.1f%%",
			class.ClassName, class.Section, class.Present, class.TotalStudents, class.AttendanceRate))
	}
	return rows
}

// tabLoading reports whether the active tab's slice is mid-request.
func (m Model) tabLoading() bool {
	switch m.tab {
	case TabOverview, TabAttendance:
		return m.app.Attendance.Loading
	case TabStudents:
		return m.app.Students.Loading
	case TabGatePasses:
		return m.app.GatePasses.Loading
	case TabVisitors:
		return m.app.Visitors.Loading
	case TabUsers:
		return m.app.Users.Loading
	case TabSecurity:
		return m.app.GatePasses.Loading || m.app.Visitors.Loading
	}
	return false
}

// tabError returns the active tab's failure message, empty when the
// last load succeeded.
func (m Model) tabError() string {
	switch m.tab {
	case TabOverview, TabAttendance:
		return m.app.Attendance.Error
	case TabStudents:
		return m.app.Students.Error
	case TabGatePasses:
		return m.app.GatePasses.Error
	case TabVisitors:
		return m.app.Visitors.Error
	case TabUsers:
		return m.app.Users.Error
	case TabSecurity:
		if m.app.GatePasses.Error != "" {
			return m.app.GatePasses.Error
		}
		return m.app.Visitors.Error
	}
	return ""
}
