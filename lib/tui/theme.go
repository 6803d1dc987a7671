// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rollcall-hq/rollcall/lib/schema"
)

// Theme defines the console's color palette. All colors are lipgloss
// ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Attendance marks.
	MarkPresent lipgloss.Color
	MarkAbsent  lipgloss.Color
	MarkLate    lipgloss.Color
	MarkExcused lipgloss.Color

	// Workflow states shared by gate passes and visitors.
	StatePending  lipgloss.Color
	StateApproved lipgloss.Color
	StateDenied   lipgloss.Color
	StateActive   lipgloss.Color
	StateClosed   lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color
	ErrorForeground  lipgloss.Color

	// Filter match highlighting.
	MatchBackground lipgloss.Color
}

// AttendanceColor returns the color for an attendance mark. Unknown
// marks render as faint text.
func (theme Theme) AttendanceColor(status schema.AttendanceStatus) lipgloss.Color {
	switch status {
	case schema.AttendancePresent:
		return theme.MarkPresent
	case schema.AttendanceAbsent:
		return theme.MarkAbsent
	case schema.AttendanceLate:
		return theme.MarkLate
	case schema.AttendanceExcused:
		return theme.MarkExcused
	default:
		return theme.FaintText
	}
}

// GatePassColor returns the color for a gate pass workflow state.
func (theme Theme) GatePassColor(status schema.GatePassStatus) lipgloss.Color {
	switch status {
	case schema.GatePassPending:
		return theme.StatePending
	case schema.GatePassApproved, schema.GatePassActive:
		return theme.StateApproved
	case schema.GatePassDenied:
		return theme.StateDenied
	case schema.GatePassCompleted, schema.GatePassExpired, schema.GatePassCancelled:
		return theme.StateClosed
	default:
		return theme.FaintText
	}
}

// VisitorColor returns the color for a visitor workflow state. A
// checked-in visitor renders like an active pass: someone is inside
// the gate.
func (theme Theme) VisitorColor(status schema.VisitorStatus) lipgloss.Color {
	switch status {
	case schema.VisitorPending:
		return theme.StatePending
	case schema.VisitorApproved:
		return theme.StateApproved
	case schema.VisitorCheckedIn:
		return theme.StateActive
	case schema.VisitorDenied:
		return theme.StateDenied
	case schema.VisitorCheckedOut, schema.VisitorExpired, schema.VisitorCancelled:
		return theme.StateClosed
	default:
		return theme.FaintText
	}
}

// DefaultTheme is the built-in dark-terminal color scheme, designed
// for 256-color terminals with a dark background.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	MarkPresent: lipgloss.Color("114"), // green
	MarkAbsent:  lipgloss.Color("196"), // red
	MarkLate:    lipgloss.Color("220"), // amber
	MarkExcused: lipgloss.Color("75"),  // blue

	StatePending:  lipgloss.Color("220"), // amber
	StateApproved: lipgloss.Color("114"), // green
	StateDenied:   lipgloss.Color("196"), // red
	StateActive:   lipgloss.Color("45"),  // cyan
	StateClosed:   lipgloss.Color("245"), // gray

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),
	ErrorForeground:  lipgloss.Color("203"),

	MatchBackground: lipgloss.Color("58"), // dark amber
}
