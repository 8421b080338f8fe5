// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Role is the signed-in user's role. The zero value means nobody is signed in.
type Role string

const (
	RoleNone     Role = ""
	RoleResident Role = "resident"
	RoleStaff    Role = "staff"
)

// View names one of the full-screen UI states. Values outside the constants
// below are legal to store and render as ViewResidentLogin.
type View string

const (
	ViewResidentLogin     View = "resident-login"
	ViewStaffLogin        View = "staff-login"
	ViewResidentDashboard View = "resident-dashboard"
	ViewAdminDashboard    View = "admin-dashboard"
	ViewReport            View = "report"
	ViewTracking          View = "tracking"
	ViewSchedule          View = "schedule"
)

// Views lists every renderable view in display order.
var Views = []View{
	ViewResidentLogin,
	ViewStaffLogin,
	ViewResidentDashboard,
	ViewAdminDashboard,
	ViewReport,
	ViewTracking,
	ViewSchedule,
}

// Known reports whether v is one of the seven renderable views.
func (v View) Known() bool {
	for _, known := range Views {
		if v == known {
			return true
		}
	}
	return false
}

// Report status constants
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// ReportStatuses lists the statuses offered by the admin status selector.
var ReportStatuses = []string{StatusPending, StatusInProgress, StatusCompleted}

// ValidReportStatus reports whether s is one of ReportStatuses.
func ValidReportStatus(s string) bool {
	for _, status := range ReportStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Truck status constants
const (
	TruckActive    = "Active"
	TruckReturning = "Returning"
	TruckIdle      = "Idle"
)

// Waste streams used to style schedule entries
const (
	StreamGeneral     = "general"
	StreamRecyclables = "recyclables"
	StreamOrganic     = "organic"
)

// Domain types

// Report is a waste issue as managed on the admin board.
type Report struct {
	ID         int     `json:"id" yaml:"id"`
	Location   string  `json:"location" yaml:"location"`
	IssueType  string  `json:"type" yaml:"type"`
	Status     string  `json:"status" yaml:"status"`
	Date       string  `json:"date" yaml:"date"`
	AssignedTo *string `json:"assignedTo" yaml:"assigned_to"`
}

// FleetTruck is the admin dashboard's view of a truck.
type FleetTruck struct {
	ID        string `json:"id" yaml:"id"`
	Driver    string `json:"driver" yaml:"driver"`
	Status    string `json:"status" yaml:"status"`
	Assigned  int    `json:"assigned" yaml:"assigned"`
	Completed int    `json:"completed" yaml:"completed"`
}

// TrackedTruck is the tracking view's view of a truck.
type TrackedTruck struct {
	ID       string `json:"id" yaml:"id"`
	Driver   string `json:"driver" yaml:"driver"`
	Status   string `json:"status" yaml:"status"`
	Location string `json:"location" yaml:"location"`
	ETA      string `json:"eta" yaml:"eta"`
	Progress int    `json:"progress" yaml:"progress"` // percent of route done
	Route    string `json:"route" yaml:"route"`
}

type AdminStats struct {
	TotalReports int `json:"totalReports" yaml:"total_reports"`
	Pending      int `json:"pending" yaml:"pending"`
	InProgress   int `json:"inProgress" yaml:"in_progress"`
	Completed    int `json:"completed" yaml:"completed"`
	ActiveTrucks int `json:"activeTrucks" yaml:"active_trucks"`
	TotalTrucks  int `json:"totalTrucks" yaml:"total_trucks"`
}

type ReportTypeCount struct {
	Label string `json:"label" yaml:"label"`
	Count int    `json:"count" yaml:"count"`
}

type Notification struct {
	ID      int           `json:"id" yaml:"id"`
	Message string        `json:"message" yaml:"message"`
	Age     time.Duration `json:"age" yaml:"age"`
	Read    bool          `json:"read" yaml:"read"`
}

type UpcomingCollection struct {
	ID   int    `json:"id" yaml:"id"`
	Type string `json:"type" yaml:"type"`
	Date string `json:"date" yaml:"date"`
	Time string `json:"time" yaml:"time"`
}

// ResidentReport is an entry in the resident's "My Reports" list. It is not
// linked to the admin board's Report records.
type ResidentReport struct {
	ID       int    `json:"id" yaml:"id"`
	Location string `json:"location" yaml:"location"`
	Status   string `json:"status" yaml:"status"`
	Date     string `json:"date" yaml:"date"`
}

type ScheduledCollection struct {
	Type   string `json:"type" yaml:"type"`
	Time   string `json:"time" yaml:"time"`
	Stream string `json:"stream" yaml:"stream"`
}

type ScheduleDay struct {
	Day         string                `json:"day" yaml:"day"`
	Date        string                `json:"date" yaml:"date"`
	Highlight   string                `json:"highlight,omitempty" yaml:"highlight"` // "today", "tomorrow" or empty
	Collections []ScheduledCollection `json:"collections" yaml:"collections"`
}

type IssueType struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Response types

type SessionResponse struct {
	Role         Role   `json:"role"`
	Email        string `json:"email"`
	View         View   `json:"view"`
	RenderedView View   `json:"rendered_view"`
	BoardMounted bool   `json:"board_mounted"`
	FormMounted  bool   `json:"form_mounted"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
