// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain and response types shared by the server.

# Session Types

  - Role: resident, staff, or none (empty string)
  - View: the seven renderable screens; any other value renders as the
    resident login screen

# Domain Types

Mock records shown by the views:

  - Report: admin board entry (id, location, type, status, date, assignedTo)
  - FleetTruck: admin truck card (assigned and completed counts)
  - TrackedTruck: tracking entry (location, ETA, route progress)
  - AdminStats, ReportTypeCount: static dashboard figures
  - Notification, UpcomingCollection, ResidentReport: resident dashboard lists
  - ScheduleDay, ScheduledCollection: weekly collection schedule
  - IssueType: report form issue selector entry

The two truck types are independent on purpose; nothing links a FleetTruck
to a TrackedTruck.

# Response Types

  - SessionResponse: role, email, view, rendered_view
  - ErrorResponse: error, message

# Constants

Report status values:

	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
*/
package models
