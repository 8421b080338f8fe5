// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"html/template"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/ecosync/board"
	"github.com/danielhkuo/ecosync/models"
)

var funcs = template.FuncMap{
	"ago":         ago,
	"comma":       func(n int) string { return humanize.Comma(int64(n)) },
	"statusClass": statusClass,
	"truckClass":  truckClass,
	"performance": board.Performance,
	"percent":     percent,
	"assigned":    assigned,
	"statuses":    func() []string { return models.ReportStatuses },
}

// ago renders a notification age relative to now, e.g. "2 hours ago".
func ago(now time.Time, age time.Duration) string {
	return humanize.RelTime(now.Add(-age), now, "ago", "from now")
}

func statusClass(status string) string {
	switch status {
	case models.StatusCompleted:
		return "dot-green"
	case models.StatusInProgress:
		return "dot-blue"
	case models.StatusPending:
		return "dot-amber"
	}
	return "dot-gray"
}

func truckClass(status string) string {
	switch status {
	case models.TruckActive:
		return "dot-green"
	case models.TruckReturning:
		return "dot-blue"
	}
	return "dot-gray"
}

// percent clamps n into 0..100 for progress bar widths.
func percent(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

func assigned(r models.Report) string {
	if r.AssignedTo == nil {
		return ""
	}
	return *r.AssignedTo
}
