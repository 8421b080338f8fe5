// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package board

import (
	"errors"
	"fmt"

	"github.com/danielhkuo/ecosync/models"
)

var (
	ErrReportNotFound = errors.New("report not found")
	ErrUnknownTruck   = errors.New("unknown truck")
	ErrInvalidStatus  = errors.New("invalid report status")
)

// PerformanceTarget is the daily collection count a full performance bar
// represents.
const PerformanceTarget = 20

// Board is the admin dashboard's local working copy of reports and trucks.
// Stats are static figures and are not recomputed from Reports.
type Board struct {
	Reports     []models.Report          `json:"reports"`
	Trucks      []models.FleetTruck      `json:"trucks"`
	Stats       models.AdminStats        `json:"stats"`
	ReportTypes []models.ReportTypeCount `json:"report_types"`
}

// New builds a board from its parts. reports should already be a private copy.
func New(reports []models.Report, trucks []models.FleetTruck, stats models.AdminStats, types []models.ReportTypeCount) *Board {
	return &Board{
		Reports:     reports,
		Trucks:      trucks,
		Stats:       stats,
		ReportTypes: types,
	}
}

// AssignTruck sets the report's truck and forces its status to In Progress,
// whatever the previous status or assignment was.
func (b *Board) AssignTruck(reportID int, truckID string) error {
	if !b.hasTruck(truckID) {
		return fmt.Errorf("%w: %s", ErrUnknownTruck, truckID)
	}
	r, err := b.find(reportID)
	if err != nil {
		return err
	}
	r.AssignedTo = &truckID
	r.Status = models.StatusInProgress
	return nil
}

// UpdateStatus overwrites the report's status. Any transition is allowed.
func (b *Board) UpdateStatus(reportID int, status string) error {
	if !models.ValidReportStatus(status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	r, err := b.find(reportID)
	if err != nil {
		return err
	}
	r.Status = status
	return nil
}

// Report returns a copy of the report with the given id.
func (b *Board) Report(reportID int) (models.Report, error) {
	r, err := b.find(reportID)
	if err != nil {
		return models.Report{}, err
	}
	return *r, nil
}

// Efficiency is the completed share of all reports as a whole percentage.
func (b *Board) Efficiency() int {
	if b.Stats.TotalReports == 0 {
		return 0
	}
	return b.Stats.Completed * 100 / b.Stats.TotalReports
}

// Performance is the truck's completed count against PerformanceTarget as a
// percentage, capped at 100.
func Performance(t models.FleetTruck) int {
	p := t.Completed * 100 / PerformanceTarget
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}

func (b *Board) find(reportID int) (*models.Report, error) {
	for i := range b.Reports {
		if b.Reports[i].ID == reportID {
			return &b.Reports[i], nil
		}
	}
	return nil, fmt.Errorf("%w: #%d", ErrReportNotFound, reportID)
}

func (b *Board) hasTruck(id string) bool {
	for _, t := range b.Trucks {
		if t.ID == id {
			return true
		}
	}
	return false
}
