// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/ecosync/models"
)

//go:embed seed.yaml
var defaultDocument []byte

var (
	ErrNoFleet        = errors.New("seed has no fleet trucks")
	ErrDuplicateID    = errors.New("duplicate report id")
	ErrBadStatus      = errors.New("invalid report status")
	ErrNoIssueTypes   = errors.New("seed has no issue types")
	ErrNoDemoAccounts = errors.New("seed is missing demo accounts")
)

// DemoAccounts are the canned quick-demo logins. Passwords are only shown
// as a hint; no password is ever checked.
type DemoAccounts struct {
	Resident         string `yaml:"resident"`
	ResidentPassword string `yaml:"resident_password"`
	Staff            string `yaml:"staff"`
	StaffPassword    string `yaml:"staff_password"`
}

// Seed holds every mock list the views display.
type Seed struct {
	DemoAccounts        DemoAccounts                `yaml:"demo_accounts"`
	AdminReports        []models.Report             `yaml:"admin_reports"`
	Fleet               []models.FleetTruck         `yaml:"fleet"`
	AdminStats          models.AdminStats           `yaml:"admin_stats"`
	ReportTypes         []models.ReportTypeCount    `yaml:"report_types"`
	Notifications       []models.Notification       `yaml:"notifications"`
	UpcomingCollections []models.UpcomingCollection `yaml:"upcoming_collections"`
	MyReports           []models.ResidentReport     `yaml:"my_reports"`
	Schedule            []models.ScheduleDay        `yaml:"schedule"`
	TrackedTrucks       []models.TrackedTruck       `yaml:"tracked_trucks"`
	IssueTypes          []models.IssueType          `yaml:"issue_types"`
}

// Default parses the embedded seed document.
func Default() (*Seed, error) {
	return Parse(defaultDocument)
}

// Load reads a seed document from disk. An empty path loads the embedded one.
func Load(path string) (*Seed, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a seed document.
func Parse(data []byte) (*Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Seed) validate() error {
	if s.DemoAccounts.Resident == "" || s.DemoAccounts.Staff == "" {
		return ErrNoDemoAccounts
	}
	if len(s.Fleet) == 0 {
		return ErrNoFleet
	}
	if len(s.IssueTypes) == 0 {
		return ErrNoIssueTypes
	}

	seen := make(map[int]bool, len(s.AdminReports))
	for _, r := range s.AdminReports {
		if seen[r.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateID, r.ID)
		}
		seen[r.ID] = true
		if !models.ValidReportStatus(r.Status) {
			return fmt.Errorf("%w: report %d has %q", ErrBadStatus, r.ID, r.Status)
		}
	}
	return nil
}

// FreshReports returns a deep copy of the admin reports, so a board can
// mutate its list without touching the seed.
func (s *Seed) FreshReports() []models.Report {
	out := make([]models.Report, len(s.AdminReports))
	for i, r := range s.AdminReports {
		out[i] = r
		if r.AssignedTo != nil {
			truck := *r.AssignedTo
			out[i].AssignedTo = &truck
		}
	}
	return out
}

// DemoEmail returns the canned quick-demo email for a role.
func (s *Seed) DemoEmail(role models.Role) string {
	switch role {
	case models.RoleResident:
		return s.DemoAccounts.Resident
	case models.RoleStaff:
		return s.DemoAccounts.Staff
	}
	return ""
}

// DemoPassword returns the password hint shown next to a role's demo login.
func (s *Seed) DemoPassword(role models.Role) string {
	switch role {
	case models.RoleResident:
		return s.DemoAccounts.ResidentPassword
	case models.RoleStaff:
		return s.DemoAccounts.StaffPassword
	}
	return ""
}

// IssueLabel returns the display label for an issue type value.
func (s *Seed) IssueLabel(value string) (string, bool) {
	for _, it := range s.IssueTypes {
		if it.Value == value {
			return it.Label, true
		}
	}
	return "", false
}
