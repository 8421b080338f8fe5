// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	ErrMissingField     = errors.New("required field missing")
	ErrUnknownIssueType = errors.New("unknown issue type")
	ErrAlreadySubmitted = errors.New("report already submitted")
)

// DefaultResetDelay is how long the confirmation panel stays up before the
// form clears itself.
const DefaultResetDelay = 3 * time.Second

// Input is one submission of the report form. PhotoName is only the name of
// the picked file; its content is never read.
type Input struct {
	Location    string
	IssueType   string
	Description string
	PhotoName   string
}

// Form is the report view's local state. Nothing here is sent anywhere.
type Form struct {
	Location    string    `json:"location"`
	IssueType   string    `json:"issue_type"`
	Description string    `json:"description"`
	PhotoName   string    `json:"photo_name,omitempty"`
	Submitted   bool      `json:"submitted"`
	DisplayID   int       `json:"display_id,omitempty"`
	Receipt     string    `json:"receipt,omitempty"`
	SubmittedAt time.Time `json:"submitted_at,omitzero"`
}

func NewForm() *Form {
	return &Form{}
}

// Submit stores the input and flips the form into its confirmation state with
// a random display id in [1000, 9999]. known reports whether an issue type is
// one the selector offers.
func (f *Form) Submit(in Input, now time.Time, known func(string) bool) error {
	if f.Submitted {
		return ErrAlreadySubmitted
	}

	in.Location = strings.TrimSpace(in.Location)
	in.Description = strings.TrimSpace(in.Description)
	switch {
	case in.Location == "":
		return fmt.Errorf("%w: location", ErrMissingField)
	case in.IssueType == "":
		return fmt.Errorf("%w: type", ErrMissingField)
	case in.Description == "":
		return fmt.Errorf("%w: description", ErrMissingField)
	}
	if known != nil && !known(in.IssueType) {
		return fmt.Errorf("%w: %q", ErrUnknownIssueType, in.IssueType)
	}

	f.Location = in.Location
	f.IssueType = in.IssueType
	f.Description = in.Description
	f.PhotoName = in.PhotoName
	f.Submitted = true
	f.DisplayID = 1000 + rand.IntN(9000)
	f.Receipt = ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String()
	f.SubmittedAt = now
	return nil
}

// Reset clears every field and the submitted flag.
func (f *Form) Reset() {
	*f = Form{}
}

// ResetIfReceipt clears the form only if it still shows the submission with
// the given receipt. It reports whether it cleared anything.
func (f *Form) ResetIfReceipt(receipt string) bool {
	if !f.Submitted || f.Receipt != receipt {
		return false
	}
	f.Reset()
	return true
}
