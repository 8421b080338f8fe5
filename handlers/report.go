// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/ecosync/middleware"
	"github.com/danielhkuo/ecosync/report"
	"github.com/danielhkuo/ecosync/views"
)

const (
	// maxReportBytes caps the whole submission, photo included. The photo is
	// streamed past, never buffered.
	maxReportBytes = 20 << 20
	maxFieldBytes  = 16 << 10
)

var errFieldTooLong = errors.New("form field too long")

// SubmitReport handles POST /report
func (h *AppHandler) SubmitReport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxReportBytes)
	in, err := readReportInput(r)
	if err != nil {
		slog.Warn("unreadable report submission", "error", err)
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form")
		return
	}

	id := middleware.SessionID(r.Context())
	st, err := h.manager.SubmitReport(r.Context(), id, in)
	switch {
	case err == nil:
	case errors.Is(err, report.ErrMissingField), errors.Is(err, report.ErrUnknownIssueType):
		h.rejectReport(w, r, in, err)
		return
	case errors.Is(err, report.ErrAlreadySubmitted):
		middleware.ErrorResponse(w, http.StatusConflict, "report already submitted")
		return
	default:
		h.fail(w, err)
		return
	}

	slog.Info("report submitted",
		"display_id", st.Report.DisplayID,
		"receipt", st.Report.Receipt,
		"issue_type", st.Report.IssueType,
		"photo", st.Report.PhotoName != "",
	)
	seeOther(w, r)
}

func (h *AppHandler) rejectReport(w http.ResponseWriter, r *http.Request, in report.Input, cause error) {
	st, ok := h.load(w, r)
	if !ok {
		return
	}
	msg := "Please fill in every required field."
	if errors.Is(cause, report.ErrUnknownIssueType) {
		msg = "Please choose an issue type from the list."
	}
	page := views.NewPage(st, h.manager.Seed(), h.now()).WithRejectedReport(in, msg)
	h.renderer.Render(w, http.StatusBadRequest, page)
}

// readReportInput reads the report form from either encoding. For multipart
// bodies only the photo part's file name is kept.
func readReportInput(r *http.Request) (report.Input, error) {
	mr, err := r.MultipartReader()
	if errors.Is(err, http.ErrNotMultipart) {
		if err := r.ParseForm(); err != nil {
			return report.Input{}, err
		}
		return report.Input{
			Location:    r.PostFormValue("location"),
			IssueType:   r.PostFormValue("issueType"),
			Description: r.PostFormValue("description"),
			PhotoName:   r.PostFormValue("photo"),
		}, nil
	}
	if err != nil {
		return report.Input{}, err
	}

	var in report.Input
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			return in, nil
		}
		if err != nil {
			return in, err
		}

		switch part.FormName() {
		case "photo":
			in.PhotoName = part.FileName()
		case "location":
			in.Location, err = readField(part)
		case "issueType":
			in.IssueType, err = readField(part)
		case "description":
			in.Description, err = readField(part)
		}
		part.Close()
		if err != nil {
			return in, fmt.Errorf("%s: %w", part.FormName(), err)
		}
	}
}

func readField(part io.Reader) (string, error) {
	var b strings.Builder
	n, err := io.Copy(&b, io.LimitReader(part, maxFieldBytes+1))
	if err != nil {
		return "", err
	}
	if n > maxFieldBytes {
		return "", errFieldTooLong
	}
	return b.String(), nil
}
