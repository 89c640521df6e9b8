package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/timecard-app/timecard/internal/application/timesheet"
	"github.com/timecard-app/timecard/internal/domain"
	"github.com/timecard-app/timecard/internal/infrastructure/http/middleware"
	"github.com/timecard-app/timecard/internal/validate"
)

// TimeHandler serves the worker timesheet routes under /time.
type TimeHandler struct {
	dayView     *timesheet.DayView
	summarize   *timesheet.Summarize
	addEntry    *timesheet.AddEntry
	updateEntry *timesheet.UpdateEntry
	deleteEntry *timesheet.DeleteEntry
	syncDay     *timesheet.SyncDay
}

func NewTimeHandler(dayView *timesheet.DayView, summarize *timesheet.Summarize, addEntry *timesheet.AddEntry, updateEntry *timesheet.UpdateEntry, deleteEntry *timesheet.DeleteEntry, syncDay *timesheet.SyncDay) *TimeHandler {
	return &TimeHandler{
		dayView:     dayView,
		summarize:   summarize,
		addEntry:    addEntry,
		updateEntry: updateEntry,
		deleteEntry: deleteEntry,
		syncDay:     syncDay,
	}
}

type entryResponse struct {
	ID          string   `json:"id"`
	ProjectID   string   `json:"project_id"`
	ProjectName string   `json:"project_name"`
	Date        string   `json:"date"`
	Minutes     int      `json:"minutes"`
	Hours       float64  `json:"hours"`
	Comment     string   `json:"comment"`
	Tags        []string `json:"tags"`
}

type summaryResponse struct {
	Date                 string  `json:"date"`
	DailyReportedHours   float64 `json:"daily_reported_hours"`
	DailyRequiredHours   float64 `json:"daily_required_hours"`
	DailyStatus          string  `json:"daily_status"`
	DailyRemainingHours  float64 `json:"daily_remaining_hours,omitempty"`
	MonthlyReportedHours float64 `json:"monthly_reported_hours"`
	MonthlyRequiredHours float64 `json:"monthly_required_hours"`
	MonthlyStatus        string  `json:"monthly_status"`
}

type dayResponse struct {
	Entries []entryResponse `json:"entries"`
	Summary summaryResponse `json:"summary"`
}

// requestDate returns the ?date= parameter, defaulting to today.
func requestDate(r *http.Request) string {
	if d := r.URL.Query().Get("date"); d != "" {
		return d
	}
	return time.Now().Format(validate.DateLayout)
}

// Day returns the entries plus daily/monthly aggregation for one date.
func (h *TimeHandler) Day(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFromContext(r.Context())
	result, err := h.dayView.Execute(r.Context(), principal.UserID, requestDate(r))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDayResponse(result))
}

// Summary returns the daily and monthly classification alone.
func (h *TimeHandler) Summary(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFromContext(r.Context())
	summary, err := h.summarize.Execute(r.Context(), principal.UserID, requestDate(r))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSummaryResponse(summary))
}

type createEntryRequest struct {
	ProjectID string  `json:"project_id" validate:"required,uuid"`
	Date      string  `json:"date" validate:"required"`
	Hours     float64 `json:"hours" validate:"required"`
	Comment   string  `json:"comment"`
}

// Create logs a new entry; the wire payload carries hours, stored as
// minutes.
func (h *TimeHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFromContext(r.Context())
	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid JSON body")
		return
	}
	if err := payloadValidator.Struct(req); err != nil {
		writeErr(w, http.StatusBadRequest, "", "project_id, date and hours are required")
		return
	}
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid project id")
		return
	}
	entry, err := h.addEntry.Execute(r.Context(), timesheet.AddEntryInput{
		UserID:    principal.UserID,
		ProjectID: domain.NewProjectID(projectID),
		Date:      req.Date,
		Minutes:   int(math.Round(req.Hours * 60)),
		Comment:   req.Comment,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": entry.ID.String()})
}

type updateEntryRequest struct {
	Hours   float64 `json:"hours" validate:"required"`
	Comment string  `json:"comment"`
}

// Update edits the hours/comment of one entry (owner only).
func (h *TimeHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFromContext(r.Context())
	entryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid entry id")
		return
	}
	var req updateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid JSON body")
		return
	}
	if err := payloadValidator.Struct(req); err != nil {
		writeErr(w, http.StatusBadRequest, "", "hours is required")
		return
	}
	entry, err := h.updateEntry.Execute(r.Context(), timesheet.UpdateEntryInput{
		EntryID:   domain.NewEntryID(entryID),
		Requester: principal.UserID,
		Minutes:   int(math.Round(req.Hours * 60)),
		Comment:   req.Comment,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"id": entry.ID.String(), "minutes": entry.Minutes})
}

// Delete removes one entry (owner only) and returns the refreshed
// aggregation for its date.
func (h *TimeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFromContext(r.Context())
	entryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid entry id")
		return
	}
	entry, err := h.deleteEntry.Execute(r.Context(), timesheet.DeleteEntryInput{
		EntryID:   domain.NewEntryID(entryID),
		Requester: principal.UserID,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	summary, err := h.summarize.Execute(r.Context(), principal.UserID, entry.Date)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"summary": toSummaryResponse(summary),
	})
}

type syncRequest struct {
	Date     string `json:"date" validate:"required"`
	Segments []struct {
		ProjectID string `json:"project_id" validate:"required,uuid"`
		Minutes   int    `json:"minutes"`
		Comment   string `json:"comment"`
	} `json:"segments"`
}

// Sync batch-replaces every entry of one date, all-or-nothing.
func (h *TimeHandler) Sync(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFromContext(r.Context())
	var req syncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.RecordSync("rejected")
		writeErr(w, http.StatusBadRequest, "", "invalid JSON body")
		return
	}
	if err := payloadValidator.Struct(req); err != nil {
		middleware.RecordSync("rejected")
		writeErr(w, http.StatusBadRequest, "", "date and segment project ids are required")
		return
	}
	segments := make([]domain.Segment, 0, len(req.Segments))
	for _, s := range req.Segments {
		projectID, err := uuid.Parse(s.ProjectID)
		if err != nil {
			middleware.RecordSync("rejected")
			writeErr(w, http.StatusBadRequest, "", "invalid project id")
			return
		}
		segments = append(segments, domain.Segment{
			ProjectID: domain.NewProjectID(projectID),
			Minutes:   s.Minutes,
			Comment:   s.Comment,
		})
	}
	err := h.syncDay.Execute(r.Context(), timesheet.SyncDayInput{
		UserID:   principal.UserID,
		Date:     req.Date,
		Segments: segments,
	})
	if err != nil {
		middleware.RecordSync("rejected")
		respondError(w, err)
		return
	}
	middleware.RecordSync("ok")
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func toDayResponse(result *timesheet.DayViewResult) dayResponse {
	entries := make([]entryResponse, 0, len(result.Entries))
	for _, v := range result.Entries {
		entries = append(entries, entryResponse{
			ID:          v.Entry.ID.String(),
			ProjectID:   v.Entry.ProjectID.String(),
			ProjectName: v.ProjectName,
			Date:        v.Entry.Date,
			Minutes:     v.Entry.Minutes,
			Hours:       float64(v.Entry.Minutes) / 60,
			Comment:     v.Comment,
			Tags:        v.Tags,
		})
	}
	return dayResponse{Entries: entries, Summary: toSummaryResponse(result.Summary)}
}

func toSummaryResponse(s *timesheet.Summary) summaryResponse {
	return summaryResponse{
		Date:                 s.Date,
		DailyReportedHours:   s.DailyReportedHours,
		DailyRequiredHours:   s.DailyRequiredHours,
		DailyStatus:          s.DailyStatus.Kind.String(),
		DailyRemainingHours:  s.DailyStatus.Remaining,
		MonthlyReportedHours: s.MonthlyReportedHours,
		MonthlyRequiredHours: s.MonthlyRequiredHours,
		MonthlyStatus:        s.MonthlyStatus.String(),
	}
}
