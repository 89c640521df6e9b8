package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/timecard-app/timecard/internal/application/report"
	"github.com/timecard-app/timecard/internal/domain"
	"github.com/timecard-app/timecard/internal/validate"
)

// ReportHandler serves the manager-facing month tables under /reports.
type ReportHandler struct {
	worker  *report.WorkerReport
	project *report.ProjectReport
}

func NewReportHandler(worker *report.WorkerReport, project *report.ProjectReport) *ReportHandler {
	return &ReportHandler{worker: worker, project: project}
}

type reportColumn struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type reportRow struct {
	Date    string    `json:"date"`
	Hours   []float64 `json:"hours"`
	Total   float64   `json:"total"`
	Minutes []int     `json:"minutes"`
}

type reportResponse struct {
	Month        string         `json:"month"`
	Columns      []reportColumn `json:"columns"`
	Rows         []reportRow    `json:"rows"`
	ColumnTotals []float64      `json:"column_totals"`
	GrandTotal   float64        `json:"grand_total"`
}

// requestMonth returns the ?month= parameter, defaulting to the current
// month.
func requestMonth(r *http.Request) string {
	if m := r.URL.Query().Get("month"); m != "" {
		return m
	}
	return time.Now().Format(validate.MonthLayout)
}

// Worker returns one worker's month table, projects as columns.
func (h *ReportHandler) Worker(w http.ResponseWriter, r *http.Request) {
	workerID, err := uuid.Parse(r.URL.Query().Get("worker_id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "worker_id is required")
		return
	}
	result, err := h.worker.Execute(r.Context(), domain.NewUserID(workerID), requestMonth(r))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toReportResponse(result))
}

// Project returns one project's month table, workers as columns.
func (h *ReportHandler) Project(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(r.URL.Query().Get("project_id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "project_id is required")
		return
	}
	result, err := h.project.Execute(r.Context(), domain.NewProjectID(projectID), requestMonth(r))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toReportResponse(result))
}

func toReportResponse(result *report.Result) reportResponse {
	resp := reportResponse{
		Month:        result.Month,
		Columns:      make([]reportColumn, 0, len(result.Columns)),
		Rows:         make([]reportRow, 0, len(result.Table.Dates)),
		ColumnTotals: make([]float64, 0, len(result.Table.Columns)),
		GrandTotal:   float64(result.Table.GrandTotal) / 60,
	}
	for _, c := range result.Columns {
		resp.Columns = append(resp.Columns, reportColumn{ID: c.ID.String(), Label: c.Label})
	}
	for _, date := range result.Table.Dates {
		row := reportRow{
			Date:    date,
			Hours:   make([]float64, 0, len(result.Table.Columns)),
			Minutes: make([]int, 0, len(result.Table.Columns)),
			Total:   float64(result.Table.RowTotals[date]) / 60,
		}
		for _, col := range result.Table.Columns {
			m := result.Table.Cells[date][col]
			row.Minutes = append(row.Minutes, m)
			row.Hours = append(row.Hours, float64(m)/60)
		}
		resp.Rows = append(resp.Rows, row)
	}
	for _, col := range result.Table.Columns {
		resp.ColumnTotals = append(resp.ColumnTotals, float64(result.Table.ColTotals[col])/60)
	}
	return resp
}
