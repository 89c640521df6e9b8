package timesheet

import (
	"context"

	"github.com/timecard-app/timecard/internal/aggregate"
	"github.com/timecard-app/timecard/internal/application/ports"
	"github.com/timecard-app/timecard/internal/domain"
	domerrors "github.com/timecard-app/timecard/internal/domain/errors"
	"github.com/timecard-app/timecard/internal/validate"
)

// EntryView is one entry prepared for rendering: tags split out of the
// comment and the project name resolved, "Unknown" if the project row is
// gone.
type EntryView struct {
	Entry       domain.TimeEntry
	ProjectName string
	Tags        []string
	Comment     string
}

// DayViewResult is everything the timesheet page needs for one user/date.
type DayViewResult struct {
	Entries []EntryView
	Summary *Summary
}

// UnknownProjectName labels entries whose project row no longer exists;
// aggregation still counts them.
const UnknownProjectName = "Unknown"

type DayView struct {
	entries   ports.EntryRepository
	projects  ports.ProjectRepository
	summarize *Summarize
}

func NewDayView(entries ports.EntryRepository, projects ports.ProjectRepository, summarize *Summarize) *DayView {
	return &DayView{entries: entries, projects: projects, summarize: summarize}
}

func (uc *DayView) Execute(ctx context.Context, userID domain.UserID, date string) (*DayViewResult, error) {
	if !validate.Date(date) {
		return nil, domerrors.ErrInvalidDate
	}
	summary, err := uc.summarize.Execute(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	entries, err := uc.entries.ListForUserDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	names, err := projectNames(ctx, uc.projects)
	if err != nil {
		return nil, err
	}

	views := make([]EntryView, 0, len(entries))
	for _, e := range entries {
		name, ok := names[e.ProjectID]
		if !ok {
			name = UnknownProjectName
		}
		views = append(views, EntryView{
			Entry:       e,
			ProjectName: name,
			Tags:        aggregate.ExtractTags(e.Comment),
			Comment:     aggregate.StripTags(e.Comment),
		})
	}
	return &DayViewResult{Entries: views, Summary: summary}, nil
}

func projectNames(ctx context.Context, projects ports.ProjectRepository) (map[domain.ProjectID]string, error) {
	all, err := projects.List(ctx, true)
	if err != nil {
		return nil, err
	}
	names := make(map[domain.ProjectID]string, len(all))
	for _, p := range all {
		names[p.ID] = p.Name
	}
	return names, nil
}
