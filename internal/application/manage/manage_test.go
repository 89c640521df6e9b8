package manage

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timecard-app/timecard/internal/domain"
	domerrors "github.com/timecard-app/timecard/internal/domain/errors"
	"github.com/timecard-app/timecard/internal/infrastructure/persistence/memory"
)

func TestCreateProject(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	uc := NewCreateProject(store.Projects())

	created, err := uc.Execute(ctx, CreateProjectInput{Name: "  Alpha  ", Color: "#ff0000"})
	require.NoError(t, err)
	assert.Equal(t, "Alpha", created.Name)

	_, err = uc.Execute(ctx, CreateProjectInput{Name: "Alpha"})
	assert.ErrorIs(t, err, domerrors.ErrDuplicateName)

	_, err = uc.Execute(ctx, CreateProjectInput{Name: "   "})
	assert.ErrorIs(t, err, domerrors.ErrInvalidProjectName)
}

func TestUpdateProjectSystemGuard(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	holiday := &domain.Project{ID: domain.NewProjectID(uuid.New()), Name: "Holiday", IsSystem: true}
	require.NoError(t, store.Projects().Create(ctx, holiday))

	update := NewUpdateProject(store.Projects())
	_, err := update.Execute(ctx, UpdateProjectInput{ProjectID: holiday.ID, Name: "Vacation"})
	assert.ErrorIs(t, err, domerrors.ErrSystemProject)

	// Color changes are allowed on system projects.
	got, err := update.Execute(ctx, UpdateProjectInput{ProjectID: holiday.ID, Name: "Holiday", Color: "#00ff00"})
	require.NoError(t, err)
	assert.Equal(t, "#00ff00", got.Color)

	suppress := NewSuppressProject(store.Projects())
	assert.ErrorIs(t, suppress.Execute(ctx, holiday.ID), domerrors.ErrSystemProject)
}

func TestSuppressProject(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	proj := &domain.Project{ID: domain.NewProjectID(uuid.New()), Name: "Alpha"}
	require.NoError(t, store.Projects().Create(ctx, proj))

	uc := NewSuppressProject(store.Projects())
	require.NoError(t, uc.Execute(ctx, proj.ID))

	active, err := store.Projects().List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, active)
	all, err := store.Projects().List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	assert.ErrorIs(t, uc.Execute(ctx, domain.NewProjectID(uuid.New())), domerrors.ErrNotFound)
}

func TestAssignProject(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	user := &domain.User{ID: domain.NewUserID(uuid.New()), Email: "worker@example.com", Roles: []domain.Role{domain.RoleAccount}}
	require.NoError(t, store.Users().Create(ctx, user))
	proj := &domain.Project{ID: domain.NewProjectID(uuid.New()), Name: "Alpha"}
	require.NoError(t, store.Projects().Create(ctx, proj))

	uc := NewAssignProject(store.Assignments(), store.Users(), store.Projects())

	created, err := uc.Execute(ctx, AssignProjectInput{UserID: user.ID, ProjectID: proj.ID})
	require.NoError(t, err)
	assert.False(t, created.Suppressed)

	_, err = uc.Execute(ctx, AssignProjectInput{UserID: user.ID, ProjectID: proj.ID})
	assert.ErrorIs(t, err, domerrors.ErrDuplicateAssignment)

	_, err = uc.Execute(ctx, AssignProjectInput{UserID: domain.NewUserID(uuid.New()), ProjectID: proj.ID})
	assert.ErrorIs(t, err, domerrors.ErrUserNotFound)

	_, err = uc.Execute(ctx, AssignProjectInput{UserID: user.ID, ProjectID: domain.NewProjectID(uuid.New())})
	assert.ErrorIs(t, err, domerrors.ErrNotFound)

	suppress := NewSuppressAssignment(store.Assignments())
	require.NoError(t, suppress.Execute(ctx, created.ID))
	active, err := store.Assignments().ListByUser(ctx, user.ID, true)
	require.NoError(t, err)
	assert.Empty(t, active)
	historical, err := store.Assignments().ListByUser(ctx, user.ID, false)
	require.NoError(t, err)
	assert.Len(t, historical, 1)
}

func TestSetCalendarDay(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	set := NewSetCalendarDay(store.Calendar())

	day, err := set.Execute(ctx, SetCalendarDayInput{Date: "2024-06-24", DayType: "public_holiday"})
	require.NoError(t, err)
	assert.Equal(t, domain.DayTypePublicHoliday, day.DayType)

	// Upsert replaces the prior override.
	day, err = set.Execute(ctx, SetCalendarDayInput{Date: "2024-06-24", DayType: "workday"})
	require.NoError(t, err)
	assert.Equal(t, domain.DayTypeWorkday, day.DayType)

	_, err = set.Execute(ctx, SetCalendarDayInput{Date: "2024-02-30", DayType: "workday"})
	assert.ErrorIs(t, err, domerrors.ErrInvalidDate)
	_, err = set.Execute(ctx, SetCalendarDayInput{Date: "2024-06-24", DayType: "party"})
	assert.ErrorIs(t, err, domerrors.ErrInvalidDayType)

	list := NewMonthOverrides(store.Calendar())
	days, err := list.Execute(ctx, "2024-06")
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "2024-06-24", days[0].Date)

	_, err = list.Execute(ctx, "2024-6")
	assert.ErrorIs(t, err, domerrors.ErrInvalidMonth)
}
