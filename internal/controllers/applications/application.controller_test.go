package applicationController

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"leasehold/internal/database"
	"leasehold/internal/models"
	"leasehold/internal/repositories"
	"leasehold/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type passthroughTransactor struct{}

func (passthroughTransactor) Execute(ctx context.Context, fn func(context.Context, *gorm.DB) error) error {
	return fn(ctx, nil)
}

type fakeApplicationRepository struct {
	applications map[uuid.UUID]*models.Application
	listings     map[uuid.UUID]*models.Listing
}

func (f *fakeApplicationRepository) Create(_ context.Context, _ *gorm.DB, app *models.Application) error {
	if _, ok := f.listings[app.ListingID]; !ok {
		return types.Persistence(errors.New(`violates foreign key constraint "fk_applications_listing"`))
	}
	app.ID = uuid.New()
	app.CreatedAt = time.Now()
	f.applications[app.ID] = app
	return nil
}

func (f *fakeApplicationRepository) GetByID(_ context.Context, _ *gorm.DB, id uuid.UUID) (*models.Application, error) {
	app, ok := f.applications[id]
	if !ok {
		return nil, types.NotFound("application")
	}
	copied := *app
	copied.Listing = f.listings[app.ListingID]
	return &copied, nil
}

func (f *fakeApplicationRepository) List(
	_ context.Context,
	_ *gorm.DB,
	filter repositories.ApplicationFilter,
) ([]*models.Application, error) {
	result := []*models.Application{}
	for _, app := range f.applications {
		if filter.Status != nil && app.Status != *filter.Status {
			continue
		}
		if filter.ListingID != nil && app.ListingID != *filter.ListingID {
			continue
		}
		copied := *app
		copied.Listing = f.listings[app.ListingID]
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeApplicationRepository) UpdateStatus(
	_ context.Context,
	_ *gorm.DB,
	id uuid.UUID,
	status models.ApplicationStatus,
) error {
	app, ok := f.applications[id]
	if !ok {
		return types.NotFound("application")
	}
	app.Status = status
	return nil
}

func (f *fakeApplicationRepository) Count(context.Context, *gorm.DB) (int64, error) {
	return int64(len(f.applications)), nil
}

func (f *fakeApplicationRepository) CountSince(context.Context, *gorm.DB, time.Time) (int64, error) {
	return int64(len(f.applications)), nil
}

func (f *fakeApplicationRepository) CountByStatuses(
	_ context.Context,
	_ *gorm.DB,
	statuses ...models.ApplicationStatus,
) (int64, error) {
	return 0, nil
}

type fakeNoteRepository struct {
	notes []*models.ApplicationNote
	clock time.Time
}

func (f *fakeNoteRepository) Create(_ context.Context, _ *gorm.DB, note *models.ApplicationNote) error {
	f.clock = f.clock.Add(time.Minute)
	note.ID = uuid.New()
	note.CreatedAt = f.clock
	f.notes = append(f.notes, note)
	return nil
}

func (f *fakeNoteRepository) ListByApplication(
	_ context.Context,
	_ *gorm.DB,
	applicationID uuid.UUID,
) ([]*models.ApplicationNote, error) {
	notes := []*models.ApplicationNote{}
	for _, note := range f.notes {
		if note.ApplicationID == applicationID {
			notes = append(notes, note)
		}
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].CreatedAt.After(notes[j].CreatedAt) })
	return notes, nil
}

type fixture struct {
	controller *ApplicationController
	apps       *fakeApplicationRepository
	notes      *fakeNoteRepository
	listing    *models.Listing
	now        time.Time
}

func newFixture() *fixture {
	listing := &models.Listing{MonthlyRent: decimal.NewFromInt(1000)}
	listing.ID = uuid.New()

	apps := &fakeApplicationRepository{
		applications: map[uuid.UUID]*models.Application{},
		listings:     map[uuid.UUID]*models.Listing{listing.ID: listing},
	}
	notes := &fakeNoteRepository{clock: time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)}
	now := time.Date(2026, 5, 2, 15, 4, 5, 0, time.UTC)

	return &fixture{
		controller: &ApplicationController{
			applicationRepo: apps,
			noteRepo:        notes,
			transactor:      passthroughTransactor{},
			db:              database.DB{},
			log:             logger.New("applicationController"),
			now:             func() time.Time { return now },
		},
		apps:    apps,
		notes:   notes,
		listing: listing,
		now:     now,
	}
}

func (f *fixture) payload() *models.Application {
	app := &models.Application{
		ListingID:     f.listing.ID,
		Status:        models.ApplicationStatusApproved,
		ConsentAgreed: true,
		SignatureName: "Jane Doe",
		SignatureDate: time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
		References: datatypes.JSONSlice[models.Reference]{
			{Name: "Sam Roe", Phone: "555-0100", Relationship: "Former landlord"},
		},
	}
	app.FullName = "Jane Doe"
	app.GrossMonthlyIncome = decimal.NewFromInt(3000)
	return app
}

func TestApplicationController_SubmitStampsServerFields(t *testing.T) {
	f := newFixture()

	app, err := f.controller.Submit(context.Background(), f.payload(), "payload")
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusNew, app.Status)
	assert.Equal(t, f.now, app.SignatureDate)
	assert.NotEqual(t, uuid.Nil, app.ID)
}

func TestApplicationController_SubmitValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(app *models.Application)
	}{
		{"no consent", func(app *models.Application) { app.ConsentAgreed = false }},
		{"no listing", func(app *models.Application) { app.ListingID = uuid.Nil }},
		{"no references", func(app *models.Application) {
			app.References = datatypes.JSONSlice[models.Reference]{}
		}},
		{"too many pets", func(app *models.Application) {
			app.HasPets = true
			app.Pets = make(datatypes.JSONSlice[models.Pet], models.MaxPets+1)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			app := f.payload()
			tt.mutate(app)

			_, err := f.controller.Submit(context.Background(), app, "payload")
			assert.ErrorIs(t, err, types.ErrValidation)
			assert.Empty(t, f.apps.applications)
		})
	}
}

func TestApplicationController_SubmitUnknownListingIsPersistenceError(t *testing.T) {
	f := newFixture()
	app := f.payload()
	app.ListingID = uuid.New()

	_, err := f.controller.Submit(context.Background(), app, "payload")
	assert.ErrorIs(t, err, types.ErrPersistence)
	assert.Contains(t, err.Error(), "foreign key")
}

func TestApplicationController_AllStatusTransitions(t *testing.T) {
	for _, from := range models.ApplicationStatuses {
		for _, to := range models.ApplicationStatuses {
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				f := newFixture()
				app, err := f.controller.Submit(context.Background(), f.payload(), "payload")
				require.NoError(t, err)
				f.apps.applications[app.ID].Status = from

				updated, err := f.controller.UpdateStatus(context.Background(), app.ID, to)
				require.NoError(t, err)
				assert.Equal(t, to, updated.Status)
				assert.Equal(t, to, f.apps.applications[app.ID].Status)
			})
		}
	}
}

func TestApplicationController_UpdateStatusErrors(t *testing.T) {
	f := newFixture()

	_, err := f.controller.UpdateStatus(context.Background(), uuid.New(), "archived")
	assert.ErrorIs(t, err, types.ErrValidation)

	_, err = f.controller.UpdateStatus(context.Background(), uuid.New(), models.ApplicationStatusDenied)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestApplicationController_GetAttachesNotesNewestFirst(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	app, err := f.controller.Submit(ctx, f.payload(), "payload")
	require.NoError(t, err)

	for _, note := range []string{"received", "called employer", "approved by owner"} {
		_, err := f.controller.AddNote(ctx, app.ID, note)
		require.NoError(t, err)
	}

	detail, err := f.controller.Get(ctx, app.ID)
	require.NoError(t, err)
	require.Len(t, detail.Notes, 3)
	assert.Equal(t, "approved by owner", detail.Notes[0].Note)
	assert.Equal(t, "received", detail.Notes[2].Note)

	require.NotNil(t, detail.Screening.IncomeRatio)
	assert.Equal(t, "3.0", *detail.Screening.IncomeRatio)
}

func TestApplicationController_AddNoteRejectsBlank(t *testing.T) {
	f := newFixture()

	_, err := f.controller.AddNote(context.Background(), uuid.New(), "   ")
	assert.ErrorIs(t, err, types.ErrValidation)
	assert.Empty(t, f.notes.notes)
}

func TestApplicationController_ListFilters(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first, err := f.controller.Submit(ctx, f.payload(), "payload")
	require.NoError(t, err)
	_, err = f.controller.Submit(ctx, f.payload(), "payload")
	require.NoError(t, err)
	_, err = f.controller.UpdateStatus(ctx, first.ID, models.ApplicationStatusUnderReview)
	require.NoError(t, err)

	status := models.ApplicationStatusUnderReview
	views, err := f.controller.List(ctx, repositories.ApplicationFilter{Status: &status})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, first.ID, views[0].ID)
	assert.NotNil(t, views[0].Listing)

	bad := models.ApplicationStatus("archived")
	_, err = f.controller.List(ctx, repositories.ApplicationFilter{Status: &bad})
	assert.ErrorIs(t, err, types.ErrValidation)
}
