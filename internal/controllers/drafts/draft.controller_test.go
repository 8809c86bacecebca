package draftController

import (
	"context"
	"errors"
	"testing"
	"time"

	"leasehold/internal/assembler"
	applicationController "leasehold/internal/controllers/applications"
	"leasehold/internal/database"
	"leasehold/internal/models"
	"leasehold/internal/repositories"
	"leasehold/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeDraftRepository struct {
	drafts map[uuid.UUID]*assembler.Draft
}

func (f *fakeDraftRepository) Save(_ context.Context, draft *assembler.Draft) error {
	copied := *draft
	f.drafts[draft.ID] = &copied
	return nil
}

func (f *fakeDraftRepository) Get(_ context.Context, id uuid.UUID) (*assembler.Draft, error) {
	draft, ok := f.drafts[id]
	if !ok {
		return nil, types.NotFound("draft")
	}
	copied := *draft
	return &copied, nil
}

func (f *fakeDraftRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.drafts, id)
	return nil
}

type fakeListingRepository struct {
	repositories.ListingRepository
	known uuid.UUID
}

func (f *fakeListingRepository) GetByID(_ context.Context, _ *gorm.DB, id uuid.UUID) (*models.Listing, error) {
	if id != f.known {
		return nil, types.NotFound("listing")
	}
	listing := &models.Listing{}
	listing.ID = id
	return listing, nil
}

type fakeApplications struct {
	applicationController.ApplicationControllerInterface
	submitted []*models.Application
	err       error
}

func (f *fakeApplications) Submit(
	_ context.Context,
	application *models.Application,
	_ string,
) (*models.Application, error) {
	if f.err != nil {
		return nil, f.err
	}
	if err := application.PrepareSubmission(time.Now()); err != nil {
		return nil, err
	}
	application.ID = uuid.New()
	f.submitted = append(f.submitted, application)
	return application, nil
}

func newTestController() (*DraftController, *fakeDraftRepository, *fakeApplications, uuid.UUID) {
	listingID := uuid.New()
	drafts := &fakeDraftRepository{drafts: map[uuid.UUID]*assembler.Draft{}}
	apps := &fakeApplications{}

	return &DraftController{
		draftRepo:    drafts,
		listingRepo:  &fakeListingRepository{known: listingID},
		applications: apps,
		db:           database.DB{},
		log:          logger.New("draftController"),
		now:          time.Now,
	}, drafts, apps, listingID
}

func fillDraft(t *testing.T, c *DraftController, id uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	draft, err := c.Get(ctx, id)
	require.NoError(t, err)
	reference := draft.References.Entries[0].ID

	for field, value := range map[string]string{
		"name":         "Sam Roe",
		"phone":        "555-0100",
		"relationship": "Coworker",
	} {
		_, err := c.EditEntry(ctx, id, assembler.GroupReferences, reference, EditEntryRequest{field, value})
		require.NoError(t, err)
	}

	consent := true
	signature := "Jane Doe"
	_, err = c.Patch(ctx, id, assembler.DraftPatch{ConsentAgreed: &consent, SignatureName: &signature})
	require.NoError(t, err)
}

func TestDraftController_CreateRequiresListing(t *testing.T) {
	controller, drafts, _, listingID := newTestController()

	_, err := controller.Create(context.Background(), uuid.New())
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.Empty(t, drafts.drafts)

	draft, err := controller.Create(context.Background(), listingID)
	require.NoError(t, err)
	assert.Contains(t, drafts.drafts, draft.ID)
}

func TestDraftController_GroupLimits(t *testing.T) {
	controller, _, _, listingID := newTestController()
	ctx := context.Background()

	draft, err := controller.Create(ctx, listingID)
	require.NoError(t, err)

	for i := 0; i < models.MaxPets+1; i++ {
		draft, err = controller.AddEntry(ctx, draft.ID, assembler.GroupPets)
		require.NoError(t, err)
	}
	assert.Equal(t, models.MaxPets, draft.Pets.Len())

	only := draft.References.Entries[0].ID
	draft, err = controller.RemoveEntry(ctx, draft.ID, assembler.GroupReferences, only)
	require.NoError(t, err)
	assert.Equal(t, 1, draft.References.Len())
}

func TestDraftController_ScreeningNoClearsDetails(t *testing.T) {
	controller, _, _, listingID := newTestController()
	ctx := context.Background()

	draft, err := controller.Create(ctx, listingID)
	require.NoError(t, err)

	draft, err = controller.SetScreeningAnswer(ctx, draft.ID, "bankruptcy",
		ScreeningAnswerRequest{Answer: true, Details: "2019, discharged"})
	require.NoError(t, err)
	assert.Equal(t, "2019, discharged", draft.Screening["bankruptcy"].Details)

	draft, err = controller.SetScreeningAnswer(ctx, draft.ID, "bankruptcy",
		ScreeningAnswerRequest{Answer: false, Details: "2019, discharged"})
	require.NoError(t, err)
	assert.Empty(t, draft.Screening["bankruptcy"].Details)
}

func TestDraftController_SubmitDeletesDraft(t *testing.T) {
	controller, drafts, apps, listingID := newTestController()
	ctx := context.Background()

	draft, err := controller.Create(ctx, listingID)
	require.NoError(t, err)
	fillDraft(t, controller, draft.ID)

	application, err := controller.Submit(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusNew, application.Status)
	assert.Len(t, apps.submitted, 1)
	assert.NotContains(t, drafts.drafts, draft.ID)
}

func TestDraftController_FailedSubmitKeepsDraft(t *testing.T) {
	controller, drafts, apps, listingID := newTestController()
	ctx := context.Background()

	draft, err := controller.Create(ctx, listingID)
	require.NoError(t, err)

	_, err = controller.Submit(ctx, draft.ID)
	assert.ErrorIs(t, err, types.ErrValidation)
	assert.Contains(t, drafts.drafts, draft.ID)

	fillDraft(t, controller, draft.ID)
	apps.err = types.Persistence(errors.New("connection refused"))

	_, err = controller.Submit(ctx, draft.ID)
	assert.ErrorIs(t, err, types.ErrPersistence)
	assert.Contains(t, drafts.drafts, draft.ID)
}
