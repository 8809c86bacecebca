package draftController

import (
	"context"
	"time"

	"leasehold/internal/assembler"
	applicationController "leasehold/internal/controllers/applications"
	"leasehold/internal/database"
	"leasehold/internal/metrics"
	"leasehold/internal/models"
	"leasehold/internal/repositories"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
)

type CreateDraftRequest struct {
	ListingID uuid.UUID `json:"listingId"`
}

type EditEntryRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type ScreeningAnswerRequest struct {
	Answer  bool   `json:"answer"`
	Details string `json:"details"`
}

type DraftControllerInterface interface {
	Create(ctx context.Context, listingID uuid.UUID) (*assembler.Draft, error)
	Get(ctx context.Context, id uuid.UUID) (*assembler.Draft, error)
	Patch(ctx context.Context, id uuid.UUID, patch assembler.DraftPatch) (*assembler.Draft, error)
	AddEntry(ctx context.Context, id uuid.UUID, group string) (*assembler.Draft, error)
	EditEntry(
		ctx context.Context,
		id uuid.UUID,
		group string,
		entryID uuid.UUID,
		request EditEntryRequest,
	) (*assembler.Draft, error)
	RemoveEntry(ctx context.Context, id uuid.UUID, group string, entryID uuid.UUID) (*assembler.Draft, error)
	SetScreeningAnswer(
		ctx context.Context,
		id uuid.UUID,
		key string,
		request ScreeningAnswerRequest,
	) (*assembler.Draft, error)
	Submit(ctx context.Context, id uuid.UUID) (*models.Application, error)
}

type DraftController struct {
	draftRepo    repositories.DraftRepository
	listingRepo  repositories.ListingRepository
	applications applicationController.ApplicationControllerInterface
	db           database.DB
	log          logger.Logger
	now          func() time.Time
}

func New(
	repos repositories.Repository,
	applications applicationController.ApplicationControllerInterface,
	db database.DB,
) DraftControllerInterface {
	return &DraftController{
		draftRepo:    repos.Draft,
		listingRepo:  repos.Listing,
		applications: applications,
		db:           db,
		log:          logger.New("draftController"),
		now:          time.Now,
	}
}

// Create starts a draft for an existing listing.
func (c *DraftController) Create(ctx context.Context, listingID uuid.UUID) (*assembler.Draft, error) {
	log := c.log.TraceFromContext(ctx).Function("Create")

	if _, err := c.listingRepo.GetByID(ctx, c.db.SQL, listingID); err != nil {
		return nil, err
	}

	draft := assembler.NewDraft(listingID, c.now())
	if err := c.draftRepo.Save(ctx, draft); err != nil {
		return nil, log.Err("failed to save new draft", err, "listingID", listingID)
	}

	return draft, nil
}

func (c *DraftController) Get(ctx context.Context, id uuid.UUID) (*assembler.Draft, error) {
	return c.draftRepo.Get(ctx, id)
}

// mutate loads the draft, applies fn and saves it back.
func (c *DraftController) mutate(
	ctx context.Context,
	id uuid.UUID,
	fn func(draft *assembler.Draft) error,
) (*assembler.Draft, error) {
	draft, err := c.draftRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(draft); err != nil {
		return nil, err
	}

	draft.UpdatedAt = c.now()
	if err := c.draftRepo.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (c *DraftController) Patch(
	ctx context.Context,
	id uuid.UUID,
	patch assembler.DraftPatch,
) (*assembler.Draft, error) {
	return c.mutate(ctx, id, func(draft *assembler.Draft) error {
		draft.Apply(patch)
		return nil
	})
}

// AddEntry is a no-op on a full group; the unchanged draft is returned.
func (c *DraftController) AddEntry(
	ctx context.Context,
	id uuid.UUID,
	group string,
) (*assembler.Draft, error) {
	return c.mutate(ctx, id, func(draft *assembler.Draft) error {
		_, _, err := draft.AddEntry(group)
		return err
	})
}

func (c *DraftController) EditEntry(
	ctx context.Context,
	id uuid.UUID,
	group string,
	entryID uuid.UUID,
	request EditEntryRequest,
) (*assembler.Draft, error) {
	return c.mutate(ctx, id, func(draft *assembler.Draft) error {
		return draft.EditEntry(group, entryID, request.Field, request.Value)
	})
}

// RemoveEntry is a no-op when the group is at its minimum.
func (c *DraftController) RemoveEntry(
	ctx context.Context,
	id uuid.UUID,
	group string,
	entryID uuid.UUID,
) (*assembler.Draft, error) {
	return c.mutate(ctx, id, func(draft *assembler.Draft) error {
		_, err := draft.RemoveEntry(group, entryID)
		return err
	})
}

func (c *DraftController) SetScreeningAnswer(
	ctx context.Context,
	id uuid.UUID,
	key string,
	request ScreeningAnswerRequest,
) (*assembler.Draft, error) {
	return c.mutate(ctx, id, func(draft *assembler.Draft) error {
		return draft.SetScreeningAnswer(key, request.Answer, request.Details)
	})
}

// Submit turns the draft into a stored application and discards the draft.
// On failure the draft is kept so the applicant can fix it and resubmit.
func (c *DraftController) Submit(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	log := c.log.TraceFromContext(ctx).Function("Submit")

	draft, err := c.draftRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	payload, err := draft.Submit(c.now())
	if err != nil {
		return nil, err
	}

	application, err := c.applications.Submit(ctx, payload, metrics.SourceDraft)
	if err != nil {
		return nil, err
	}

	if err := c.draftRepo.Delete(ctx, id); err != nil {
		log.Warn("failed to delete submitted draft", "draftID", id, "error", err)
	}

	return application, nil
}
