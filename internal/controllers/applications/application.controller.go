package applicationController

import (
	"context"
	"time"

	"leasehold/internal/database"
	"leasehold/internal/metrics"
	. "leasehold/internal/models"
	"leasehold/internal/repositories"
	"leasehold/internal/services"
	"leasehold/internal/types"
	"leasehold/internal/utils"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicationView is an application as admins read it: the stored record
// plus the screening facts derived from it.
type ApplicationView struct {
	*Application
	Screening services.ScreeningResult `json:"screening"`
}

type ApplicationDetail struct {
	ApplicationView
	Notes []*ApplicationNote `json:"notes"`
}

type ApplicationControllerInterface interface {
	Submit(ctx context.Context, application *Application, source string) (*Application, error)
	List(ctx context.Context, filter repositories.ApplicationFilter) ([]ApplicationView, error)
	Get(ctx context.Context, id uuid.UUID) (*ApplicationDetail, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status ApplicationStatus) (*ApplicationView, error)
	AddNote(ctx context.Context, id uuid.UUID, note string) (*ApplicationNote, error)
}

type ApplicationController struct {
	applicationRepo repositories.ApplicationRepository
	noteRepo        repositories.ApplicationNoteRepository
	transactor      services.Transactor
	db              database.DB
	log             logger.Logger
	now             func() time.Time
}

func New(
	repos repositories.Repository,
	transactor services.Transactor,
	db database.DB,
) ApplicationControllerInterface {
	return &ApplicationController{
		applicationRepo: repos.Application,
		noteRepo:        repos.ApplicationNote,
		transactor:      transactor,
		db:              db,
		log:             logger.New("applicationController"),
		now:             time.Now,
	}
}

func view(application *Application) ApplicationView {
	return ApplicationView{
		Application: application,
		Screening:   services.EvaluateScreening(application, application.Listing),
	}
}

// Submit stores a new application. Client supplied id, status and signature
// date are overwritten.
func (c *ApplicationController) Submit(
	ctx context.Context,
	application *Application,
	source string,
) (*Application, error) {
	log := c.log.TraceFromContext(ctx).Function("Submit")

	if err := application.PrepareSubmission(c.now()); err != nil {
		return nil, err
	}

	if err := c.applicationRepo.Create(ctx, c.db.SQL, application); err != nil {
		return nil, log.Err(
			"failed to create application",
			err,
			"listingID", application.ListingID,
		)
	}
	metrics.ApplicationsSubmitted.WithLabelValues(source).Inc()

	return application, nil
}

func (c *ApplicationController) List(
	ctx context.Context,
	filter repositories.ApplicationFilter,
) ([]ApplicationView, error) {
	log := c.log.TraceFromContext(ctx).Function("List")

	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, types.Validation("status %q is not valid", *filter.Status)
	}

	applications, err := c.applicationRepo.List(ctx, c.db.SQL, filter)
	if err != nil {
		return nil, log.Err("failed to list applications", err)
	}

	views := make([]ApplicationView, 0, len(applications))
	for _, application := range applications {
		views = append(views, view(application))
	}
	return views, nil
}

func (c *ApplicationController) Get(ctx context.Context, id uuid.UUID) (*ApplicationDetail, error) {
	log := c.log.TraceFromContext(ctx).Function("Get")

	application, err := c.applicationRepo.GetByID(ctx, c.db.SQL, id)
	if err != nil {
		return nil, err
	}

	notes, err := c.noteRepo.ListByApplication(ctx, c.db.SQL, id)
	if err != nil {
		return nil, log.Err("failed to load notes", err, "applicationID", id)
	}

	return &ApplicationDetail{ApplicationView: view(application), Notes: notes}, nil
}

// UpdateStatus accepts any of the five statuses from any current status.
func (c *ApplicationController) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status ApplicationStatus,
) (*ApplicationView, error) {
	log := c.log.TraceFromContext(ctx).Function("UpdateStatus")

	if !status.IsValid() {
		return nil, types.Validation("invalid status %q", status)
	}

	var application *Application
	err := c.transactor.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := c.applicationRepo.UpdateStatus(ctx, tx, id, status); err != nil {
			return err
		}

		var err error
		application, err = c.applicationRepo.GetByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, log.Err("failed to update status", err, "applicationID", id, "status", status)
	}
	metrics.ApplicationStatusChanges.WithLabelValues(string(status)).Inc()
	log.Info("Application status changed",
		"applicationID", id,
		"status", status,
		"actor", types.ActorFromContext(ctx),
	)

	updated := view(application)
	return &updated, nil
}

func (c *ApplicationController) AddNote(
	ctx context.Context,
	id uuid.UUID,
	note string,
) (*ApplicationNote, error) {
	log := c.log.TraceFromContext(ctx).Function("AddNote")

	note = utils.CleanText(note)
	if note == "" {
		return nil, types.Validation("note is required")
	}

	record := &ApplicationNote{ApplicationID: id, Note: note}
	if err := c.noteRepo.Create(ctx, c.db.SQL, record); err != nil {
		return nil, log.Err("failed to create note", err, "applicationID", id)
	}
	metrics.NotesCreated.Inc()
	log.Info("Note added", "applicationID", id, "actor", types.ActorFromContext(ctx))

	return record, nil
}
