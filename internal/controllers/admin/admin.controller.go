package adminController

import (
	"context"
	"time"

	"leasehold/internal/database"
	"leasehold/internal/models"
	"leasehold/internal/repositories"
	"leasehold/internal/services"
	"leasehold/internal/utils"

	logger "github.com/Bparsons0904/goLogger"
)

type SessionManager interface {
	Login(ctx context.Context, password string) (services.AdminSession, error)
	Revoke(ctx context.Context, token string) error
}

type LoginRequest struct {
	Password string `json:"password"`
}

type DashboardStats struct {
	ActiveListings        int64 `json:"activeListings"`
	TotalListings         int64 `json:"totalListings"`
	ApplicationsThisMonth int64 `json:"applicationsThisMonth"`
	PendingReview         int64 `json:"pendingReview"`
	TotalApplications     int64 `json:"totalApplications"`
}

type AdminControllerInterface interface {
	Login(ctx context.Context, request LoginRequest) (services.AdminSession, error)
	Logout(ctx context.Context, token string) error
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

type AdminController struct {
	sessions        SessionManager
	listingRepo     repositories.ListingRepository
	applicationRepo repositories.ApplicationRepository
	db              database.DB
	log             logger.Logger
	now             func() time.Time
}

func New(
	repos repositories.Repository,
	sessions SessionManager,
	db database.DB,
) AdminControllerInterface {
	return &AdminController{
		sessions:        sessions,
		listingRepo:     repos.Listing,
		applicationRepo: repos.Application,
		db:              db,
		log:             logger.New("adminController"),
		now:             time.Now,
	}
}

func (c *AdminController) Login(ctx context.Context, request LoginRequest) (services.AdminSession, error) {
	return c.sessions.Login(ctx, request.Password)
}

func (c *AdminController) Logout(ctx context.Context, token string) error {
	return c.sessions.Revoke(ctx, token)
}

// Dashboard counts listings and applications. "This month" starts at
// midnight UTC on the first of the current month.
func (c *AdminController) Dashboard(ctx context.Context) (*DashboardStats, error) {
	log := c.log.TraceFromContext(ctx).Function("Dashboard")

	var stats DashboardStats
	var err error

	active := models.ListingStatusActive
	if stats.ActiveListings, err = c.listingRepo.Count(ctx, c.db.SQL, &active); err != nil {
		return nil, log.Err("failed to count active listings", err)
	}
	if stats.TotalListings, err = c.listingRepo.Count(ctx, c.db.SQL, nil); err != nil {
		return nil, log.Err("failed to count listings", err)
	}

	monthStart := utils.StartOfMonth(c.now().UTC())
	if stats.ApplicationsThisMonth, err = c.applicationRepo.CountSince(ctx, c.db.SQL, monthStart); err != nil {
		return nil, log.Err("failed to count applications this month", err)
	}
	if stats.PendingReview, err = c.applicationRepo.CountByStatuses(
		ctx,
		c.db.SQL,
		models.ApplicationStatusNew,
		models.ApplicationStatusUnderReview,
	); err != nil {
		return nil, log.Err("failed to count pending applications", err)
	}
	if stats.TotalApplications, err = c.applicationRepo.Count(ctx, c.db.SQL); err != nil {
		return nil, log.Err("failed to count applications", err)
	}

	return &stats, nil
}
