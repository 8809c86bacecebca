package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ApplicationsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leasehold_applications_submitted_total",
			Help: "Total number of rental applications submitted",
		},
		[]string{"source"},
	)

	ApplicationStatusChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leasehold_application_status_changes_total",
			Help: "Total number of application status changes by target status",
		},
		[]string{"status"},
	)

	NotesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leasehold_application_notes_created_total",
			Help: "Total number of notes appended to applications",
		},
	)

	PhotosUploaded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leasehold_listing_photos_uploaded_total",
			Help: "Total number of listing photos uploaded to blob storage",
		},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "leasehold_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

const (
	SourcePayload = "payload"
	SourceDraft   = "draft"
)
