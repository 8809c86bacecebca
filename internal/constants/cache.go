package constants

import "time"

const (
	DraftCachePrefix   = "application_draft" // CacheBuilder adds colon
	DraftCacheExpiry   = 48 * time.Hour
	SessionCachePrefix = "admin_session"
)
