package sync

import "time"

// SyncLog records one mirror write attempt. Logs live in memory only; the
// mirror is best-effort and its history is diagnostic, not durable.
type SyncLog struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"` // "success", "failed"
	Trigger   string    `json:"trigger"`
	Error     string    `json:"error,omitempty"`
}

type SyncStatus struct {
	Enabled    bool       `json:"enabled"`
	UserID     string     `json:"user_id,omitempty"`
	LastSyncAt *time.Time `json:"last_sync_at,omitempty"`
}
