package models

import "time"

// HistoryEntry is an append-only record of one entity mutation. Entries
// are diagnostic, never authoritative: writes are best-effort and nothing
// mutates or deletes them through normal flow.
type HistoryEntry struct {
	ID        int       `json:"id" db:"id"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
	Actor     string    `json:"actor" db:"actor"`
	Action    string    `json:"action" db:"action"`
	Details   string    `json:"details" db:"details"`
	AssetID   *int      `json:"asset_id,omitempty" db:"asset_id"`
	AssetName *string   `json:"asset_name,omitempty" db:"asset_name"`
}
