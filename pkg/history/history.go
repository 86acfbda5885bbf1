package history

import (
	"time"

	"go.uber.org/zap"

	"inventory/pkg/models"
)

// Store is the persistence collaborator for history entries.
type Store interface {
	AppendHistory(entry models.HistoryEntry) error
}

// Recorder appends mutation records for assets and related entities.
// Writes are best-effort: a failed append is logged and swallowed, never
// surfaced to the caller whose primary operation already succeeded.
type Recorder struct {
	store Store
	log   *zap.Logger
	now   func() time.Time
}

func NewRecorder(store Store, log *zap.Logger) *Recorder {
	return &Recorder{
		store: store,
		log:   log,
		now:   time.Now,
	}
}

func (r *Recorder) Record(actor, action, details string, assetID *int, assetName *string) {
	entry := models.HistoryEntry{
		Timestamp: r.now(),
		Actor:     actor,
		Action:    action,
		Details:   details,
		AssetID:   assetID,
		AssetName: assetName,
	}

	if err := r.store.AppendHistory(entry); err != nil {
		r.log.Warn("unable to append history entry",
			zap.String("action", action),
			zap.String("details", details),
			zap.Error(err),
		)
	}
}
