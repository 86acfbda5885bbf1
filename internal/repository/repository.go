package repository

import (
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"inventory/pkg/models"
)

// Repository is the shared database handle; feature repositories embed it
// and build their queries through the goqu wrapper.
type Repository struct {
	DB            *sql.DB
	GoquDBWrapper *goqu.Database
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		DB:            db,
		GoquDBWrapper: goqu.New("postgres", db),
	}
}

func WithTransaction(db *goqu.Database, fn func(tx *goqu.TxDatabase) error) (err error) {
	rawTx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	tx := goqu.NewTx("postgres", rawTx)
	defer func() {
		if p := recover(); p != nil {
			rawTx.Rollback()
			panic(p)
		} else if err != nil {
			rawTx.Rollback()
		} else {
			err = rawTx.Commit()
		}
	}()

	err = fn(tx)
	return
}

// AppendHistory satisfies history.Store.
func (r *Repository) AppendHistory(entry models.HistoryEntry) error {
	query := r.GoquDBWrapper.Insert("history").
		Rows(goqu.Record{
			"timestamp":  entry.Timestamp,
			"actor":      entry.Actor,
			"action":     entry.Action,
			"details":    entry.Details,
			"asset_id":   entry.AssetID,
			"asset_name": entry.AssetName,
		})

	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}

	return nil
}
