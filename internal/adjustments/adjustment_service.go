package adjustments

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"inventory/pkg/dates"
	"inventory/pkg/metadata"
	"inventory/pkg/models"
)

var (
	ErrAssetIDRequired = errors.New("asset_id is required")
	ErrTypeRequired    = errors.New("adjustment_type is required")
	ErrReasonRequired  = errors.New("reason is required")
	ErrInvalidType     = errors.New("invalid adjustment type")
	ErrAssetNotFound   = errors.New("asset not found")
)

type AdjustmentStore interface {
	PersistAdjustment(adjustment models.StockAdjustment) (int, error)
}

// AssetMutator covers the asset side effects an adjustment can trigger.
type AssetMutator interface {
	GetAsset(id int) (*models.Asset, error)
	RemoveAsset(id int) (int64, error)
	UpdateAssetStatus(id int, status string) error
}

type Recorder interface {
	Record(actor, action, details string, assetID *int, assetName *string)
}

// AdjustmentService applies lifecycle events to assets. The adjustment
// row captures a snapshot of the asset's descriptive fields at apply
// time; the asset mutation that follows is a second, separate statement.
// A failure between the two leaves the adjustment committed and the asset
// untouched (at-least-once, not exactly-once); the active-asset listing's
// Lost/Damaged exclusion covers that window.
type AdjustmentService struct {
	store   AdjustmentStore
	assets  AssetMutator
	history Recorder
	now     func() time.Time
}

func NewAdjustmentService(store AdjustmentStore, assets AssetMutator, history Recorder) *AdjustmentService {
	return &AdjustmentService{
		store:   store,
		assets:  assets,
		history: history,
		now:     time.Now,
	}
}

func (s *AdjustmentService) Apply(req models.AdjustmentRequest) (int, error) {
	if req.AssetID == 0 {
		return 0, ErrAssetIDRequired
	}
	if req.AdjustmentType == "" {
		return 0, ErrTypeRequired
	}
	adjType, err := metadata.NewAdjustmentType(req.AdjustmentType)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidType, req.AdjustmentType)
	}
	if strings.TrimSpace(req.Reason) == "" {
		return 0, ErrReasonRequired
	}

	asset, err := s.assets.GetAsset(req.AssetID)
	if err != nil {
		return 0, err
	}
	if asset == nil {
		return 0, ErrAssetNotFound
	}

	adjustment := models.StockAdjustment{
		AssetID:        asset.ID,
		AssetName:      asset.AssetName,
		SerialNumber:   asset.SerialNumber,
		Category:       asset.Category,
		Subcategory:    asset.Subcategory,
		Department:     asset.Department,
		Location:       asset.Location,
		Custodian:      asset.Custodian,
		AdjustmentType: adjType.String(),
		Reason:         req.Reason,
		AdjustmentDate: dates.NormalizeOrDefault(req.AdjustmentDate, s.now()),
		Remarks:        req.Remarks,
	}

	id, err := s.store.PersistAdjustment(adjustment)
	if err != nil {
		return 0, err
	}

	if err := s.applySideEffect(adjType, asset); err != nil {
		return id, err
	}

	actor := req.CreatedBy
	if actor == "" {
		actor = "system"
	}
	view := asset.CreateLogView()
	s.history.Record(actor, "update",
		fmt.Sprintf("Stock adjustment (%s) applied to asset: %s", adjType, asset.AssetName),
		view.AssetID, view.AssetName)

	return id, nil
}

func (s *AdjustmentService) applySideEffect(adjType metadata.AdjustmentType, asset *models.Asset) error {
	switch {
	case adjType.Retires():
		// Lost/Damaged retire the asset from active inventory entirely
		if _, err := s.assets.RemoveAsset(asset.ID); err != nil {
			return fmt.Errorf("adjustment recorded but asset %d was not removed: %w", asset.ID, err)
		}
	case adjType == metadata.AdjustmentDisposal:
		if err := s.assets.UpdateAssetStatus(asset.ID, metadata.StatusRemoved.String()); err != nil {
			return fmt.Errorf("adjustment recorded but asset %d status was not updated: %w", asset.ID, err)
		}
	default:
		// informational only, no asset mutation
	}

	return nil
}
