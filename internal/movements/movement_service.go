package movements

import (
	"errors"
	"fmt"
	"strings"

	"inventory/pkg/models"
)

var ErrMovementTypeRequired = errors.New("movement type is required")

type MovementStore interface {
	GetMovements() ([]models.InventoryMovement, error)
	PersistMovement(req models.MovementRequest) (int, error)
}

type CustodianReassigner interface {
	UpdateCustodian(assetID int, custodian string) error
}

type Recorder interface {
	Record(actor, action, details string, assetID *int, assetName *string)
}

type MovementService struct {
	store   MovementStore
	assets  CustodianReassigner
	history Recorder
}

func NewMovementService(store MovementStore, assets CustodianReassigner, history Recorder) *MovementService {
	return &MovementService{
		store:   store,
		assets:  assets,
		history: history,
	}
}

func (s *MovementService) List() ([]models.InventoryMovement, error) {
	return s.store.GetMovements()
}

// Register stores the movement and, when it names a receiving
// custodian, points the asset at that custodian.
func (s *MovementService) Register(actor string, req models.MovementRequest) (int, error) {
	if strings.TrimSpace(req.MovementType) == "" {
		return 0, ErrMovementTypeRequired
	}

	id, err := s.store.PersistMovement(req)
	if err != nil {
		return 0, err
	}

	if custodian := strings.TrimSpace(req.ToCustodian); custodian != "" {
		if err = s.assets.UpdateCustodian(req.AssetID, custodian); err != nil {
			return id, fmt.Errorf("movement recorded but custodian update failed: %w", err)
		}
	}

	details := fmt.Sprintf("movement %s for asset %d", req.MovementType, req.AssetID)
	s.history.Record(actor, "movement", details, &req.AssetID, nil)

	return id, nil
}
