package assets

import (
	"fmt"
	"strings"
	"time"

	"inventory/internal/depreciation"
	"inventory/pkg/models"
)

// AssetStore is the persistence surface the service needs; satisfied by
// *AssetsRepository.
type AssetStore interface {
	GetActiveAssets() ([]models.Asset, error)
	GetAsset(id int) (*models.Asset, error)
	PersistAsset(asset models.Asset) (int, error)
	UpdateAsset(id int, asset models.Asset) (int64, error)
	RemoveAsset(id int) (int64, error)
}

// CustodianResolver looks a custodian name up by trimmed case-insensitive
// match, creating the row when absent.
type CustodianResolver interface {
	FindOrCreate(name string) (int, error)
}

// DepartmentEnsurer makes sure a department rollup row exists for the
// given name, so a freshly referenced department shows up on the next
// listing instead of waiting for manual creation.
type DepartmentEnsurer interface {
	EnsureDepartment(name string) error
}

// AcquisitionDateSync couples an asset's acquisition date with the
// acquisition row sharing its document number.
type AcquisitionDateSync interface {
	FindDateByDocumentNumber(documentNumber string) (string, error)
	UpdateDateByDocumentNumber(documentNumber, date string) error
}

type Recorder interface {
	Record(actor, action, details string, assetID *int, assetName *string)
}

type AssetService struct {
	store       AssetStore
	custodians  CustodianResolver
	departments DepartmentEnsurer
	acqDates    AcquisitionDateSync
	history     Recorder
	now         func() time.Time
}

func NewAssetService(store AssetStore, custodians CustodianResolver, departments DepartmentEnsurer, acqDates AcquisitionDateSync, history Recorder) *AssetService {
	return &AssetService{
		store:       store,
		custodians:  custodians,
		departments: departments,
		acqDates:    acqDates,
		history:     history,
		now:         time.Now,
	}
}

// ListActive returns the active inventory with the depreciation trio
// recomputed as of now, so displayed book values always track the current
// date rather than whatever was cached at the last save.
func (s *AssetService) ListActive() ([]models.Asset, error) {
	assets, err := s.store.GetActiveAssets()
	if err != nil {
		return nil, err
	}

	asOf := s.now()
	for i := range assets {
		refreshDepreciation(&assets[i], asOf)
	}

	return assets, nil
}

func (s *AssetService) Get(id int) (*models.Asset, error) {
	asset, err := s.store.GetAsset(id)
	if err != nil || asset == nil {
		return asset, err
	}

	refreshDepreciation(asset, s.now())
	return asset, nil
}

func (s *AssetService) Create(input models.AssetInput, actor string) (*models.Asset, error) {
	asset := BuildForSave(input, nil, s.now())
	if asset.AssetName == "" {
		return nil, fmt.Errorf("asset_name is required")
	}

	if err := s.ensureReferences(&asset); err != nil {
		return nil, err
	}

	id, err := s.store.PersistAsset(asset)
	if err != nil {
		return nil, err
	}
	asset.ID = id

	view := asset.CreateLogView()
	s.history.Record(actor, "add", fmt.Sprintf("Added asset: %s", asset.AssetName), view.AssetID, view.AssetName)

	return &asset, nil
}

func (s *AssetService) Update(id int, input models.AssetInput, actor string) (int64, error) {
	asset := BuildForSave(input, nil, s.now())
	if asset.AssetName == "" {
		return 0, fmt.Errorf("asset_name is required")
	}

	if err := s.syncAcquisitionDate(&asset); err != nil {
		return 0, err
	}

	if err := s.ensureReferences(&asset); err != nil {
		return 0, err
	}

	affected, err := s.store.UpdateAsset(id, asset)
	if err != nil {
		return 0, err
	}

	asset.ID = id
	view := asset.CreateLogView()
	s.history.Record(actor, "update", fmt.Sprintf("Updated asset: %s", asset.AssetName), view.AssetID, view.AssetName)

	return affected, nil
}

func (s *AssetService) Delete(id int, assetName, actor string) (int64, error) {
	affected, err := s.store.RemoveAsset(id)
	if err != nil {
		return 0, err
	}

	s.history.Record(actor, "delete", fmt.Sprintf("Deleted asset: %s", assetName), &id, &assetName)

	return affected, nil
}

// ensureReferences resolves the asset's custodian into the custodian
// directory and guarantees its department has a rollup row.
func (s *AssetService) ensureReferences(asset *models.Asset) error {
	if name := strings.TrimSpace(asset.Custodian); name != "" {
		if _, err := s.custodians.FindOrCreate(name); err != nil {
			return fmt.Errorf("failed to resolve custodian %q: %w", name, err)
		}
	}

	if dept := strings.TrimSpace(asset.Department); dept != "" {
		if err := s.departments.EnsureDepartment(dept); err != nil {
			return fmt.Errorf("failed to ensure department %q: %w", dept, err)
		}
	}

	return nil
}

// syncAcquisitionDate keeps an asset's acquisition date and the matching
// acquisition row in agreement when they share a document number. The
// acquisition row's date wins if it has one; the asset's date is then
// written back so both records carry the same value.
func (s *AssetService) syncAcquisitionDate(asset *models.Asset) error {
	if asset.DocumentNumber == "" {
		return nil
	}

	acqDate, err := s.acqDates.FindDateByDocumentNumber(asset.DocumentNumber)
	if err != nil {
		return err
	}
	if acqDate != "" {
		asset.AcquisitionDate = acqDate
		refreshDepreciation(asset, s.now())
	}

	if asset.AcquisitionDate != "" {
		if err := s.acqDates.UpdateDateByDocumentNumber(asset.DocumentNumber, asset.AcquisitionDate); err != nil {
			return err
		}
	}

	return nil
}

func refreshDepreciation(asset *models.Asset, asOf time.Time) {
	dep := depreciation.Calculate(asset.PurchaseCost, asset.UsefulLife, asset.AcquisitionDate, asOf)
	asset.AnnualDepreciation = dep.Annual
	asset.AccumulatedDepreciation = dep.Accumulated
	asset.BookValue = dep.BookValue
}
