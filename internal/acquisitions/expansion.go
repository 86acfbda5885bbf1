package acquisitions

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"inventory/internal/assets"
	"inventory/pkg/models"
)

// A purchase of quantity N fans out into N individually tracked assets.
// Each unit needs its own serial number and custodian, so the expansion is
// a resumable multi-step session rather than one bulk insert: the
// acquisition row is persisted up front, units are submitted one at a
// time, and a failed or abandoned unit never rolls back the ones already
// committed.

type SessionState string

const (
	StateExpanding SessionState = "expanding"
	StateComplete  SessionState = "complete"
)

// Session tracks one expansion in progress. Template carries the shared
// fields forward between units; the serial number and custodian are
// blanked for each new unit because those are the per-unit entries.
type Session struct {
	ID            string            `json:"id"`
	AcquisitionID int               `json:"acquisition_id"`
	Quantity      int               `json:"quantity"`
	UnitIndex     int               `json:"unit_index"`
	State         SessionState      `json:"state"`
	Template      models.AssetInput `json:"template"`
	CreatedAssets []int             `json:"created_assets"`
}

type AssetWriter interface {
	PersistAsset(asset models.Asset) (int, error)
}

type CustodianResolver interface {
	FindOrCreate(name string) (int, error)
}

type Recorder interface {
	Record(actor, action, details string, assetID *int, assetName *string)
}

type AcquisitionStore interface {
	PersistAcquisition(req models.AcquisitionRequest) (int, error)
}

// ExpansionWorkflow holds active sessions in process memory. Sessions are
// operator-interactive state, not durable data: abandoning one costs
// nothing because every submitted unit is already a valid standalone
// asset.
type ExpansionWorkflow struct {
	mu         sync.Mutex
	sessions   map[string]*Session
	store      AcquisitionStore
	assets     AssetWriter
	custodians CustodianResolver
	history    Recorder
	now        func() time.Time
}

func NewExpansionWorkflow(store AcquisitionStore, assetWriter AssetWriter, custodians CustodianResolver, history Recorder) *ExpansionWorkflow {
	return &ExpansionWorkflow{
		sessions:   make(map[string]*Session),
		store:      store,
		assets:     assetWriter,
		custodians: custodians,
		history:    history,
		now:        time.Now,
	}
}

// Start persists the acquisition row and opens a session at unit 0. The
// acquisition row stays persisted even if the expansion is later
// abandoned.
func (w *ExpansionWorkflow) Start(req models.AcquisitionRequest) (*Session, error) {
	if req.Quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}

	acquisitionID, err := w.store.PersistAcquisition(req)
	if err != nil {
		return nil, err
	}

	session := &Session{
		ID:            uuid.NewString(),
		AcquisitionID: acquisitionID,
		Quantity:      req.Quantity,
		UnitIndex:     0,
		State:         StateExpanding,
		Template:      templateFromAcquisition(req),
	}

	w.mu.Lock()
	w.sessions[session.ID] = session
	w.mu.Unlock()

	return session, nil
}

// SubmitUnit builds and persists one unit. On success the session advances
// to the next unit (serial and custodian blanked, everything else carried
// forward) or completes after the last one. On failure the session stays
// at the same unit for retry; previously persisted units remain persisted.
func (w *ExpansionWorkflow) SubmitUnit(sessionID string, unit models.AssetInput) (*Session, error) {
	w.mu.Lock()
	session, ok := w.sessions[sessionID]
	w.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("unknown expansion session: %s", sessionID)
	}
	if session.State == StateComplete {
		return session, fmt.Errorf("expansion session already complete")
	}

	merged := mergeUnit(session.Template, unit)

	var extra map[string]string
	if name := strings.TrimSpace(merged.Custodian); name != "" {
		if _, err := w.custodians.FindOrCreate(name); err != nil {
			return session, fmt.Errorf("failed to resolve custodian %q: %w", name, err)
		}
		extra = map[string]string{"custodian": name}
	}

	asset := assets.BuildForSave(merged, extra, w.now())

	id, err := w.assets.PersistAsset(asset)
	if err != nil {
		return session, err
	}

	w.history.Record("system", "add",
		fmt.Sprintf("Added asset: %s (unit %d of %d)", asset.AssetName, session.UnitIndex+1, session.Quantity),
		&id, &asset.AssetName)

	w.mu.Lock()
	defer w.mu.Unlock()

	session.CreatedAssets = append(session.CreatedAssets, id)
	if session.UnitIndex < session.Quantity-1 {
		session.UnitIndex++
		session.Template = nextTemplate(merged)
	} else {
		session.State = StateComplete
		delete(w.sessions, session.ID)
	}

	return session, nil
}

// Cancel abandons the session. Units already persisted stay persisted and
// the acquisition row is untouched.
func (w *ExpansionWorkflow) Cancel(sessionID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.sessions[sessionID]; !ok {
		return fmt.Errorf("unknown expansion session: %s", sessionID)
	}

	delete(w.sessions, sessionID)
	return nil
}

func templateFromAcquisition(req models.AcquisitionRequest) models.AssetInput {
	template := models.AssetInput{
		AssetName:       req.AssetName,
		Category:        req.Category,
		Subcategory:     req.Subcategory,
		Supplier:        req.Supplier,
		AcquisitionDate: req.AcquisitionDate,
		DocumentNumber:  req.DocumentNumber,
		Description:     req.Remarks,
	}
	if req.UnitCost.Value != nil {
		template.PurchaseCost = models.NumericFrom(*req.UnitCost.Value)
	}
	return template
}

// mergeUnit overlays the operator's per-unit entries on the session
// template. Empty fields keep the template value; the serial number is
// always taken from the unit, entered fresh each time.
func mergeUnit(template, unit models.AssetInput) models.AssetInput {
	merged := template
	merged.SerialNumber = unit.SerialNumber

	if unit.Name != "" {
		merged.Name = unit.Name
	}
	if unit.AssetName != "" {
		merged.AssetName = unit.AssetName
	}
	if unit.Custodian != "" {
		merged.Custodian = unit.Custodian
	}
	if unit.Department != "" {
		merged.Department = unit.Department
	}
	if unit.Location != "" {
		merged.Location = unit.Location
	}
	if unit.Status != "" {
		merged.Status = unit.Status
	}
	if unit.Description != "" {
		merged.Description = unit.Description
	}
	if unit.UsefulLife.Value != nil {
		merged.UsefulLife = unit.UsefulLife
	}
	if unit.PurchaseCost.Value != nil {
		merged.PurchaseCost = unit.PurchaseCost
	}
	if unit.DateSupplied != "" {
		merged.DateSupplied = unit.DateSupplied
	}
	if unit.DepreciationMethod != "" {
		merged.DepreciationMethod = unit.DepreciationMethod
	}
	if unit.Remarks != "" {
		merged.Remarks = unit.Remarks
	}
	if unit.WarrantyDetails != "" {
		merged.WarrantyDetails = unit.WarrantyDetails
	}

	return merged
}

// nextTemplate reuses the submitted unit as the next template with the
// per-unit fields blanked. A single purchase order commonly delivers
// several identical units to the same place, so location, department and
// cost carry forward unless the operator edits them.
func nextTemplate(submitted models.AssetInput) models.AssetInput {
	next := submitted
	next.SerialNumber = ""
	next.Custodian = ""
	return next
}
