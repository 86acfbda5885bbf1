package metadata

import "fmt"

type AdjustmentType string

const (
	AdjustmentAddition    AdjustmentType = "Addition"
	AdjustmentTransfer    AdjustmentType = "Transfer"
	AdjustmentMaintenance AdjustmentType = "Maintenance"
	AdjustmentDamaged     AdjustmentType = "Damaged"
	AdjustmentLost        AdjustmentType = "Lost"
	AdjustmentDisposal    AdjustmentType = "Disposal"
	AdjustmentOther       AdjustmentType = "Other"
)

func NewAdjustmentType(value string) (AdjustmentType, error) {
	t := AdjustmentType(value)
	if !t.isValid() {
		return "", fmt.Errorf("invalid adjustment type: %s", value)
	}
	return t, nil
}

func (t AdjustmentType) isValid() bool {
	switch t {
	case AdjustmentAddition, AdjustmentTransfer, AdjustmentMaintenance,
		AdjustmentDamaged, AdjustmentLost, AdjustmentDisposal, AdjustmentOther:
		return true
	default:
		return false
	}
}

// Retires reports whether the adjustment removes the asset from active
// inventory entirely.
func (t AdjustmentType) Retires() bool {
	return t == AdjustmentLost || t == AdjustmentDamaged
}

func (t AdjustmentType) String() string {
	return string(t)
}
