package metadata

import "fmt"

type AssetStatus string

const (
	StatusAvailable   AssetStatus = "Available"
	StatusInUse       AssetStatus = "In Use"
	StatusMaintenance AssetStatus = "Maintenance"
	StatusRemoved     AssetStatus = "Removed" // terminal, set by Disposal adjustments
)

func NewAssetStatus(value string) (AssetStatus, error) {
	s := AssetStatus(value)
	if !s.isValid() {
		return "", fmt.Errorf("invalid asset status: %s", value)
	}
	return s, nil
}

func (s AssetStatus) isValid() bool {
	switch s {
	case StatusAvailable, StatusInUse, StatusMaintenance, StatusRemoved:
		return true
	default:
		return false
	}
}

func (s AssetStatus) String() string {
	return string(s)
}
