package dashboard

import "inventory/pkg/metadata"

type Stats struct {
	TotalAssets     int `json:"total_assets"`
	AvailableAssets int `json:"available_assets"`
	Custodians      int `json:"custodians"`
}

type AssetCounter interface {
	CountAssets() (int, error)
	CountAssetsByStatus(status string) (int, error)
}

type CustodianCounter interface {
	CountCustodians() (int, error)
}

type DashboardService struct {
	assets     AssetCounter
	custodians CustodianCounter
}

func NewDashboardService(assets AssetCounter, custodians CustodianCounter) *DashboardService {
	return &DashboardService{
		assets:     assets,
		custodians: custodians,
	}
}

func (s *DashboardService) Stats() (*Stats, error) {
	total, err := s.assets.CountAssets()
	if err != nil {
		return nil, err
	}

	available, err := s.assets.CountAssetsByStatus(string(metadata.StatusAvailable))
	if err != nil {
		return nil, err
	}

	custodians, err := s.custodians.CountCustodians()
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalAssets:     total,
		AvailableAssets: available,
		Custodians:      custodians,
	}, nil
}
