package container

import (
	"database/sql"

	"go.uber.org/zap"

	"inventory/internal/acquisitions"
	"inventory/internal/adjustments"
	"inventory/internal/assets"
	"inventory/internal/custodians"
	"inventory/internal/dashboard"
	historyLog "inventory/internal/history"
	"inventory/internal/movements"
	"inventory/internal/repository"
	"inventory/internal/rollups"
	"inventory/pkg/history"
)

type Container struct {
	Repository         *repository.Repository
	Recorder           *history.Recorder
	AssetHandler       *assets.AssetHandler
	AcquisitionHandler *acquisitions.AcquisitionHandler
	AdjustmentHandler  *adjustments.AdjustmentHandler
	RollupHandler      *rollups.RollupHandler
	CustodianHandler   *custodians.CustodianHandler
	MovementHandler    *movements.MovementHandler
	DashboardHandler   *dashboard.DashboardHandler
	HistoryHandler     *historyLog.HistoryHandler
}

func NewAppContainer(db *sql.DB, log *zap.Logger) *Container {
	repo := repository.NewRepository(db)
	recorder := history.NewRecorder(repo, log)

	assetRepo := assets.NewRepository(repo)
	custodianRepo := custodians.NewRepository(repo)
	acquisitionRepo := acquisitions.NewRepository(repo)
	adjustmentRepo := adjustments.NewRepository(repo)
	rollupRepo := rollups.NewRepository(repo)
	movementRepo := movements.NewRepository(repo)
	dashboardRepo := dashboard.NewRepository(repo)
	historyRepo := historyLog.NewRepository(repo)

	assetService := assets.NewAssetService(assetRepo, custodianRepo, rollupRepo, acquisitionRepo, recorder)
	expansion := acquisitions.NewExpansionWorkflow(acquisitionRepo, assetRepo, custodianRepo, recorder)
	adjustmentService := adjustments.NewAdjustmentService(adjustmentRepo, assetRepo, recorder)
	rollupService := rollups.NewRollupService(rollupRepo)
	movementService := movements.NewMovementService(movementRepo, assetRepo, recorder)
	dashboardService := dashboard.NewDashboardService(dashboardRepo, custodianRepo)

	return &Container{
		Repository:         repo,
		Recorder:           recorder,
		AssetHandler:       assets.NewAssetHandler(assetService),
		AcquisitionHandler: acquisitions.NewAcquisitionHandler(acquisitionRepo, expansion),
		AdjustmentHandler:  adjustments.NewAdjustmentHandler(adjustmentService, adjustmentRepo),
		RollupHandler:      rollups.NewRollupHandler(rollupService, rollupRepo),
		CustodianHandler:   custodians.NewCustodianHandler(custodianRepo),
		MovementHandler:    movements.NewMovementHandler(movementService),
		DashboardHandler:   dashboard.NewDashboardHandler(dashboardService),
		HistoryHandler:     historyLog.NewHistoryHandler(historyRepo),
	}
}
