package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/diillson/apba-dashboard-go/internal/domain/classifier"
	"github.com/diillson/apba-dashboard-go/internal/domain/entity"
	"github.com/diillson/apba-dashboard-go/internal/domain/repository"
	"github.com/diillson/apba-dashboard-go/internal/logger"
	"github.com/diillson/apba-dashboard-go/internal/shared/types"
	"github.com/google/uuid"
)

// Defaults applied when neither flags nor configuration set them.
const (
	DefaultDetailLevel = 6
	DefaultTopN        = 15
)

// DashboardUseCase loads, enriches and reports on the APBA appendices.
type DashboardUseCase struct {
	sourceRepo repository.SourceRepository
	exportRepo repository.ExportRepository
	console    types.ConsoleInterface
	enricher   *classifier.Enricher

	mu    sync.Mutex
	cache map[string]*entity.Dataset
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	sourceRepo repository.SourceRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
	tables classifier.Tables,
) *DashboardUseCase {
	return &DashboardUseCase{
		sourceRepo: sourceRepo,
		exportRepo: exportRepo,
		console:    console,
		enricher:   classifier.NewEnricher(tables),
		cache:      make(map[string]*entity.Dataset),
	}
}

// Enricher exposes the static classification tables in use.
func (uc *DashboardUseCase) Enricher() *classifier.Enricher {
	return uc.enricher
}

// Load reads the four appendices and computes every derived field. The
// result is memoised by source identity; any table failure aborts the load
// and no partial dataset is kept.
func (uc *DashboardUseCase) Load(ctx context.Context, sources entity.SourceSet) (*entity.Dataset, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	log := logger.FromContext(ctx)

	if ds, ok := uc.cache[sources.Key()]; ok {
		log.Debug().Str("load_id", ds.LoadID.String()).Msg("dataset served from cache")
		return ds, nil
	}

	progress := uc.console.Progress([]string{"ledger", "grants", "aid", "otsus"})
	defer progress.Stop()

	ledger, err := uc.sourceRepo.LoadLedger(ctx, sources.Ledger)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger appendix: %w", err)
	}
	progress.Increment()

	grants, err := uc.sourceRepo.LoadGrants(ctx, sources.Grants)
	if err != nil {
		return nil, fmt.Errorf("failed to load grants appendix: %w", err)
	}
	progress.Increment()

	aid, err := uc.sourceRepo.LoadAid(ctx, sources.Aid)
	if err != nil {
		return nil, fmt.Errorf("failed to load aid appendix: %w", err)
	}
	progress.Increment()

	special, err := uc.sourceRepo.LoadSpecialAllocation(ctx, sources.SpecialAllocation)
	if err != nil {
		return nil, fmt.Errorf("failed to load special allocation appendix: %w", err)
	}
	progress.Increment()

	uc.enricher.EnrichLedger(ledger)
	uc.enricher.EnrichSpecialAllocation(special)

	ds := &entity.Dataset{
		LoadID:            uuid.New(),
		LoadedAt:          time.Now(),
		Sources:           sources,
		Ledger:            ledger,
		Grants:            grants,
		Aid:               aid,
		SpecialAllocation: special,
		Units:             uc.enricher.Units(),
	}

	unresolved := 0
	for _, item := range ledger {
		if item.Unit == entity.UnitNotAvailable {
			unresolved++
		}
	}
	log.Debug().
		Str("load_id", ds.LoadID.String()).
		Int("ledger_rows", len(ledger)).
		Int("grant_rows", len(grants)).
		Int("aid_rows", len(aid)).
		Int("otsus_rows", len(special)).
		Int("unresolved_pages", unresolved).
		Msg("dataset loaded")

	uc.cache[sources.Key()] = ds
	return ds, nil
}

// Invalidate drops every memoised dataset; the next Load rereads the sources.
func (uc *DashboardUseCase) Invalidate() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.cache = make(map[string]*entity.Dataset)
}
