package report

import (
	"context"
	"log/slog"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/meridian-health/meridian/internal/model"
)

// Service serves report view models through the Redis cache. Cache keys
// always carry an explicit scenario key so entries stay valid across
// active-scenario switches.
type Service struct {
	engine  *model.Engine
	builder *Builder
	cache   *Cache
	logger  *slog.Logger
}

// NewService constructs the report service.
func NewService(engine *model.Engine, cache *Cache, logger *slog.Logger) *Service {
	return &Service{
		engine:  engine,
		builder: NewBuilder(engine),
		cache:   cache,
		logger:  logger,
	}
}

// Engine exposes the underlying planning engine.
func (s *Service) Engine() *model.Engine {
	return s.engine
}

// resolveKey turns an optional scenario parameter into a concrete key.
func (s *Service) resolveKey(scenario string) string {
	if scenario != "" {
		return scenario
	}
	return s.engine.CurrentScenario().Key
}

// PnL returns the consolidated P&L view model for a year and scenario.
func (s *Service) PnL(ctx context.Context, year int, scenario string) (PnLViewModel, error) {
	key := s.resolveKey(scenario)
	cacheKey, err := s.cache.BuildKey(ctx, "report", "pnl", key, strconv.Itoa(year))
	if err != nil {
		return s.builder.BuildPnL(year, key), nil
	}
	var vm PnLViewModel
	err = s.cache.FetchJSON(ctx, cacheKey, &vm, func(context.Context) (interface{}, error) {
		return s.builder.BuildPnL(year, key), nil
	})
	if err != nil {
		s.logger.Warn("pnl cache fetch", slog.Any("error", err))
		return s.builder.BuildPnL(year, key), nil
	}
	return vm, nil
}

// Projections returns the home-market projection view model.
func (s *Service) Projections(ctx context.Context, year int, scenario string) (ProjectionsViewModel, error) {
	key := s.resolveKey(scenario)
	cacheKey, err := s.cache.BuildKey(ctx, "report", "projections", key, strconv.Itoa(year))
	if err != nil {
		return s.builder.BuildProjections(year, key), nil
	}
	var vm ProjectionsViewModel
	err = s.cache.FetchJSON(ctx, cacheKey, &vm, func(context.Context) (interface{}, error) {
		return s.builder.BuildProjections(year, key), nil
	})
	if err != nil {
		s.logger.Warn("projections cache fetch", slog.Any("error", err))
		return s.builder.BuildProjections(year, key), nil
	}
	return vm, nil
}

// Performance returns the foundation-year view model. The table never
// varies by scenario so it caches under a single key.
func (s *Service) Performance(ctx context.Context) (PerformanceViewModel, error) {
	cacheKey, err := s.cache.BuildKey(ctx, "report", "performance")
	if err != nil {
		return s.builder.BuildPerformance(), nil
	}
	var vm PerformanceViewModel
	err = s.cache.FetchJSON(ctx, cacheKey, &vm, func(context.Context) (interface{}, error) {
		return s.builder.BuildPerformance(), nil
	})
	if err != nil {
		s.logger.Warn("performance cache fetch", slog.Any("error", err))
		return s.builder.BuildPerformance(), nil
	}
	return vm, nil
}

// Economics returns the unit economics view model.
func (s *Service) Economics() EconomicsViewModel {
	return s.builder.BuildEconomics()
}

// Summary returns the annual comparison rows for a scenario.
func (s *Service) Summary(scenario string) []SummaryRow {
	return s.builder.BuildSummary(s.resolveKey(scenario))
}

// Dashboard returns the landing page view model.
func (s *Service) Dashboard(scenario string) DashboardViewModel {
	return s.builder.BuildDashboard(s.resolveKey(scenario))
}

// Warm rebuilds the cache for every scenario and planning year. The
// version bump first drops stale entries, then each combination is
// repopulated concurrently.
func (s *Service) Warm(ctx context.Context) error {
	if err := s.cache.Bump(ctx); err != nil {
		return err
	}
	years := s.builder.planningYears()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, info := range s.engine.Scenarios() {
		for _, year := range years {
			g.Go(func() error {
				if _, err := s.PnL(ctx, year, info.Key); err != nil {
					return err
				}
				_, err := s.Projections(ctx, year, info.Key)
				return err
			})
		}
	}
	g.Go(func() error {
		_, err := s.Performance(ctx)
		return err
	})
	return g.Wait()
}
