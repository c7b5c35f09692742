package dashboard

import (
	"context"
	"encoding/json"
	"time"

	dashboarderrors "go-hris-console/internal/dashboard/errors"
	"go-hris-console/internal/session"
	"go-hris-console/internal/shared/apperror"
	"go-hris-console/internal/shared/contextutil"
	"go-hris-console/internal/upstream"
	upstreamerrors "go-hris-console/internal/upstream/errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	// Overview loads the admin dashboard with the caller's token.
	// Concurrent loads for the same token share one batch.
	Overview(ctx context.Context, token string) (Overview, error)
	// Refresh drops any shared batch for token and loads a new one.
	Refresh(ctx context.Context, token string) (Overview, error)
}

// batchTimeout bounds a shared batch once it is detached from its callers.
const batchTimeout = 30 * time.Second

type service struct {
	client  upstream.Client
	group   singleflight.Group
	timeout time.Duration
	now     func() time.Time
	logger  *zap.Logger
}

func NewService(client upstream.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{client: client, timeout: batchTimeout, now: time.Now, logger: l}
}

func (s *service) Overview(ctx context.Context, token string) (Overview, error) {
	if token == "" {
		s.logger.Warn("dashboard requested without token")
		return Overview{
			RecentActivities: []Activity{},
			Error:            upstreamerrors.ErrMissingToken.Message,
		}, upstreamerrors.ErrMissingToken
	}

	if err := ctx.Err(); err != nil {
		return Overview{RecentActivities: []Activity{}}, err
	}

	// the batch outlives any single caller; each caller waits on its own context
	ch := s.group.DoChan(session.KeyFor(token), func() (any, error) {
		batchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()
		return s.load(batchCtx, token)
	})

	select {
	case <-ctx.Done():
		return Overview{RecentActivities: []Activity{}}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Overview{RecentActivities: []Activity{}}, res.Err
		}
		if res.Shared {
			s.logger.Debug("dashboard batch shared")
		}
		return res.Val.(Overview), nil
	}
}

func (s *service) Refresh(ctx context.Context, token string) (Overview, error) {
	if token != "" {
		s.group.Forget(session.KeyFor(token))
	}
	return s.Overview(ctx, token)
}

func (s *service) load(ctx context.Context, token string) (Overview, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	start := s.now()

	bodies := make([]json.RawMessage, len(upstream.DashboardResources))
	g, gctx := errgroup.WithContext(ctx)
	for i, resource := range upstream.DashboardResources {
		g.Go(func() error {
			raw, err := s.client.Fetch(gctx, token, resource)
			if err != nil {
				log.Warn("dashboard read degraded to empty list",
					zap.String("resource", string(resource)),
					zap.Error(err),
				)
				return nil
			}
			bodies[i] = raw
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return Overview{}, err
	}

	var snap Snapshot
	for i, resource := range upstream.DashboardResources {
		list, err := upstream.DecodeList(bodies[i])
		if err != nil {
			log.Error("dashboard aggregation failed",
				zap.String("resource", string(resource)),
				zap.Error(err),
			)
			return Overview{
				RecentActivities: []Activity{},
				Error:            bannerText(err),
				FetchedAt:        start,
			}, nil
		}
		snap.set(resource, list)
	}

	overview := Overview{
		Stats:            ComputeStats(snap, start),
		RecentActivities: BuildActivityFeed(snap, start),
		FetchedAt:        start,
	}
	log.Debug("dashboard loaded",
		zap.Int("employees", overview.Stats.TotalEmployees),
		zap.Int("activities", len(overview.RecentActivities)),
		zap.Duration("duration", s.now().Sub(start)),
	)
	return overview, nil
}

func bannerText(err error) string {
	return apperror.MessageOf(err, dashboarderrors.ErrAggregationFailed.Message)
}
