package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

func (a *AnalyticsManager) IncrementMatchesSimulatedCount(ctx context.Context, hostIpNet pqtype.Inet) error {
	return a.queries.AnalyticsIncrementMatchesSimulatedCount(ctx, hostIpNet)
}

func (a *AnalyticsManager) AddShotsFiredCount(ctx context.Context, hostIpNet pqtype.Inet, shots int64) error {
	return a.queries.AnalyticsAddShotsFiredCount(ctx, AnalyticsAddShotsFiredCountParams{
		HostIp:     hostIpNet,
		ShotsFired: shots,
	})
}

func (a *AnalyticsManager) GetMatchesSimulatedCount(ctx context.Context, hostIpNet pqtype.Inet) (int64, error) {
	return a.queries.AnalyticsGetMatchesSimulatedCount(ctx, hostIpNet)
}

func (a *AnalyticsManager) GetShotsFiredCount(ctx context.Context, hostIpNet pqtype.Inet) (int64, error) {
	return a.queries.AnalyticsGetShotsFiredCount(ctx, hostIpNet)
}
