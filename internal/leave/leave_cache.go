package leave

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

const (
	StatsKeyPrefix = "leaves:stats:"
	statsTTL       = time.Hour
)

func GetStatsKey(companyID string) string {
	return StatsKeyPrefix + companyID
}

func (s *service) cachedStats(ctx context.Context, companyID string) (LeaveStatsResponse, error) {
	cacheKey := GetStatsKey(companyID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp LeaveStatsResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		resp, err := s.computeStats(ctx, companyID)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, statsTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		return LeaveStatsResponse{}, err
	}

	return v.(LeaveStatsResponse), nil
}

func (s *service) invalidateStats(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}

	cacheKey := GetStatsKey(companyID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate leave stats cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}
