package leavebalance

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

const (
	BalancesKeyPrefix = "leave_balances:"
	balancesTTL       = 10 * time.Minute
)

func GetBalancesKey(membershipID string) string {
	return BalancesKeyPrefix + membershipID
}

func (s *service) cachedBalances(ctx context.Context, membershipID string) ([]BalanceResponse, error) {
	cacheKey := GetBalancesKey(membershipID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []BalanceResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		balances, err := s.repo.ListByMembership(ctx, membershipID)
		if err != nil {
			s.logger.Error("list balances failed", zap.String("membership_id", membershipID), zap.Error(err))
			return nil, err
		}

		resp := make([]BalanceResponse, 0, len(balances))
		for _, b := range balances {
			resp = append(resp, mapToResponse(b))
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, balancesTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]BalanceResponse), nil
}

func (s *service) InvalidateCache(ctx context.Context, membershipID string) {
	if s.rdb == nil {
		return
	}

	cacheKey := GetBalancesKey(membershipID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate balances cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}
