package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/cespare/xxhash/v2"

	"rpa-roi/domain"
	"rpa-roi/repository"
)

const cacheKeyPrefix = "roi:"

// ROIService memoizes CalculateROI behind a CacheRepository. Results are
// derived from inputs alone, so a cached entry is always valid until it expires.
type ROIService struct {
	cache repository.CacheRepository
	ttl   time.Duration
}

// NewROIService creates a ROIService. cache may be nil to disable caching.
func NewROIService(cache repository.CacheRepository, ttl time.Duration) *ROIService {
	return &ROIService{cache: cache, ttl: ttl}
}

// Calculate returns the results for input. Cache failures are logged and the
// result is computed directly.
func (s *ROIService) Calculate(
	ctx context.Context,
	input domain.CalculatorInputs,
) (domain.CalculationResults, error) {
	input = NormalizeInputs(input)

	if s.cache == nil {
		return CalculateROI(input), nil
	}

	key, err := CacheKey(input)
	if err != nil {
		return domain.CalculationResults{}, err
	}

	if cached, ok, err := s.cache.Get(ctx, key); err != nil {
		log.Printf("Warning: cache lookup failed for %s: %v", key, err)
	} else if ok {
		var res domain.CalculationResults
		if err := json.Unmarshal([]byte(cached), &res); err == nil {
			return res, nil
		}
		log.Printf("Warning: discarding unreadable cache entry %s", key)
	}

	result := CalculateROI(input)

	payload, err := json.Marshal(result)
	if err != nil {
		log.Printf("Warning: failed to encode result for cache: %v", err)
		return result, nil
	}
	if err := s.cache.Set(ctx, key, string(payload), s.ttl); err != nil {
		log.Printf("Warning: failed to cache calculation %s: %v", key, err)
	}

	return result, nil
}

// CacheKey hashes the canonical JSON form of normalized inputs.
func CacheKey(input domain.CalculatorInputs) (string, error) {
	data, err := json.Marshal(NormalizeInputs(input))
	if err != nil {
		return "", fmt.Errorf("encode inputs: %w", err)
	}
	return fmt.Sprintf("%s%016x", cacheKeyPrefix, xxhash.Sum64(data)), nil
}
