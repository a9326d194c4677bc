package repository

import (
	"errors"
	"log"
	"time"

	"fitmate/internal/scoring"

	"gorm.io/gorm"
)

// StandardsCache is the subset of the Redis client the standards source
// needs. A nil cache disables cross-process caching.
type StandardsCache interface {
	GetStandard(key string) (*scoring.StandardBands, bool, error)
	StoreStandard(key string, bands *scoring.StandardBands, duration time.Duration) error
	InvalidateStandards() error
}

const standardsCacheTTL = 12 * time.Hour

// StandardsSource resolves scoring thresholds through three layers:
// Redis cache, the configurable standards table, then the built-in
// default table. It never errors for supported demographics; only
// malformed input (negative age) is rejected.
type StandardsSource struct {
	repo     StandardRepository
	cache    StandardsCache
	fallback scoring.StandardsSource
}

func NewStandardsSource(repo StandardRepository, cache StandardsCache) *StandardsSource {
	return &StandardsSource{
		repo:     repo,
		cache:    cache,
		fallback: scoring.NewFallbackSource(),
	}
}

func (s *StandardsSource) GetStandard(testName, gender string, age int, variation string) (*scoring.StandardBands, error) {
	key, err := scoring.CacheKey(testName, gender, age, variation)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		bands, found, err := s.cache.GetStandard(key)
		if err != nil {
			// Cache trouble degrades to a DB lookup.
			log.Printf("standards cache read failed for %s: %v", key, err)
		} else if found {
			return bands, nil
		}
	}

	row, err := s.repo.FindMatch(testName, gender, age, variation)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("standards lookup failed for %s: %v", key, err)
		}
		return s.fallback.GetStandard(testName, gender, age, variation)
	}

	bands := &scoring.StandardBands{
		Cutoffs:   [3]float64{row.Cutoff2, row.Cutoff3, row.Cutoff4},
		Direction: scoring.Direction(row.Direction),
	}

	if s.cache != nil {
		if err := s.cache.StoreStandard(key, bands, standardsCacheTTL); err != nil {
			log.Printf("standards cache write failed for %s: %v", key, err)
		}
	}

	return bands, nil
}

// Invalidate drops all cached standards. Must be called after any edit
// to the standards table.
func (s *StandardsSource) Invalidate() error {
	if s.cache == nil {
		return nil
	}
	return s.cache.InvalidateStandards()
}
