package area

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"pickbook/models"
	"pickbook/utils"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const (
	areaListCacheKey   = "areas:list"
	areaCacheKeyPrefix = "area:"
	areaCacheTTL       = 5 * time.Minute
)

// listProjection trims the per-area booking history off the landing-page
// list; the full document is only needed on the booking page.
var listProjection = bson.M{"bookings": 0}

// GetAreas returns every area, serving from cache when possible.
func (s *DefaultAreaService) GetAreas() ([]models.Area, error) {
	ctx := context.Background()
	cacheClient := utils.GetCacheClient()

	if data, err := cacheClient.Get(ctx, areaListCacheKey).Result(); err == nil {
		var areas []models.Area
		if err := json.Unmarshal([]byte(data), &areas); err == nil {
			return areas, nil
		}
	} else if err != redis.Nil {
		utils.GetLogger().Warn("area list cache read failed", zap.Error(err))
	}

	areas, err := s.Repo.GetAllWithProjection(listProjection)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch areas: %w", err)
	}

	if data, err := json.Marshal(areas); err == nil {
		if err := cacheClient.Set(ctx, areaListCacheKey, data, areaCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("area list cache write failed", zap.Error(err))
		}
	}
	return areas, nil
}

// GetArea returns the full area document, including the denormalized
// reserved-slot list the booking page filters against.
func (s *DefaultAreaService) GetArea(areaID string) (*models.Area, error) {
	ctx := context.Background()
	cacheClient := utils.GetCacheClient()
	cacheKey := areaCacheKeyPrefix + areaID

	if data, err := cacheClient.Get(ctx, cacheKey).Result(); err == nil {
		var area models.Area
		if err := json.Unmarshal([]byte(data), &area); err == nil {
			return &area, nil
		}
	}

	area, err := s.Repo.GetByIDWithProjection(areaID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch area %s: %w", areaID, err)
	}
	if area == nil {
		return nil, fmt.Errorf("area with id %s not found", areaID)
	}

	if data, err := json.Marshal(area); err == nil {
		if err := cacheClient.Set(ctx, cacheKey, data, areaCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("area cache write failed", zap.String("areaId", areaID), zap.Error(err))
		}
	}
	return area, nil
}

// SearchAreas matches area names case-insensitively. Blank queries fall back
// to the full (cached) list.
func (s *DefaultAreaService) SearchAreas(query string) ([]models.Area, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.GetAreas()
	}
	return s.Repo.SearchByName(query)
}

func (s *DefaultAreaService) CreateArea(area *models.Area) error {
	if err := s.Repo.Create(area); err != nil {
		return err
	}
	s.scheduleInvalidation(area.ID)
	return nil
}

func (s *DefaultAreaService) UpdateArea(area *models.Area) error {
	if err := s.Repo.Update(area); err != nil {
		return err
	}
	s.scheduleInvalidation(area.ID)
	return nil
}

func (s *DefaultAreaService) DeleteArea(areaID string) error {
	if err := s.Repo.Delete(areaID); err != nil {
		return err
	}
	s.scheduleInvalidation(areaID)
	return nil
}

// InvalidateArea drops an area's cached entries immediately. Used after a
// booking denormalizes new reserved slots so the next reader sees them.
func (s *DefaultAreaService) InvalidateArea(areaID string) {
	ctx := context.Background()
	cacheClient := utils.GetCacheClient()
	if err := cacheClient.Del(ctx, areaCacheKeyPrefix+areaID, areaListCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("area cache invalidation failed", zap.String("areaId", areaID), zap.Error(err))
	}
}

// scheduleInvalidation marks the area dirty and coalesces catalogue-write
// bursts into one cache flush covering every dirty area.
func (s *DefaultAreaService) scheduleInvalidation(areaID string) {
	s.markDirty(areaID)
	s.invalidate.Trigger(s.flushInvalidations)
}

func (s *DefaultAreaService) markDirty(areaID string) {
	s.dirtyMu.Lock()
	defer s.dirtyMu.Unlock()
	if s.dirty == nil {
		s.dirty = map[string]struct{}{}
	}
	s.dirty[areaID] = struct{}{}
}

// drainDirty empties the dirty set and returns its contents.
func (s *DefaultAreaService) drainDirty() []string {
	s.dirtyMu.Lock()
	defer s.dirtyMu.Unlock()
	ids := make([]string, 0, len(s.dirty))
	for id := range s.dirty {
		ids = append(ids, id)
	}
	s.dirty = map[string]struct{}{}
	return ids
}

func (s *DefaultAreaService) flushInvalidations() {
	for _, id := range s.drainDirty() {
		s.InvalidateArea(id)
	}
}
