package area

import (
	"fmt"
	"sync"
	"time"

	"pickbook/database/repository/area"
	"pickbook/models"
	"pickbook/utils"
)

// AreaService serves the area catalogue: the landing-page list, the booking
// page detail, and name search.
type AreaService interface {
	GetAreas() ([]models.Area, error)
	GetArea(areaID string) (*models.Area, error)
	SearchAreas(query string) ([]models.Area, error)
	CreateArea(area *models.Area) error
	UpdateArea(area *models.Area) error
	DeleteArea(areaID string) error
}

// DefaultAreaService implements AreaService with a Redis read-through cache
// in front of Mongo. Writes mark their area dirty and invalidate through a
// debouncer, so a burst of updates flushes the cache once but every touched
// area gets cleared.
type DefaultAreaService struct {
	Repo areaRepo.AreaRepository

	invalidate *utils.Debouncer
	dirtyMu    sync.Mutex
	dirty      map[string]struct{}
}

func NewDefaultAreaService(repo areaRepo.AreaRepository) (*DefaultAreaService, error) {
	if repo == nil {
		return nil, fmt.Errorf("area service initialization error: repository is nil")
	}
	return &DefaultAreaService{
		Repo:       repo,
		invalidate: utils.NewDebouncer(500 * time.Millisecond),
		dirty:      map[string]struct{}{},
	}, nil
}
