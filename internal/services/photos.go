package services

import (
	"time"

	"github.com/farhanbasheerfarhan399-cyber/pms/internal/filter"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/forms"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/models"
)

// PhotoSetView is one phase of move documentation: the photos grouped by
// area plus the documentation progress across all areas.
type PhotoSetView struct {
	Phase           string                        `json:"phase"`
	Photos          []models.MovePhoto            `json:"photos"`
	Grouped         map[string][]models.MovePhoto `json:"grouped"`
	TotalAreas      int                           `json:"totalAreas"`
	DocumentedAreas int                           `json:"documentedAreas"`
	Progress        int                           `json:"progress"`
}

// PhotoService backs the tenant's move-in/move-out documentation page.
type PhotoService struct {
	stores *Stores
	now    func() time.Time
}

// NewPhotoService creates a PhotoService over the shared stores.
func NewPhotoService(s *Stores) *PhotoService {
	return &PhotoService{stores: s, now: time.Now}
}

// Set returns the photos of one phase with grouping and progress. An
// unknown phase reads as move-in.
func (s *PhotoService) Set(phase string) (PhotoSetView, error) {
	if phase != models.PhaseMoveOut {
		phase = models.PhaseMoveIn
	}
	rows, err := s.stores.Photos.List()
	if err != nil {
		return PhotoSetView{}, err
	}
	inPhase := filter.Apply(rows, func(p models.MovePhoto) bool {
		return p.Phase == phase
	})

	grouped := make(map[string][]models.MovePhoto)
	for _, p := range inPhase {
		grouped[p.Category] = append(grouped[p.Category], p)
	}

	total := len(models.PhotoCategories)
	documented := len(grouped)
	progress := 0
	if total > 0 {
		progress = int(float64(documented)/float64(total)*100 + 0.5)
	}

	return PhotoSetView{
		Phase:           phase,
		Photos:          inPhase,
		Grouped:         grouped,
		TotalAreas:      total,
		DocumentedAreas: documented,
		Progress:        progress,
	}, nil
}

// Upload validates a photo batch and stores one record per image under
// the given phase.
func (s *PhotoService) Upload(phase string, in forms.PhotoUploadInput) ([]models.MovePhoto, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if phase != models.PhaseMoveOut {
		phase = models.PhaseMoveIn
	}
	photos := in.Build(phase, s.now())
	for _, p := range photos {
		if err := s.stores.Photos.Add(p); err != nil {
			return nil, err
		}
	}
	return photos, nil
}
