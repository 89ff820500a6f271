package forms

import (
	"fmt"
	"time"

	"github.com/farhanbasheerfarhan399-cyber/pms/internal/models"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/types"
)

// PhotoUploadInput is the move-in/move-out photo upload dialog. One
// submission carries one category and one or more photos, so Photos
// accepts either a single data URL or a list.
type PhotoUploadInput struct {
	Category string                 `json:"category"`
	Photos   types.FlexList[string] `json:"photos"`
}

// Validate requires a known category and at least one valid photo.
func (in PhotoUploadInput) Validate() error {
	e := &types.ValidationError{}
	if in.Category == "" {
		e.Add("category")
	} else if !models.ValidPhotoCategory(in.Category) {
		e.Add("category")
	}
	if len(in.Photos) == 0 {
		e.Add("photos")
	}
	for _, p := range in.Photos {
		if !validImage(p) {
			e.Add("photos")
			break
		}
	}
	return e.OrNil()
}

// Build creates one photo record per uploaded image. Ids combine the
// submission's millisecond timestamp with the image's index in the batch.
func (in PhotoUploadInput) Build(phase string, now time.Time) []models.MovePhoto {
	ms := now.UnixMilli()
	date := now.Format(displayDate)
	photos := make([]models.MovePhoto, 0, len(in.Photos))
	for i, url := range in.Photos {
		photos = append(photos, models.MovePhoto{
			ID:           fmt.Sprintf("%d-%d", ms, i),
			Phase:        phase,
			Category:     in.Category,
			ImageURL:     url,
			UploadedDate: date,
		})
	}
	return photos
}
