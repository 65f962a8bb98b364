package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is the shared sentinel every per-resource miss wraps.
// Services branch on it with errors.Is regardless of the resource.
var ErrNotFound = errors.New("record not found")

// asNotFound converts a gorm miss into the given resource error,
// passing other errors through.
func asNotFound(err, resourceErr error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return resourceErr
	}
	return err
}
