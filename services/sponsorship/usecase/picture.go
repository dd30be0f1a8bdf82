package usecase

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sponsorship/config"
	"sponsorship/domain"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	pictureDir     = "children"
	avatarDir      = "avatars"
	pictureMaxSide = 512
)

// pictureStore keeps resized images under dir/sub. Paths handed to the database
// are relative to dir. field names the form field in validation errors.
type pictureStore struct {
	dir   string
	sub   string
	field string
}

func (ps *pictureStore) save(filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !slices.Contains(domain.PictureExtensions, ext) {
		return "", domain.NewValidationError(map[string]string{
			ps.field: "Upload a jpg, jpeg or png image",
		})
	}

	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return "", domain.NewValidationError(map[string]string{
			ps.field: "Upload a valid image, the file could not be decoded",
		})
	}

	if err := os.MkdirAll(filepath.Join(ps.dir, ps.sub), 0o755); err != nil {
		return "", fmt.Errorf("could not create picture directory: %w", err)
	}

	rel := filepath.ToSlash(filepath.Join(ps.sub, uuid.NewString()+ext))
	resized := imaging.Fit(img, pictureMaxSide, pictureMaxSide, imaging.Lanczos)
	if err := imaging.Save(resized, filepath.Join(ps.dir, rel)); err != nil {
		return "", fmt.Errorf("could not store picture: %w", err)
	}
	return rel, nil
}

// remove deletes a stored picture. Paths outside dir/sub, such as the default
// avatar, are left alone. Failures are logged and never returned.
func (ps *pictureStore) remove(rel string) {
	if !strings.HasPrefix(rel, ps.sub+"/") {
		return
	}
	err := os.Remove(filepath.Join(ps.dir, filepath.FromSlash(rel)))
	if err != nil && !os.IsNotExist(err) {
		config.GetLogrusInstance().WithError(err).WithField(ps.field, rel).Warn("could not remove picture file")
	}
}
