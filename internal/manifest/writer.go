package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AnyUserName/appicon-cli/internal/iconspec"
)

// New builds a Contents manifest listing specs in order.
func New(specs []iconspec.IconSpec) *Contents {
	c := &Contents{
		Images: make([]Image, 0, len(specs)),
		Info:   Info{Version: SupportedVersion, Author: "xcode"},
	}
	for _, s := range specs {
		c.Images = append(c.Images, Image{
			Size:     s.Size,
			Idiom:    string(s.Idiom),
			Filename: s.Filename,
			Scale:    s.ScaleLabel(),
		})
	}
	return c
}

// ImageError reports an image entry that does not describe an icon.
type ImageError struct {
	Index    int
	Filename string
	Err      error
}

func (e ImageError) Error() string {
	return fmt.Sprintf("image[%d] %s: %v", e.Index, e.Filename, e.Err)
}

func (e ImageError) Unwrap() error { return e.Err }

// ImageErrors collects every ImageError of a manifest.
type ImageErrors []ImageError

func (es ImageErrors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Specs converts the manifest back into icon specs, one per image.
// Images with an unparsable scale keep Scale 0 and are listed in the
// returned ImageErrors.
func (c *Contents) Specs() ([]iconspec.IconSpec, error) {
	out := make([]iconspec.IconSpec, 0, len(c.Images))
	var errs ImageErrors
	for i, img := range c.Images {
		var scale int
		if _, err := fmt.Sscanf(img.Scale, "%dx", &scale); err != nil {
			errs = append(errs, ImageError{
				Index:    i,
				Filename: img.Filename,
				Err:      fmt.Errorf("bad scale %q", img.Scale),
			})
			scale = 0
		}
		out = append(out, iconspec.IconSpec{
			Size:     img.Size,
			Scale:    scale,
			Idiom:    iconspec.Idiom(img.Idiom),
			Filename: img.Filename,
		})
	}
	if len(errs) > 0 {
		return out, errs
	}
	return out, nil
}

// WriteJSON writes c as indented JSON to dir/Contents.json.
func WriteJSON(c *Contents, dir string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(filepath.Join(dir, FileName), data, 0o644)
}

// Read loads dir/Contents.json, or path itself when it names a file.
func Read(path string) (*Contents, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		path = filepath.Join(path, FileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var c Contents
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &c, nil
}
