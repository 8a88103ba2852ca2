package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AnyUserName/appicon-cli/internal/hasher"
	"github.com/AnyUserName/appicon-cli/internal/iconspec"
)

// job is one table entry with its resolved pixel size.
type job struct {
	spec      iconspec.IconSpec
	pixelSize int
}

// encoded holds the result of rendering a single job.
type encoded struct {
	data []byte
	err  error
}

func plan(specs []iconspec.IconSpec) ([]job, error) {
	jobs := make([]job, 0, len(specs))
	for _, s := range specs {
		if s.Filename == "" || filepath.Base(s.Filename) != s.Filename {
			return nil, fmt.Errorf("invalid filename %q", s.Filename)
		}
		px, err := s.PixelSize()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Filename, err)
		}
		jobs = append(jobs, job{spec: s, pixelSize: px})
	}
	return jobs, nil
}

// renderOne draws and encodes a single icon.
func (p *Pipeline) renderOne(j job) encoded {
	img, err := p.cfg.Renderer.Render(j.pixelSize)
	if err != nil {
		return encoded{err: fmt.Errorf("render %dpx: %w", j.pixelSize, err)}
	}
	data, err := p.cfg.Encoder.Encode(img)
	if err != nil {
		return encoded{err: fmt.Errorf("encode %s: %w", p.cfg.Encoder.Format(), err)}
	}
	p.logf("rendered %s (%dpx, %d bytes)", j.spec.Filename, j.pixelSize, len(data))
	return encoded{data: data}
}

func (p *Pipeline) write(j job, data []byte) (Output, error) {
	path := filepath.Join(p.cfg.OutputDir, j.spec.Filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Output{}, fmt.Errorf("write %s: %w", j.spec.Filename, err)
	}
	return Output{
		Spec:      j.spec,
		PixelSize: j.pixelSize,
		Path:      path,
		Size:      int64(len(data)),
		Hash:      hasher.Sum(data),
	}, nil
}
