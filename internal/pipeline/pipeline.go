package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/AnyUserName/appicon-cli/internal/encoder"
	"github.com/AnyUserName/appicon-cli/internal/iconspec"
	"github.com/AnyUserName/appicon-cli/internal/manifest"
	"github.com/AnyUserName/appicon-cli/internal/render"
)

// Config holds all parameters for a generate run.
type Config struct {
	OutputDir     string
	Set           iconspec.Set
	Renderer      render.Renderer
	Encoder       encoder.Encoder // nil = PNG
	Workers       int             // concurrent renders, <= 0 means 1
	CreateDir     bool            // create OutputDir instead of failing
	WriteContents bool            // write Contents.json after the icons
	Verbose       bool
	Progress      io.Writer // one line per written file, nil = silent
}

// Pipeline renders a set of icons and writes them to disk.
type Pipeline struct {
	cfg Config
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Encoder == nil {
		cfg.Encoder = &encoder.PNGEncoder{}
	}
	if cfg.Progress == nil {
		cfg.Progress = io.Discard
	}
	return &Pipeline{cfg: cfg}
}

// Run renders every entry of the set and writes the files in table
// order. The first failure aborts the run; files already written are
// left in place. With one worker each entry is written as soon as it is
// rendered; with more, all entries are rendered before the first write.
// The returned report lists what was written, including on error.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	if p.cfg.Renderer == nil {
		return nil, errors.New("no renderer configured")
	}
	report := &Report{
		Style:     p.cfg.Renderer.Name(),
		Set:       p.cfg.Set.Name,
		OutputDir: p.cfg.OutputDir,
	}
	if len(p.cfg.Set.Specs) == 0 {
		return report, fmt.Errorf("icon set %q is empty", p.cfg.Set.Name)
	}

	if err := p.prepareOutputDir(); err != nil {
		return report, err
	}

	jobs, err := plan(p.cfg.Set.Specs)
	if err != nil {
		return report, err
	}
	p.logf("rendering %d icons (%s, %d workers)", len(jobs), report.Style, p.cfg.Workers)

	if p.cfg.Workers == 1 {
		// Render and write each entry in turn, so a failure at entry k
		// leaves entries 0..k-1 on disk.
		for _, j := range jobs {
			if err := ctx.Err(); err != nil {
				return report, err
			}
			r := p.renderOne(j)
			if r.err != nil {
				return report, fmt.Errorf("%s: %w", j.spec.Filename, r.err)
			}
			if err := p.emit(report, j, r.data); err != nil {
				return report, err
			}
		}
	} else {
		results, err := p.renderAll(ctx, jobs)
		if err != nil {
			return report, err
		}
		for i, j := range jobs {
			if err := ctx.Err(); err != nil {
				return report, err
			}
			if err := p.emit(report, j, results[i].data); err != nil {
				return report, err
			}
		}
	}

	if p.cfg.WriteContents {
		if err := manifest.WriteJSON(manifest.New(p.cfg.Set.Specs), p.cfg.OutputDir); err != nil {
			return report, fmt.Errorf("write %s: %w", manifest.FileName, err)
		}
		report.ContentsWritten = true
		p.logf("wrote %s", manifest.FileName)
	}

	return report, nil
}

// renderAll renders every job on the worker pool. Any failure is
// reported for the earliest failing entry in table order, before
// anything is written.
func (p *Pipeline) renderAll(ctx context.Context, jobs []job) ([]encoded, error) {
	results := make([]encoded, len(jobs))
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.cfg.Workers)

	for i, j := range jobs {
		wg.Add(1)
		go func(idx int, j job) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if err := ctx.Err(); err != nil {
				results[idx].err = err
				return
			}
			results[idx] = p.renderOne(j)
		}(i, j)
	}
	wg.Wait()

	for i, r := range results {
		if r.err != nil {
			return nil, fmt.Errorf("%s: %w", jobs[i].spec.Filename, r.err)
		}
	}
	return results, nil
}

// emit writes one encoded icon and records it.
func (p *Pipeline) emit(report *Report, j job, data []byte) error {
	out, err := p.write(j, data)
	if err != nil {
		return err
	}
	report.Outputs = append(report.Outputs, out)
	fmt.Fprintf(p.cfg.Progress, "✓ %s\n", j.spec.Filename)
	return nil
}

func (p *Pipeline) prepareOutputDir() error {
	dir := p.cfg.OutputDir
	if dir == "" {
		return errors.New("output dir not set")
	}
	if p.cfg.CreateDir {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("output dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output dir %s is not a directory", dir)
	}
	return nil
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[appicon] "+format+"\n", args...)
	}
}
