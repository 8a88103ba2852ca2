package pipeline

import "github.com/AnyUserName/appicon-cli/internal/iconspec"

// Output records one written table entry.
type Output struct {
	Spec      iconspec.IconSpec
	PixelSize int
	Path      string
	Size      int64  // bytes on disk
	Hash      string // xxHash64 of the file contents
}

// Report summarizes a generate run.
type Report struct {
	Style           string
	Set             string
	OutputDir       string
	Outputs         []Output
	ContentsWritten bool
}

// DistinctFiles counts the unique filenames written. Entries that share
// a filename overwrite each other.
func (r *Report) DistinctFiles() int {
	seen := map[string]bool{}
	for _, o := range r.Outputs {
		seen[o.Spec.Filename] = true
	}
	return len(seen)
}

// TotalBytes sums the on-disk size of the distinct files written. The
// last write of a filename wins.
func (r *Report) TotalBytes() int64 {
	last := map[string]int64{}
	for _, o := range r.Outputs {
		last[o.Spec.Filename] = o.Size
	}
	var total int64
	for _, n := range last {
		total += n
	}
	return total
}
