package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AnyUserName/appicon-cli/internal/hasher"
	"github.com/AnyUserName/appicon-cli/internal/manifest"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <appiconset_dir>",
	Short: "Display sizes and content hashes for a generated icon set",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	dir := args[0]
	c, err := manifest.Read(dir)
	if err != nil {
		return err
	}
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-28s %-14s %6s %10s  %s\n", "FILE", "IDIOM", "PX", "SIZE", "XXH64")

	// Images with a bad scale still get a row, with an unknown size.
	specs, err := c.Specs()
	if err != nil {
		logVerbose("%v", err)
	}

	seen := map[string]bool{}
	var total int64
	var missing int
	for _, img := range specs {
		px := "?"
		if n, err := img.PixelSize(); err == nil {
			px = fmt.Sprint(n)
		}

		sum, size, err := hasher.SumFile(filepath.Join(dir, img.Filename))
		if err != nil {
			logVerbose("hash %s: %v", img.Filename, err)
			missing++
			fmt.Fprintf(out, "  %-28s %-14s %6s %10s  %s\n", img.Filename, img.Idiom, px, "-", "missing")
			continue
		}
		if !seen[img.Filename] {
			seen[img.Filename] = true
			total += size
		}
		fmt.Fprintf(out, "  %-28s %-14s %6s %10s  %s\n", img.Filename, img.Idiom, px, formatBytes(size), sum)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Images:      %d\n", len(c.Images))
	fmt.Fprintf(out, "  Files:       %d\n", len(seen))
	fmt.Fprintf(out, "  Total size:  %s\n", formatBytes(total))
	if missing > 0 {
		fmt.Fprintf(out, "  Missing:     %d\n", missing)
	}
	fmt.Fprintln(out)
	return nil
}
