package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/AnyUserName/appicon-cli/internal/iconspec"
	"github.com/AnyUserName/appicon-cli/internal/pipeline"
	"github.com/AnyUserName/appicon-cli/internal/render"
	"github.com/spf13/cobra"
)

var (
	genOutDir     string
	genStyle      string
	genSet        string
	genSeed       int64
	genWorkers    int
	genCreateDir  bool
	genNoContents bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render every icon of a set into an .appiconset directory",
	Long: `Renders each entry of the icon set at its pixel size
(logical size × scale), writes the PNGs in table order and then
Contents.json.

The output directory must exist unless --create-dir is given. The first
failure aborts the run and files written before it are kept. With one
worker each icon is written as soon as it is rendered; with more, every
icon is rendered before the first one is written.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genOutDir, "out", "o", "./AppIcon.appiconset", "output directory")
	generateCmd.Flags().StringVarP(&genStyle, "style", "s", render.StyleRings,
		"icon style ("+strings.Join(render.Styles(), ", ")+")")
	generateCmd.Flags().StringVar(&genSet, "set", iconspec.DefaultSet, "icon set name, see: appicon sets")
	generateCmd.Flags().Int64Var(&genSeed, "seed", render.DefaultSeed, "random seed for the grid style")
	generateCmd.Flags().IntVarP(&genWorkers, "workers", "w", 1, "concurrent renders")
	generateCmd.Flags().BoolVar(&genCreateDir, "create-dir", false, "create the output directory if missing")
	generateCmd.Flags().BoolVar(&genNoContents, "no-contents", false, "do not write Contents.json")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	start := time.Now()

	applyEnvString(cmd, "out", &genOutDir, envCfg.OutDir)
	applyEnvString(cmd, "style", &genStyle, envCfg.Style)
	applyEnvString(cmd, "set", &genSet, envCfg.Set)
	if envCfg.Seed != nil && !cmd.Flags().Changed("seed") {
		genSeed = *envCfg.Seed
	}
	if envCfg.Workers != nil && !cmd.Flags().Changed("workers") {
		genWorkers = *envCfg.Workers
	}

	absOutput, err := filepath.Abs(genOutDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	set, err := iconspec.Get(genSet)
	if err != nil {
		return err
	}
	renderer, err := render.New(genStyle, genSeed)
	if err != nil {
		return err
	}

	logVerbose("output:  %s", absOutput)
	logVerbose("set:     %s (%d icons)", set.Name, len(set.Specs))
	logVerbose("style:   %s (seed=%d)", renderer.Name(), genSeed)

	out := cmd.OutOrStdout()
	p := pipeline.New(pipeline.Config{
		OutputDir:     absOutput,
		Set:           set,
		Renderer:      renderer,
		Workers:       genWorkers,
		CreateDir:     genCreateDir,
		WriteContents: !genNoContents,
		Verbose:       verbose,
		Progress:      out,
	})

	report, err := p.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	printGenerateReport(out, report, time.Since(start))
	return nil
}

func printGenerateReport(w io.Writer, r *pipeline.Report, elapsed time.Duration) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "✅ App icons created!")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Style:       %s\n", r.Style)
	fmt.Fprintf(w, "  Set:         %s\n", r.Set)
	fmt.Fprintf(w, "  Icons:       %d (%d files)\n", len(r.Outputs), r.DistinctFiles())
	fmt.Fprintf(w, "  Size:        %s\n", formatBytes(r.TotalBytes()))
	fmt.Fprintf(w, "  Output:      %s\n", r.OutputDir)
	if r.ContentsWritten {
		fmt.Fprintf(w, "  Catalog:     Contents.json\n")
	}
	fmt.Fprintf(w, "  Time:        %s\n", elapsed.Round(time.Millisecond))
	fmt.Fprintln(w)
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
