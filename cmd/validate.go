package cmd

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AnyUserName/appicon-cli/internal/manifest"
	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <appiconset_dir>",
	Short: "Check an icon set's Contents.json against the files on disk",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	dir := args[0]
	c, err := manifest.Read(dir)
	if err != nil {
		return err
	}
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	out := cmd.OutOrStdout()
	errs, warnings := validateIconSet(c, dir)
	for _, w := range warnings {
		fmt.Fprintf(out, "  ⚠ %s\n", w)
	}

	if len(errs) == 0 {
		fmt.Fprintln(out, "  ✓ Icon set is valid")
		fmt.Fprintf(out, "  ✓ %d images — all files present, square and opaque\n", len(c.Images))
		return nil
	}

	fmt.Fprintf(out, "  ✗ Icon set has %d error(s):\n", len(errs))
	for _, e := range errs {
		fmt.Fprintf(out, "    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errs))
}

func validateIconSet(c *manifest.Contents, dir string) (errs, warnings []string) {
	if c.Info.Version != manifest.SupportedVersion {
		errs = append(errs, fmt.Sprintf("unsupported catalog version: %d", c.Info.Version))
	}
	if len(c.Images) == 0 {
		errs = append(errs, "no images listed")
	}

	specs, err := c.Specs()
	badScale := map[int]bool{}
	var imgErrs manifest.ImageErrors
	if errors.As(err, &imgErrs) {
		for _, e := range imgErrs {
			badScale[e.Index] = true
		}
	}

	referenced := map[string]bool{}
	checked := map[string]int{}
	for i, spec := range specs {
		label := fmt.Sprintf("image[%d] %s", i, spec.Filename)

		if !spec.Idiom.Valid() {
			errs = append(errs, fmt.Sprintf("%s: unknown idiom %q", label, spec.Idiom))
		}
		if badScale[i] {
			errs = append(errs, fmt.Sprintf("%s: bad scale %q", label, c.Images[i].Scale))
			continue
		}
		px, err := spec.PixelSize()
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", label, err))
			continue
		}
		if spec.Filename == "" {
			errs = append(errs, fmt.Sprintf("image[%d]: missing filename", i))
			continue
		}
		referenced[spec.Filename] = true

		// Filenames may repeat across idioms; they must agree on size.
		if prev, ok := checked[spec.Filename]; ok {
			if prev != px {
				errs = append(errs, fmt.Sprintf("%s: listed as %dpx and %dpx", label, prev, px))
			}
			continue
		}
		checked[spec.Filename] = px

		if problem := checkIconFile(filepath.Join(dir, spec.Filename), px); problem != "" {
			errs = append(errs, fmt.Sprintf("%s: %s", label, problem))
		}
	}

	for _, name := range listPNGs(dir) {
		if !referenced[name] {
			warnings = append(warnings, fmt.Sprintf("%s is not referenced by %s", name, manifest.FileName))
		}
	}
	return errs, warnings
}

// checkIconFile returns a description of the first problem with the
// icon at path, or "" if it is a square opaque PNG of size px.
func checkIconFile(path string, px int) string {
	f, err := os.Open(path)
	if err != nil {
		return "file not found"
	}
	cfg, format, err := image.DecodeConfig(f)
	f.Close()
	if err != nil {
		return fmt.Sprintf("unreadable image: %v", err)
	}
	if format != "png" {
		return fmt.Sprintf("format is %s, want png", format)
	}
	if cfg.Width != px || cfg.Height != px {
		return fmt.Sprintf("dimensions %dx%d, want %dx%d", cfg.Width, cfg.Height, px, px)
	}
	if hasAlphaChannel(cfg.ColorModel) {
		return "has an alpha channel"
	}
	if _, err := imaging.Open(path); err != nil {
		return fmt.Sprintf("decode: %v", err)
	}
	return ""
}

func hasAlphaChannel(m color.Model) bool {
	switch m {
	case color.NRGBAModel, color.NRGBA64Model, color.AlphaModel, color.Alpha16Model:
		return true
	}
	if p, ok := m.(color.Palette); ok {
		for _, c := range p {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return true
			}
		}
	}
	return false
}

func listPNGs(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".png") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}
