package cmd

import (
	"fmt"
	"strings"

	"github.com/AnyUserName/appicon-cli/internal/iconspec"
	"github.com/AnyUserName/appicon-cli/internal/render"
	"github.com/spf13/cobra"
)

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "List built-in icon sets and styles",
	Args:  cobra.NoArgs,
	RunE:  runSets,
}

func init() {
	rootCmd.AddCommand(setsCmd)
}

func runSets(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "  Sets:")
	for _, name := range iconspec.Names() {
		s, err := iconspec.Get(name)
		if err != nil {
			return err
		}
		marker := " "
		if name == iconspec.DefaultSet {
			marker = "*"
		}
		fmt.Fprintf(out, "  %s %-16s %2d icons, %2d files\n", marker, name, len(s.Specs), len(s.Filenames()))
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Styles: %s\n", strings.Join(render.Styles(), ", "))
	return nil
}
