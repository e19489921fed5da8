package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cleardef/pkg/coordinate"
)

// newCoordCmd creates the coord command, a small inspection tool for
// coordinate texts.
func newCoordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "coord <coordinate>...",
		Short: "Parse coordinate texts and print their components",
		Long: `Parse coordinate texts and print their components.

Useful for checking how a coordinate decodes (namespace handling, semver
versus opaque versions, curation PR suffix) before sending it to the service.

Example:
  cleardef coord crate/cratesio/-/syn/1.0.14 git/github/myorg/myrepo/abcdef/pr/42`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, text := range args {
				coord, err := coordinate.Parse(text)
				if err != nil {
					fmt.Fprintln(out, renderError(err))
					return err
				}

				fmt.Fprintln(out, styleCoordinate.Render(coord.String()))
				fmt.Fprintf(out, "  %s %s\n", styleDim.Render("shape:"), coord.Shape)
				fmt.Fprintf(out, "  %s %s\n", styleDim.Render("provider:"), coord.Provider)
				if coord.Namespace == "" {
					fmt.Fprintf(out, "  %s %s\n", styleDim.Render("namespace:"), styleDim.Render("(none)"))
				} else {
					fmt.Fprintf(out, "  %s %s\n", styleDim.Render("namespace:"), coord.Namespace)
				}
				fmt.Fprintf(out, "  %s %s\n", styleDim.Render("name:"), coord.Name)

				kind := "opaque"
				if coord.Version.IsSemver() {
					kind = "semver"
				}
				fmt.Fprintf(out, "  %s %s %s\n", styleDim.Render("version:"), coord.Version, styleDim.Render("("+kind+")"))

				if coord.CurationPR != nil {
					fmt.Fprintf(out, "  %s %d\n", styleDim.Render("curation pr:"), *coord.CurationPR)
				}
			}
			return nil
		},
	}
}
