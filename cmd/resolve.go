package cmd

import (
	"os"
	"strings"

	"github.com/anihelper/anihelper/tool"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().StringP("kind", "k", "", "Media kind (ANIME or MANGA)")
	resolveCmd.Flags().StringP("prefer-format", "f", "", "Bias the best pick towards a release format, e.g. MOVIE")
	resolveCmd.SetOut(os.Stdout)
}

// resolveCmd resolves free text to canonical identifiers.
var resolveCmd = &cobra.Command{
	Use:     "resolve <title>",
	Short:   "Resolve a free-text title to canonical Anilist and MAL identifiers",
	Example: "  anihelper resolve \"koe no katachi\" --prefer-format MOVIE",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		emit(cmd, dispatcher().ResolveTitle(cmd.Context(), tool.ResolveArgs{
			Title:        strings.Join(args, " "),
			Kind:         lo.Must(cmd.Flags().GetString("kind")),
			PreferFormat: lo.Must(cmd.Flags().GetString("prefer-format")),
		}))
	},
}
