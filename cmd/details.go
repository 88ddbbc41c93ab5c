package cmd

import (
	"os"

	"github.com/anihelper/anihelper/tool"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(detailsCmd)
	detailsCmd.Flags().StringP("source", "S", "anilist", "Identifier namespace (anilist or jikan)")
	detailsCmd.Flags().IntP("id", "i", 0, "Provider-native identifier")
	detailsCmd.Flags().StringP("kind", "k", "", "Media kind (ANIME or MANGA)")
	lo.Must0(detailsCmd.MarkFlagRequired("id"))
	detailsCmd.SetOut(os.Stdout)
}

// detailsCmd fetches the full normalized record of one media item.
var detailsCmd = &cobra.Command{
	Use:     "details",
	Short:   "Fetch the full record of a single anime or manga",
	Example: "  anihelper details --source anilist --id 21",
	Run: func(cmd *cobra.Command, args []string) {
		emit(cmd, dispatcher().MediaDetails(cmd.Context(), tool.DetailsArgs{
			Source: lo.Must(cmd.Flags().GetString("source")),
			ID:     lo.Must(cmd.Flags().GetInt("id")),
			Kind:   lo.Must(cmd.Flags().GetString("kind")),
		}))
	},
}
