package cmd

import (
	"os"

	"github.com/anihelper/anihelper/tool"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(trendingCmd)
	trendingCmd.Flags().StringP("kind", "k", "", "Media kind (ANIME or MANGA)")
	trendingCmd.Flags().IntP("limit", "l", 0, "Maximum number of results")
	trendingCmd.Flags().StringSliceP("format", "f", []string{}, "Restrict results to release formats (MOVIE, TV, OVA, ONA, SPECIAL)")
	trendingCmd.SetOut(os.Stdout)
}

// trendingCmd lists currently trending media.
var trendingCmd = &cobra.Command{
	Use:     "trending",
	Short:   "List currently trending anime or manga",
	Example: "  anihelper trending --kind ANIME --format MOVIE --limit 10",
	Run: func(cmd *cobra.Command, args []string) {
		emit(cmd, dispatcher().Trending(cmd.Context(), tool.TrendingArgs{
			Kind:     lo.Must(cmd.Flags().GetString("kind")),
			Limit:    lo.Must(cmd.Flags().GetInt("limit")),
			FormatIn: stringsFlag(cmd, "format"),
		}))
	},
}
