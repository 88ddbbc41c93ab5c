package cmd

import (
	"os"

	"github.com/anihelper/anihelper/tool"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(seasonCmd)
	seasonCmd.Flags().StringP("kind", "k", "", "Media kind (ANIME or MANGA)")
	seasonCmd.Flags().StringP("season", "s", "", "Season to rank (WINTER, SPRING, SUMMER, FALL); defaults to the current one")
	seasonCmd.Flags().IntP("year", "y", 0, "Season year; defaults to the current one")
	seasonCmd.Flags().String("sort", "", "Anilist ranking order, e.g. TRENDING_DESC or SCORE_DESC")
	seasonCmd.Flags().IntP("limit", "l", 0, "Maximum number of results")
	seasonCmd.Flags().StringSliceP("format", "f", []string{}, "Restrict results to release formats")
	seasonCmd.SetOut(os.Stdout)
}

// seasonCmd ranks the top media of a season.
var seasonCmd = &cobra.Command{
	Use:     "season",
	Short:   "Rank the top anime of a season",
	Example: "  anihelper season --season FALL --year 2025 --sort SCORE_DESC",
	Run: func(cmd *cobra.Command, args []string) {
		emit(cmd, dispatcher().SeasonTop(cmd.Context(), tool.SeasonTopArgs{
			Kind:     lo.Must(cmd.Flags().GetString("kind")),
			Season:   lo.Must(cmd.Flags().GetString("season")),
			Year:     lo.Must(cmd.Flags().GetInt("year")),
			Sort:     lo.Must(cmd.Flags().GetString("sort")),
			Limit:    lo.Must(cmd.Flags().GetInt("limit")),
			FormatIn: stringsFlag(cmd, "format"),
		}))
	},
}
