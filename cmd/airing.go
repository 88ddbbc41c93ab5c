package cmd

import (
	"os"
	"strings"

	"github.com/anihelper/anihelper/tool"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(airingCmd)
	airingCmd.AddCommand(airingStatusCmd)
	airingCmd.AddCommand(airingCalendarCmd)

	airingStatusCmd.Flags().IntP("id", "i", 0, "Anilist identifier of the anime")
	airingStatusCmd.SetOut(os.Stdout)

	airingCalendarCmd.Flags().IntP("days", "d", 0, "Lookahead window in days (1-30)")
	airingCalendarCmd.Flags().IntP("per-page", "p", 0, "Maximum number of schedule entries")
	airingCalendarCmd.SetOut(os.Stdout)
}

// airingCmd serves as the parent command for airing schedule lookups.
var airingCmd = &cobra.Command{
	Use:   "airing",
	Short: "Look up airing schedules on Anilist",
}

// airingStatusCmd reports the last aired and next airing episode of an anime.
var airingStatusCmd = &cobra.Command{
	Use:     "status [title]",
	Short:   "Show the last aired and next airing episode of an anime",
	Example: "  anihelper airing status \"one piece\"\n  anihelper airing status --id 21",
	Run: func(cmd *cobra.Command, args []string) {
		emit(cmd, dispatcher().AiringStatus(cmd.Context(), tool.AiringStatusArgs{
			AnilistID: lo.Must(cmd.Flags().GetInt("id")),
			Query:     strings.Join(args, " "),
		}))
	},
}

// airingCalendarCmd lists episodes airing within the next few days.
var airingCalendarCmd = &cobra.Command{
	Use:     "calendar",
	Short:   "List episodes airing within the next few days",
	Example: "  anihelper airing calendar --days 3",
	Run: func(cmd *cobra.Command, args []string) {
		emit(cmd, dispatcher().AiringCalendar(cmd.Context(), tool.AiringCalendarArgs{
			Days:    lo.Must(cmd.Flags().GetInt("days")),
			PerPage: lo.Must(cmd.Flags().GetInt("per-page")),
		}))
	},
}
