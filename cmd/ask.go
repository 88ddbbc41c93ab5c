package cmd

import (
	"os"
	"strings"

	"github.com/anihelper/anihelper/tool"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(askCmd)
	askCmd.Flags().StringP("kind", "k", "", "Media kind assumed when the text names neither (ANIME or MANGA)")
	askCmd.Flags().IntP("limit", "l", 0, "Result limit assumed when the text carries no number")
	askCmd.SetOut(os.Stdout)
}

// askCmd routes a natural-language request to the matching tool.
var askCmd = &cobra.Command{
	Use:     "ask <text>",
	Short:   "Route a natural-language request (Spanish or English) to the matching tool",
	Example: "  anihelper ask \"¿En qué capítulo va One Piece?\"\n  anihelper ask \"trending manga\" --limit 5",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		emit(cmd, dispatcher().Ask(cmd.Context(), tool.AskArgs{
			Text:         strings.Join(args, " "),
			DefaultKind:  lo.Must(cmd.Flags().GetString("kind")),
			DefaultLimit: lo.Must(cmd.Flags().GetInt("limit")),
		}))
	},
}
