package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wordfind/internal/search"
	"wordfind/internal/ui"
	"wordfind/internal/ui/viewmodels"
	"wordfind/internal/ui/views"
)

func newDefineCmd(a *app) *cobra.Command {
	var (
		full      bool
		withPager bool
	)

	cmd := &cobra.Command{
		Use:   "define <word>",
		Short: "Print the definition of a word and exit",
		Long: `Look a word up once and print the result.

By default up to three definitions per meaning are shown, as in the
interactive view. --full lists every definition with its part of speech.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			controller := search.NewController(a.newClient(), nil, a.bus, a.logger)
			state := controller.HandleSearch(cmd.Context(), strings.Join(args, " "))

			if state.Phase != search.PhaseResults {
				fmt.Fprintln(cmd.ErrOrStderr(), state.Message)
				return errLookupFailed
			}

			entry := viewmodels.NewEntryView(state.Entry)
			if full || withPager {
				entry = viewmodels.FullEntryView(state.Entry)
			}
			content := views.NewRenderer().RenderEntry(entry)

			if withPager {
				return ui.ShowInPager(content)
			}
			fmt.Fprintln(cmd.OutOrStdout(), content)
			return nil
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "List every definition with its part of speech")
	cmd.Flags().BoolVar(&withPager, "pager", false, "Show the full listing in a pager")

	return cmd
}
