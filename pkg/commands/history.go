package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/monthpick/pkg/runner/history"
	"tableflip.dev/monthpick/pkg/store"
)

func addHistory(topLevel *cobra.Command) {
	clear := false

	cmd := &cobra.Command{
		Use:   "history",
		Short: base.Wrap80("List previously picked dates and ranges."),
		Example: `
monthpick history
monthpick history --clear
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			persistence, err := store.Load(nil)
			if err != nil {
				return oo.HandleError(err)
			}
			r := &history.History{
				Persistence: persistence,
				Clear:       clear,
				Output:      oo,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Forget all recorded picks.")
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
