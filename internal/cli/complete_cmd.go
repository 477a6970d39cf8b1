package cli

import (
	"errors"
	"fmt"

	"github.com/albertocester96/programma-manutenzioni/internal/service"
	"github.com/spf13/cobra"
)

func newCompleteCmd(app *App) *cobra.Command {
	var completedBy string

	cmd := &cobra.Command{
		Use:   "complete <maintenance-id>",
		Short: "Mark a maintenance task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.Maintenances.Complete(cmd.Context(), args[0], completedBy)
			genFailed := false
			if err != nil {
				// A failed successor still leaves the task completed;
				// report it as a warning instead of failing the command.
				if m == nil || !errors.Is(err, service.ErrSuccessorGeneration) {
					return err
				}
				genFailed = true
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Completed %q on %s\n",
				m.Title, m.CompletedDate.Format("2006-01-02 15:04"))
			if m.IsRecurring && !genFailed {
				fmt.Fprintln(cmd.OutOrStdout(), "Next occurrence scheduled.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&completedBy, "by", "", "Name recorded as the completing operator")

	return cmd
}
