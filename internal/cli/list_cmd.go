package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/albertocester96/programma-manutenzioni/internal/domain"
	"github.com/albertocester96/programma-manutenzioni/internal/service"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	var filter string
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List maintenance tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var list []*domain.Maintenance
			var err error
			if filter != "" {
				list, err = app.Maintenances.ListByDateFilter(ctx, service.DateFilter(filter))
			} else {
				list, err = app.Maintenances.List(ctx, domain.MaintenanceStatus(status))
			}
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tSTATUS\tPRIORITY\tEQUIPMENT\tTITLE")
			for _, m := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					m.ID,
					m.ScheduledDate.Format("2006-01-02"),
					m.Status,
					m.Priority,
					m.EquipmentName,
					m.Title,
				)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "Date window: today, tomorrow or week")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status")

	return cmd
}
