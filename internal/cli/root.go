package cli

import (
	"database/sql"
	"log/slog"

	"github.com/albertocester96/programma-manutenzioni/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Maintenances service.MaintenanceService
	Equipment    service.EquipmentService
	Categories   service.CategoryService

	DB     *sql.DB
	Logger *slog.Logger
}

// NewRootCmd creates the top-level "manutenzioni" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "manutenzioni",
		Short: "Facilities maintenance tracker",
	}

	root.AddCommand(
		newServeCmd(app),
		newListCmd(app),
		newCompleteCmd(app),
	)

	return root
}
