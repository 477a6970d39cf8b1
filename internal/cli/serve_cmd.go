package cli

import (
	"net/http"
	"os"

	"github.com/albertocester96/programma-manutenzioni/internal/httpapi"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				if env := os.Getenv("MANUTENZIONI_ADDR"); env != "" {
					addr = env
				}
			}

			srv := &httpapi.Server{
				Maintenances: app.Maintenances,
				Equipment:    app.Equipment,
				Categories:   app.Categories,
				DB:           app.DB,
				Logger:       app.Logger,
			}

			app.Logger.Info("listening", "addr", addr)
			return http.ListenAndServe(addr, srv.Router())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address for the HTTP API")

	return cmd
}
