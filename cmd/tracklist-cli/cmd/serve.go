package cmd

import (
	"github.com/spf13/cobra"

	"tracklist/internal/app"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the design list over HTTP",
	Long: `Serve the read-only HTTP API: design listings, sort keys, statistics
and PNG previews. Design directories are watched and the index is kept in
step while serving.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("port") {
			cfg.HTTP.Port = servePort
			if err := cfg.HTTP.Validate(); err != nil {
				return err
			}
		}
		log.WithField("dirs", GetStack().Files.Dirs()).Info("configuration loaded")
		return app.Serve(cmd.Context(), GetStack(), cfg.HTTP.Address(), log)
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "listen port (overrides the config)")
	rootCmd.AddCommand(serveCmd)
}
