package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tracklist/internal/app"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Manage the design index",
}

var indexFull bool

var indexSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Bring the design index up to date",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := GetStack().Sync(cmd.Context(), indexFull)
		if errors.Is(err, app.ErrNoIndex) {
			return fmt.Errorf("%w: set index.enabled in the config file", err)
		}
		if err != nil {
			return err
		}

		kind := "Incremental"
		if result.Full {
			kind = "Full"
		}
		st := result.Stats
		fmt.Printf("%s sync: %d scanned, %d added, %d updated, %d deleted in %s\n",
			kind, st.FilesScanned, st.EntriesAdded, st.EntriesUpdated, st.EntriesDeleted, st.Duration)
		return nil
	},
}

func init() {
	indexSyncCmd.Flags().BoolVar(&indexFull, "full", false, "rebuild the index from scratch")

	indexCmd.AddCommand(indexSyncCmd)
	rootCmd.AddCommand(indexCmd)
}
