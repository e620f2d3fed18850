package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tracklist/internal/application/commands"
)

var renameCmd = &cobra.Command{
	Use:   "rename <path> <new-name>",
	Short: "Rename a design file",
	Long: `Rename a design file in place. The new name must be a valid file name;
the design suffix of the original file is kept.

Examples:
  tracklist-cli rename ~/designs/Beast.td.yaml "Beast II"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		renameCmd := commands.NewRenameDesignCommand(GetStack().Repo, args[0], args[1])
		result, err := renameCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:   "delete <path>",
	Short: "Delete a design file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !deleteForce {
			fmt.Printf("Delete %s? [y/N] ", args[0])
			var answer string
			_, _ = fmt.Scanln(&answer)
			if answer != "y" && answer != "Y" {
				fmt.Println("Cancelled")
				return nil
			}
		}

		deleteCmd := commands.NewDeleteDesignCommand(GetStack().Repo, args[0])
		result, err := deleteCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "delete without asking")

	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(deleteCmd)
}
