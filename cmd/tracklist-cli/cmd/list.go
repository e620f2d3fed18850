package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tracklist/internal/application/commands"
	"tracklist/internal/domain"
)

var (
	listRide      int
	listVehicle   string
	listFilter    string
	listSort      string
	listAscending bool
	listCosts     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the designs of a ride type",
	Long: `List the designs of a ride type in list window order.

Examples:
  tracklist-cli list --ride 52
  tracklist-cli list --ride 52 --sort excitement --asc
  tracklist-cli list --ride 52 --filter beast --costs`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rideType, err := rideTypeFlag(listRide)
		if err != nil {
			return err
		}

		s := GetStack()
		listCmd := commands.NewListDesignsCommand(s.Repo, s.Rides, log,
			domain.RideSelection{Type: rideType, Vehicle: listVehicle})
		listCmd.Filter = listFilter
		listCmd.SortKey = listSort
		listCmd.Ascending = listAscending
		listCmd.IncludeCost = listCosts

		result, err := listCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}

		if len(result.Designs) == 0 {
			fmt.Printf("No designs for %s\n", result.RideName)
			return nil
		}
		for _, d := range result.Designs {
			if listCosts {
				fmt.Printf("%-32s %8d  %s\n", d.Name, d.Cost, d.Path)
			} else {
				fmt.Printf("%-32s %s\n", d.Name, d.Path)
			}
		}
		if listCosts {
			fmt.Printf("\nTotal cost: %d\n", result.TotalCost)
		}
		return nil
	},
}

var keysRide int

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the sort keys offered for a ride type",
	RunE: func(cmd *cobra.Command, args []string) error {
		rideType, err := rideTypeFlag(keysRide)
		if err != nil {
			return err
		}

		keys, err := commands.NewSortKeysCommand(GetStack().Rides, rideType).Execute(cmd.Context())
		if err != nil {
			return err
		}
		for _, k := range keys {
			fmt.Printf("%-20s %s\n", k, k.Label())
		}
		return nil
	},
}

var rideTypesCmd = &cobra.Command{
	Use:   "rides",
	Short: "List the known ride types and their sort categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		rides := GetStack().Rides
		for _, rt := range rides.Types() {
			info := rides.Lookup(rt)
			fmt.Printf("%3d  %-32s %s\n", rt, info.Name, info.Category)
		}
		return nil
	},
}

func rideTypeFlag(v int) (domain.RideType, error) {
	if v < 0 || v > 0xFF {
		return 0, fmt.Errorf("ride type must be between 0 and 255, got %d", v)
	}
	return domain.RideType(v), nil
}

func init() {
	listCmd.Flags().IntVarP(&listRide, "ride", "r", 0, "ride type number (0-255)")
	listCmd.Flags().StringVar(&listVehicle, "vehicle", "", "vehicle entry name")
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "case-insensitive name filter")
	listCmd.Flags().StringVarP(&listSort, "sort", "s", "", "sort key (see 'keys')")
	listCmd.Flags().BoolVar(&listAscending, "asc", false, "largest values first")
	listCmd.Flags().BoolVar(&listCosts, "costs", false, "show build costs and their total")
	_ = listCmd.MarkFlagRequired("ride")

	keysCmd.Flags().IntVarP(&keysRide, "ride", "r", 0, "ride type number (0-255)")
	_ = keysCmd.MarkFlagRequired("ride")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(rideTypesCmd)
}
