package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tracklist/internal/adapters/filesystem"
	"tracklist/internal/adapters/preview"
	"tracklist/internal/application/commands"
)

var showCmd = &cobra.Command{
	Use:   "show <path>",
	Short: "Show a design's statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := GetStack()
		details, err := commands.NewShowDesignCommand(s.Repo, s.Rides, s.Format, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s)\n", details.Ref.Name, details.RideName)
		if details.Design.Vehicle != "" {
			fmt.Printf("Vehicle: %s\n", details.Design.Vehicle)
		}
		for _, line := range details.Stats {
			fmt.Printf("  %-24s %s\n", line.Label+":", line.Value)
		}
		for _, w := range details.Warnings {
			fmt.Printf("Warning: %s\n", w)
		}
		return nil
	},
}

var (
	previewOut      string
	previewRotation int
	previewWidth    int
	previewScenery  bool
)

var previewCmd = &cobra.Command{
	Use:   "preview <path>",
	Short: "Render a design's preview to an image file",
	Long: `Render one rotation of a design's preview to an image file.
The image format follows the output file extension (png, jpg, gif, bmp, tiff).

Examples:
  tracklist-cli preview Beast.td.yaml
  tracklist-cli preview Beast.td.yaml --rotation 1 --width 185 --out beast.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := GetStack()
		previewCmd := commands.NewPreviewCommand(s.Repo, s.Repo, args[0])
		previewCmd.Rotation = previewRotation
		previewCmd.Scenery = previewScenery

		result, err := previewCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}
		img, err := preview.Thumbnail(result.Pixels, result.Rotation, previewWidth)
		if err != nil {
			return err
		}

		out := previewOut
		if out == "" {
			out = filesystem.DesignName(args[0]) + ".png"
		}
		if err := preview.Save(out, img); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", out)
		return nil
	},
}

func init() {
	previewCmd.Flags().StringVarP(&previewOut, "out", "o", "", "output file (default <design name>.png)")
	previewCmd.Flags().IntVar(&previewRotation, "rotation", 0, "rotation (0-3)")
	previewCmd.Flags().IntVarP(&previewWidth, "width", "w", 0, "scale to this width in pixels (0 keeps native size)")
	previewCmd.Flags().BoolVar(&previewScenery, "scenery", true, "draw the design's scenery")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(previewCmd)
}
