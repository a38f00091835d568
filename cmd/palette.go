package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmuldo/colorimetry/palette"
	"github.com/mmuldo/colorimetry/report"
)

var (
	threshold float64
	imagePath string
	numColors int
)

// paletteCmd represents the palette command
var paletteCmd = &cobra.Command{
	Use:   "palette [hex...]",
	Short: "Checks that the colors of a palette are distinguishable",
	Long: `Converts sRGB hex colors to D50 CIELAB, sorts them by lightness and reports
the least separated pair (CIEDE2000) and how many groups the palette
collapses into at the threshold. With --image the colors are instead
extracted from a PNG or JPEG by quantizing it to --colors colors.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sw, err := swatches(args)
		if err != nil {
			return err
		}
		palette.SortByDarkness(sw)

		out := struct {
			Swatches []palette.Swatch `json:"swatches"`
			Closest  *palette.Pair    `json:"closest,omitempty"`
			Groups   int              `json:"groups"`
			Distinct bool             `json:"distinct"`
		}{
			Swatches: sw,
			Groups:   len(palette.Group(sw, threshold)),
			Distinct: palette.Distinct(sw, threshold),
		}
		if p, err := palette.Closest(sw); err == nil {
			out.Closest = &p
		}
		return render(cmd.OutOrStdout(), out, func() (string, error) { return report.Palette(sw, threshold) })
	},
}

func swatches(args []string) ([]palette.Swatch, error) {
	if imagePath == "" {
		if len(args) == 0 {
			return nil, errors.New("no colors given: pass hex colors or --image")
		}
		return palette.Parse(args)
	}

	f, err := os.Open(imagePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sw, err := palette.Extract(f, numColors)
	if err != nil {
		return nil, err
	}
	extra, err := palette.Parse(args)
	if err != nil {
		return nil, err
	}
	return append(sw, extra...), nil
}

func init() {
	rootCmd.AddCommand(paletteCmd)

	paletteCmd.Flags().Float64VarP(&threshold, "threshold", "t", palette.DefaultThreshold, "CIEDE2000 below which two colors count as the same")
	paletteCmd.Flags().StringVarP(&imagePath, "image", "i", "", "extract the palette from this image")
	paletteCmd.Flags().IntVarP(&numColors, "colors", "n", 16, "number of colors to extract with --image")
}
