package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/colorimetry/chroma"
	"github.com/mmuldo/colorimetry/spectral"
)

// integrateCmd represents the integrate command
var integrateCmd = &cobra.Command{
	Use:   "integrate <illuminant.json> [reflectance.json]",
	Short: "Integrates grid-aligned spectra into XYZ",
	Long: `Integrates an illuminant, optionally times a reflectance, against the CIE
1931 2° observer. Both files hold JSON arrays sampled every 5nm from 380nm.
Arrays of different length are rejected unless the truncate config key is set.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		illum, err := loadGrid(args[0])
		if err != nil {
			return err
		}
		var refl []float64
		if len(args) == 2 {
			if refl, err = loadGrid(args[1]); err != nil {
				return err
			}
		}

		xyz, err := spectral.IntegrateArrays(illum, refl, &spectral.IntegrateOptions{
			Truncate: viper.GetBool("truncate"),
		})
		if err != nil {
			return err
		}
		xy, err := chroma.XYZToXYChecked(xyz)
		if err != nil {
			return err
		}
		uv, err := chroma.XYZToUVChecked(xyz)
		if err != nil {
			return err
		}

		out := struct {
			XYZ chroma.XYZ `json:"xyz"`
			XY  chroma.XY  `json:"xy"`
			UV  chroma.UV  `json:"uv"`
		}{xyz, xy, uv}
		return render(cmd.OutOrStdout(), out, func() (string, error) {
			return fmt.Sprintf("XYZ   %.4f %.4f %.4f\nxy    %.5f %.5f\nu'v'  %.5f %.5f\n",
				xyz.X, xyz.Y, xyz.Z, xy.X, xy.Y, uv.U, uv.V), nil
		})
	},
}

func init() {
	rootCmd.AddCommand(integrateCmd)

	integrateCmd.Flags().Bool("truncate", false, "integrate over the shorter of two mismatched arrays")
	viper.BindPFlag("truncate", integrateCmd.Flags().Lookup("truncate"))
}
