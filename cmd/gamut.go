package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mmuldo/colorimetry/chroma"
	"github.com/mmuldo/colorimetry/gamut"
	"github.com/mmuldo/colorimetry/report"
)

// gamutCmd represents the gamut command
var gamutCmd = &cobra.Command{
	Use:   "gamut <rx> <ry> <gx> <gy> <bx> <by>",
	Short: "Measures a display gamut against the standard gamuts",
	Long: `Computes the xy and u'v' areas of the triangle spanned by three primaries
and its coverage of sRGB, DCI-P3, BT.2020, AdobeRGB and NTSC.`,
	Args: cobra.ExactArgs(6),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseFloats(args)
		if err != nil {
			return err
		}
		p := gamut.Primaries{
			Red:   chroma.XY{X: v[0], Y: v[1]},
			Green: chroma.XY{X: v[2], Y: v[3]},
			Blue:  chroma.XY{X: v[4], Y: v[5]},
		}

		area, err := gamut.AreaXY(p)
		if err != nil {
			return err
		}
		areaUV, err := gamut.AreaUV(p)
		if err != nil {
			return err
		}
		cov, err := gamut.AllCoverages(p)
		if err != nil {
			return err
		}

		out := struct {
			Area      float64                `json:"area"`
			AreaUV    float64                `json:"areaUV"`
			Coverages []gamut.CoverageResult `json:"coverages"`
		}{area, areaUV, cov}
		return render(cmd.OutOrStdout(), out, func() (string, error) { return report.Gamut(area, areaUV, cov) })
	},
}

func init() {
	rootCmd.AddCommand(gamutCmd)
}
