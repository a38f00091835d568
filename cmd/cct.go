package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mmuldo/colorimetry/cct"
	"github.com/mmuldo/colorimetry/chroma"
	"github.com/mmuldo/colorimetry/report"
)

// cctCmd represents the cct command
var cctCmd = &cobra.Command{
	Use:   "cct <x> <y>",
	Short: "Estimates CCT and Duv of a chromaticity",
	Long: `Estimates the correlated color temperature (McCamy) and the signed
distance from the Planckian locus (Duv) of a CIE 1931 xy chromaticity.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseFloats(args)
		if err != nil {
			return err
		}
		res, err := cct.Estimate(chroma.XY{X: v[0], Y: v[1]})
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), res, func() (string, error) { return report.CCT(res) })
	},
}

func init() {
	rootCmd.AddCommand(cctCmd)
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
