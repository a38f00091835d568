package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/colorimetry/chroma"
	"github.com/mmuldo/colorimetry/deltae"
	"github.com/mmuldo/colorimetry/report"
)

var method string

// deltaeCmd represents the deltae command
var deltaeCmd = &cobra.Command{
	Use:   "deltae <L1> <a1> <b1> <L2> <a2> <b2>",
	Short: "Computes the color difference between two Lab colors",
	Long: `Computes CIE76, CIE94 or CIEDE2000 between two CIELAB colors. CIE94
weights come from the kl, k1 and k2 config keys (graphic arts by default).

Flags go before the first coordinate so negative a and b values are read as
numbers, e.g. deltae -m cie76 50 2.6772 -79.7751 50 0 -82.7485.`,
	Args: cobra.ExactArgs(6),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseFloats(args)
		if err != nil {
			return err
		}
		a := chroma.Lab{L: v[0], A: v[1], B: v[2]}
		b := chroma.Lab{L: v[3], A: v[4], B: v[5]}

		var de float64
		var name string
		switch method {
		case "cie76":
			name = "CIE76"
			de, err = deltae.CIE76(a, b)
		case "cie94":
			name = "CIE94"
			de, err = deltae.CIE94(a, b, &deltae.Weights94{
				KL: viper.GetFloat64("kl"),
				K1: viper.GetFloat64("k1"),
				K2: viper.GetFloat64("k2"),
			})
		case "ciede2000", "":
			name = "CIEDE2000"
			de, err = deltae.CIE2000(a, b)
		default:
			return fmt.Errorf("unknown method %q", method)
		}
		if err != nil {
			return err
		}

		out := struct {
			Method string  `json:"method"`
			DeltaE float64 `json:"deltaE"`
		}{name, de}
		return render(cmd.OutOrStdout(), out, func() (string, error) { return report.DeltaE(name, de) })
	},
}

func init() {
	rootCmd.AddCommand(deltaeCmd)

	deltaeCmd.Flags().StringVarP(&method, "method", "m", "ciede2000", "cie76, cie94 or ciede2000")
	// everything after the first coordinate is positional
	deltaeCmd.Flags().SetInterspersed(false)
}
