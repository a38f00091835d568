package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mmuldo/colorimetry/rendering"
	"github.com/mmuldo/colorimetry/report"
)

// criCmd represents the cri command
var criCmd = &cobra.Command{
	Use:   "cri <spd.json>",
	Short: "Computes the CIE 13.3 color rendering index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDistribution(args[0])
		if err != nil {
			return err
		}
		res, err := rendering.CRI(d)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), res, func() (string, error) { return report.CRI(res) })
	},
}

// tlciCmd represents the tlci command
var tlciCmd = &cobra.Command{
	Use:   "tlci <spd.json>",
	Short: "Computes the Television Lighting Consistency Index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDistribution(args[0])
		if err != nil {
			return err
		}
		res, err := rendering.TLCI(d)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), res, func() (string, error) { return report.TLCI(res) })
	},
}

// tm30Cmd represents the tm30 command
var tm30Cmd = &cobra.Command{
	Use:   "tm30 <spd.json>",
	Short: "Computes the IES TM-30 fidelity and gamut indices",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDistribution(args[0])
		if err != nil {
			return err
		}
		res, err := rendering.TM30(d)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), res, func() (string, error) { return report.TM30(res) })
	},
}

func init() {
	rootCmd.AddCommand(criCmd)
	rootCmd.AddCommand(tlciCmd)
	rootCmd.AddCommand(tm30Cmd)
}
