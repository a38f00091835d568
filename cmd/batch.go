package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/colorimetry/rendering"
	"github.com/mmuldo/colorimetry/report"
	"github.com/mmuldo/colorimetry/spectral"
)

type batchEntry struct {
	File       string                `json:"file"`
	Evaluation *rendering.Evaluation `json:"evaluation,omitempty"`
	Error      string                `json:"error,omitempty"`
}

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <spd.json>...",
	Short: "Evaluates CRI, TLCI and TM-30 for many spectra concurrently",
	Long: `Evaluates every spectrum on a worker pool sized by the workers config key.
A file that fails to load or evaluate is reported without stopping the rest.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		entries := make([]batchEntry, len(args))
		spds := make([]*spectral.Distribution, len(args))
		for i, path := range args {
			entries[i].File = path
			d, err := loadDistribution(path)
			if err != nil {
				entries[i].Error = err.Error()
				continue
			}
			spds[i] = d
		}

		e := rendering.NewEvaluator(&rendering.Options{Workers: viper.GetInt("workers")})
		defer e.Close()

		items, err := e.Batch(ctx, spds)
		if err != nil {
			return err
		}
		for _, it := range items {
			if entries[it.Index].Error != "" {
				continue
			}
			if it.Err != nil {
				entries[it.Index].Error = it.Err.Error()
				continue
			}
			entries[it.Index].Evaluation = it.Evaluation
		}

		return render(cmd.OutOrStdout(), entries, func() (string, error) {
			var sb strings.Builder
			for i, en := range entries {
				if i > 0 {
					sb.WriteString("\n")
				}
				fmt.Fprintf(&sb, "== %s\n", en.File)
				if en.Error != "" {
					fmt.Fprintf(&sb, "error: %s\n", en.Error)
					continue
				}
				s, err := report.Evaluation(en.Evaluation)
				if err != nil {
					return "", err
				}
				sb.WriteString(s)
			}
			return sb.String(), nil
		})
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
}
