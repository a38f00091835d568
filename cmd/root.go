package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/colorimetry/rendering"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "colorimetry",
	Short: "Colorimetric calculations for light sources and colors",
	Long: `colorimetry computes chromaticity, correlated color temperature, color
differences, gamut areas and the CRI, TLCI and TM-30 rendering indices of
spectral power distributions.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("verbose") {
			rendering.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.colorimetry.yaml)")
	rootCmd.PersistentFlags().String("format", "text", "output format: text or json")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log pipeline diagnostics to stderr")
	rootCmd.PersistentFlags().Int("workers", 0, "batch worker count (0 uses GOMAXPROCS)")

	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("workers", rootCmd.PersistentFlags().Lookup("workers"))

	viper.SetDefault("truncate", false)
	viper.SetDefault("kl", 1.0)
	viper.SetDefault("k1", 0.045)
	viper.SetDefault("k2", 0.015)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			log.Fatal(err)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".colorimetry")
	}

	viper.SetEnvPrefix("colorimetry")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && viper.GetBool("verbose") {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// render writes v as indented JSON when the json format is selected and
// otherwise writes the text produced by text.
func render(w io.Writer, v interface{}, text func() (string, error)) error {
	switch f := viper.GetString("format"); f {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "text", "":
		s, err := text()
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, s)
		return err
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}
