package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KeleWarg/design-theme-library-sub003/compare"
	"github.com/KeleWarg/design-theme-library-sub003/extract"
	"github.com/KeleWarg/design-theme-library-sub003/report"
)

var (
	numColors    int
	templateFile string
	strict       bool
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare <source-image> <target-image>",
	Short: "Compare a rendered image's palette against a design's palette",
	Long: `Extracts a color palette from each image, matches every source color
to its perceptually closest target color, and prints a classification report.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		setDefaults()

		source, err := extract.Palette(args[0], numColors)
		if err != nil {
			log.Fatal(err)
		}
		target, err := extract.Palette(args[1], numColors)
		if err != nil {
			log.Fatal(err)
		}

		deltas := compare.ColorsWithin(source, target, thresholds(), nil)

		var out string
		if templateFile != "" {
			out, err = report.RenderFile(deltas, templateFile)
		} else {
			out, err = report.Render(deltas)
		}
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(out)

		if strict && !compare.Summarize(deltas).Pass() {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().IntVarP(&numColors, "colors", "n", 0, "palette size extracted from each image")
	compareCmd.Flags().StringVarP(&templateFile, "template", "t", "", "report template file (pongo2)")
	compareCmd.Flags().BoolVar(&strict, "strict", false, "exit nonzero unless every source color matches or is similar")
	compareCmd.Flags().Float64("max-delta", 0, "deltaE beyond which a source color counts as missing")
	viper.BindPFlag("thresholds.missing", compareCmd.Flags().Lookup("max-delta"))
}

func setDefaults() {
	if numColors == 0 {
		numColors = viper.GetInt("colors")
	}
}

func thresholds() compare.Thresholds {
	th := compare.DefaultThresholds
	if v := viper.GetFloat64("thresholds.match"); v > 0 {
		th.Match = v
	}
	if v := viper.GetFloat64("thresholds.similar"); v > 0 {
		th.Similar = v
	}
	if v := viper.GetFloat64("thresholds.missing"); v > 0 {
		th.Missing = v
	}
	return th
}
