package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hsv-inspector/imgproc"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hsv-inspector",
	Short: "HSV Inspector",
	Long: `Attaches to a shared memory area containing an ARGB image and transforms it
to the HSV color space for inspection. Twelve trackbars tune per-channel
offsets and mask ranges; the mask and the adjusted, masked image are
rendered live.`,
	Example: "hsv-inspector --name=img.argb --width=640 --height=480",
	Run: func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("name")
		width, _ := cmd.Flags().GetInt("width")
		height, _ := cmd.Flags().GetInt("height")

		config := imgproc.Config{Name: name, Width: width, Height: height}

		if err := imgproc.RunInspector(config); err != nil {
			// An unreachable frame source is a diagnostic, not a crash: the
			// tool is invoked fresh each time and never retries an attach.
			log.Error().Err(err).Msg("inspector stopped")
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().String("name", "", "Name of the shared memory area to attach to")
	rootCmd.Flags().Int("width", 0, "Width of the frame in pixels")
	rootCmd.Flags().Int("height", 0, "Height of the frame in pixels")
	rootCmd.MarkFlagRequired("name")
	rootCmd.MarkFlagRequired("width")
	rootCmd.MarkFlagRequired("height")
}
