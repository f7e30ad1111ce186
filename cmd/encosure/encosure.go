package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"

	"github.com/TadaHrd/encosure/pkg/config"
)

var cfgFile string

var (
	outWriter io.Writer = os.Stdout
	errWriter io.Writer = os.Stderr
	inReader  io.Reader = os.Stdin

	colorableOut io.Writer = colorable.NewColorableStdout()
)

var rootCmd = &cobra.Command{
	Use:   "encosure",
	Short: "Encode and decode data with the Anyway Encosure Scheme",
	Long: `Encosure stores arbitrary bytes in the formatting of the word "anyway":
star markers around each word carry two bits, the case of the six letters
carries the remaining six. The escaped variant (EAES) survives markdown
renderers. Run without a subcommand for the interactive flow.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		outWriter = cmd.OutOrStdout()
		errWriter = cmd.ErrOrStderr()
		inReader = cmd.InOrStdin()

		if outWriter != os.Stdout {
			colorableOut = outWriter
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var cfg config.Config
var currentProfile *config.Profile

var profileOverride string

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.encosure/config)")
	rootCmd.PersistentFlags().StringVarP(&profileOverride, "profile", "p", "", "set a temporary current profile")
	cobra.OnInitialize(onInit)
}

func onInit() {
	var err error
	cfg, err = config.ReadConfig(cfgFile)
	if err != nil {
		errorExit("Invalid config: %v", err)
	}

	cfg.ProfileOverride = profileOverride

	profile := cfg.ActiveProfile()
	if profile != nil {
		// Use active profile from config
		currentProfile = profile
	} else {
		// Create sane default if not configured
		currentProfile = &config.Profile{
			Scheme:    config.SchemeAES,
			Separator: ", ",
		}
	}
}

func errorExit(format string, a ...interface{}) {
	fmt.Fprintf(errWriter, format+"\n", a...)
	os.Exit(1)
}
