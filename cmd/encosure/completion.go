package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(completionCmd)
}

var completionCmd = &cobra.Command{
	Use:   "completion [SHELL]",
	Short: "Generate completion script for bash, zsh or powershell",
	Long: `To load completions:

Bash:

$ source <(encosure completion bash)

# To load completions for each session, execute once:
Linux:
  $ encosure completion bash > /etc/bash_completion.d/encosure
MacOS:
  $ encosure completion bash > /usr/local/etc/bash_completion.d/encosure

Zsh:

# To load completions for each session, execute once:
$ encosure completion zsh > "${fpath[1]}/_encosure"

# You will need to start a new shell for this setup to take effect.
`,
	DisableFlagsInUseLine: true,
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs:             []string{"bash", "zsh", "powershell"},
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "bash":
			if err := rootCmd.GenBashCompletion(outWriter); err != nil {
				errorExit("Failed to generate bash completion: %v", err)
			}
		case "zsh":
			if err := rootCmd.GenZshCompletion(outWriter); err != nil {
				errorExit("Failed to generate zsh completion: %v", err)
			}
		case "powershell":
			if err := rootCmd.GenPowerShellCompletion(outWriter); err != nil {
				errorExit("Failed to generate powershell completion: %v", err)
			}
		}
	},
}
