package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/TadaHrd/encosure/pkg/anyway"
	"github.com/TadaHrd/encosure/pkg/config"
)

const (
	tabwriterMinWidth = 6
	tabwriterWidth    = 4
	tabwriterPadding  = 3
	tabwriterPadChar  = ' '
	tabwriterFlags    = 0
)

var (
	addProfileScheme    string
	addProfileSeparator string
)

func init() {
	configCmd.AddCommand(configLsCmd)
	configCmd.AddCommand(configAddProfileCmd)
	configCmd.AddCommand(configRemoveProfileCmd)
	configCmd.AddCommand(configUseProfileCmd)
	configCmd.AddCommand(configSelectProfileCmd)
	configCmd.AddCommand(configCurrentProfileCmd)
	rootCmd.AddCommand(configCmd)

	configAddProfileCmd.Flags().StringVar(&addProfileScheme, "scheme", config.SchemeAES, "Scheme variant: aes or eaes")
	configAddProfileCmd.Flags().StringVar(&addProfileSeparator, "separator", anyway.DefaultSeparator, "Separator between encoded words. Literal \\n becomes a newline")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage encoding profiles",
}

var configLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List profiles",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(outWriter, tabwriterMinWidth, tabwriterWidth, tabwriterPadding, tabwriterPadChar, tabwriterFlags)
		fmt.Fprintf(w, "NAME\tSCHEME\tSEPARATOR\t\n")
		for _, profile := range cfg.Profiles {
			name := profile.Name
			if name == cfg.CurrentProfile {
				name += " *"
			}
			fmt.Fprintf(w, "%v\t%v\t%q\t\n", name, profile.Scheme, profile.Separator)
		}
		w.Flush()
	},
}

var configAddProfileCmd = &cobra.Command{
	Use:   "add-profile [NAME]",
	Short: "Add a new profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if cfg.HasProfile(name) {
			return fmt.Errorf("could not add profile, profile with name %v already exists", name)
		}

		if addProfileScheme != config.SchemeAES && addProfileScheme != config.SchemeEAES {
			return fmt.Errorf("unknown scheme %q, expected %v or %v", addProfileScheme, config.SchemeAES, config.SchemeEAES)
		}

		separator := translateSeparator(addProfileSeparator)
		if !anyway.CheckSeparator(separator) {
			return fmt.Errorf("separator %q contains reserved characters", separator)
		}

		cfg.Profiles = append(cfg.Profiles, &config.Profile{
			Name:      name,
			Scheme:    addProfileScheme,
			Separator: separator,
		})
		if err := cfg.Write(); err != nil {
			return fmt.Errorf("unable to write config: %w", err)
		}
		fmt.Fprintln(outWriter, "Added profile.")
		return nil
	},
}

var configRemoveProfileCmd = &cobra.Command{
	Use:               "remove-profile [NAME]",
	Short:             "Remove a profile",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: validProfileArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		var pos = -1
		for i, profile := range cfg.Profiles {
			if profile.Name == name {
				pos = i
				break
			}
		}
		if pos == -1 {
			return fmt.Errorf("could not find profile with name %v", name)
		}

		cfg.Profiles = append(cfg.Profiles[:pos], cfg.Profiles[pos+1:]...)
		if cfg.CurrentProfile == name {
			cfg.CurrentProfile = ""
		}
		if err := cfg.Write(); err != nil {
			return fmt.Errorf("unable to write config: %w", err)
		}
		fmt.Fprintln(outWriter, "Removed profile.")
		return nil
	},
}

var configUseProfileCmd = &cobra.Command{
	Use:               "use-profile [NAME]",
	Short:             "Set the current profile",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: validProfileArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := cfg.SetCurrentProfile(name); err != nil {
			return fmt.Errorf("profile with name %v not found", name)
		}
		fmt.Fprintf(outWriter, "Switched to profile \"%v\".\n", name)
		return nil
	},
}

var configSelectProfileCmd = &cobra.Command{
	Use:   "select-profile",
	Short: "Interactively select a profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var profileNames []string
		pos := 0
		for i, profile := range cfg.Profiles {
			profileNames = append(profileNames, profile.Name)
			if profile.Name == cfg.CurrentProfile {
				pos = i
			}
		}

		searcher := func(input string, index int) bool {
			name := strings.ReplaceAll(strings.ToLower(profileNames[index]), " ", "")
			input = strings.ReplaceAll(strings.ToLower(input), " ", "")
			return strings.Contains(name, input)
		}

		p := promptui.Select{
			Label:     "Select profile",
			Items:     profileNames,
			Searcher:  searcher,
			Size:      10,
			CursorPos: pos,
		}

		_, selected, err := p.Run()
		if err != nil {
			// User cancelled (e.g. Ctrl-C). Not an error.
			return nil
		}

		if err := cfg.SetCurrentProfile(selected); err != nil {
			return fmt.Errorf("profile with name %v not found", selected)
		}
		fmt.Fprintf(outWriter, "Switched to profile \"%v\".\n", selected)
		return nil
	},
}

var configCurrentProfileCmd = &cobra.Command{
	Use:   "current-profile",
	Short: "Display the current profile",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if cfg.ActiveProfile() != nil {
			fmt.Fprintln(outWriter, cfg.ActiveProfile().Name)
		}
	},
}

func validProfileArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	profileList := make([]string, 0, len(cfg.Profiles))
	for _, profile := range cfg.Profiles {
		profileList = append(profileList, profile.Name)
	}
	return profileList, cobra.ShellCompDirectiveNoFileComp
}
