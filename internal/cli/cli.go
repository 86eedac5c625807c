package cli

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/ytget/dynamic-island/internal/hotkey"
)

// Application identity
const (
	AppID   = "com.ytget.dynamic-island"
	AppName = "Dynamic Island"
)

// Options holds the command line flags of the root command
type Options struct {
	ConfigPath string
	LogLevel   string
	LogFile    bool
	Dev        bool
	NoHotkey   bool
	Hotkey     string
}

// New creates the root command. Running it without a subcommand starts the island.
func New(version string) *cobra.Command {
	o := &Options{}

	cmd := &cobra.Command{
		Use:           "dynamic-island",
		Short:         "A floating pill-shaped launcher at the top of the screen.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := hotkey.Parse(o.Hotkey); err != nil {
				return err
			}
			return Run(o, version)
		},
	}

	AddOptions(cmd, o)
	addVersion(cmd, version)
	return cmd
}

// AddOptions registers the root flags
func AddOptions(cmd *cobra.Command, o *Options) {
	cmd.Flags().StringVarP(&o.ConfigPath, "config", "c", "",
		"Path of the island document. Defaults to the saved preference or the user config dir.")
	cmd.Flags().StringVar(&o.LogLevel, "log-level", "info",
		"Log level. One of debug, info, warn or error.")
	cmd.Flags().BoolVar(&o.LogFile, "log-file", false,
		"Also write logs next to the island document.")
	cmd.Flags().BoolVar(&o.Dev, "dev", false,
		"Human readable logs with stack traces.")
	cmd.Flags().BoolVar(&o.NoHotkey, "no-hotkey", false,
		"Do not register the global toggle hotkey.")
	cmd.Flags().StringVar(&o.Hotkey, "hotkey", hotkey.DefaultBinding,
		"Global hotkey that shows and hides the island.")
}

// VersionInfo is printed by the version command
type VersionInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func addVersion(topLevel *cobra.Command, version string) {
	short := false
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version.",
		Example: `
dynamic-island version
dynamic-island version --short
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), version)
				return nil
			}
			out, err := sonic.MarshalIndent(VersionInfo{Name: AppName, Version: version}, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print just the version number.")
	topLevel.AddCommand(cmd)
}
