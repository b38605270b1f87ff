package cmd

import (
	"fmt"
	"os"

	"json-cooker/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	genshinFlag bool
	hsrFlag     bool
	zzzFlag     bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "json-cooker",
	Short: "Cook upstream game data into compact JSON",
	Long: `json-cooker downloads public game data tables, recovers obfuscated field
names where needed, and writes simplified JSON artifacts under the output directory.

Select titles with --genshin, --hsr and --zzz. Individual download, resolution or
transform failures are logged and do not change the exit status.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCook(cmd.Context(), selectedTitles(genshinFlag, hsrFlag, zzzFlag))
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with ISO8601 timestamps for CLI errors
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.Flags().BoolVar(&genshinFlag, "genshin", false, "Cook Genshin Impact data")
	RootCmd.Flags().BoolVar(&hsrFlag, "hsr", false, "Cook Honkai: Star Rail data")
	RootCmd.Flags().BoolVar(&zzzFlag, "zzz", false, "Cook Zenless Zone Zero data")
}
