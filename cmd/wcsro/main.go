// Command wcsro builds a crystal supercell from configuration and reports
// its Warren-Cowley short-range order parameters.
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/wcsro/internal/config"
	"github.com/katalvlaran/wcsro/internal/logger"
)

var (
	// v collects defaults, the config file, WCSRO_* env vars and bound flags
	v = config.NewViper()
	// cfg is resolved in PersistentPreRunE
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "wcsro",
	Short: "wcsro - Warren-Cowley short-range order parameters",
	Long: `wcsro - Warren-Cowley short-range order parameters for crystal supercells.

Configuration is read from defaults, an optional TOML or YAML file (--config),
WCSRO_* environment variables and flags, in increasing precedence.

Examples:
  wcsro compute                               # equiatomic binary FCC, first shell
  wcsro compute -c b2.toml --format json      # ordered B2 from a config file
  WCSRO_SRO_SHELL=2 wcsro compute --min-cutoff 3.0 --max-cutoff 4.0
  wcsro version`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// version needs neither config nor logging
		if cmd.Name() == "version" {
			return nil
		}
		loaded, err := loadConfig(v, cmd)
		if err != nil {
			return err
		}
		cfg = loaded
		if err := logger.Initialize(cfg.Log.JSON, cfg.Log.Level); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		configPath, _ := cmd.Flags().GetString("config")
		logger.Logger.Debugw("configuration loaded", logger.FieldConfig, configPath)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (TOML or YAML)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit JSON logs")
	mustBind(v, "log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	mustBind(v, "log.json", rootCmd.PersistentFlags().Lookup("log-json"))

	rootCmd.AddCommand(newComputeCmd(v))
	rootCmd.AddCommand(versionCmd)
}

// loadConfig merges the --config file into v and validates the result.
func loadConfig(v *viper.Viper, cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if err := config.ReadFile(v, path); err != nil {
		return nil, err
	}
	return config.LoadWithViper(v)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}
		os.Exit(1)
	}
}
