package cli

import (
	"fmt"

	"github.com/imgajeed76/gridsheet/internal/config"
	"github.com/imgajeed76/gridsheet/internal/ui/styles"
	"github.com/imgajeed76/gridsheet/internal/util"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <key> [value]",
		Short: "Get and set gridsheet options",
		Long: `Get and set options in the gridsheet config file.

Available keys:
` + config.GenerateHelpText() + `

Examples:
  gridsheet config ui.title                   # Get value
  gridsheet config ui.user_name "Ada Lovelace" # Set value
  gridsheet config sql.timeout 30             # Set value
  gridsheet config --list                     # List all values
  gridsheet config --path                     # Show the config file path`,
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
	}

	cmd.Flags().BoolP("list", "l", false, "List all configuration")
	cmd.Flags().Bool("path", false, "Print the config file path")

	return cmd
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg := app.cfg

	if listAll, _ := cmd.Flags().GetBool("list"); listAll {
		for _, key := range config.ListKeys() {
			value, _ := cfg.GetValue(key)
			fmt.Printf("%s=%s\n", key, value)
		}
		return nil
	}

	if showPath, _ := cmd.Flags().GetBool("path"); showPath {
		fmt.Println(app.cfgPath)
		return nil
	}

	if len(args) == 0 {
		return util.MissingArgumentError("key", "gridsheet config ui.title")
	}

	key := args[0]

	// Get or set?
	if len(args) == 1 {
		value, ok := cfg.GetValue(key)
		if !ok {
			return util.UnknownConfigKeyError(key)
		}
		fmt.Println(value)
		return nil
	}

	value := args[1]
	if err := cfg.SetValue(key, value); err != nil {
		return err
	}

	if err := cfg.Save(app.cfgPath); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	log.Info().Str("key", key).Msg("config updated")
	fmt.Println(styles.SuccessMsg(fmt.Sprintf("%s = %s", key, value)))
	return nil
}
