package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temirov/flatten/internal/config"
	"github.com/temirov/flatten/internal/utils"
)

const (
	initUse                  = "init"
	initShortDescription     = "write a default configuration file"
	initLongDescription      = "Write a commented default configuration to " + utils.LocalConfigFileName + " in the working directory, or to the global configuration with --global."
	initGlobalFlagName       = "global"
	initForceFlagName        = "force"
	initGlobalFlagDesc       = "write the global configuration instead of the local one"
	initForceFlagDesc        = "overwrite an existing configuration file"
	initSuccessMessageFormat = "Configuration written to %s\n"
)

func newInitCommand() *cobra.Command {
	var global bool
	var force bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if global {
				target = config.InitTargetGlobal
			}
			path, err := config.InitializeConfiguration(config.InitOptions{Target: target, Force: force})
			if err != nil {
				return err
			}
			fmt.Fprintf(command.OutOrStdout(), initSuccessMessageFormat, path)
			return nil
		},
	}
	initCommand.Flags().BoolVar(&global, initGlobalFlagName, false, initGlobalFlagDesc)
	initCommand.Flags().BoolVar(&force, initForceFlagName, false, initForceFlagDesc)
	return initCommand
}
