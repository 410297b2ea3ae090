package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/flatten/internal/tokenizer"
	"github.com/temirov/flatten/internal/utils"
)

const (
	tokenCountUse              = "tokencount"
	tokenCountShortDescription = "count " + tokenizer.EncodingName + " tokens read from standard input"
	tokenCountLongDescription  = `tokencount reads standard input, drops invalid UTF-8 byte sequences and
prints the number of ` + tokenizer.EncodingName + ` tokens. When the text cannot be tokenized the
error is printed to standard error and 0 is printed instead.`
	tokenCountUsageExample = `  cat main.go | tokencount`
)

// ExecuteTokenCount builds the encoder once and runs the tokencount command.
func ExecuteTokenCount(logger *zap.Logger, arguments []string) error {
	encoder, encoderError := tokenizer.NewEncoder()
	if encoderError != nil {
		return encoderError
	}
	logger.Debug("Tokenizer ready", zap.String("encoding", encoder.Name()))
	rootCommand := newTokenCountCommand(encoder)
	rootCommand.SetArgs(arguments)
	return rootCommand.Execute()
}

func newTokenCountCommand(counter tokenizer.Counter) *cobra.Command {
	var showVersion bool

	rootCommand := &cobra.Command{
		Use:          tokenCountUse,
		Short:        tokenCountShortDescription,
		Long:         tokenCountLongDescription,
		Example:      tokenCountUsageExample,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				fmt.Fprintf(command.OutOrStdout(), versionTemplate, tokenCountUse, utils.GetApplicationVersion())
				return nil
			}
			result := tokenizer.CountReader(counter, command.InOrStdin())
			if !result.Succeeded() {
				fmt.Fprintf(command.ErrOrStderr(), utils.ErrorLogFormat, result.Err)
				fmt.Fprintln(command.OutOrStdout(), 0)
				return nil
			}
			fmt.Fprintln(command.OutOrStdout(), result.Tokens)
			return nil
		},
	}
	rootCommand.Flags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.CompletionOptions.DisableDefaultCmd = true
	return rootCommand
}
