package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/flatten/internal/clipboard"
	"github.com/temirov/flatten/internal/config"
	"github.com/temirov/flatten/internal/exclusion"
	"github.com/temirov/flatten/internal/output"
	"github.com/temirov/flatten/internal/pathwalk"
	"github.com/temirov/flatten/internal/progress"
	"github.com/temirov/flatten/internal/reader"
	"github.com/temirov/flatten/internal/types"
	"github.com/temirov/flatten/internal/utils"
)

const (
	inputFlagName         = "input"
	inputFlagShorthand    = "i"
	outputFlagName        = "output"
	outputFlagShorthand   = "o"
	excludeFlagName       = "exclude"
	excludeFlagShorthand  = "e"
	configFlagName        = "config"
	copyFlagName          = "copy"
	noProgressFlagName    = "no-progress"
	verboseFlagName       = "verbose"
	versionFlagName       = "version"
	defaultInputPath      = "."
	defaultOutputBaseName = "output"

	flattenUse              = "flatten"
	flattenShortDescription = "Convert folder contents or specific files to text file."
	flattenLongDescription  = `flatten concatenates readable text files into a single <output>.txt.
The file starts with a tree listing of the inputs followed by every file's content.
Paths matching the built-in exclusion patterns or any --exclude term are skipped.`
	flattenUsageExample = `  # Concatenate the current directory into output.txt
  flatten

  # Concatenate two directories into project.txt, skipping vendor and fixtures
  flatten -i cmd internal -o project -e vendor fixtures`

	inputFlagDescription      = "paths to input files or directories (default: current directory)"
	outputFlagDescription     = "name of the output file without .txt extension (default: output)"
	excludeFlagDescription    = "files or folders to exclude, matched literally"
	configFlagDescription     = "configuration file to use instead of " + utils.LocalConfigFileName
	copyFlagDescription       = "copy the output file to the clipboard"
	noProgressFlagDescription = "do not draw the progress bar"
	verboseFlagDescription    = "log debug details"
	versionFlagDescription    = "display application version"

	progressLabel = "Progress"
	progressUnit  = "file"

	totalFilesSummaryFormat  = "There are a total of %d files in the specified paths.\n"
	copiedFilesSummaryFormat = "%d files were successfully copied to %s.\n"
	versionTemplate          = "%s version: %s\n"
	clipboardWarningMessage  = "Failed to copy output to clipboard"

	workingDirectoryErrorFormat = "unable to determine working directory: %w"
)

var flattenMultiValueFlags = []multiValueFlag{
	{longName: inputFlagName, shortName: inputFlagShorthand},
	{longName: excludeFlagName, shortName: excludeFlagShorthand, allowEmpty: true},
}

// flattenDependencies holds collaborators replaced in tests.
type flattenDependencies struct {
	logger       *zap.Logger
	level        zap.AtomicLevel
	clipboard    clipboard.Copier
	progressFile *os.File
	workers      int
}

type flattenOptions struct {
	inputPaths   []string
	outputName   string
	excludeTerms []string
	configPath   string
	copyOutput   bool
	noProgress   bool
	verbose      bool
	showVersion  bool
}

// ExecuteFlatten runs the flatten application with the provided arguments.
func ExecuteFlatten(logger *zap.Logger, level zap.AtomicLevel, arguments []string) error {
	rootCommand := newFlattenCommand(flattenDependencies{
		logger:       logger,
		level:        level,
		clipboard:    clipboard.NewService(),
		progressFile: os.Stderr,
	})
	rootCommand.SetArgs(normalizeMultiValueArguments(arguments, flattenMultiValueFlags))
	return rootCommand.Execute()
}

// newFlattenCommand builds the root Cobra command of flatten.
func newFlattenCommand(dependencies flattenDependencies) *cobra.Command {
	var options flattenOptions

	rootCommand := &cobra.Command{
		Use:          flattenUse,
		Short:        flattenShortDescription,
		Long:         flattenLongDescription,
		Example:      flattenUsageExample,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if options.showVersion {
				fmt.Fprintf(command.OutOrStdout(), versionTemplate, flattenUse, utils.GetApplicationVersion())
				return nil
			}
			if options.verbose {
				dependencies.level.SetLevel(zap.DebugLevel)
			}
			return runFlatten(command.Context(), command, options, dependencies)
		},
	}

	flagSet := rootCommand.Flags()
	flagSet.StringArrayVarP(&options.inputPaths, inputFlagName, inputFlagShorthand, nil, inputFlagDescription)
	flagSet.StringVarP(&options.outputName, outputFlagName, outputFlagShorthand, defaultOutputBaseName, outputFlagDescription)
	flagSet.StringArrayVarP(&options.excludeTerms, excludeFlagName, excludeFlagShorthand, nil, excludeFlagDescription)
	flagSet.StringVar(&options.configPath, configFlagName, "", configFlagDescription)
	flagSet.BoolVar(&options.copyOutput, copyFlagName, false, copyFlagDescription)
	flagSet.BoolVar(&options.noProgress, noProgressFlagName, false, noProgressFlagDescription)
	flagSet.BoolVar(&options.verbose, verboseFlagName, false, verboseFlagDescription)
	flagSet.BoolVar(&options.showVersion, versionFlagName, false, versionFlagDescription)

	rootCommand.AddCommand(newInitCommand())
	rootCommand.CompletionOptions.DisableDefaultCmd = true
	return rootCommand
}

// runFlatten expands, filters, reads and writes, then prints the summary.
func runFlatten(ctx context.Context, command *cobra.Command, options flattenOptions, dependencies flattenDependencies) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := dependencies.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
	}
	configuration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: options.configPath,
	})
	if configurationError != nil {
		return configurationError
	}

	flagSet := command.Flags()
	inputPaths := options.inputPaths
	if len(inputPaths) == 0 {
		inputPaths = []string{defaultInputPath}
	}
	outputName := options.outputName
	if !flagSet.Changed(outputFlagName) && configuration.Output != "" {
		outputName = configuration.Output
	}
	outputPath := outputName + types.OutputFileExtension
	excludeTerms := append(append([]string{}, configuration.Exclude...), options.excludeTerms...)
	copyOutput := configuration.CopyEnabled()
	if flagSet.Changed(copyFlagName) {
		copyOutput = options.copyOutput
	}

	expansion, expansionError := pathwalk.Expand(inputPaths)
	if expansionError != nil {
		return expansionError
	}
	filter, filterError := exclusion.New(excludeTerms)
	if filterError != nil {
		return filterError
	}
	entries, applyError := filter.Apply(expansion.Files)
	if applyError != nil {
		return applyError
	}
	logger.Debug("Expanded input paths",
		zap.Strings("inputs", inputPaths),
		zap.Int("discovered", len(expansion.Files)),
		zap.Int("kept", len(entries)))

	destination, createError := output.CreateDestination(outputPath)
	if createError != nil {
		return createError
	}
	defer func() {
		if closeError := destination.Close(); closeError != nil && err == nil {
			err = closeError
		}
	}()

	reporter := progress.Discard
	if configuration.ProgressEnabled() && !options.noProgress {
		reporter = progress.NewTerminalReporter(dependencies.progressFile, progressLabel, progressUnit)
	}
	results, readError := reader.ReadFiles(ctx, entries, reader.Options{
		Workers:  dependencies.workers,
		Progress: reporter,
		Logger:   logger,
	})
	if readError != nil {
		return readError
	}

	summary, writeError := destination.Write(expansion.Tree, results)
	if writeError != nil {
		return writeError
	}
	if closeError := destination.Close(); closeError != nil {
		return closeError
	}
	printSummary(command.OutOrStdout(), summary, outputPath)

	if copyOutput && dependencies.clipboard != nil {
		if copyError := clipboard.CopyFile(dependencies.clipboard, outputPath); copyError != nil {
			logger.Warn(clipboardWarningMessage, zap.String("path", outputPath), zap.Error(copyError))
		}
	}
	return nil
}

func printSummary(writer io.Writer, summary types.RunSummary, outputPath string) {
	fmt.Fprintf(writer, totalFilesSummaryFormat, summary.TotalFiles)
	fmt.Fprintf(writer, copiedFilesSummaryFormat, summary.CopiedFiles, outputPath)
}
