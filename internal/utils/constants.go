package utils

// ErrorLogFormat defines the formatting string for error log messages.
const ErrorLogFormat = "Error: %v\n"

// LoggerInitializationFailedMessageFormat reports that the zap logger could not be built.
const LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"

// ApplicationExecutionFailedMessage prefixes fatal errors logged by main.
const ApplicationExecutionFailedMessage = "application execution failed"
