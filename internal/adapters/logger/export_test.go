package logger

// FormatError exports formatError for testing.
var FormatError = formatError
