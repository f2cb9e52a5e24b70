// Package ports defines the interfaces between the framepipe binaries
// and their adapters.
package ports

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// LevelDebug is for detailed per-record processing logs.
	LevelDebug LogLevel = iota
	// LevelInfo is for pipeline progress messages.
	LevelInfo
	// LevelWarn is for recoverable problems such as a skipped record.
	LevelWarn
	// LevelError is for problems that terminate the process.
	LevelError
	// LevelQuiet suppresses all log output.
	LevelQuiet
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelQuiet:
		return "quiet"
	default:
		return "unknown"
	}
}

// VerbosityLevel maps the counted -v flag (plus --debug) to a level.
// The default is errors only so a healthy pipeline stays silent;
// -v adds info and warnings, -vv or --debug adds per-record detail.
func VerbosityLevel(verbose int, debug bool) LogLevel {
	switch {
	case debug || verbose >= 2:
		return LevelDebug
	case verbose == 1:
		return LevelInfo
	default:
		return LevelError
	}
}

// Logger abstracts diagnostic output. Implementations must never write
// to stdout: stdout carries the record stream.
type Logger interface {
	// Debug logs per-record processing detail.
	Debug(msg string, args ...interface{})

	// Info logs pipeline progress.
	Info(msg string, args ...interface{})

	// Warn logs a recoverable problem.
	Warn(msg string, args ...interface{})

	// Error logs a fatal problem.
	Error(msg string, args ...interface{})

	// WithComponent returns a new Logger that prefixes messages with
	// the component name.
	WithComponent(component string) Logger
}
