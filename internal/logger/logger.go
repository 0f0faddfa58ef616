package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFileName is the name of the rotated log file inside the logs directory.
const LogFileName = "hudkit.log"

var (
	// Log is the global logger instance
	Log = zerolog.Nop()

	// fileWriter is the file output for logging (with rotation)
	fileWriter *lumberjack.Logger

	// fileOnlyLog writes only to the log file. Used while the TUI owns the
	// terminal so library events never reach the screen.
	fileOnlyLog = zerolog.Nop()

	// interactiveMode suppresses console output of INFO, WARN and ERROR.
	interactiveMode bool
	interactiveMu   sync.RWMutex

	// command is the running subcommand, attached to every entry when set.
	command   string
	commandMu sync.RWMutex
)

// SetCommand records the running subcommand for all subsequent log entries.
// Pass an empty string to clear.
func SetCommand(name string) {
	commandMu.Lock()
	defer commandMu.Unlock()
	command = name
}

func addContext(event *zerolog.Event) *zerolog.Event {
	commandMu.RLock()
	name := command
	commandMu.RUnlock()
	if name != "" {
		event = event.Str("command", name)
	}
	return event
}

// LoggingConfig holds configuration for file-based logging.
// It mirrors config.LoggingConfig without importing it.
type LoggingConfig struct {
	FileEnabled *bool
	MaxSizeMB   int
	MaxAgeDays  int
	MaxBackups  int
	Compress    bool
}

// IsFileEnabled returns whether file logging is enabled.
// Defaults to false: hudkit only writes a log file when asked to.
func (c *LoggingConfig) IsFileEnabled() bool {
	if c.FileEnabled == nil {
		return false
	}
	return *c.FileEnabled
}

// GetMaxSizeMB returns the max size in MB, defaulting to 10 if not set.
func (c *LoggingConfig) GetMaxSizeMB() int {
	if c.MaxSizeMB <= 0 {
		return 10
	}
	return c.MaxSizeMB
}

// GetMaxAgeDays returns the max age in days, defaulting to 7 if not set.
func (c *LoggingConfig) GetMaxAgeDays() int {
	if c.MaxAgeDays <= 0 {
		return 7
	}
	return c.MaxAgeDays
}

// GetMaxBackups returns the max backups, defaulting to 3 if not set.
func (c *LoggingConfig) GetMaxBackups() int {
	if c.MaxBackups <= 0 {
		return 3
	}
	return c.MaxBackups
}

// SetInteractiveMode enables or disables interactive mode.
// While enabled, INFO, WARN and ERROR are kept off the console so they do
// not tear the TUI. Debug is never suppressed. File logging is unaffected.
func SetInteractiveMode(enabled bool) {
	interactiveMu.Lock()
	defer interactiveMu.Unlock()
	interactiveMode = enabled
}

// IsInteractive reports whether interactive mode is on.
func IsInteractive() bool {
	interactiveMu.RLock()
	defer interactiveMu.RUnlock()
	return interactiveMode
}

// Init resets the global logger to a nop logger. Commands run with it
// until the config is loaded and InitWithFile is called.
func Init() {
	Log = zerolog.Nop()
	fileOnlyLog = zerolog.Nop()
}

// InitWithFile initializes the console logger and, when cfg enables it, a
// rotated JSON log file in logsDir.
func InitWithFile(debug bool, logsDir string, cfg *LoggingConfig) error {
	return InitWithWriter(os.Stderr, debug, logsDir, cfg)
}

// InitWithWriter is InitWithFile with the console writer supplied by the
// caller (the command's error stream).
func InitWithWriter(console io.Writer, debug bool, logsDir string, cfg *LoggingConfig) error {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
	}

	if logsDir == "" || cfg == nil || !cfg.IsFileEnabled() {
		Log = zerolog.New(consoleWriter).
			Level(level).
			With().
			Timestamp().
			Logger()
		fileOnlyLog = zerolog.Nop()
		return nil
	}

	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	fileWriter = &lumberjack.Logger{
		Filename:   filepath.Join(logsDir, LogFileName),
		MaxSize:    cfg.GetMaxSizeMB(),
		MaxAge:     cfg.GetMaxAgeDays(),
		MaxBackups: cfg.GetMaxBackups(),
		LocalTime:  true,
		Compress:   cfg.Compress,
	}

	// The file always records debug events; the console honours the flag.
	fileOnlyLog = zerolog.New(fileWriter).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()

	Log = zerolog.New(zerolog.MultiLevelWriter(
		levelWriter{Writer: consoleWriter, min: level},
		fileWriter,
	)).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()

	return nil
}

// levelWriter drops events below min. It lets the file sink record debug
// events while the console stays at the configured level.
type levelWriter struct {
	io.Writer
	min zerolog.Level
}

func (w levelWriter) WriteLevel(l zerolog.Level, p []byte) (int, error) {
	if l < w.min {
		return len(p), nil
	}
	return w.Write(p)
}

// CloseFileWriter closes the file writer if it exists.
func CloseFileWriter() error {
	if fileWriter != nil {
		err := fileWriter.Close()
		fileWriter = nil
		return err
	}
	return nil
}

// GetLogFilePath returns the path to the current log file, or "" if file
// logging is disabled.
func GetLogFilePath() string {
	if fileWriter != nil {
		return fileWriter.Filename
	}
	return ""
}

func shouldSuppress() bool {
	return IsInteractive()
}

// For returns a logger for a library component. In interactive mode it
// writes to the log file only.
func For(component string) zerolog.Logger {
	base := Log
	if shouldSuppress() {
		base = fileOnlyLog
	}
	return base.With().Str("component", component).Logger()
}

// Debug logs a debug message (never suppressed).
func Debug() *zerolog.Event {
	return addContext(Log.Debug())
}

// Info logs an info message (suppressed on console in interactive mode, still written to file)
func Info() *zerolog.Event {
	if shouldSuppress() {
		return addContext(fileOnlyLog.Info())
	}
	return addContext(Log.Info())
}

// Warn logs a warning message (suppressed on console in interactive mode, still written to file)
func Warn() *zerolog.Event {
	if shouldSuppress() {
		return addContext(fileOnlyLog.Warn())
	}
	return addContext(Log.Warn())
}

// Error logs an error message (suppressed on console in interactive mode, still written to file)
func Error() *zerolog.Event {
	if shouldSuppress() {
		return addContext(fileOnlyLog.Error())
	}
	return addContext(Log.Error())
}
