package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls where log output goes.
type Config struct {
	// Enable console logging
	ConsoleLoggingEnabled bool

	// EncodeLogsAsJson makes the console writer emit raw JSON instead of
	// the human readable format.
	EncodeLogsAsJson bool

	// Enable logging to a rotated file in Directory
	FileLoggingEnabled bool
	Directory          string
	Filename           string
	// MaxSize the max size in MB of the logfile before it's rolled
	MaxSize int
	// MaxBackups the max number of rolled files to keep
	MaxBackups int
	// MaxAge the max age in days to keep a logfile
	MaxAge int

	// Level is a zerolog level name. Empty means info.
	Level string

	// Out is the console destination. Defaults to os.Stderr, stdout is
	// reserved for results.
	Out io.Writer
}

type MyLogger struct {
	*zerolog.Logger
}

// Configure sets up the logging framework.
// An invalid Level falls back to info.
func Configure(config Config) MyLogger {
	var writers []io.Writer

	out := config.Out
	if out == nil {
		out = os.Stderr
	}
	if config.ConsoleLoggingEnabled {
		if config.EncodeLogsAsJson {
			writers = append(writers, out)
		} else {
			writers = append(writers, zerolog.ConsoleWriter{Out: out, NoColor: true})
		}
	}
	if config.FileLoggingEnabled {
		writers = append(writers, newRollingFile(config))
	}
	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}

	level, err := zerolog.ParseLevel(config.Level)
	if err != nil || config.Level == "" {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).Level(level).With().Timestamp().Logger()

	logger.Debug().
		Bool("fileLogging", config.FileLoggingEnabled).
		Bool("jsonLogOutput", config.EncodeLogsAsJson).
		Str("logDirectory", config.Directory).
		Str("fileName", config.Filename).
		Int("maxSizeMB", config.MaxSize).
		Int("maxBackups", config.MaxBackups).
		Int("maxAgeInDays", config.MaxAge).
		Msg("logging configured")

	return MyLogger{Logger: &logger}
}

func newRollingFile(config Config) io.Writer {
	return &lumberjack.Logger{
		Filename:   filepath.Join(config.Directory, config.Filename),
		MaxBackups: config.MaxBackups,
		MaxSize:    config.MaxSize,
		MaxAge:     config.MaxAge,
	}
}
