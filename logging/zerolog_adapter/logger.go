package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/capmon/capmon"
	"github.com/rs/zerolog"
)

// Logger is capmon.Logger implementation based on github.com/rs/zerolog package
type Logger struct {
	zerolog.Logger
}

const (
	ModuleFieldName   = "module"
	DefaultTimeFormat = "2006-01-02 15:04:05.000"
)

// ConfigureLog creates new logger based on github.com/rs/zerolog package
func ConfigureLog(logFile, logLevel, module string, pretty bool) (*Logger, error) {
	return newLog(logFile, logLevel, module, pretty, false)
}

// GetLogger need only for backward compatibility in tests
func GetLogger(module string) (capmon.Logger, error) {
	return newLog("stdout", "info", module, true, true)
}

func newLog(logFile, logLevel, module string, pretty, colorOff bool) (*Logger, error) {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.DebugLevel
	}

	logWriter, err := getLogWriter(logFile)
	if err != nil {
		return nil, err
	}
	zerolog.TimeFieldFormat = DefaultTimeFormat

	if pretty {
		logWriter = zerolog.ConsoleWriter{
			Out:        logWriter,
			NoColor:    colorOff,
			TimeFormat: DefaultTimeFormat,
			PartsOrder: []string{zerolog.TimestampFieldName, ModuleFieldName, zerolog.LevelFieldName, zerolog.MessageFieldName},
		}
	}

	logger := zerolog.New(logWriter).Level(level).With().Timestamp().Str(ModuleFieldName, module).Logger()
	return &Logger{logger}, nil
}

func getLogWriter(logFileName string) (io.Writer, error) {
	if logFileName == "stdout" || logFileName == "" {
		return os.Stdout, nil
	}

	logDir := filepath.Dir(logFileName)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("can't create log directories %s: %s", logDir, err.Error())
	}
	logFile, err := os.OpenFile(logFileName, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("can't open log file %s: %s", logFileName, err.Error())
	}
	return logFile, nil
}

func (l *Logger) Debug() capmon.EventBuilder {
	return EventBuilder{Event: l.Logger.Debug()}
}

func (l *Logger) Info() capmon.EventBuilder {
	return EventBuilder{Event: l.Logger.Info()}
}

func (l *Logger) Error() capmon.EventBuilder {
	return EventBuilder{Event: l.Logger.Error()}
}

func (l *Logger) Fatal() capmon.EventBuilder {
	return EventBuilder{Event: l.Logger.Fatal()}
}

func (l *Logger) Warning() capmon.EventBuilder {
	return EventBuilder{Event: l.Logger.Warn()}
}

func (l *Logger) Level(s string) (capmon.Logger, error) {
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return l, err
	}
	l.Logger = l.Logger.Level(level)
	return l, nil
}

func (l *Logger) Clone() capmon.Logger {
	return &Logger{
		Logger: l.Logger.With().Logger(),
	}
}

func (l *Logger) String(key, value string) capmon.Logger {
	l.Logger = l.Logger.With().Str(key, value).Logger()
	return l
}

func (l *Logger) Int(key string, value int) capmon.Logger {
	l.Logger = l.Logger.With().Int(key, value).Logger()
	return l
}

func (l *Logger) Int64(key string, value int64) capmon.Logger {
	l.Logger = l.Logger.With().Int64(key, value).Logger()
	return l
}

func (l *Logger) Fields(fields map[string]interface{}) capmon.Logger {
	l.Logger = l.Logger.With().Fields(fields).Logger()
	return l
}
