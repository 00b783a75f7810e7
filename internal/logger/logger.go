// Package logger provides structured logging using zap.
//
// Packages log through a Channel named after their subsystem. Channels
// discard everything until Init runs and pick up the new core afterwards, so
// they can be declared as package variables and used from tests.
package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the root logger. Init replaces it.
var Log = zap.NewNop()

// Subsystem channels.
var (
	App    = NewChannel("app")
	Scene  = NewChannel("scene")
	Motion = NewChannel("motion")
	Export = NewChannel("export")
	Panel  = NewChannel("panel")
	Render = NewChannel("render")
	Window = NewChannel("window")
)

// FileConfig holds file logging configuration.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultFileConfig returns default file logging settings.
func DefaultFileConfig(path string) FileConfig {
	return FileConfig{
		Path:       path,
		MaxSizeMB:  50,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
	}
}

// Init sets up console logging at level, plus a rotated file when logFile is
// not empty.
func Init(level string, logFile string) error {
	if logFile != "" {
		return InitWithFileConfig(level, DefaultFileConfig(logFile), true)
	}
	return InitWithFileConfig(level, FileConfig{}, true)
}

// InitWithFileConfig is Init with explicit rotation settings. Tests pass
// consoleOutput false to keep stdout clean.
func InitWithFileConfig(level string, fileCfg FileConfig, consoleOutput bool) error {
	lvl := parseLevel(level)

	var cores []zapcore.Core
	if consoleOutput {
		enc := encoderConfig()
		enc.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(os.Stdout), lvl))
	}
	if fileCfg.Path != "" {
		w := &lumberjack.Logger{
			Filename:   fileCfg.Path,
			MaxSize:    fileCfg.MaxSizeMB,
			MaxBackups: fileCfg.MaxBackups,
			MaxAge:     fileCfg.MaxAgeDays,
			Compress:   fileCfg.Compress,
			LocalTime:  true,
		}
		enc := encoderConfig()
		enc.EncodeTime = zapcore.ISO8601TimeEncoder
		enc.EncodeLevel = zapcore.CapitalLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), lvl))
	}

	Log = zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	return nil
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "msg",
		CallerKey:        "caller",
		EncodeCaller:     zapcore.ShortCallerEncoder,
		ConsoleSeparator: " ",
	}
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = Log.Sync()
}

// Channel is a named child of Log that follows re-initialisation.
type Channel struct {
	name string

	mu     sync.Mutex
	root   *zap.Logger
	logger *zap.Logger
	caller *zap.Logger // logger with one extra caller skip for the helpers
}

// NewChannel returns a channel whose entries carry name in the logger field.
func NewChannel(name string) *Channel {
	return &Channel{name: name}
}

// Name returns the subsystem name.
func (c *Channel) Name() string { return c.name }

// L returns the zap logger for the channel under the current root.
func (c *Channel) L() *zap.Logger {
	l, _ := c.current()
	return l
}

func (c *Channel) current() (*zap.Logger, *zap.Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.root != Log {
		c.root = Log
		c.logger = Log.Named(c.name)
		c.caller = c.logger.WithOptions(zap.AddCallerSkip(1))
	}
	return c.logger, c.caller
}

func (c *Channel) helper() *zap.Logger {
	_, l := c.current()
	return l
}

// Debug logs at debug level.
func (c *Channel) Debug(msg string, fields ...zap.Field) {
	c.helper().Debug(msg, fields...)
}

// Info logs at info level.
func (c *Channel) Info(msg string, fields ...zap.Field) {
	c.helper().Info(msg, fields...)
}

// Warn logs at warn level.
func (c *Channel) Warn(msg string, fields ...zap.Field) {
	c.helper().Warn(msg, fields...)
}

// Error logs at error level.
func (c *Channel) Error(msg string, fields ...zap.Field) {
	c.helper().Error(msg, fields...)
}
