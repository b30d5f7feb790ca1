package logger

import (
	"errors"
	"fmt"
	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
	"io"
	"os"
	"sync"
)

var Log = &Logger{entry: logrus.NewEntry(logrus.StandardLogger()), console: io.Discard}

type Logger struct {
	entry   *logrus.Entry
	Session string

	// console is also read by the config watcher goroutine
	mu      sync.RWMutex
	console io.Writer
}

type loggerProperties struct {
	logFilename string
	maxSize     int
	maxBackups  int
	maxAge      int
	compress    bool
	level       string
	console     bool
}

func readLoggerProperties(v *viper.Viper) loggerProperties {
	return loggerProperties{
		logFilename: cast.ToString(v.Get("logFilename")),
		maxSize:     cast.ToInt(v.Get("maxSize")),
		maxBackups:  cast.ToInt(v.Get("maxBackups")),
		maxAge:      cast.ToInt(v.Get("maxAge")),
		compress:    cast.ToBool(v.Get("compress")),
		level:       cast.ToString(v.Get("level")),
		console:     cast.ToBool(v.Get("console")),
	}
}

// Init reads <dir>/logger.properties and points logrus at a rotating JSON log file.
// The level is re-applied whenever the file changes on disk.
func (l *Logger) Init(dir string) error {
	v := viper.New()
	v.SetConfigName("logger")
	v.SetConfigType("properties")
	v.AddConfigPath(dir)

	v.SetDefault("logFilename", "pong.log")
	v.SetDefault("maxSize", 10)
	v.SetDefault("maxBackups", 3)
	v.SetDefault("maxAge", 28)
	v.SetDefault("level", "Info")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read logger properties: %w", err)
		}
	}

	props := readLoggerProperties(v)

	loggerConfig := &lumberjack.Logger{
		Filename:   props.logFilename,
		MaxSize:    props.maxSize,
		MaxBackups: props.maxBackups,
		MaxAge:     props.maxAge,
		Compress:   props.compress,
	}

	base := logrus.New()
	base.SetFormatter(&logrus.JSONFormatter{})
	base.SetOutput(loggerConfig)
	base.SetLevel(parseLevel(props.level))

	l.Session = uuid.NewString()
	l.entry = base.WithField("session", l.Session)
	if props.console {
		l.SetConsole(os.Stdout)
	} else {
		l.SetConsole(nil)
	}

	if v.ConfigFileUsed() != "" {
		v.OnConfigChange(func(e fsnotify.Event) {
			if e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				return
			}
			level := parseLevel(cast.ToString(v.Get("level")))
			base.SetLevel(level)
			l.Info(fmt.Sprintf(LevelReloadedMsg, level))
		})
		v.WatchConfig()
	}

	return nil
}

// SetConsole redirects the human readable echo of every entry. Pass nil to silence it.
func (l *Logger) SetConsole(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	l.mu.Lock()
	l.console = w
	l.mu.Unlock()
}

func (l *Logger) Level() logrus.Level {
	return l.entry.Logger.GetLevel()
}

func parseLevel(level string) logrus.Level {
	switch level {

	case "Trace":
		return logrus.TraceLevel

	case "Info":
		return logrus.InfoLevel

	case "Warn":
		return logrus.WarnLevel

	case "Error":
		return logrus.ErrorLevel

	case "Fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

func (l *Logger) Info(message string) {
	l.entry.Info(message)
	l.echo(logrus.InfoLevel, "Info:", message)
}

func (l *Logger) Error(message string) {
	l.entry.Error(message)
	l.echo(logrus.ErrorLevel, "Error:", message)
}

func (l *Logger) Debug(message string) {
	l.entry.Debug(message)
	l.echo(logrus.DebugLevel, "Debug:", message)
}

func (l *Logger) Warn(message string) {
	l.entry.Warn(message)
	l.echo(logrus.WarnLevel, "Warn:", message)
}

// Fatal logs and exits the process with status 1.
func (l *Logger) Fatal(message string) {
	fmt.Fprintln(os.Stderr, "Fatal:", message)
	l.entry.Fatal(message)
}

func (l *Logger) echo(level logrus.Level, prefix, message string) {
	if !l.entry.Logger.IsLevelEnabled(level) {
		return
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	fmt.Fprintln(l.console, prefix, message)
}
