package logx

import (
	"io"
	"os"
	"sort"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the main logger instance. It is a thin leveled front end over
// a zap core.
type Logger struct {
	config   *Config
	level    zap.AtomicLevel
	mu       sync.RWMutex
	zl       *zap.Logger
	exitFunc func(int)
}

// NewLogger creates a new logger with the given config
func NewLogger(config *Config) *Logger {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Output == nil {
		config.Output = os.Stdout
	}

	l := &Logger{
		config:   config,
		level:    zap.NewAtomicLevelAt(config.Level.zapLevel()),
		exitFunc: os.Exit,
	}
	l.zl = l.build(config.Output)
	return l
}

// build wires the zap core. Every public logging call reaches zap through
// two logx frames (Entry.Info or logx.Info, then log), which the caller
// skip steps over.
func (l *Logger) build(w io.Writer) *zap.Logger {
	core := zapcore.NewCore(newEncoder(l.config), zapcore.Lock(zapcore.AddSync(w)), l.level)

	opts := []zap.Option{zap.WithFatalHook(exitHook{logger: l})}
	if l.config.EnableCaller {
		opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(2))
	}
	return zap.New(core, opts...)
}

// SetLevel sets the log level
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.config.Level = level
	l.level.SetLevel(level.zapLevel())
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.config.Level
}

// SetOutput sets the output writer
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.config.Output = w
	l.zl = l.build(w)
}

// SetExitFunc replaces the function called after a fatal entry is written.
func (l *Logger) SetExitFunc(fn func(int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.exitFunc = fn
}

// Zap exposes the underlying zap logger.
func (l *Logger) Zap() *zap.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.zl
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.Zap().Sync()
}

// log is the internal logging method
func (l *Logger) log(level Level, msg string, fields Fields, data any, err error) {
	if level >= LevelOff {
		return
	}

	ce := l.Zap().Check(level.zapLevel(), msg)
	if ce == nil {
		return
	}
	ce.Write(toZapFields(fields, data, err)...)
}

// WithField creates a new entry with a field
func (l *Logger) WithField(key string, value any) *Entry {
	return newEntry(l).WithField(key, value)
}

// WithFields creates a new entry with fields
func (l *Logger) WithFields(fields Fields) *Entry {
	return newEntry(l).WithFields(fields)
}

// WithError creates a new entry with an error
func (l *Logger) WithError(err error) *Entry {
	return newEntry(l).WithError(err)
}

// WithStruct creates a new entry with structured data
func (l *Logger) WithStruct(data any) *Entry {
	return newEntry(l).WithStruct(data)
}

func (l *Logger) exit(code int) {
	l.mu.RLock()
	fn := l.exitFunc
	l.mu.RUnlock()
	fn(code)
}

// exitHook runs after a fatal entry has been written.
type exitHook struct {
	logger *Logger
}

func (h exitHook) OnWrite(*zapcore.CheckedEntry, []zapcore.Field) {
	h.logger.exit(1)
}

func toZapFields(fields Fields, data any, err error) []zap.Field {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]zap.Field, 0, len(keys)+2)
	for _, k := range keys {
		out = append(out, zap.Any(k, fields[k]))
	}
	if err != nil {
		out = append(out, zap.Error(err))
	}
	if data != nil {
		out = append(out, zap.Any("data", data))
	}
	return out
}
