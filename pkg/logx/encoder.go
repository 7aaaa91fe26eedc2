package logx

import (
	"time"

	"go.uber.org/zap/zapcore"
)

const (
	colorReset  = "\033[0m"
	colorGray   = "\033[90m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorPurple = "\033[35m"
)

var levelColors = map[Level]string{
	LevelTrace: colorGray,
	LevelDebug: colorCyan,
	LevelInfo:  colorGreen,
	LevelWarn:  colorYellow,
	LevelError: colorRed,
	LevelFatal: colorPurple,
}

// newEncoder builds the zap encoder matching config.Format
func newEncoder(config *Config) zapcore.Encoder {
	encCfg := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		MessageKey:     "message",
		CallerKey:      zapcore.OmitKey,
		NameKey:        zapcore.OmitKey,
		StacktraceKey:  zapcore.OmitKey,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    encodeLevel,
		EncodeTime:     timeEncoder(config.TimeFormat),
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	if !config.EnableTimestamp {
		encCfg.TimeKey = zapcore.OmitKey
	}
	if config.EnableCaller {
		encCfg.CallerKey = "caller"
	}

	if config.Format == FormatJSON {
		return zapcore.NewJSONEncoder(encCfg)
	}

	if config.EnableColors {
		encCfg.EncodeLevel = encodeColorLevel
	}
	encCfg.ConsoleSeparator = " "
	return zapcore.NewConsoleEncoder(encCfg)
}

func encodeLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(levelFromZap(l).String())
}

func encodeColorLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	level := levelFromZap(l)
	enc.AppendString(levelColors[level] + level.String() + colorReset)
}

func timeEncoder(format string) zapcore.TimeEncoder {
	switch format {
	case "unix":
		return func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendInt64(t.Unix())
		}
	case "unixmilli":
		return func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendInt64(t.UnixMilli())
		}
	case "":
		return zapcore.RFC3339TimeEncoder
	default:
		return zapcore.TimeEncoderOfLayout(format)
	}
}
