package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gridbase-inc/citysift/constants"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger zerolog.Logger

func init() {
	// Console-only until Init wires the rotating file sink; early failures
	// (flag parsing, config resolution) still get readable output.
	logger = zerolog.New(console()).With().Timestamp().Logger()
}

// Init attaches a rotating file sink under the resolved config folder.
// Must run after the root command has populated viper.
func Init() {
	logDir := filepath.Join(viper.GetString(constants.ConfigFolder), "logs")
	if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
		logger.Warn().Msgf("failed to create log directory %s: %s", logDir, err)
		return
	}

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "citysift.log"),
		MaxSize:    100, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}
	logger = zerolog.New(zerolog.MultiLevelWriter(console(), fileWriter)).With().Timestamp().Logger()
}

func console() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
}

func Debug(v ...interface{}) {
	logger.Debug().Msg(fmt.Sprint(v...))
}

func Debugf(format string, v ...interface{}) {
	logger.Debug().Msgf(format, v...)
}

func Info(v ...interface{}) {
	logger.Info().Msg(fmt.Sprint(v...))
}

func Infof(format string, v ...interface{}) {
	logger.Info().Msgf(format, v...)
}

func Warn(v ...interface{}) {
	logger.Warn().Msg(fmt.Sprint(v...))
}

func Warnf(format string, v ...interface{}) {
	logger.Warn().Msgf(format, v...)
}

func Error(v ...interface{}) {
	logger.Error().Msg(fmt.Sprint(v...))
}

func Errorf(format string, v ...interface{}) {
	logger.Error().Msgf(format, v...)
}

// Fatal logs and exits with a non-zero code.
func Fatal(v ...interface{}) {
	logger.Fatal().Msg(fmt.Sprint(v...))
}

func Fatalf(format string, v ...interface{}) {
	logger.Fatal().Msgf(format, v...)
}
