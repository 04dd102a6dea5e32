package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/2beens/kondisca/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const sentryFlushTimeout = 2 * time.Second

type LoggerSetupParams struct {
	LogFileName      string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

// Setup configures the package-level logrus logger and returns a function
// which flushes sentry and closes the log file. Call it on shutdown.
func Setup(params LoggerSetupParams) (cleanup func()) {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logrus.SetLevel(GetLevel(params.LogLevel))

	var closers []func()
	cleanup = func() {
		for _, c := range closers {
			c()
		}
	}

	if params.SentryEnabled {
		if err := sentry.Init(sentry.ClientOptions{
			Environment:      params.Environment,
			Dsn:              params.SentryDSN,
			TracesSampleRate: 0.2,
			ServerName:       params.SentryServerName,
		}); err != nil {
			logrus.Errorf("sentry init: %s", err)
		} else {
			logrus.AddHook(NewSentryHook([]logrus.Level{
				logrus.PanicLevel,
				logrus.FatalLevel,
				logrus.ErrorLevel,
			}))
			closers = append(closers, func() {
				sentry.Flush(sentryFlushTimeout)
			})
			logrus.Infoln("sentry logging hook added")
		}
	}

	output, closeOutput := logOutput(params)
	logrus.SetOutput(output)
	if closeOutput != nil {
		closers = append(closers, closeOutput)
	}

	return cleanup
}

func logOutput(params LoggerSetupParams) (io.Writer, func()) {
	if params.LogFileName == "" {
		logrus.Println("writing logs only to STDOUT")
		return os.Stdout, nil
	}

	fileName := params.LogFileName
	if !strings.HasSuffix(fileName, ".log") {
		fileName += ".log"
	}

	fileLogger := &lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    50, // megabytes
		MaxBackups: 30,
		MaxAge:     365,   // days
		LocalTime:  false, // UTC
		Compress:   true,
	}
	closeFile := func() {
		_ = fileLogger.Close()
	}

	if params.LogToStdout {
		logrus.Printf("writing logs to %s and STDOUT", fileName)
		return pkg.NewCombinedWriter(os.Stdout, fileLogger), closeFile
	}
	logrus.Printf("writing logs to %s", fileName)
	return fileLogger, closeFile
}

// GetLevel maps the configured log level name to a logrus level; unknown names mean info.
func GetLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}
