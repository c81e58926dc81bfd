package bootstrap

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/avagut/authhub/cmd/flags"
	"github.com/avagut/authhub/internal/conf"
	"github.com/avagut/authhub/utils"
	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
	colorable "github.com/zijiren233/go-colorable"
)

func setLog(l *logrus.Logger) {
	if flags.Dev {
		l.SetLevel(logrus.DebugLevel)
		l.SetReportCaller(true)
	} else {
		l.SetLevel(logrus.InfoLevel)
		l.SetReportCaller(false)
	}
}

func InitLog(_ context.Context) (err error) {
	setLog(logrus.StandardLogger())
	forceColor := utils.ForceColor()
	if conf.Conf.Log.Enable {
		conf.Conf.Log.FilePath, err = utils.OptFilePath(conf.Conf.Log.FilePath)
		if err != nil {
			logrus.Fatalf("log: log file path error: %v", err)
		}
		l := &lumberjack.Logger{
			Filename:   conf.Conf.Log.FilePath,
			MaxSize:    conf.Conf.Log.MaxSize,
			MaxBackups: conf.Conf.Log.MaxBackups,
			MaxAge:     conf.Conf.Log.MaxAge,
			Compress:   conf.Conf.Log.Compress,
		}
		if err := l.Rotate(); err != nil {
			logrus.Fatalf("log: rotate log file error: %v", err)
		}
		var w io.Writer
		if forceColor {
			w = colorable.NewNonColorableWriter(l)
		} else {
			w = l
		}
		if flags.Dev || flags.LogStd {
			logrus.SetOutput(io.MultiWriter(os.Stdout, w))
		} else {
			logrus.SetOutput(w)
			logrus.Infof("log: disable log to stdout, only log to file: %s", conf.Conf.Log.FilePath)
		}
	}
	switch conf.Conf.Log.LogFormat {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.DateTime,
		})
	default:
		if conf.Conf.Log.LogFormat != "text" {
			logrus.Warnf("unknown log format: %s, use default: text", conf.Conf.Log.LogFormat)
		}
		logrus.SetFormatter(&logrus.TextFormatter{
			ForceColors:      forceColor,
			DisableColors:    !forceColor,
			DisableSorting:   true,
			FullTimestamp:    true,
			TimestampFormat:  time.DateTime,
			QuoteEmptyFields: true,
		})
	}
	log.SetOutput(logrus.StandardLogger().Writer())
	return nil
}

func InitDiscardLog(_ context.Context) error {
	logrus.StandardLogger().SetOutput(io.Discard)
	log.SetOutput(io.Discard)
	return nil
}
