package main

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/Pam-La/fibcount/internal/callcount"
	"github.com/Pam-La/fibcount/internal/query"
)

const defaultLogLevel = logrus.WarnLevel

func main() {
	os.Exit(run(context.Background(), os.Stdin, os.Stdout, os.Stderr, os.Getenv("FIBCOUNT_LOG_LEVEL")))
}

func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, level string) int {
	log := newLogger(stderr, level)

	table := callcount.Build()
	srv := query.NewServer(query.Config{
		Table:  &table,
		Logger: log,
	})
	if err := srv.Serve(ctx, stdin, stdout); err != nil {
		log.WithError(err).Error("query batch failed")
		return 1
	}
	return 0
}

func newLogger(out io.Writer, level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(defaultLogLevel)
	if level == "" {
		return log
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		log.WithField("value", level).Warn("unknown FIBCOUNT_LOG_LEVEL, keeping default")
		return log
	}
	log.SetLevel(parsed)
	return log
}
