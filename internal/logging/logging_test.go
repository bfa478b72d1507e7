package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newBufferLogger(buf *bytes.Buffer) *logrus.Logger {
	logger := SetupLogging("debug")
	logger.Out = buf
	return logger
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var lines []map[string]interface{}
	dec := json.NewDecoder(buf)
	for dec.More() {
		line := map[string]interface{}{}
		require.NoError(t, dec.Decode(&line))
		lines = append(lines, line)
	}
	return lines
}

func newCLIContext() *cli.Context {
	c := cli.NewContext(cli.NewApp(), flag.NewFlagSet("test", flag.ContinueOnError), nil)
	c.Context = context.Background()
	return c
}

func TestSetupLogging_Level(t *testing.T) {
	assert.Equal(t, logrus.WarnLevel, SetupLogging("warn").Level)
	assert.Equal(t, logrus.InfoLevel, SetupLogging("chatty").Level)
	SetupLogging("info")
}

func TestLogData_Fields(t *testing.T) {
	var buf bytes.Buffer
	logData := NewLogData(newBufferLogger(&buf))

	logData.AddData("rows", 3)
	stop := logData.AddTiming("query")
	stop()
	logData.Log().Info("done")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "info", lines[0]["loglevel"])
	assert.Equal(t, float64(3), lines[0]["rows"])
	assert.Contains(t, lines[0], "query")
}

func TestLogData_AddToExistingTiming(t *testing.T) {
	logData := NewLogData(logrus.New())
	logData.AddToExistingTiming("io")()
	logData.AddToExistingTiming("io")()
	assert.Contains(t, logData.timeItems, "io")
}

func TestGetLogData(t *testing.T) {
	logData := NewLogData(logrus.New())
	ctx := WithLogData(context.Background(), logData)
	assert.Same(t, logData, GetLogData(ctx))

	assert.NotNil(t, GetLogData(context.Background()))
}

func TestLoggingWrapper_Complete(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	action := LoggingWrapper("balance", logger, func(c *cli.Context, l *LogData) error {
		assert.Same(t, l, GetLogData(c.Context))
		l.AddData("count", 2)
		return nil
	})
	require.NoError(t, action(newCLIContext()))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "Command.balance.Start", lines[0]["msg"])
	assert.Equal(t, "Command.balance.Complete", lines[1]["msg"])
	assert.Equal(t, float64(2), lines[1]["count"])
	assert.Contains(t, lines[1], "duration")
	SetupLogging("info")
}

func TestLoggingWrapper_Error(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	action := LoggingWrapper("tx.add", logger, func(*cli.Context, *LogData) error {
		return errors.New("boom")
	})
	err := action(newCLIContext())
	assert.EqualError(t, err, "boom")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "Command.tx.add.Error", lines[1]["msg"])
	assert.Equal(t, "error", lines[1]["loglevel"])
	assert.Equal(t, "boom", lines[1]["error"])
	SetupLogging("info")
}
