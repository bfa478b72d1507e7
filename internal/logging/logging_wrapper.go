package logging

import (
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// LoggingWrapper adapts a command body into a cli.ActionFunc that logs
// start, completion or failure together with whatever the body recorded
// in its LogData. A fresh LogData is created per invocation.
func LoggingWrapper(
	loggingName string,
	log *logrus.Logger,
	action func(*cli.Context, *LogData) error,
) cli.ActionFunc {
	return func(c *cli.Context) error {
		logData := NewLogData(log)
		c.Context = WithLogData(c.Context, logData)

		log.Debugf("Command.%v.Start", loggingName)

		endTimer := logData.AddTiming("duration")
		err := action(c, logData)
		endTimer()
		if err != nil {
			logData.Log().WithError(err).Errorf("Command.%v.Error", loggingName)
			return err
		}

		logData.Log().Infof("Command.%v.Complete", loggingName)
		return nil
	}
}
