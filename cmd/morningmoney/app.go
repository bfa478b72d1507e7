package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/morningmoney/internal/apperrors"
	"github.com/carson-networks/morningmoney/internal/config"
	"github.com/carson-networks/morningmoney/internal/logging"
	"github.com/carson-networks/morningmoney/internal/operator"
	"github.com/carson-networks/morningmoney/internal/service"
	"github.com/carson-networks/morningmoney/internal/storage"
)

// runtime is the per-process state shared by every command.
type runtime struct {
	env    *config.Config
	logger *logrus.Logger
}

func newApp() *cli.App {
	rt := &runtime{logger: logging.SetupLogging("info")}

	return &cli.App{
		Name:  "morningmoney",
		Usage: "track transactions and project investment growth",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "db", Usage: "path to the SQLite database (overrides MM_DB_PATH)"},
			&cli.StringFlag{Name: "log-level", Usage: "logrus level (overrides MM_LOG_LEVEL)"},
		},
		Before: rt.setup,
		Commands: []*cli.Command{
			rt.migrateCommand(),
			rt.transactionCommand(),
			rt.balanceCommand(),
			rt.investmentCommand(),
			rt.summaryCommand(),
			rt.importDiaryCommand(),
			rt.dailyCommand(),
		},
	}
}

func (rt *runtime) setup(c *cli.Context) error {
	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return err
	}
	if c.IsSet("db") {
		env.DBPath = c.String("db")
	}
	if c.IsSet("log-level") {
		env.LogLevel = c.String("log-level")
	}
	if err := env.Validate(); err != nil {
		return err
	}

	rt.env = env
	rt.logger = logging.SetupLogging(env.LogLevel)
	return nil
}

// withService wraps a command body that needs the services. Storage and the
// write operator live for the duration of the command.
func (rt *runtime) withService(
	name string,
	action func(*cli.Context, *service.Service, *logging.LogData) error,
) cli.ActionFunc {
	return func(c *cli.Context) error {
		return logging.LoggingWrapper(name, rt.logger, func(c *cli.Context, logData *logging.LogData) error {
			endTimer := logData.AddTiming("storageOpen")
			store, err := storage.Open(c.Context, rt.env)
			endTimer()
			if err != nil {
				return err
			}
			defer store.Close()

			delegator := operator.NewOperatorDelegator(store, rt.env.Workers)
			delegator.Start()
			defer delegator.Stop()

			return action(c, service.NewService(store, delegator, rt.env), logData)
		})(c)
	}
}

func (rt *runtime) migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "create or upgrade the database schema",
		Action: func(c *cli.Context) error {
			return logging.LoggingWrapper("migrate", rt.logger, func(c *cli.Context, logData *logging.LogData) error {
				if err := storage.EnsureDir(rt.env.DBPath); err != nil {
					return err
				}
				status, err := storage.RunMigrations(storage.DSN(rt.env.DBPath))
				if err != nil {
					return err
				}
				logData.AddData("preMigrationVersion", status.PreMigrationVersion)
				logData.AddData("postMigrationVersion", status.PostMigrationVersion)

				fmt.Fprintf(c.App.Writer, "schema version %d -> %d\n", status.PreMigrationVersion, status.PostMigrationVersion)
				return nil
			})(c)
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidID, s)
	}
	return id, nil
}

func requireArg(c *cli.Context, name string) (string, error) {
	if c.NArg() < 1 {
		return "", fmt.Errorf("missing <%s> argument", name)
	}
	return c.Args().First(), nil
}
