package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/carson-networks/morningmoney/internal/logging"
	"github.com/carson-networks/morningmoney/internal/money"
	"github.com/carson-networks/morningmoney/internal/reporting"
	"github.com/carson-networks/morningmoney/internal/service"
)

func (rt *runtime) summaryCommand() *cli.Command {
	return &cli.Command{
		Name:  "summary",
		Usage: "aggregate the ledger",
		Subcommands: []*cli.Command{
			{
				Name:  "monthly",
				Usage: "income and expenses per month, most recent first",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Value: reporting.DefaultMonthLimit},
				},
				Action: rt.withService("summary.monthly", monthlySummary),
			},
			{
				Name:   "tags",
				Usage:  "signed total per tag",
				Action: rt.withService("summary.tags", tagSummary),
			},
		},
	}
}

func (rt *runtime) importDiaryCommand() *cli.Command {
	return &cli.Command{
		Name:      "import-diary",
		Usage:     "import a legacy JSON finance diary",
		ArgsUsage: "<path>",
		Action: rt.withService("importDiary", func(c *cli.Context, svc *service.Service, logData *logging.LogData) error {
			path, err := requireArg(c, "path")
			if err != nil {
				return err
			}
			logData.AddData("path", path)

			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			count, err := svc.Ledger.ImportDiary(c.Context, f)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "imported %d transactions\n", count)
			return nil
		}),
	}
}

func (rt *runtime) dailyCommand() *cli.Command {
	return &cli.Command{
		Name:  "daily",
		Usage: "show the dashboard and the message of the day",
		Action: rt.withService("daily", func(c *cli.Context, svc *service.Service, _ *logging.LogData) error {
			dashboard, err := svc.Report.GetDashboard(c.Context)
			if err != nil {
				return err
			}

			fmt.Fprintln(c.App.Writer, dashboard.Message)
			fmt.Fprintln(c.App.Writer)
			w := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Balance\t%s\n", money.Format(dashboard.Balance))
			fmt.Fprintf(w, "Projected wealth\t%s\n", money.Format(dashboard.ProjectedWealth))
			for _, m := range dashboard.Months {
				fmt.Fprintf(w, "%s\t+%s\t-%s\t%s\n", m.Month, money.Format(m.Income), money.Format(m.Expenses), money.Format(m.Net()))
			}
			return w.Flush()
		}),
	}
}

func monthlySummary(c *cli.Context, svc *service.Service, logData *logging.LogData) error {
	months, err := svc.Report.GetMonthlySummary(c.Context, c.Int("limit"))
	if err != nil {
		return err
	}
	logData.AddData("months", len(months))

	w := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "MONTH\tINCOME\tEXPENSES\tNET\t")
	for _, m := range months {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", m.Month, money.Format(m.Income), money.Format(m.Expenses), money.Format(m.Net()))
	}
	return w.Flush()
}

func tagSummary(c *cli.Context, svc *service.Service, _ *logging.LogData) error {
	totals, err := svc.Report.GetTagSummary(c.Context)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "TAG\tTOTAL\t")
	for _, t := range reporting.SortedTags(totals) {
		fmt.Fprintf(w, "%s\t%s\t\n", t.Tag, money.Format(t.Total))
	}
	return w.Flush()
}
