package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/morningmoney/internal/logging"
	"github.com/carson-networks/morningmoney/internal/money"
	"github.com/carson-networks/morningmoney/internal/service"
)

func (rt *runtime) investmentCommand() *cli.Command {
	return &cli.Command{
		Name:    "invest",
		Aliases: []string{"investment"},
		Usage:   "manage investments and projections",
		Subcommands: []*cli.Command{
			{
				Name:  "save",
				Usage: "add an investment or overwrite the one with the same name",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "value", Required: true, Usage: "current value"},
					&cli.StringFlag{Name: "monthly", Value: service.DefaultMonthlyContribution.StringFixed(2), Usage: "monthly contribution"},
					&cli.StringFlag{Name: "return", Value: service.DefaultExpectedAnnualReturn.StringFixed(2), Usage: "expected annual return in percent"},
					&cli.StringFlag{Name: "target-year", Value: fmt.Sprint(service.DefaultTargetYear)},
					&cli.StringFlag{Name: "notes"},
				},
				Action: rt.withService("invest.save", saveInvestment),
			},
			{
				Name:      "delete",
				Usage:     "delete an investment",
				ArgsUsage: "<id>",
				Action:    rt.withService("invest.delete", deleteInvestment),
			},
			{
				Name:  "list",
				Usage: "list investments with their projected value",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "extra-monthly", Value: "0", Usage: "what-if extra monthly contribution"},
				},
				Action: rt.withService("invest.list", listInvestments),
			},
			{
				Name:  "wealth",
				Usage: "print the total projected wealth",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "target-year", Usage: "only investments targeting this year"},
				},
				Action: rt.withService("invest.wealth", projectedWealth),
			},
		},
	}
}

func saveInvestment(c *cli.Context, svc *service.Service, _ *logging.LogData) error {
	value, err := money.Parse(c.String("value"))
	if err != nil {
		return err
	}
	monthly, err := money.Parse(c.String("monthly"))
	if err != nil {
		return err
	}
	annualReturn, err := money.ParsePercent(c.String("return"))
	if err != nil {
		return err
	}
	targetYear, err := money.ParseYear(c.String("target-year"))
	if err != nil {
		return err
	}

	id, err := svc.Investment.AddOrUpdateInvestment(c.Context, service.InvestmentSave{
		Name:                 c.String("name"),
		CurrentValue:         value,
		MonthlyContribution:  monthly,
		ExpectedAnnualReturn: annualReturn,
		TargetYear:           targetYear,
		Notes:                c.String("notes"),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "saved investment %d\n", id)
	return nil
}

func deleteInvestment(c *cli.Context, svc *service.Service, _ *logging.LogData) error {
	arg, err := requireArg(c, "id")
	if err != nil {
		return err
	}
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	if err := svc.Investment.DeleteInvestment(c.Context, id); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "deleted investment %d\n", id)
	return nil
}

func listInvestments(c *cli.Context, svc *service.Service, logData *logging.LogData) error {
	extra, err := money.Parse(c.String("extra-monthly"))
	if err != nil {
		return err
	}

	projected, err := svc.Investment.ProjectInvestments(c.Context, extra)
	if err != nil {
		return err
	}
	logData.AddData("count", len(projected))

	total := decimal.Zero
	w := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "ID\tNAME\tVALUE\tMONTHLY\tRETURN\tTARGET\tMONTHS\tPROJECTED\t")
	for _, p := range projected {
		total = total.Add(p.FutureValue)
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s%%\t%d\t%d\t%s\t\n",
			p.ID,
			p.Name,
			money.Format(p.CurrentValue),
			money.Format(p.MonthlyContribution),
			p.ExpectedAnnualReturn.StringFixed(2),
			p.TargetYear,
			p.MonthsRemaining,
			money.Format(p.FutureValue),
		)
	}
	fmt.Fprintf(w, "\t\t\t\t\t\tTOTAL\t%s\t\n", money.Format(total))
	return w.Flush()
}

func projectedWealth(c *cli.Context, svc *service.Service, _ *logging.LogData) error {
	var targetYear *int
	if c.IsSet("target-year") {
		year, err := money.ParseYear(c.String("target-year"))
		if err != nil {
			return err
		}
		targetYear = &year
	}

	total, err := svc.Investment.GetTotalProjectedWealth(c.Context, targetYear)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, money.Format(total))
	return nil
}
