package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/morningmoney/internal/logging"
	"github.com/carson-networks/morningmoney/internal/money"
	"github.com/carson-networks/morningmoney/internal/service"
	"github.com/carson-networks/morningmoney/internal/storage/transaction"
)

func transactionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "date", Usage: "YYYY-MM-DD (default today)"},
		&cli.StringFlag{Name: "category"},
		&cli.StringFlag{Name: "amount", Usage: "signed amount; R, $ and , are ignored"},
		&cli.StringFlag{Name: "description"},
		&cli.StringFlag{Name: "tags", Usage: "comma separated"},
		&cli.StringFlag{Name: "account"},
	}
}

func (rt *runtime) transactionCommand() *cli.Command {
	return &cli.Command{
		Name:    "tx",
		Aliases: []string{"transaction"},
		Usage:   "manage ledger transactions",
		Subcommands: []*cli.Command{
			{
				Name:   "add",
				Usage:  "record a transaction",
				Flags:  transactionFlags(),
				Action: rt.withService("tx.add", addTransaction),
			},
			{
				Name:      "update",
				Usage:     "change fields of a transaction",
				ArgsUsage: "<id>",
				Flags:     transactionFlags(),
				Action:    rt.withService("tx.update", updateTransaction),
			},
			{
				Name:      "delete",
				Usage:     "delete a transaction",
				ArgsUsage: "<id>",
				Action:    rt.withService("tx.delete", deleteTransaction),
			},
			{
				Name:  "list",
				Usage: "list transactions with running balance, newest first",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "from", Usage: "YYYY-MM-DD inclusive"},
					&cli.StringFlag{Name: "to", Usage: "YYYY-MM-DD inclusive"},
				},
				Action: rt.withService("tx.list", listTransactions),
			},
		},
	}
}

func (rt *runtime) balanceCommand() *cli.Command {
	return &cli.Command{
		Name:  "balance",
		Usage: "print the ledger balance",
		Action: rt.withService("balance", func(c *cli.Context, svc *service.Service, _ *logging.LogData) error {
			balance, err := svc.Ledger.GetBalance(c.Context)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, money.Format(balance))
			return nil
		}),
	}
}

func addTransaction(c *cli.Context, svc *service.Service, logData *logging.LogData) error {
	amount, err := money.Parse(c.String("amount"))
	if err != nil {
		return err
	}

	var date time.Time
	if c.IsSet("date") {
		if date, err = service.ParseDate(c.String("date")); err != nil {
			return err
		}
	}

	id, err := svc.Ledger.AddTransaction(c.Context, service.TransactionCreate{
		Date:        date,
		Category:    c.String("category"),
		Amount:      amount,
		Description: c.String("description"),
		Tags:        c.String("tags"),
		Account:     c.String("account"),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "added transaction %d\n", id)
	return nil
}

func updateTransaction(c *cli.Context, svc *service.Service, logData *logging.LogData) error {
	arg, err := requireArg(c, "id")
	if err != nil {
		return err
	}
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	update := service.TransactionUpdate{}
	if c.IsSet("date") {
		date, err := service.ParseDate(c.String("date"))
		if err != nil {
			return err
		}
		update.Date = omit.From(date)
	}
	if c.IsSet("amount") {
		amount, err := money.Parse(c.String("amount"))
		if err != nil {
			return err
		}
		update.Amount = omit.From(amount)
	}
	if c.IsSet("category") {
		update.Category = omit.From(c.String("category"))
	}
	if c.IsSet("description") {
		update.Description = omit.From(c.String("description"))
	}
	if c.IsSet("tags") {
		update.Tags = omit.From(c.String("tags"))
	}
	if c.IsSet("account") {
		update.Account = omit.From(c.String("account"))
	}

	found, err := svc.Ledger.UpdateTransaction(c.Context, id, update)
	if err != nil {
		return err
	}
	logData.AddData("found", found)

	if !found {
		fmt.Fprintf(c.App.Writer, "transaction %d not found\n", id)
		return nil
	}
	fmt.Fprintf(c.App.Writer, "updated transaction %d\n", id)
	return nil
}

func deleteTransaction(c *cli.Context, svc *service.Service, _ *logging.LogData) error {
	arg, err := requireArg(c, "id")
	if err != nil {
		return err
	}
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	if err := svc.Ledger.DeleteTransaction(c.Context, id); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "deleted transaction %d\n", id)
	return nil
}

func listTransactions(c *cli.Context, svc *service.Service, logData *logging.LogData) error {
	dateRange, err := service.ParseDateRange(c.String("from"), c.String("to"))
	if err != nil {
		return err
	}

	entries, err := svc.Ledger.GetTransactionsWithRunningBalance(c.Context, dateRange)
	if err != nil {
		return err
	}
	logData.AddData("count", len(entries))

	w := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "ID\tDATE\tCATEGORY\tAMOUNT\tBALANCE\tACCOUNT\tTAGS\tDESCRIPTION\t")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			e.ID,
			transaction.FormatDate(e.Date),
			e.Category,
			money.Format(e.Amount),
			money.Format(e.RunningBalance),
			e.Account,
			e.Tags,
			e.Description,
		)
	}
	return w.Flush()
}
