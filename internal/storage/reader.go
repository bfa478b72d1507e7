package storage

import (
	"github.com/carson-networks/morningmoney/internal/storage/investment"
	"github.com/carson-networks/morningmoney/internal/storage/transaction"
	"github.com/stephenafamo/bob"
)

type Reader struct {
	Investments  *investment.Reader
	Transactions *transaction.Reader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Investments:  investment.NewReader(exec),
		Transactions: transaction.NewReader(exec),
	}
}
