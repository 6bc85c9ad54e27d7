package storage

import (
	"github.com/carson-networks/transfer-server/internal/storage/account"
	"github.com/carson-networks/transfer-server/internal/storage/recipient"
	"github.com/carson-networks/transfer-server/internal/storage/transaction"
)

type Reader struct {
	Accounts     *account.Reader
	Transactions *transaction.Reader
	Recipients   *recipient.Reader
}

func newReader(st *state) *Reader {
	return &Reader{
		Accounts:     account.NewReader(st.accounts),
		Transactions: transaction.NewReader(st.transactions),
		Recipients:   recipient.NewReader(st.recipients),
	}
}
