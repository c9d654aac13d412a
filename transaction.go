package ledgersim

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindDeposit    Kind = "Deposit"
	KindWithdrawal Kind = "Withdrawal"
)

// Transaction is a deposit or a withdrawal waiting to be applied to an
// account. Apply records it in the account history only on success.
type Transaction interface {
	TxID() snowflake.ID
	Kind() Kind
	Amount() decimal.Decimal
	Apply(acct *Account) error
}

var (
	_ Transaction = Deposit{}
	_ Transaction = Withdrawal{}
)

type Deposit struct {
	ID    snowflake.ID
	Value decimal.Decimal
}

func (d Deposit) TxID() snowflake.ID      { return d.ID }
func (d Deposit) Kind() Kind              { return KindDeposit }
func (d Deposit) Amount() decimal.Decimal { return d.Value }

func (d Deposit) Apply(acct *Account) error {
	if err := acct.Deposit(d.Value); err != nil {
		return err
	}
	acct.history.Add(d)
	return nil
}

type Withdrawal struct {
	ID    snowflake.ID
	Value decimal.Decimal
}

func (w Withdrawal) TxID() snowflake.ID      { return w.ID }
func (w Withdrawal) Kind() Kind              { return KindWithdrawal }
func (w Withdrawal) Amount() decimal.Decimal { return w.Value }

func (w Withdrawal) Apply(acct *Account) error {
	if err := acct.Withdraw(w.Value); err != nil {
		return err
	}
	acct.history.Add(w)
	return nil
}

type HistoryEntry struct {
	ID     snowflake.ID    `json:"id"`
	Kind   Kind            `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
	Time   time.Time       `json:"time"`
}

// History is the append-only record of the transactions applied to one
// account.
type History struct {
	entries []HistoryEntry
	now     func() time.Time
}

func NewHistory() *History {
	return &History{now: time.Now}
}

func (h *History) Add(tx Transaction) {
	h.entries = append(h.entries, HistoryEntry{
		ID:     tx.TxID(),
		Kind:   tx.Kind(),
		Amount: tx.Amount(),
		Time:   h.now(),
	})
}

// Entries returns a copy of the recorded entries, oldest first.
func (h *History) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Len() int {
	return len(h.entries)
}
