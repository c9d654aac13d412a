package ledgersim

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Branch is the only branch this bank has.
const Branch = "0001"

// CheckingLimits are the withdrawal rules of a checking account. The count
// is a lifetime cap for the account, it is never reset.
type CheckingLimits struct {
	WithdrawalLimit decimal.Decimal
	MaxWithdrawals  int
}

func DefaultCheckingLimits() CheckingLimits {
	return CheckingLimits{
		WithdrawalLimit: decimal.NewFromInt(500),
		MaxWithdrawals:  3,
	}
}

type withdrawalPolicy struct {
	limits CheckingLimits
	used   int
}

type Account struct {
	Number int
	Branch string
	Owner  *Client

	balance decimal.Decimal
	history *History
	policy  *withdrawalPolicy
}

// OpenAccount returns a plain account with no withdrawal limits.
func OpenAccount(owner *Client, number int) *Account {
	return &Account{
		Number:  number,
		Branch:  Branch,
		Owner:   owner,
		balance: decimal.Zero,
		history: NewHistory(),
	}
}

// OpenCheckingAccount returns an account whose withdrawals are checked
// against lim before the balance rule applies.
func OpenCheckingAccount(owner *Client, number int, lim CheckingLimits) *Account {
	acct := OpenAccount(owner, number)
	acct.policy = &withdrawalPolicy{limits: lim}
	return acct
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

func (a *Account) History() *History {
	return a.history
}

// Limits reports the checking limits, ok is false for plain accounts.
func (a *Account) Limits() (lim CheckingLimits, ok bool) {
	if a.policy == nil {
		return lim, false
	}
	return a.policy.limits, true
}

func (a *Account) WithdrawalsUsed() int {
	if a.policy == nil {
		return 0
	}
	return a.policy.used
}

func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw applies the checking rules in order (limit, then count) before
// the balance rule. The count only moves on success.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if a.policy == nil {
		return a.withdraw(amount)
	}

	p := a.policy
	if amount.GreaterThan(p.limits.WithdrawalLimit) {
		return ErrWithdrawalLimit{Limit: p.limits.WithdrawalLimit}
	}
	if p.used >= p.limits.MaxWithdrawals {
		return ErrWithdrawalCountExceeded
	}
	if err := a.withdraw(amount); err != nil {
		return err
	}
	p.used++
	return nil
}

func (a *Account) withdraw(amount decimal.Decimal) error {
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

func (a *Account) String() string {
	holder := ""
	if a.Owner != nil {
		holder = a.Owner.Name
	}
	return fmt.Sprintf("Branch:\t\t%s\nAccount:\t%d\nHolder:\t\t%s\n", a.Branch, a.Number, holder)
}
