package ledgersim

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount           = errors.New("invalid amount")
	ErrInsufficientFunds       = errors.New("insufficient funds")
	ErrWithdrawalCountExceeded = errors.New("maximum number of withdrawals exceeded")
	ErrNoAccount               = errors.New("client has no account")
	ErrNoAccountsRegistered    = errors.New("no accounts registered")
)

type ErrBadRequest struct {
	Fields map[string]string `json:"fields"`
}

func (e ErrBadRequest) Error() string {
	return fmt.Sprintf("missing/invalid params: %v", e.Fields)
}

type ErrNotFound struct {
	NationalID string `json:"national_id"`
}

func (e ErrNotFound) Error() string {
	return "client not found"
}

type ErrDuplicateClient struct {
	NationalID string `json:"national_id"`
}

func (e ErrDuplicateClient) Error() string {
	return fmt.Sprintf("client with national id %q already exists", e.NationalID)
}

// ErrWithdrawalLimit is returned when a single withdrawal exceeds the
// per-withdrawal ceiling of a checking account.
type ErrWithdrawalLimit struct {
	Limit decimal.Decimal `json:"limit"`
}

func (e ErrWithdrawalLimit) Error() string {
	return fmt.Sprintf("withdrawal exceeds the limit of R$ %s", e.Limit.StringFixed(2))
}
