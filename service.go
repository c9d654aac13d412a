package ledgersim

import (
	"errors"
	"fmt"
	"io"

	"github.com/bwmarrin/snowflake"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type CreateClientReq struct {
	Individual `yaml:",inline"`
	Address    string `yaml:"address"`
}

type CreateAccountReq struct {
	NationalID string
}

type ChargeReq struct {
	Amount     decimal.Decimal
	NationalID string
}

type BalanceReq struct {
	NationalID string
}

type StatementReq struct {
	NationalID string
}

type Service interface {
	CreateClient(CreateClientReq) (*Client, error)
	CreateAccount(CreateAccountReq) (*Account, error)
	Deposit(ChargeReq) (*decimal.Decimal, error)
	Withdraw(ChargeReq) (*decimal.Decimal, error)
	Balance(BalanceReq) (*decimal.Decimal, error)
	Statement(io.Writer, StatementReq) error
	StatementPDF(io.Writer, StatementReq) error
	ListAccounts(io.Writer) error
}

var (
	_ Service = (*serviceImpl)(nil)
)

// NewService builds the ledger service on top of repo. Every account it
// opens is a checking account governed by lim.
func NewService(repo Repository, node *snowflake.Node, lim CheckingLimits, log *zerolog.Logger) (*serviceImpl, error) {
	if repo == nil {
		return nil, errors.New("nil repository")
	}
	if node == nil {
		return nil, errors.New("nil snowflake node")
	}
	if !lim.WithdrawalLimit.IsPositive() || lim.MaxWithdrawals < 0 {
		return nil, ErrBadRequest{Fields: map[string]string{
			"withdrawal_limit": lim.WithdrawalLimit.String(),
			"max_withdrawals":  fmt.Sprint(lim.MaxWithdrawals),
		}}
	}
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	return &serviceImpl{
		repo:   repo,
		node:   node,
		limits: lim,
		log:    log,
	}, nil
}

type serviceImpl struct {
	repo   Repository
	node   *snowflake.Node
	limits CheckingLimits
	log    *zerolog.Logger
}

func (s *serviceImpl) CreateClient(req CreateClientReq) (*Client, error) {
	c := NewClient(req.Individual, req.Address)
	if err := s.repo.CreateClient(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *serviceImpl) CreateAccount(req CreateAccountReq) (*Account, error) {
	c, err := s.repo.GetClient(req.NationalID)
	if err != nil {
		return nil, err
	}
	acct := OpenCheckingAccount(c, s.repo.NextAccountNumber(), s.limits)
	if err = s.repo.CreateAccount(acct); err != nil {
		return nil, err
	}
	return acct, nil
}

func (s *serviceImpl) Deposit(req ChargeReq) (*decimal.Decimal, error) {
	tx := Deposit{ID: s.node.Generate(), Value: req.Amount}
	return s.perform(req.NationalID, tx)
}

func (s *serviceImpl) Withdraw(req ChargeReq) (*decimal.Decimal, error) {
	tx := Withdrawal{ID: s.node.Generate(), Value: req.Amount}
	return s.perform(req.NationalID, tx)
}

func (s *serviceImpl) perform(nationalID string, tx Transaction) (*decimal.Decimal, error) {
	c, acct, err := s.firstAccount(nationalID)
	if err != nil {
		return nil, err
	}
	if err = c.PerformTransaction(acct, tx); err != nil {
		return nil, err
	}
	s.log.Debug().
		Str("tx_id", tx.TxID().String()).
		Str("kind", string(tx.Kind())).
		Int("account", acct.Number).
		Msg("transaction recorded")
	bal := acct.Balance()
	return &bal, nil
}

func (s *serviceImpl) Balance(req BalanceReq) (*decimal.Decimal, error) {
	_, acct, err := s.firstAccount(req.NationalID)
	if err != nil {
		return nil, err
	}
	bal := acct.Balance()
	return &bal, nil
}

func (s *serviceImpl) Statement(w io.Writer, req StatementReq) error {
	_, acct, err := s.firstAccount(req.NationalID)
	if err != nil {
		return err
	}
	return WriteStatement(w, acct)
}

func (s *serviceImpl) StatementPDF(w io.Writer, req StatementReq) error {
	_, acct, err := s.firstAccount(req.NationalID)
	if err != nil {
		return err
	}
	return WriteStatementPDF(w, acct)
}

// ListAccounts writes every registered account separated by a rule line.
func (s *serviceImpl) ListAccounts(w io.Writer) error {
	accts := s.repo.ListAccounts()
	if len(accts) == 0 {
		return ErrNoAccountsRegistered
	}
	for _, acct := range accts {
		if _, err := fmt.Fprintf(w, "%s\n%s", rule, acct); err != nil {
			return err
		}
	}
	return nil
}

func (s *serviceImpl) firstAccount(nationalID string) (*Client, *Account, error) {
	c, err := s.repo.GetClient(nationalID)
	if err != nil {
		return nil, nil, err
	}
	acct, err := c.FirstAccount()
	if err != nil {
		return nil, nil, err
	}
	return c, acct, nil
}
