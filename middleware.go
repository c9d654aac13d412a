package ledgersim

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type Middleware func(Service) Service

// Chain wraps svc so that the first middleware is the outermost.
func Chain(svc Service, mws ...Middleware) Service {
	for i := len(mws) - 1; i >= 0; i-- {
		svc = mws[i](svc)
	}
	return svc
}

//
// Validation middleware
//

var (
	_ Service = (*validationMiddleware)(nil)
)

// validationMiddleware rejects malformed requests before they reach the
// service. Domain rules (balance, limits) stay in Account.
type validationMiddleware struct {
	next Service
}

func NewValidationMiddleware() Middleware {
	return func(svc Service) Service {
		return &validationMiddleware{
			next: svc,
		}
	}
}

func (v *validationMiddleware) CreateClient(req CreateClientReq) (*Client, error) {
	fields := map[string]string{}
	if strings.TrimSpace(req.NationalID) == "" {
		fields["national_id"] = "missing"
	}
	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "missing"
	}
	if len(fields) > 0 {
		return nil, ErrBadRequest{Fields: fields}
	}
	return v.next.CreateClient(req)
}

func (v *validationMiddleware) CreateAccount(req CreateAccountReq) (*Account, error) {
	if err := checkNationalID(req.NationalID); err != nil {
		return nil, err
	}
	return v.next.CreateAccount(req)
}

func (v *validationMiddleware) Deposit(req ChargeReq) (*decimal.Decimal, error) {
	if err := checkCharge(req); err != nil {
		return nil, err
	}
	return v.next.Deposit(req)
}

// Withdraw leaves the amount to Account, whose checking limits are
// evaluated before the positivity rule.
func (v *validationMiddleware) Withdraw(req ChargeReq) (*decimal.Decimal, error) {
	if err := checkNationalID(req.NationalID); err != nil {
		return nil, err
	}
	return v.next.Withdraw(req)
}

func (v *validationMiddleware) Balance(req BalanceReq) (*decimal.Decimal, error) {
	if err := checkNationalID(req.NationalID); err != nil {
		return nil, err
	}
	return v.next.Balance(req)
}

func (v *validationMiddleware) Statement(w io.Writer, req StatementReq) error {
	if err := checkNationalID(req.NationalID); err != nil {
		return err
	}
	return v.next.Statement(w, req)
}

func (v *validationMiddleware) StatementPDF(w io.Writer, req StatementReq) error {
	if err := checkNationalID(req.NationalID); err != nil {
		return err
	}
	return v.next.StatementPDF(w, req)
}

func (v *validationMiddleware) ListAccounts(w io.Writer) error {
	return v.next.ListAccounts(w)
}

func checkNationalID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrBadRequest{Fields: map[string]string{"national_id": "missing"}}
	}
	return nil
}

func checkCharge(req ChargeReq) error {
	if err := checkNationalID(req.NationalID); err != nil {
		return err
	}
	if !req.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

//
// Logging middleware
//

var (
	_ Service = (*loggingMiddleware)(nil)
)

// loggingMiddleware records the outcome of every call. Rejections are
// logged at warn level since they are expected in normal use.
type loggingMiddleware struct {
	next Service
	log  *zerolog.Logger
}

func NewLoggingMiddleware(log *zerolog.Logger) Middleware {
	return func(next Service) Service {
		return &loggingMiddleware{
			next: next,
			log:  log,
		}
	}
}

func (l *loggingMiddleware) event(method string, err error) *zerolog.Event {
	if err != nil {
		return l.log.Warn().Err(err).Str("method", method)
	}
	return l.log.Info().Str("method", method)
}

func (l *loggingMiddleware) CreateClient(req CreateClientReq) (*Client, error) {
	c, err := l.next.CreateClient(req)
	l.event("create_client", err).
		Str("national_id", req.NationalID).
		Msg("create client")
	return c, err
}

func (l *loggingMiddleware) CreateAccount(req CreateAccountReq) (*Account, error) {
	acct, err := l.next.CreateAccount(req)
	ev := l.event("create_account", err).Str("national_id", req.NationalID)
	if acct != nil {
		ev = ev.Int("account", acct.Number)
	}
	ev.Msg("create account")
	return acct, err
}

func (l *loggingMiddleware) Deposit(req ChargeReq) (*decimal.Decimal, error) {
	bal, err := l.next.Deposit(req)
	l.event("deposit", err).
		Str("national_id", req.NationalID).
		Str("amount", req.Amount.String()).
		Msg("deposit")
	return bal, err
}

func (l *loggingMiddleware) Withdraw(req ChargeReq) (*decimal.Decimal, error) {
	bal, err := l.next.Withdraw(req)
	l.event("withdraw", err).
		Str("national_id", req.NationalID).
		Str("amount", req.Amount.String()).
		Msg("withdraw")
	return bal, err
}

func (l *loggingMiddleware) Balance(req BalanceReq) (*decimal.Decimal, error) {
	bal, err := l.next.Balance(req)
	l.event("balance", err).
		Str("national_id", req.NationalID).
		Msg("balance")
	return bal, err
}

func (l *loggingMiddleware) Statement(w io.Writer, req StatementReq) error {
	err := l.next.Statement(w, req)
	l.event("statement", err).
		Str("national_id", req.NationalID).
		Msg("statement")
	return err
}

func (l *loggingMiddleware) StatementPDF(w io.Writer, req StatementReq) error {
	err := l.next.StatementPDF(w, req)
	l.event("statement_pdf", err).
		Str("national_id", req.NationalID).
		Msg("statement pdf")
	return err
}

func (l *loggingMiddleware) ListAccounts(w io.Writer) error {
	err := l.next.ListAccounts(w)
	l.event("list_accounts", err).Msg("list accounts")
	return err
}
