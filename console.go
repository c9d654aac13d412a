package ledgersim

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const menuText = `
================ MENU ================
[d]	Deposit
[s]	Withdraw
[e]	Statement
[ep]	Export statement (PDF)
[nc]	New account
[lc]	List accounts
[nu]	New client
[q]	Quit
=> `

var rule = strings.Repeat("=", 100)

// Console is the interactive session: one menu choice at a time, read
// from in and answered on out, until "q" or end of input.
type Console struct {
	svc          Service
	log          *zerolog.Logger
	statementDir string

	in  *bufio.Reader
	out io.Writer
}

func NewConsole(svc Service, in io.Reader, out io.Writer, statementDir string, log *zerolog.Logger) *Console {
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	return &Console{
		svc:          svc,
		log:          log,
		statementDir: statementDir,
		in:           bufio.NewReader(in),
		out:          out,
	}
}

func (c *Console) Run() error {
	for {
		opt, err := c.prompt(menuText)
		if err != nil {
			return eofOK(err)
		}

		switch strings.ToLower(opt) {
		case "d":
			err = c.deposit()
		case "s":
			err = c.withdraw()
		case "e":
			err = c.statement()
		case "ep":
			err = c.exportStatement()
		case "nu":
			err = c.newClient()
		case "nc":
			err = c.newAccount()
		case "lc":
			err = c.listAccounts()
		case "q":
			_, err = fmt.Fprintln(c.out, "\nThank you for using our system. Goodbye!")
			return err
		default:
			c.fail("Invalid operation, please select the desired operation again.")
		}
		if err != nil {
			return eofOK(err)
		}
	}
}

func (c *Console) deposit() error {
	id, err := c.prompt("Enter the client's national id: ")
	if err != nil {
		return err
	}
	if !c.clientExists(id) {
		return nil
	}
	raw, err := c.prompt("Enter the deposit amount: ")
	if err != nil {
		return err
	}
	amount, err := parseAmount(raw)
	if err != nil {
		c.report(err)
		return nil
	}
	if _, err = c.svc.Deposit(ChargeReq{Amount: amount, NationalID: id}); err != nil {
		c.report(err)
		return nil
	}
	c.ok("Deposit completed successfully!")
	return nil
}

func (c *Console) withdraw() error {
	id, err := c.prompt("Enter the client's national id: ")
	if err != nil {
		return err
	}
	if !c.clientExists(id) {
		return nil
	}
	raw, err := c.prompt("Enter the withdrawal amount: ")
	if err != nil {
		return err
	}
	amount, err := parseAmount(raw)
	if err != nil {
		c.report(err)
		return nil
	}
	if _, err = c.svc.Withdraw(ChargeReq{Amount: amount, NationalID: id}); err != nil {
		c.report(err)
		return nil
	}
	c.ok("Withdrawal completed successfully!")
	return nil
}

func (c *Console) statement() error {
	id, err := c.prompt("Enter the client's national id: ")
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err = c.svc.Statement(&buf, StatementReq{NationalID: id}); err != nil {
		c.report(err)
		return nil
	}
	if _, err = fmt.Fprintln(c.out, "\n================ STATEMENT ================"); err != nil {
		return err
	}
	if _, err = c.out.Write(buf.Bytes()); err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, "===========================================")
	return err
}

func (c *Console) exportStatement() error {
	id, err := c.prompt("Enter the client's national id: ")
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err = c.svc.StatementPDF(&buf, StatementReq{NationalID: id}); err != nil {
		c.report(err)
		return nil
	}
	path := filepath.Join(c.statementDir, statementFileName(id))
	if err = os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		c.log.Err(err).Str("path", path).Msg("error writing statement file")
		c.fail("Could not write the statement file.")
		return nil
	}
	c.ok(fmt.Sprintf("Statement exported to %s", path))
	return nil
}

func (c *Console) newClient() error {
	var req CreateClientReq
	var err error
	if req.NationalID, err = c.prompt("Enter the national id (numbers only): "); err != nil {
		return err
	}
	if req.Name, err = c.prompt("Enter the full name: "); err != nil {
		return err
	}
	if req.BirthDate, err = c.prompt("Enter the birth date (dd-mm-yyyy): "); err != nil {
		return err
	}
	if req.Address, err = c.prompt("Enter the address (street, number - district - city/state): "); err != nil {
		return err
	}
	if _, err = c.svc.CreateClient(req); err != nil {
		c.report(err)
		return nil
	}
	c.ok("Client created successfully!")
	return nil
}

func (c *Console) newAccount() error {
	id, err := c.prompt("Enter the client's national id: ")
	if err != nil {
		return err
	}
	if _, err = c.svc.CreateAccount(CreateAccountReq{NationalID: id}); err != nil {
		if errors.As(err, &ErrNotFound{}) {
			c.fail("Client not found, account creation aborted!")
			return nil
		}
		c.report(err)
		return nil
	}
	c.ok("Account created successfully!")
	return nil
}

func (c *Console) listAccounts() error {
	var buf bytes.Buffer
	if err := c.svc.ListAccounts(&buf); err != nil {
		c.report(err)
		return nil
	}
	_, err := c.out.Write(buf.Bytes())
	return err
}

// clientExists resolves the client before any amount is asked for. A
// client without an account passes; the charge itself reports that.
func (c *Console) clientExists(nationalID string) bool {
	_, err := c.svc.Balance(BalanceReq{NationalID: nationalID})
	if err == nil || errors.Is(err, ErrNoAccount) {
		return true
	}
	c.report(err)
	return false
}

func (c *Console) prompt(label string) (string, error) {
	if _, err := fmt.Fprint(c.out, label); err != nil {
		return "", err
	}
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *Console) ok(msg string) {
	c.notify(fmt.Sprintf("\n=== %s ===\n", msg))
}

func (c *Console) fail(msg string) {
	c.notify(fmt.Sprintf("\n@@@ %s @@@\n", msg))
}

// notify only logs a failed write; the next prompt surfaces it to Run.
func (c *Console) notify(line string) {
	if _, err := io.WriteString(c.out, line); err != nil {
		c.log.Err(err).Msg("error writing to console")
	}
}

func (c *Console) report(err error) {
	c.log.Debug().Err(err).Msg("operation rejected")
	c.fail(describe(err))
}

func describe(err error) string {
	var (
		errlim = &ErrWithdrawalLimit{}
		errbr  = &ErrBadRequest{}
	)
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		return "Operation failed! Insufficient funds."
	case errors.Is(err, ErrInvalidAmount):
		return "Operation failed! The amount entered is invalid."
	case errors.As(err, errlim):
		return fmt.Sprintf("Operation failed! The withdrawal amount exceeds the limit of R$ %s.", errlim.Limit.StringFixed(2))
	case errors.Is(err, ErrWithdrawalCountExceeded):
		return "Operation failed! Maximum number of withdrawals exceeded."
	case errors.As(err, &ErrNotFound{}):
		return "Client not found!"
	case errors.As(err, &ErrDuplicateClient{}):
		return "A client with this national id already exists!"
	case errors.Is(err, ErrNoAccount):
		return "Client has no account!"
	case errors.Is(err, ErrNoAccountsRegistered):
		return "No accounts registered."
	case errors.As(err, errbr):
		if _, ok := errbr.Fields["amount"]; ok {
			return "Invalid amount! Please enter a number."
		}
		return fmt.Sprintf("Operation failed! %s", errbr.Error())
	default:
		return fmt.Sprintf("Operation failed! %s", err.Error())
	}
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, ErrBadRequest{Fields: map[string]string{"amount": "not a number"}}
	}
	return amount, nil
}

func statementFileName(nationalID string) string {
	safe := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, nationalID)
	return fmt.Sprintf("statement-%s.pdf", safe)
}

func eofOK(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
