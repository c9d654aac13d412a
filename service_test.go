package ledgersim_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/arhyth/ledgersim"
	"github.com/arhyth/ledgersim/mocks"
)

func newNode(t *testing.T) *snowflake.Node {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return node
}

func newService(t *testing.T) ledgersim.Service {
	t.Helper()
	log := zerolog.Nop()
	svc, err := ledgersim.NewService(ledgersim.NewMemoryStore(), newNode(t), ledgersim.DefaultCheckingLimits(), &log)
	require.NoError(t, err)
	return svc
}

var maria = ledgersim.CreateClientReq{
	Individual: ledgersim.Individual{
		Name:       "Maria Souza",
		BirthDate:  "01-02-1990",
		NationalID: "12345678900",
	},
	Address: "Rua A, 10 - Centro - Recife/PE",
}

func TestNewService(t *testing.T) {
	t.Run("returns an error on a nil repository", func(tt *testing.T) {
		_, err := ledgersim.NewService(nil, newNode(tt), ledgersim.DefaultCheckingLimits(), nil)
		assert.NotNil(tt, err)
	})

	t.Run("returns an error on a nil node", func(tt *testing.T) {
		_, err := ledgersim.NewService(ledgersim.NewMemoryStore(), nil, ledgersim.DefaultCheckingLimits(), nil)
		assert.NotNil(tt, err)
	})

	t.Run("returns an error on a non-positive withdrawal limit", func(tt *testing.T) {
		lim := ledgersim.CheckingLimits{WithdrawalLimit: dec("0"), MaxWithdrawals: 3}
		_, err := ledgersim.NewService(ledgersim.NewMemoryStore(), newNode(tt), lim, nil)
		assert.ErrorAs(tt, err, &ledgersim.ErrBadRequest{})
	})
}

func TestServiceCreateAccount(t *testing.T) {
	t.Run("returns ErrNotFound for an unknown client", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		repo := mocks.NewMockRepository(ctrl)
		log := zerolog.Nop()
		svc, err := ledgersim.NewService(repo, newNode(tt), ledgersim.DefaultCheckingLimits(), &log)
		require.NoError(tt, err)

		repo.EXPECT().
			GetClient("404").
			Return(nil, ledgersim.ErrNotFound{NationalID: "404"})
		acct, err := svc.CreateAccount(ledgersim.CreateAccountReq{NationalID: "404"})
		as.ErrorAs(err, &ledgersim.ErrNotFound{})
		as.Nil(acct)
	})

	t.Run("opens a checking account numbered by the repository", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		repo := mocks.NewMockRepository(ctrl)
		log := zerolog.Nop()
		lim := ledgersim.CheckingLimits{WithdrawalLimit: dec("300"), MaxWithdrawals: 2}
		svc, err := ledgersim.NewService(repo, newNode(tt), lim, &log)
		require.NoError(tt, err)

		owner := newOwner()
		repo.EXPECT().
			GetClient(owner.NationalID).
			Return(owner, nil)
		repo.EXPECT().
			NextAccountNumber().
			Return(4)
		repo.EXPECT().
			CreateAccount(gomock.AssignableToTypeOf(&ledgersim.Account{})).
			Return(nil)

		acct, err := svc.CreateAccount(ledgersim.CreateAccountReq{NationalID: owner.NationalID})
		require.NoError(tt, err)
		as.Equal(4, acct.Number)
		as.Same(owner, acct.Owner)
		got, ok := acct.Limits()
		as.True(ok)
		as.Equal(2, got.MaxWithdrawals)
		as.True(got.WithdrawalLimit.Equal(dec("300")))
	})
}

func TestServiceDeposit(t *testing.T) {
	t.Run("returns the new balance on success", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		svc := newService(tt)
		_, err := svc.CreateClient(maria)
		reqrd.NoError(err)
		_, err = svc.CreateAccount(ledgersim.CreateAccountReq{NationalID: maria.NationalID})
		reqrd.NoError(err)

		bal, err := svc.Deposit(ledgersim.ChargeReq{Amount: dec("1000"), NationalID: maria.NationalID})
		reqrd.NoError(err)
		as.Equal("1000.00", bal.StringFixed(2))
	})

	t.Run("returns ErrNoAccount when the client has no account", func(tt *testing.T) {
		as := assert.New(tt)
		svc := newService(tt)
		_, err := svc.CreateClient(maria)
		require.NoError(tt, err)

		bal, err := svc.Deposit(ledgersim.ChargeReq{Amount: dec("10"), NationalID: maria.NationalID})
		as.ErrorIs(err, ledgersim.ErrNoAccount)
		as.Nil(bal)
	})

	t.Run("rejects -50 without recording anything", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		svc := newService(tt)
		_, err := svc.CreateClient(maria)
		reqrd.NoError(err)
		_, err = svc.CreateAccount(ledgersim.CreateAccountReq{NationalID: maria.NationalID})
		reqrd.NoError(err)

		bal, err := svc.Deposit(ledgersim.ChargeReq{Amount: dec("-50"), NationalID: maria.NationalID})
		as.ErrorIs(err, ledgersim.ErrInvalidAmount)
		as.Nil(bal)

		var buf bytes.Buffer
		reqrd.NoError(svc.Statement(&buf, ledgersim.StatementReq{NationalID: maria.NationalID}))
		as.Equal("No transactions were made.\nSaldo:\tR$ 0.00\n", buf.String())
	})
}

func TestServiceWithdraw(t *testing.T) {
	as := assert.New(t)
	reqrd := require.New(t)
	svc := newService(t)
	_, err := svc.CreateClient(maria)
	reqrd.NoError(err)
	_, err = svc.CreateAccount(ledgersim.CreateAccountReq{NationalID: maria.NationalID})
	reqrd.NoError(err)
	_, err = svc.Deposit(ledgersim.ChargeReq{Amount: dec("1000"), NationalID: maria.NationalID})
	reqrd.NoError(err)

	_, err = svc.Withdraw(ledgersim.ChargeReq{Amount: dec("600"), NationalID: maria.NationalID})
	as.ErrorAs(err, &ledgersim.ErrWithdrawalLimit{})

	for i := 0; i < 3; i++ {
		_, err = svc.Withdraw(ledgersim.ChargeReq{Amount: dec("200"), NationalID: maria.NationalID})
		reqrd.NoError(err)
	}
	_, err = svc.Withdraw(ledgersim.ChargeReq{Amount: dec("1"), NationalID: maria.NationalID})
	as.ErrorIs(err, ledgersim.ErrWithdrawalCountExceeded)

	bal, err := svc.Balance(ledgersim.BalanceReq{NationalID: maria.NationalID})
	reqrd.NoError(err)
	as.Equal("400.00", bal.StringFixed(2))

	var buf bytes.Buffer
	reqrd.NoError(svc.Statement(&buf, ledgersim.StatementReq{NationalID: maria.NationalID}))
	want := "Deposit:\tR$ 1000.00\n" + strings.Repeat("Withdrawal:\tR$ 200.00\n", 3) + "Saldo:\tR$ 400.00\n"
	as.Equal(want, buf.String())
}

func TestServiceCreateClient(t *testing.T) {
	as := assert.New(t)
	svc := newService(t)
	c, err := svc.CreateClient(maria)
	require.NoError(t, err)
	as.Equal(maria.Name, c.Name)

	c, err = svc.CreateClient(maria)
	as.ErrorAs(err, &ledgersim.ErrDuplicateClient{})
	as.Nil(c)

	_, err = svc.Balance(ledgersim.BalanceReq{NationalID: "unknown"})
	as.ErrorAs(err, &ledgersim.ErrNotFound{})
}

func TestServiceListAccounts(t *testing.T) {
	t.Run("returns ErrNoAccountsRegistered on an empty registry", func(tt *testing.T) {
		var buf bytes.Buffer
		err := newService(tt).ListAccounts(&buf)
		assert.ErrorIs(tt, err, ledgersim.ErrNoAccountsRegistered)
		assert.Empty(tt, buf.String())
	})

	t.Run("writes every account", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		svc := newService(tt)
		_, err := svc.CreateClient(maria)
		reqrd.NoError(err)
		for i := 0; i < 2; i++ {
			_, err = svc.CreateAccount(ledgersim.CreateAccountReq{NationalID: maria.NationalID})
			reqrd.NoError(err)
		}

		var buf bytes.Buffer
		reqrd.NoError(svc.ListAccounts(&buf))
		out := buf.String()
		as.Equal(2, strings.Count(out, strings.Repeat("=", 100)))
		as.Contains(out, "Account:\t1\n")
		as.Contains(out, "Account:\t2\n")
		as.Contains(out, "Holder:\t\tMaria Souza\n")
	})
}

func TestServiceStatementPDF(t *testing.T) {
	reqrd := require.New(t)
	svc := newService(t)
	_, err := svc.CreateClient(maria)
	reqrd.NoError(err)
	_, err = svc.CreateAccount(ledgersim.CreateAccountReq{NationalID: maria.NationalID})
	reqrd.NoError(err)

	var buf bytes.Buffer
	reqrd.NoError(svc.StatementPDF(&buf, ledgersim.StatementReq{NationalID: maria.NationalID}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
