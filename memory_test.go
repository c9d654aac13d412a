package ledgersim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arhyth/ledgersim"
)

func TestMemoryStore(t *testing.T) {
	t.Run("duplicate national id is rejected", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		store := ledgersim.NewMemoryStore()
		reqrd.NoError(store.CreateClient(newOwner()))

		err := store.CreateClient(newOwner())
		dup := &ledgersim.ErrDuplicateClient{}
		as.ErrorAs(err, dup)
		as.Equal("12345678900", dup.NationalID)
		as.Len(store.ListClients(), 1)
	})

	t.Run("GetClient returns ErrNotFound for unknown ids", func(tt *testing.T) {
		as := assert.New(tt)
		store := ledgersim.NewMemoryStore()
		c, err := store.GetClient("000")
		as.Nil(c)
		nf := &ledgersim.ErrNotFound{}
		as.ErrorAs(err, nf)
		as.Equal("000", nf.NationalID)
	})

	t.Run("accounts are numbered from the registry size and linked to the owner", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		store := ledgersim.NewMemoryStore()
		owner := newOwner()
		reqrd.NoError(store.CreateClient(owner))

		as.Equal(1, store.NextAccountNumber())
		a1 := ledgersim.OpenAccount(owner, store.NextAccountNumber())
		reqrd.NoError(store.CreateAccount(a1))
		as.Equal(2, store.NextAccountNumber())
		a2 := ledgersim.OpenAccount(owner, store.NextAccountNumber())
		reqrd.NoError(store.CreateAccount(a2))

		accts := store.ListAccounts()
		reqrd.Len(accts, 2)
		as.Equal(1, accts[0].Number)
		as.Equal(2, accts[1].Number)
		as.Equal([]*ledgersim.Account{a1, a2}, owner.Accounts())
	})

	t.Run("accounts need an owner", func(tt *testing.T) {
		as := assert.New(tt)
		store := ledgersim.NewMemoryStore()
		err := store.CreateAccount(ledgersim.OpenAccount(nil, 1))
		as.ErrorAs(err, &ledgersim.ErrBadRequest{})
		as.Empty(store.ListAccounts())
	})
}
