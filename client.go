package ledgersim

import (
	"github.com/google/uuid"
)

// Individual holds the personal data of a client. NationalID is the
// lookup key and is unique across the registry.
type Individual struct {
	Name       string `yaml:"name"`
	BirthDate  string `yaml:"birth_date"`
	NationalID string `yaml:"national_id"`
}

type Client struct {
	ID uuid.UUID
	Individual
	Address string

	accounts []*Account
}

func NewClient(ind Individual, address string) *Client {
	return &Client{
		ID:         uuid.New(),
		Individual: ind,
		Address:    address,
	}
}

// AddAccount links acct to the client. Accounts are neither deduplicated
// nor capped.
func (c *Client) AddAccount(acct *Account) {
	c.accounts = append(c.accounts, acct)
}

func (c *Client) Accounts() []*Account {
	out := make([]*Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// FirstAccount returns the account every console operation acts on.
func (c *Client) FirstAccount() (*Account, error) {
	if len(c.accounts) == 0 {
		return nil, ErrNoAccount
	}
	return c.accounts[0], nil
}

func (c *Client) PerformTransaction(acct *Account, tx Transaction) error {
	return tx.Apply(acct)
}

// FindClient returns the first client with the given national id, or nil.
func FindClient(nationalID string, clients []*Client) *Client {
	for _, c := range clients {
		if c.NationalID == nationalID {
			return c
		}
	}
	return nil
}
