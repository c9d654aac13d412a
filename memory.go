package ledgersim

// MemoryStore is the process-lifetime registry of clients and accounts.
// It keeps insertion order and is not safe for concurrent use.
type MemoryStore struct {
	clients  []*Client
	accounts []*Account
}

var (
	_ Repository = (*MemoryStore)(nil)
)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) CreateClient(c *Client) error {
	if FindClient(c.NationalID, m.clients) != nil {
		return ErrDuplicateClient{NationalID: c.NationalID}
	}
	m.clients = append(m.clients, c)
	return nil
}

func (m *MemoryStore) GetClient(nationalID string) (*Client, error) {
	c := FindClient(nationalID, m.clients)
	if c == nil {
		return nil, ErrNotFound{NationalID: nationalID}
	}
	return c, nil
}

func (m *MemoryStore) ListClients() []*Client {
	out := make([]*Client, len(m.clients))
	copy(out, m.clients)
	return out
}

// CreateAccount registers acct and links it to its owner.
func (m *MemoryStore) CreateAccount(acct *Account) error {
	if acct.Owner == nil {
		return ErrBadRequest{Fields: map[string]string{"owner": "missing"}}
	}
	m.accounts = append(m.accounts, acct)
	acct.Owner.AddAccount(acct)
	return nil
}

func (m *MemoryStore) ListAccounts() []*Account {
	out := make([]*Account, len(m.accounts))
	copy(out, m.accounts)
	return out
}

func (m *MemoryStore) NextAccountNumber() int {
	return len(m.accounts) + 1
}
