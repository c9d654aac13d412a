package ledgersim

type Repository interface {
	CreateClient(c *Client) error
	GetClient(nationalID string) (*Client, error)
	ListClients() []*Client
	CreateAccount(acct *Account) error
	ListAccounts() []*Account
	NextAccountNumber() int
}
