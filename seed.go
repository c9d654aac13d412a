package ledgersim

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type SeedClient struct {
	CreateClientReq `yaml:",inline"`
	OpeningDeposit  string `yaml:"opening_deposit"`
}

// Seed is a fixture of clients loaded into a fresh session at startup.
type Seed struct {
	Clients []SeedClient `yaml:"clients"`
}

func LoadSeed(path string) (*Seed, error) {
	bits, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sd Seed
	if err = yaml.Unmarshal(bits, &sd); err != nil {
		return nil, err
	}
	return &sd, nil
}

// Apply creates every client with one account through svc, so the usual
// rules hold for seeded data too.
func (sd *Seed) Apply(svc Service) error {
	for _, sc := range sd.Clients {
		if _, err := svc.CreateClient(sc.CreateClientReq); err != nil {
			return fmt.Errorf("seed client %s: %w", sc.NationalID, err)
		}
		if _, err := svc.CreateAccount(CreateAccountReq{NationalID: sc.NationalID}); err != nil {
			return fmt.Errorf("seed account %s: %w", sc.NationalID, err)
		}
		if sc.OpeningDeposit == "" {
			continue
		}
		amount, err := decimal.NewFromString(sc.OpeningDeposit)
		if err != nil {
			return fmt.Errorf("seed deposit %s: %w", sc.NationalID, err)
		}
		if _, err = svc.Deposit(ChargeReq{Amount: amount, NationalID: sc.NationalID}); err != nil {
			return fmt.Errorf("seed deposit %s: %w", sc.NationalID, err)
		}
	}
	return nil
}
