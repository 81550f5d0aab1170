// Package config loads service configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the full service configuration.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	// LedgerRPCURL is the JSON-RPC endpoint of the ledger node. Timeouts
	// belong to this client, not to the sync layer.
	LedgerRPCURL    string `env:"LEDGER_RPC_URL,required"`
	ContractAddress string `env:"CONTRACT_ADDRESS,required"`
	ChainID         int64  `env:"CHAIN_ID" envDefault:"11155111"`

	// WalletPrivateKey signs write transactions. Empty means no wallet is
	// connected: reads work, writes fail fast.
	WalletPrivateKey string `env:"WALLET_PRIVATE_KEY"`

	DefaultDonationAmount string `env:"DEFAULT_DONATION_AMOUNT" envDefault:"0.1"`
}

// Load reads a .env file when present, then parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
