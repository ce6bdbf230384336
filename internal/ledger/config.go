// Package ledger handles the reward side of a roast: token grants and
// collectible records on a public ledger. Every operation degrades to a
// clearly-tagged simulated result instead of surfacing a hard error.
package ledger

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Well-known fallback addresses used when no real deployment is configured.
// These are valid addresses on the target ledger, safe for simulation.
const (
	fallbackProgramID = "11111111111111111111111111111111"
	fallbackTokenMint = "So11111111111111111111111111111111111111112"
	fallbackTreasury  = "11111111111111111111111111111111"
)

// Transfer sizing, in the ledger's smallest unit.
const (
	// transferLamports is the SOL grant attached to a reward (0.0001 SOL).
	transferLamports = 100000
	// feeBufferLamports is the headroom required on top of the transfer.
	feeBufferLamports = 5000
)

// secretKeyLength is the expected byte length of a ledger keypair secret.
const secretKeyLength = 64

// Config holds ledger endpoint and key material. Zero values are normal:
// the service simulates whatever it cannot do for real.
type Config struct {
	RPCURL     string
	PrivateKey string // comma-separated byte list, 64 entries
	TokenMint  string
	Treasury   string
	ProgramID  string

	// UsingFallback is set when any address fell back to a well-known
	// placeholder, which forces simulation.
	UsingFallback bool
}

// LoadConfig reads ledger configuration from the environment, substituting
// fallback addresses for anything missing.
func LoadConfig() *Config {
	cfg := &Config{
		RPCURL:     os.Getenv("SOLANA_RPC_URL"),
		PrivateKey: os.Getenv("SOLANA_PRIVATE_KEY"),
		TokenMint:  os.Getenv("ROAST_TOKEN_MINT"),
		Treasury:   os.Getenv("ROAST_TREASURY"),
		ProgramID:  os.Getenv("ROAST_PROGRAM_ID"),
	}

	if cfg.TokenMint == "" {
		cfg.TokenMint = fallbackTokenMint
		cfg.UsingFallback = true
	}
	if cfg.Treasury == "" {
		cfg.Treasury = fallbackTreasury
		cfg.UsingFallback = true
	}
	if cfg.ProgramID == "" {
		cfg.ProgramID = fallbackProgramID
		cfg.UsingFallback = true
	}

	return cfg
}

// parseSecretKey parses the comma-separated private key format into raw
// bytes, enforcing the expected keypair length.
func parseSecretKey(raw string) ([]byte, error) {
	if !strings.Contains(raw, ",") {
		return nil, fmt.Errorf("private key must be a comma-separated byte list")
	}

	parts := strings.Split(raw, ",")
	if len(parts) != secretKeyLength {
		return nil, fmt.Errorf("private key has %d bytes, want %d", len(parts), secretKeyLength)
	}

	key := make([]byte, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 || n > 255 {
			return nil, fmt.Errorf("private key byte %d is invalid", i)
		}
		key[i] = byte(n)
	}
	return key, nil
}
