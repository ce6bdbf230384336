package ledger

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSecretKey() string {
	parts := make([]string, secretKeyLength)
	for i := range parts {
		parts[i] = fmt.Sprintf("%d", i+1)
	}
	return strings.Join(parts, ",")
}

func TestLoadConfig_FallbackAddresses(t *testing.T) {
	t.Setenv("SOLANA_RPC_URL", "")
	t.Setenv("SOLANA_PRIVATE_KEY", "")
	t.Setenv("ROAST_TOKEN_MINT", "")
	t.Setenv("ROAST_TREASURY", "")
	t.Setenv("ROAST_PROGRAM_ID", "")

	cfg := LoadConfig()

	assert.True(t, cfg.UsingFallback)
	assert.Equal(t, fallbackTokenMint, cfg.TokenMint)
	assert.Equal(t, fallbackTreasury, cfg.Treasury)
	assert.Equal(t, fallbackProgramID, cfg.ProgramID)
}

func TestParseSecretKey(t *testing.T) {
	key, err := parseSecretKey(validSecretKey())
	require.NoError(t, err)
	assert.Len(t, key, secretKeyLength)
	assert.Equal(t, byte(1), key[0])
	assert.Equal(t, byte(64), key[63])
}

func TestParseSecretKey_Rejects(t *testing.T) {
	cases := []string{
		"not-a-key",
		"1,2,3",
		strings.Repeat("300,", 63) + "300",
	}
	for _, raw := range cases {
		_, err := parseSecretKey(raw)
		assert.Error(t, err, raw)
	}
}

func TestGrantReward_MocksWithoutEndpoint(t *testing.T) {
	svc := NewService(&Config{UsingFallback: true})

	receipt := svc.GrantReward(t.Context(), "FriendlyRecipientAddress", "What a sad roast. SAD!", 75)

	assert.True(t, receipt.Transfer.Simulated)
	assert.True(t, strings.HasPrefix(receipt.Transfer.Signature, "tx_"))
	assert.True(t, strings.HasSuffix(receipt.Transfer.Signature, "Friendly"))
	assert.InDelta(t, 75.0, receipt.Transfer.Amount, 0.001)

	assert.True(t, receipt.Mint.Simulated)
	assert.True(t, strings.HasPrefix(receipt.Mint.MintAddress, "roast"))
	assert.Contains(t, receipt.Mint.Name, "Presidential Roast #")
	assert.Equal(t, "What a sad roast. SAD!", receipt.Mint.Description)
}

func TestGrantReward_MocksOnBadKey(t *testing.T) {
	srv := rpcStub(t, "anyblockhash", transferLamports*10)
	defer srv.Close()

	svc := NewService(&Config{
		RPCURL:     srv.URL,
		PrivateKey: "1,2,3",
		TokenMint:  "RealMint11111111111111111111111111111111111",
		Treasury:   "RealTreasury1111111111111111111111111111111",
		ProgramID:  "RealProgram11111111111111111111111111111111",
	})

	receipt := svc.GrantReward(t.Context(), "recipient", "roast", 50)
	assert.True(t, receipt.Transfer.Simulated)
}

func TestGrantReward_PreflightPasses(t *testing.T) {
	srv := rpcStub(t, "EkSnNWid2cvwEVnVx9aBqawnmiCNiDgp3gUdkDPTKN1N", transferLamports+feeBufferLamports)
	defer srv.Close()

	svc := NewService(&Config{
		RPCURL:     srv.URL,
		PrivateKey: validSecretKey(),
		TokenMint:  "RealMint11111111111111111111111111111111111",
		Treasury:   "RealTreasury1111111111111111111111111111111",
		ProgramID:  "RealProgram11111111111111111111111111111111",
	})

	receipt := svc.GrantReward(t.Context(), "recipient", "roast", 100)

	assert.False(t, receipt.Transfer.Simulated)
	assert.True(t, strings.HasPrefix(receipt.Transfer.Signature, "simulated_"))
	assert.True(t, receipt.Mint.Simulated)
}

func TestGrantReward_MocksOnLowBalance(t *testing.T) {
	srv := rpcStub(t, "EkSnNWid2cvwEVnVx9aBqawnmiCNiDgp3gUdkDPTKN1N", transferLamports-1)
	defer srv.Close()

	svc := NewService(&Config{
		RPCURL:     srv.URL,
		PrivateKey: validSecretKey(),
		TokenMint:  "RealMint11111111111111111111111111111111111",
		Treasury:   "RealTreasury1111111111111111111111111111111",
		ProgramID:  "RealProgram11111111111111111111111111111111",
	})

	receipt := svc.GrantReward(t.Context(), "recipient", "roast", 100)
	assert.True(t, receipt.Transfer.Simulated)
}

func TestBalance_Real(t *testing.T) {
	srv := rpcStub(t, "hash", 2_500_000_000)
	defer srv.Close()

	svc := NewService(&Config{RPCURL: srv.URL})
	result := svc.Balance(t.Context(), "SomeAddress")

	assert.False(t, result.Simulated)
	assert.Equal(t, uint64(2_500_000_000), result.Lamports)
	assert.InDelta(t, 2.5, result.Sol, 0.001)
}

func TestBalance_MockWithoutEndpoint(t *testing.T) {
	svc := NewService(nil)
	result := svc.Balance(t.Context(), "SomeAddress")

	assert.True(t, result.Simulated)
	assert.Equal(t, "SomeAddress", result.Address)
	assert.Less(t, result.Lamports, uint64(mockBalanceCeiling))
}

func TestExcerpt_Truncates(t *testing.T) {
	long := strings.Repeat("a", roastDescriptionLimit+50)
	got := excerpt(long)
	assert.Len(t, got, roastDescriptionLimit+3)
	assert.True(t, strings.HasSuffix(got, "..."))

	assert.Equal(t, "short", excerpt("  short  "))
}

func TestBase58Encode(t *testing.T) {
	assert.Equal(t, "1", base58Encode([]byte{0}))
	assert.Equal(t, "2", base58Encode([]byte{1}))
	assert.Equal(t, "11", base58Encode([]byte{0, 0}))
	// "Hello" in base58.
	assert.Equal(t, "9Ajdvzr", base58Encode([]byte("Hello")))
}

// rpcStub answers getLatestBlockhash and getBalance with fixed values.
func rpcStub(t *testing.T, blockhash string, lamports uint64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string `json:"method"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		switch req.Method {
		case "getLatestBlockhash":
			fmt.Fprintf(w, `{"jsonrpc":"2.0","id":1,"result":{"value":{"blockhash":%q}}}`, blockhash)
		case "getBalance":
			fmt.Fprintf(w, `{"jsonrpc":"2.0","id":1,"result":{"value":%d}}`, lamports)
		default:
			fmt.Fprint(w, `{"jsonrpc":"2.0","id":1,"error":{"code":-32601,"message":"method not found"}}`)
		}
	}))
}
