package server

import (
	"crypto/rand"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jonathan/presidential-roast/internal/types"
)

// shareTokenTTL is how long a share link stays resolvable.
const shareTokenTTL = 7 * 24 * time.Hour

// ShareClaims carries a full roast inside a signed share token, so links
// resolve without an archive row behind them.
type ShareClaims struct {
	Category         string `json:"category"`
	Roast            string `json:"roast"`
	Score            int    `json:"score"`
	IsExecutiveOrder bool   `json:"isExecutiveOrder"`
	ImageURL         string `json:"imageUrl,omitempty"`
	jwt.RegisteredClaims
}

// ShareTokenService signs and resolves share tokens.
type ShareTokenService struct {
	secret []byte
}

// NewShareTokenService creates the service. An empty secret gets a random
// per-process one, which means share links stop resolving on restart.
func NewShareTokenService(secret string) *ShareTokenService {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			// crypto/rand never fails on supported platforms
			panic(fmt.Sprintf("failed to generate share secret: %v", err))
		}
		log.Printf("[server] no share secret configured, using ephemeral secret")
	}
	return &ShareTokenService{secret: key}
}

// Generate signs a share token for one roast result.
func (s *ShareTokenService) Generate(category types.Category, result types.RoastResult) (string, error) {
	now := time.Now()
	claims := &ShareClaims{
		Category:         string(category),
		Roast:            result.Text,
		Score:            result.Score,
		IsExecutiveOrder: result.IsExecutiveOrder,
		ImageURL:         result.ImageURL,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(shareTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign share token: %w", err)
	}
	return tokenString, nil
}

// Resolve validates a share token and returns the roast it captures. Any
// failure, from tampering to expiry, surfaces as ErrShareNotFound.
func (s *ShareTokenService) Resolve(tokenString string) (*ShareClaims, error) {
	if tokenString == "" {
		return nil, ErrShareNotFound
	}

	claims := &ShareClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrShareNotFound
	}

	return claims, nil
}
