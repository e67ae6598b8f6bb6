package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/hromada/hromada-api/internal/domain"
)

var ErrInvalidToken = errors.New("invalid session token")

// Session is the authenticated identity handlers work with.
type Session struct {
	UserID string
	Role   domain.UserRole
}

type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies the signed session tokens carried in
// the session cookie.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

func (t *TokenManager) TTL() time.Duration {
	return t.ttl
}

func (t *TokenManager) Issue(userID string, role domain.UserRole) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

func (t *TokenManager) Verify(token string) (*Session, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &Session{
		UserID: claims.Subject,
		Role:   domain.UserRole(claims.Role),
	}, nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

var passwordWords = []string{
	"Solar", "Power", "Hope", "Build", "Help",
	"Light", "Energy", "Ukraine", "Peace", "Strong",
}

// TemporaryPassword generates a readable credential for auto-created
// donor accounts: two words plus two digits.
func TemporaryPassword() string {
	w1 := passwordWords[randInt(len(passwordWords))]
	w2 := passwordWords[randInt(len(passwordWords))]
	return fmt.Sprintf("%s%s%02d", w1, w2, randInt(100))
}

func randInt(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failure means the platform's entropy source is
		// broken; nothing sensible to fall back to.
		panic(err)
	}
	return int(v.Int64())
}
