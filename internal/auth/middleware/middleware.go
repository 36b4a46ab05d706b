package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/auy-connect/student-portal/internal/session"
)

type AuthService struct {
	hmac []byte
	ttl  time.Duration
}

func NewAuthService(secret string, ttl time.Duration) *AuthService {
	return &AuthService{hmac: []byte(secret), ttl: ttl}
}

type Claims struct {
	Sub string `json:"sub"` // student email
	SID string `json:"sid"` // session slot token
	jwt.RegisteredClaims
}

func (a *AuthService) IssueJWT(email, sid string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Sub: email,
		SID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "student-portal",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(a.hmac)
}

func (a *AuthService) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return a.hmac, nil
	})
	if err != nil || !token.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return nil, err
	}
	c, _ := token.Claims.(*Claims)
	return c, nil
}

// JWTMiddleware gates the protected views. A token is only good while its
// session slot still exists, so logout revokes access immediately; an
// unauthenticated request gets 401, the API equivalent of the login
// redirect.
func JWTMiddleware(a *AuthService, store session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				http.Error(w, "missing bearer", http.StatusUnauthorized)
				return
			}
			claims, err := a.Parse(strings.TrimPrefix(h, "Bearer "))
			if err != nil {
				http.Error(w, "bad token", http.StatusUnauthorized)
				return
			}
			id, err := store.Get(r.Context(), claims.SID)
			if err != nil {
				// expired, logged out, or malformed slot: all no-session
				http.Error(w, "no session", http.StatusUnauthorized)
				return
			}
			ctx := WithIdentity(r.Context(), id)
			ctx = WithSessionToken(ctx, claims.SID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
