package jwt

import (
	"time"

	"pos-loyalty/internal/domain/operator"
	"pos-loyalty/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errs.New("invalid token")
	ErrExpiredToken = errs.New("token expired")
)

// Claims identify the POS operator calling the ledger. Tokens are minted by the
// back-office auth service with the shared secret.
type Claims struct {
	OperatorID uuid.UUID `json:"operator_id"`
	StoreID    string    `json:"store_id,omitempty"`
	Role       string    `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey []byte
	ttl       time.Duration
	issuer    string
	audience  string
	leeway    time.Duration
}

type Option func(*Service)

// WithIssuer stamps minted tokens and requires the same iss on validation.
func WithIssuer(iss string) Option {
	return func(s *Service) { s.issuer = iss }
}

// WithAudience stamps minted tokens and requires the same aud on validation.
func WithAudience(aud string) Option {
	return func(s *Service) { s.audience = aud }
}

// WithLeeway tolerates clock skew between tills and this service.
func WithLeeway(d time.Duration) Option {
	return func(s *Service) { s.leeway = d }
}

func NewService(secretKey string, ttl time.Duration, opts ...Option) *Service {
	s := &Service{
		secretKey: []byte(secretKey),
		ttl:       ttl,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// GenerateToken is what the back-office side does; the ledger only needs it in tests and tooling.
func (s *Service) GenerateToken(operatorID uuid.UUID, storeID string, role operator.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		OperatorID: operatorID,
		StoreID:    storeID,
		Role:       role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   operatorID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	if s.audience != "" {
		claims.Audience = jwt.ClaimStrings{s.audience}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", errs.Wrap(err, "sign operator token")
	}
	return signed, nil
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(s.leeway),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}
	if s.audience != "" {
		opts = append(opts, jwt.WithAudience(s.audience))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secretKey, nil
	}, opts...)
	if err != nil {
		if errs.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, errs.Mark(err, ErrInvalidToken)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
