package usecase

import (
	"pos-loyalty/internal/domain/operator"
	"pos-loyalty/internal/pkg/errs"
	"pos-loyalty/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrAnonymousToken = errs.New("token carries no operator id")

// TokenValidator resolves a bearer token to the calling operator and role.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, operator.Role, error)
}

type jwtTokenValidator struct {
	tokens *jwt.Service
}

func NewTokenValidator(tokens *jwt.Service) TokenValidator {
	return jwtTokenValidator{tokens: tokens}
}

func (v jwtTokenValidator) ValidateToken(raw string) (uuid.UUID, operator.Role, error) {
	claims, err := v.tokens.ValidateToken(raw)
	if err != nil {
		return uuid.Nil, "", err
	}
	if claims.OperatorID == uuid.Nil {
		return uuid.Nil, "", ErrAnonymousToken
	}

	role, err := operator.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Wrapf(err, "token role %q", claims.Role)
	}
	return claims.OperatorID, role, nil
}
