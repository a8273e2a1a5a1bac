package bootstrap

import (
	"time"

	"pos-loyalty/internal/pkg/config"
	"pos-loyalty/internal/pkg/errs"
	"pos-loyalty/internal/pkg/jwt"

	"go.uber.org/fx"
)

// JWTModule verifies operator tokens issued by the back office.
var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	ttl, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, errs.Wrapf(err, "JWT_DURATION %q", cfg.JWT.Duration)
	}
	leeway, err := time.ParseDuration(cfg.JWT.Leeway)
	if err != nil {
		return nil, errs.Wrapf(err, "JWT_LEEWAY %q", cfg.JWT.Leeway)
	}

	return jwt.NewService(cfg.JWT.Secret, ttl,
		jwt.WithIssuer(cfg.JWT.Issuer),
		jwt.WithAudience(cfg.JWT.Audience),
		jwt.WithLeeway(leeway),
	), nil
}
