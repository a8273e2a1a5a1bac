package bootstrap

import (
	"pos-loyalty/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module is the full application graph minus the HTTP listener, which e2e
// tests replace with httptest.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
