package main

import (
	"os"

	"pos-loyalty/cmd/bootstrap"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           pos-loyalty
// @version         1.0
// @description     Loyalty points ledger, tiers and reward redemption for the POS.

// @BasePath  /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	fx.New(
		bootstrap.Module,
		bootstrap.ServerModule,
		fx.WithLogger(func() fxevent.Logger { return fxevent.NopLogger }),
	).Run()
}
