package components

import (
	"pos-loyalty/internal/handler"
	"pos-loyalty/internal/handler/api"
	"pos-loyalty/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAccountHandler,
		api.NewSaleHandler,
		api.NewRedemptionHandler,
		api.NewTierHandler,
		middleware.NewAuthMiddleware,
		func(
			account *api.AccountHandler,
			sale *api.SaleHandler,
			redemption *api.RedemptionHandler,
			tier *api.TierHandler,
		) handler.Handlers {
			return handler.Handlers{
				Account:    account,
				Sale:       sale,
				Redemption: redemption,
				Tier:       tier,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
