package components

import (
	"closet-by-era/internal/handler"
	"closet-by-era/internal/handler/api"
	"closet-by-era/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCartHandler,
		api.NewCouponHandler,
		api.NewCustomerHandler,
		api.NewSegmentHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
