package components

import (
	"catchpac/internal/handler"
	"catchpac/internal/handler/api"
	"catchpac/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRequestHandler,
		api.NewQuoteHandler,
		api.NewPricingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
