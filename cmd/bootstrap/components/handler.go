package components

import (
	"reminder-scheduler/internal/handler"
	"reminder-scheduler/internal/handler/api"
	"reminder-scheduler/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReminderHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
