package components

import (
	"reminder-scheduler/internal/infra/notifier"
	"reminder-scheduler/internal/pkg/clock"
	"reminder-scheduler/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseValidatorsModule,
	usecaseReminderModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		notifier.NewTelegramNotifier,
		fx.As(new(usecase.Notifier)),
	),
)

var usecaseReminderModule = fx.Module("usecase/reminder",
	fx.Provide(
		usecase.NewReminderUseCase,
		usecase.NewScheduler,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
