package components

import (
	"reminder-scheduler/internal/infra/duetime"
	"reminder-scheduler/internal/infra/repository"
	"reminder-scheduler/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			duetime.NewParser,
			fx.As(new(repository.DueTimeParser)),
		),
		// One instance serves both the request path and the scheduler
		fx.Annotate(
			repository.NewReminderRepository,
			fx.As(new(usecase.ReminderRepository)),
			fx.As(new(usecase.DueReminderStore)),
		),
	),
)
