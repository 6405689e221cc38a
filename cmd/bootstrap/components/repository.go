package components

import (
	"catchpac/internal/infra/db"
	"catchpac/internal/infra/repository"
	"catchpac/internal/usecase/commands"
	"catchpac/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		// User
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
			fx.As(new(commands.CommandUserReads)),
			fx.As(new(queries.UserReadStore)),
		),
		// Request
		fx.Annotate(
			repository.NewRequestRepository,
			fx.As(new(commands.RequestRepository)),
			fx.As(new(commands.RequestWriteRepository)),
			fx.As(new(queries.RequestReadStore)),
		),
		// Quote
		fx.Annotate(
			repository.NewQuoteRepository,
			fx.As(new(commands.QuoteRepository)),
			fx.As(new(commands.QuoteViews)),
			fx.As(new(queries.QuoteReadStore)),
			fx.As(new(queries.PricingReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
