package components

import (
	"closet-by-era/internal/infra/readstore"
	"closet-by-era/internal/infra/writerepo"
	"closet-by-era/internal/usecase/commands"
	"closet-by-era/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Read side
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
		),
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(queries.CustomerReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Write side
		fx.Annotate(
			writerepo.NewCouponRepository,
			fx.As(new(commands.CouponWriteRepository)),
		),
		fx.Annotate(
			writerepo.NewUserRepository,
			fx.As(new(commands.UserWriteRepository)),
		),
	),
)
