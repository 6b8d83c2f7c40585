package order

import (
	"go.uber.org/fx"

	repo "github.com/antt-creator/beyondthetrenchesproject/internal/repository/order"
	authsvc "github.com/antt-creator/beyondthetrenchesproject/internal/service/auth"
)

// Module provides the intake and admin workflows to Fx, binding the concrete
// repository and identity implementations to the interfaces consumed here.
var Module = fx.Options(
	fx.Provide(func(r *repo.Repository) Repository { return r }),
	fx.Provide(func(s *authsvc.Service) Identity { return s }),
	fx.Provide(NewService),
	fx.Provide(NewAdmin),
)
