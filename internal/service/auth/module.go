package auth

import "go.uber.org/fx"

// Module provides the identity gate to Fx.
var Module = fx.Provide(NewService)
