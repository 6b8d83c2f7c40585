package http

import (
	"go.uber.org/fx"

	admintransport "github.com/antt-creator/beyondthetrenchesproject/internal/transport/http/admin"
	catalogtransport "github.com/antt-creator/beyondthetrenchesproject/internal/transport/http/catalog"
	ordertransport "github.com/antt-creator/beyondthetrenchesproject/internal/transport/http/order"
)

// Module aggregates all HTTP transport handlers.
var Module = fx.Options(
	ordertransport.Module,
	admintransport.Module,
	catalogtransport.Module,
)
