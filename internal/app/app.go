package app

import (
	"go.uber.org/fx"

	"github.com/antt-creator/beyondthetrenchesproject/internal/cache"
	"github.com/antt-creator/beyondthetrenchesproject/internal/config"
	"github.com/antt-creator/beyondthetrenchesproject/internal/database"
	"github.com/antt-creator/beyondthetrenchesproject/internal/logger"
	"github.com/antt-creator/beyondthetrenchesproject/internal/messaging"
	"github.com/antt-creator/beyondthetrenchesproject/internal/observability"
	repositoryorder "github.com/antt-creator/beyondthetrenchesproject/internal/repository/order"
	httpserver "github.com/antt-creator/beyondthetrenchesproject/internal/server/http"
	serviceauth "github.com/antt-creator/beyondthetrenchesproject/internal/service/auth"
	serviceorder "github.com/antt-creator/beyondthetrenchesproject/internal/service/order"
	transporthttp "github.com/antt-creator/beyondthetrenchesproject/internal/transport/http"
	"github.com/antt-creator/beyondthetrenchesproject/internal/worker"
	workerorder "github.com/antt-creator/beyondthetrenchesproject/internal/worker/order"
)

// Core provides the foundational modules shared across executables.
var Core = fx.Options(
	config.Module,
	cache.Module,
	database.Module,
	logger.Module,
	messaging.Module,
	observability.Module,
	repositoryorder.Module,
	serviceauth.Module,
	serviceorder.Module,
)

// HTTP wires the HTTP transport on top of the core modules.
var HTTP = fx.Options(
	Core,
	httpserver.Module,
	transporthttp.Module,
)

// Worker exposes background worker processing.
var Worker = fx.Options(
	Core,
	worker.Module,
	workerorder.Module,
)

// Module is the default application wiring (HTTP only).
var Module = HTTP
