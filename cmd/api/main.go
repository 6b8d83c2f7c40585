package main

import (
	"go.uber.org/fx"

	"github.com/antt-creator/beyondthetrenchesproject/internal/app"
)

func main() {
	fx.New(app.Module).Run()
}
