// cmd/blogapi/main.go
package main

import (
	"context"

	"github.com/chronospesquisa/blogapi/internal/app/bootstrap"
	"github.com/dalemusser/waffle/app"
)

func main() {
	app.Run(context.Background(), bootstrap.Hooks)
}
