// Command filesmanager runs the files-manager HTTP service.
package main

import (
	"context"

	"github.com/dalemusser/waffle/app"

	"github.com/RajaaKacemi/alx-files-manager/internal/app/bootstrap"
)

func main() {
	app.Run(context.Background(), bootstrap.Hooks)
}
