package main

import (
	"context"
	"os"
	"time"

	"github.com/RohithShyam024/credkit/internal/app"
)

func main() {
	application := app.New()

	code := application.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	application.Stop(ctx)

	os.Exit(code)
}
