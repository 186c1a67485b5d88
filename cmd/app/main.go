package main

import (
	"github.com/cinemood/core/internal/app"
	"github.com/cinemood/core/internal/config"
)

func main() {
	app.Go(config.Load())
}
