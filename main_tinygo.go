//go:build tinygo

package main

import (
	"galton/app"
	"galton/board/config"
	"galton/hal"
)

func main() {
	app.Run(hal.New, config.Default())
}
