package main

import (
	"context"
	"fmt"
	"log"

	"github.com/common-nighthawk/go-figure"
	"github.com/dalemusser/waffle/app"
	"github.com/dalemusser/xenodash/internal/app/bootstrap"
)

func main() {
	banner(bootstrap.Hooks.Name)
	if err := app.Run(context.Background(), bootstrap.Hooks); err != nil {
		log.Fatal(err)
	}
}

func banner(name string) {
	figure.NewFigure(name, "cybermedium", true).Print()
	fmt.Println()
}
