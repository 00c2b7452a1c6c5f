package main

import (
	"os"

	"horse.fit/landing/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:]))
}
