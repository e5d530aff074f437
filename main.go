package main

import (
	"webby.dev/backend/cmd/app"
)

func main() {
	app.Run()
}
