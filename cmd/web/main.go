package main

import (
	"skydraw_backend/internal/app"
)

func main() {
	app.Run()
}
