package main

import (
	"github.com/vidyarthi-tech/face-backend/internal/app"
)

func main() {
	app.Run()
}
