package main

import (
	"github.com/joho/godotenv"

	"github.com/mbrandao/shipchat/internal/commands"
)

func main() {
	// Optional .env in the working directory; missing file is fine.
	_ = godotenv.Load()

	commands.Execute()
}
