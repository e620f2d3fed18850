package main

import (
	_ "github.com/joho/godotenv/autoload"

	"tracklist/cmd/tracklist-cli/cmd"
)

func main() {
	cmd.Execute()
}
