package main

import (
	"repairdesk/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	routes.Run()
}
