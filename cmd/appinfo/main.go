// filepath: cmd/appinfo/main.go
package main

import (
	"appinfo/internal/cli"
)

// @title appinfo API
// @version 1.0.0
// @description Static application metadata resolved from configuration.
// @BasePath /
// @schemes http

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
