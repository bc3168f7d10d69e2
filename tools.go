//go:build tools

package main

// Herramientas de desarrollo fijadas en go.mod (regenerar docs: swag init -g cmd/api/main.go).
import (
	_ "github.com/swaggo/swag/cmd/swag"
)
