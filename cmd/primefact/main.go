// cmd/primefact/main.go
package main

import (
	"primefact/internal/app"
	"primefact/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
