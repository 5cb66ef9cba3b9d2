// cmd/pdbreorder/main.go
package main

import (
	"pdbreorder/internal/app"
	"pdbreorder/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
