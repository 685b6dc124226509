// cmd/samview/main.go
package main

import (
	"github.com/lorainelab/htsjdk-igb/internal/app"
	"github.com/lorainelab/htsjdk-igb/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
