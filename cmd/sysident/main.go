package main

import (
	"github.com/cashapp/sysident/app"
)

var version = "devel"

func main() {
	app.Main(app.Config{
		Version: version,
	})
}
