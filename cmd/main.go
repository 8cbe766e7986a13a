package main

import (
	"fmt"
	"os"

	"github.com/abhay7074/nexamind-payments/config"
	"github.com/abhay7074/nexamind-payments/internal/app"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Println("Error reading config file", err)
		os.Exit(1)
	}
	myApp := &app.App{}
	myApp.Initialize(cfg)
	myApp.Run()
}
