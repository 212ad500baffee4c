package main

import (
	"github.com/Handsol/nbc-final-project/app"
	_ "github.com/Handsol/nbc-final-project/docs"
)

//	@title			Habit Tracker API
//	@version		1.0
//	@description	REST API for personal habit and todo tracking.

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	// setup and run app
	err := app.SetupAndRunApp()
	if err != nil {
		panic(err)
	}
}
