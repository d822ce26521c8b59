package main

import (
	"os"

	"github.com/AmitC04/fitlife-lk/config"
	"github.com/AmitC04/fitlife-lk/routes"
	"github.com/AmitC04/fitlife-lk/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitSES()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	r := routes.SetupRouter()
	r.Run(":" + port)
}
