package main

import (
	"todoboard/connection"
	"todoboard/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	logger.Init()
	gin.SetMode(gin.ReleaseMode)
	connection.StartServer()
}
