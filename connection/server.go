package connection

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"todoboard/auth"
	todocontroller "todoboard/controller/todo"
	usercontroller "todoboard/controller/user"
	"todoboard/logger"
	"todoboard/services"
)

func StartServer() {
	if err := godotenv.Load(); err != nil {
		logger.Sugar.Info("no .env file found")
	}

	store, verifier, directory := buildBackends()

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	todoService := services.NewTodoService(store)
	todocontroller.TodoController(router, todoService, verifier)
	usercontroller.UserController(router, directory, verifier)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Sugar.Infow("server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		logger.Sugar.Fatalw("server failed", "error", err)
	}
}

// buildBackends wires the store, verifier, and directory from the
// environment. TODO_STORE=memory and AUTH_MODE=hmac select the
// credential-free dev backends; anything else uses Firebase.
func buildBackends() (services.TodoStore, auth.TokenVerifier, auth.UserDirectory) {
	useMemory := os.Getenv("TODO_STORE") == "memory"
	useHMAC := os.Getenv("AUTH_MODE") == "hmac"

	var store services.TodoStore
	var verifier auth.TokenVerifier
	var directory auth.UserDirectory

	if !useMemory || !useHMAC {
		firestoreClient, authClient, err := FBConnection()
		if err != nil {
			logger.Sugar.Fatalw("failed to initialize firebase", "error", err)
		}
		if !useMemory {
			store = services.NewFirestoreTodoStore(firestoreClient)
		}
		if !useHMAC {
			verifier = auth.NewFirebaseVerifier(authClient)
			directory = auth.NewFirebaseDirectory(authClient)
		}
	}

	if useMemory {
		store = services.NewMemoryTodoStore()
		logger.Sugar.Info("using in-memory todo store")
	}
	if useHMAC {
		secret := os.Getenv("JWT_SECRET_KEY")
		if secret == "" {
			logger.Sugar.Fatal("JWT_SECRET_KEY is required when AUTH_MODE=hmac")
		}
		verifier = auth.NewHMACVerifier([]byte(secret))
		directory = auth.NewStaticDirectory(auth.ParseStaticUsers(os.Getenv("DEV_USERS")))
	}

	return store, verifier, directory
}
