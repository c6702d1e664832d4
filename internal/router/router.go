package router

import (
	"os"
	"strings"

	"factboard/internal/handlers"
	"factboard/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the fact API onto an engine. The service is
// stateless, so there is no middleware beyond CORS for the browser
// client served from another origin.
func RegisterRoutes(r *gin.Engine, s *store.FactStore) {
	r.Use(cors.New(corsConfig()))

	factHandler := handlers.NewFactHandler(s)

	r.GET("/healthz", handlers.Health)

	// :key is an id when numeric, a category otherwise; :vote is one of
	// voteInteresting / voteMindblowing / voteFalse.
	r.GET("/facts", factHandler.List)
	r.GET("/facts/:key", factHandler.Get)
	r.POST("/facts", factHandler.Create)
	r.PUT("/facts/:key/:vote", factHandler.Vote)
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowAllOrigins = true
	}
	return cfg
}
