package router

import (
	"net/http"
	"time"

	"tracekit/internal/classifier"
	"tracekit/internal/config"
	"tracekit/internal/handlers"
	"tracekit/internal/models"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func errorHandler(c *gin.Context, info ratelimit.Info) {
	c.String(http.StatusTooManyRequests, "Too many requests. Try again later.")
}

func Setup(log *zap.Logger, letters *models.LetterSet, clf classifier.Classifier) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	// Anonymous learner identity lives in a long-lived cookie; no accounts.
	store := cookie.NewStore([]byte(config.Conf.Server.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // Set to true in production
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400 * 365,
	})
	router.Use(sessions.Sessions("tracekit", store))

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	router.Use(func(c *gin.Context) {
		err := secureMiddleware.Process(c.Writer, c.Request)
		if err != nil {
			c.Abort()
			return
		}
	})

	sessionsHandler := handlers.NewSessionsHandler(log, letters, clf)
	chartsHandler := handlers.NewChartsHandler(log)

	// Session ingest is the expensive path; rate limit it per client IP.
	rateLimitStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 30,
	})
	limiter := ratelimit.RateLimiter(rateLimitStore, &ratelimit.Options{
		ErrorHandler: errorHandler,
		KeyFunc:      keyFunc,
	})

	router.GET("/healthz", sessionsHandler.Health)

	api := router.Group("/api")
	{
		api.POST("/sessions", limiter, sessionsHandler.SubmitSession)
		api.GET("/sessions/:id", sessionsHandler.GetSession)
		api.GET("/learners/:id/sessions", sessionsHandler.ListLearnerSessions)
		api.GET("/letters", sessionsHandler.ListLetters)
	}

	chartRoutes := router.Group("/charts")
	{
		chartRoutes.GET("/timeline", chartsHandler.Timeline)
		chartRoutes.GET("/metrics", chartsHandler.Metrics)
	}

	return router
}
