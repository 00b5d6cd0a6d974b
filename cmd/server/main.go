package main

import (
	"log"

	"codetrack-backend/internal/config"
	"codetrack-backend/internal/database"
	"codetrack-backend/internal/handlers"
	"codetrack-backend/internal/middleware"
	"codetrack-backend/internal/platforms"
	"codetrack-backend/internal/services"
	"codetrack-backend/internal/ws"

	_ "codetrack-backend/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           CodeTrack API
// @version         1.0
// @description     API for tracking coding-practice progress across LeetCode, Codeforces and GeeksForGeeks, with group-hosted private tests
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)
	database.Seed(db)

	hub := ws.NewHub()

	authService := services.NewAuthService(db, cfg.JWTSecret)
	userService := services.NewUserService(db)
	groupService := services.NewGroupService(db)
	scoringService := services.NewScoringService()
	testService := services.NewTestService(db, groupService, scoringService, cfg.StrictTests)
	sharedListService := services.NewSharedListService(db, groupService)
	listService := services.NewListService(db)
	compareService := services.NewCompareService(
		db,
		platforms.NewLeetcodeClient(),
		platforms.NewCodeforcesClient(),
		platforms.NewGFGClient(),
	)
	contestService := services.NewContestService(
		db,
		platforms.NewCodeforcesContestSource(),
		platforms.NewLeetcodeContestSource(),
	)
	contestService.StartCronJob(cfg.ContestRefreshSpec)

	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	groupHandler := handlers.NewGroupHandler(groupService)
	testHandler := handlers.NewTestHandler(testService, hub)
	sharedListHandler := handlers.NewSharedListHandler(sharedListService)
	listHandler := handlers.NewListHandler(listService)
	platformHandler := handlers.NewPlatformHandler(compareService)
	contestHandler := handlers.NewContestHandler(contestService)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/test/:id", wsHandler.HandleWebSocket)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		users := api.Group("/users")
		users.Use(middleware.JWTAuth(authService))
		{
			users.GET("/me", userHandler.GetMe)
			users.PUT("/me", userHandler.UpdateMe)
		}

		groups := api.Group("/groups")
		groups.Use(middleware.JWTAuth(authService))
		{
			groups.POST("", groupHandler.CreateGroup)
			groups.GET("", groupHandler.ListGroups)
			groups.GET("/join/:inviteCode", groupHandler.JoinByInviteCode)
			groups.GET("/:id", groupHandler.GetGroup)
			groups.PUT("/:id", groupHandler.UpdateGroup)
			groups.DELETE("/:id", groupHandler.DeleteGroup)
			groups.POST("/:id/members", groupHandler.AddMember)
			groups.PUT("/:id/members/:userId", groupHandler.SetRole)
			groups.DELETE("/:id/members/:userId", groupHandler.RemoveMember)
			groups.POST("/:id/shared-lists", sharedListHandler.Create)
			groups.GET("/:id/shared-lists", sharedListHandler.ListByGroup)
			groups.POST("/:id/tests", testHandler.CreateTest)
			groups.GET("/:id/tests", testHandler.ListTests)
		}

		sharedLists := api.Group("/shared-lists")
		sharedLists.Use(middleware.JWTAuth(authService))
		{
			sharedLists.GET("/:id", sharedListHandler.Get)
			sharedLists.PUT("/:id", sharedListHandler.Update)
			sharedLists.DELETE("/:id", sharedListHandler.Delete)
			sharedLists.POST("/:id/questions", sharedListHandler.AddQuestion)
			sharedLists.DELETE("/questions/:id", sharedListHandler.RemoveQuestion)
			sharedLists.POST("/questions/:id/progress", sharedListHandler.SetProgress)
		}

		tests := api.Group("/tests")
		tests.Use(middleware.JWTAuth(authService))
		{
			tests.GET("/:id", testHandler.GetTest)
			tests.DELETE("/:id", testHandler.DeleteTest)
			tests.POST("/:id/questions", testHandler.AddQuestions)
			tests.POST("/:id/participate", testHandler.Join)
			tests.POST("/:id/submit", testHandler.Submit)
			tests.PUT("/:id/status", testHandler.UpdateStatus)
			tests.GET("/:id/results", testHandler.Results)
		}

		lists := api.Group("/lists")
		lists.Use(middleware.JWTAuth(authService))
		{
			lists.POST("", listHandler.Create)
			lists.GET("", listHandler.List)
			lists.GET("/:id", listHandler.Get)
			lists.PUT("/:id", listHandler.Update)
			lists.DELETE("/:id", listHandler.Delete)
			lists.POST("/:id/questions", listHandler.AddQuestion)
			lists.PUT("/questions/:id/solved", listHandler.SetSolved)
			lists.DELETE("/questions/:id", listHandler.RemoveQuestion)
		}

		contests := api.Group("/contests")
		contests.Use(middleware.JWTAuth(authService))
		{
			contests.GET("", contestHandler.List)
			contests.GET("/upcoming", contestHandler.Upcoming)
			contests.GET("/:id", contestHandler.Get)
			contests.POST("/:id/participate", contestHandler.SetParticipation)
		}

		// Profile lookups work anonymously; a token only adds search history.
		fetch := api.Group("")
		fetch.Use(middleware.OptionalAuth(authService))
		{
			fetch.GET("/fetch/:platform/:identifier", platformHandler.Fetch)
			fetch.POST("/compare", platformHandler.Compare)
		}

		history := api.Group("/history")
		history.Use(middleware.JWTAuth(authService))
		{
			history.GET("", platformHandler.History)
			history.DELETE("/:id", platformHandler.DeleteHistory)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
