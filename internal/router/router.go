package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"agency-console-api/internal/client"
	"agency-console-api/internal/config"
	"agency-console-api/internal/handler"
	"agency-console-api/internal/metrics"
	"agency-console-api/internal/middleware"
	"agency-console-api/internal/repository"
	"agency-console-api/internal/service"
)

// Config carries the dependencies the router needs to wire the
// application together
type Config struct {
	DB             *gorm.DB
	RedisClient    *redis.Client
	Logger         *zap.Logger
	Metrics        *metrics.Metrics
	S3Client       client.S3ClientInterface
	AIClient       client.AIClientInterface
	Mailer         client.MailSender
	JWT            config.JWTConfig
	Agency         config.AgencyConfig
	BasePath       string
	AllowedOrigins []string
}

// Setup builds the gin engine with all routes registered
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Repositories
	proposalRepo := repository.NewProposalRepository(cfg.DB)
	trackerRepo := repository.NewTrackerRepository(cfg.DB)
	customerRepo := repository.NewCustomerRepository(cfg.DB)
	postRepo := repository.NewPostRepository(cfg.DB)
	projectRepo := repository.NewProjectRepository(cfg.DB)
	serviceRepo := repository.NewServiceRepository(cfg.DB)
	messageRepo := repository.NewMessageRepository(cfg.DB)
	mediaRepo := repository.NewMediaRepository(cfg.DB)
	adminRepo := repository.NewAdminRepository(cfg.DB)

	// Services
	authService := service.NewAuthService(adminRepo, cfg.RedisClient, cfg.JWT, cfg.Agency, cfg.Logger)
	proposalService := service.NewProposalService(proposalRepo, trackerRepo, customerRepo, cfg.Mailer, cfg.Agency, cfg.Metrics, cfg.Logger)
	trackerService := service.NewTrackerService(trackerRepo, proposalRepo, cfg.S3Client, cfg.Metrics, cfg.Logger)
	postService := service.NewPostService(postRepo, cfg.S3Client, cfg.Logger)
	projectService := service.NewProjectService(projectRepo, cfg.S3Client, cfg.Logger)
	catalogService := service.NewCatalogService(serviceRepo, cfg.Logger)
	customerService := service.NewCustomerService(customerRepo, cfg.Logger)
	messageService := service.NewMessageService(messageRepo, cfg.Mailer, cfg.Agency, cfg.Metrics, cfg.Logger)
	mediaService := service.NewMediaService(mediaRepo, cfg.S3Client, cfg.Logger)
	generatorService := service.NewGeneratorService(cfg.AIClient, cfg.S3Client, cfg.Agency, cfg.Logger)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	proposalHandler := handler.NewProposalHandler(proposalService)
	trackerHandler := handler.NewTrackerHandler(trackerService)
	postHandler := handler.NewPostHandler(postService)
	projectHandler := handler.NewProjectHandler(projectService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	customerHandler := handler.NewCustomerHandler(customerService)
	messageHandler := handler.NewMessageHandler(messageService)
	mediaHandler := handler.NewMediaHandler(mediaService)
	generateHandler := handler.NewGenerateHandler(generatorService)

	healthCheck := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	readyCheck := func(c *gin.Context) {
		if cfg.DB == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		sqlDB, err := cfg.DB.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}

	r.GET("/health", healthCheck)
	r.GET("/ready", readyCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group(cfg.BasePath)
	{
		if cfg.BasePath != "" {
			api.GET("/health", healthCheck)
			api.GET("/ready", readyCheck)
			api.GET("/metrics", gin.WrapH(promhttp.Handler()))
		}

		// Public site routes
		api.POST("/auth/login", authHandler.Login)
		api.GET("/services", catalogHandler.ListPublicServices)
		api.GET("/services/:slug", catalogHandler.GetPublicService)
		api.GET("/posts", postHandler.ListPublicPosts)
		api.GET("/posts/:slug", postHandler.GetPublicPost)
		api.GET("/projects", projectHandler.ListPublicProjects)
		api.GET("/projects/:slug", projectHandler.GetPublicProject)
		api.GET("/proposals/:slug", proposalHandler.GetPublicProposal)
		api.GET("/trackers/:slug", trackerHandler.GetPublicTracker)
		api.POST("/trackers/:slug/vault", trackerHandler.VerifyVault)
		api.POST("/messages", messageHandler.SubmitMessage)

		// Console routes
		admin := api.Group("/admin")
		admin.Use(middleware.Auth(cfg.JWT.Secret, &middleware.RedisBlacklist{Client: cfg.RedisClient}))
		{
			admin.POST("/auth/logout", authHandler.Logout)
			admin.GET("/auth/me", authHandler.Me)

			admin.POST("/proposals", proposalHandler.CreateProposal)
			admin.GET("/proposals", proposalHandler.ListProposals)
			admin.GET("/proposals/:proposalId", proposalHandler.GetProposal)
			admin.PUT("/proposals/:proposalId", proposalHandler.UpdateProposal)
			admin.PUT("/proposals/:proposalId/status", proposalHandler.UpdateProposalStatus)
			admin.DELETE("/proposals/:proposalId", proposalHandler.DeleteProposal)

			admin.GET("/trackers/:trackerId", trackerHandler.GetTracker)
			admin.PUT("/trackers/:trackerId", trackerHandler.UpdateTracker)
			admin.POST("/trackers/:trackerId/updates", trackerHandler.AddUpdate)
			admin.POST("/trackers/:trackerId/files", trackerHandler.AddFile)
			admin.DELETE("/trackers/:trackerId/files", trackerHandler.RemoveFile)

			admin.POST("/posts", postHandler.CreatePost)
			admin.GET("/posts", postHandler.ListPosts)
			admin.GET("/posts/:postId", postHandler.GetPost)
			admin.PUT("/posts/:postId", postHandler.UpdatePost)
			admin.PUT("/posts/:postId/publish", postHandler.SetPublished)
			admin.DELETE("/posts/:postId", postHandler.DeletePost)

			admin.POST("/projects", projectHandler.CreateProject)
			admin.GET("/projects", projectHandler.ListProjects)
			admin.GET("/projects/:projectId", projectHandler.GetProject)
			admin.PUT("/projects/:projectId", projectHandler.UpdateProject)
			admin.DELETE("/projects/:projectId", projectHandler.DeleteProject)

			admin.POST("/services", catalogHandler.CreateService)
			admin.GET("/services", catalogHandler.ListServices)
			admin.GET("/services/:serviceId", catalogHandler.GetService)
			admin.PUT("/services/:serviceId", catalogHandler.UpdateService)
			admin.DELETE("/services/:serviceId", catalogHandler.DeleteService)

			admin.POST("/customers", customerHandler.CreateCustomer)
			admin.GET("/customers", customerHandler.ListCustomers)
			admin.GET("/customers/:customerId", customerHandler.GetCustomer)
			admin.PUT("/customers/:customerId", customerHandler.UpdateCustomer)
			admin.DELETE("/customers/:customerId", customerHandler.DeleteCustomer)

			admin.GET("/messages", messageHandler.ListMessages)
			admin.GET("/messages/:messageId", messageHandler.GetMessage)
			admin.PUT("/messages/:messageId/read", messageHandler.MarkRead)
			admin.DELETE("/messages/:messageId", messageHandler.DeleteMessage)

			admin.POST("/media/presigned-url", mediaHandler.IssueUploadURL)
			admin.POST("/media/confirm", mediaHandler.ConfirmAssets)
			admin.GET("/media", mediaHandler.ListAssets)
			admin.DELETE("/media/:assetId", mediaHandler.DeleteAsset)

			admin.POST("/generate/proposal", generateHandler.GenerateProposal)
			admin.POST("/generate/post", generateHandler.GeneratePost)
			admin.POST("/generate/image", generateHandler.GenerateImage)
		}
	}

	return r
}
