package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ganeshpodishetti/portfolio-api/internal/server/auth"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/services"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/storage"
)

// RouterDeps carries everything the route table needs.
type RouterDeps struct {
	Tokens         *auth.TokenService
	Auth           *services.AuthService
	Education      *services.EducationService
	Experiences    *services.ExperienceService
	Projects       *services.ProjectService
	Skills         *services.SkillService
	Messages       *services.MessageService
	SocialLinks    *services.SocialLinkService
	Assets         *storage.AssetStorage
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter builds the full route table. Auth endpoints sit behind the
// per-IP rate limiter; everything owner-scoped sits behind AuthMiddleware.
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, MessageResponse{Message: "ok"})
	})

	authHandlers := NewAuthHandlers(deps.Auth)
	educationHandlers := NewEducationHandlers(deps.Education)
	experienceHandlers := NewExperienceHandlers(deps.Experiences)
	projectHandlers := NewProjectHandlers(deps.Projects, deps.Assets)
	skillHandlers := NewSkillHandlers(deps.Skills)
	messageHandlers := NewMessageHandlers(deps.Messages)
	socialLinkHandlers := NewSocialLinkHandlers(deps.SocialLinks)
	assetHandlers := NewAssetHandlers(deps.Assets)

	v1 := r.Group("/api/v1")

	public := v1.Group("")
	public.Use(RateLimitMiddleware(deps.RateLimitRPS, deps.RateLimitBurst))
	{
		public.POST("/auth/register", authHandlers.Register)
		public.POST("/auth/login", authHandlers.Login)
		public.POST("/auth/refresh", authHandlers.Refresh)
		public.POST("/messages", messageHandlers.Submit)
	}

	authed := v1.Group("")
	authed.Use(AuthMiddleware(deps.Tokens))
	{
		authed.POST("/auth/logout", authHandlers.Logout)

		authed.GET("/education", educationHandlers.List)
		authed.POST("/education", educationHandlers.Create)
		authed.GET("/education/:id", educationHandlers.Get)
		authed.PUT("/education/:id", educationHandlers.Update)
		authed.DELETE("/education/:id", educationHandlers.Delete)

		authed.GET("/experiences", experienceHandlers.List)
		authed.POST("/experiences", experienceHandlers.Create)
		authed.GET("/experiences/:id", experienceHandlers.Get)
		authed.PUT("/experiences/:id", experienceHandlers.Update)
		authed.DELETE("/experiences/:id", experienceHandlers.Delete)

		authed.GET("/projects", projectHandlers.List)
		authed.POST("/projects", projectHandlers.Create)
		authed.GET("/projects/:id", projectHandlers.Get)
		authed.PUT("/projects/:id", projectHandlers.Update)
		authed.DELETE("/projects/:id", projectHandlers.Delete)
		authed.POST("/projects/:id/image", projectHandlers.PresignImageUpload)

		authed.GET("/skills", skillHandlers.List)
		authed.POST("/skills", skillHandlers.Create)
		authed.GET("/skills/:id", skillHandlers.Get)
		authed.PUT("/skills/:id", skillHandlers.Update)
		authed.DELETE("/skills/:id", skillHandlers.Delete)

		authed.GET("/messages", messageHandlers.List)
		authed.GET("/messages/:id", messageHandlers.Get)
		authed.PATCH("/messages/:id/read", messageHandlers.MarkRead)
		authed.DELETE("/messages/:id", messageHandlers.Delete)

		authed.GET("/social-links", socialLinkHandlers.List)
		authed.POST("/social-links", socialLinkHandlers.Create)
		authed.GET("/social-links/:id", socialLinkHandlers.Get)
		authed.PUT("/social-links/:id", socialLinkHandlers.Update)
		authed.DELETE("/social-links/:id", socialLinkHandlers.Delete)

		authed.GET("/assets/resume/upload-url", assetHandlers.ResumeUploadURL)
		authed.GET("/assets/resume/download-url", assetHandlers.ResumeDownloadURL)
	}

	return r
}
