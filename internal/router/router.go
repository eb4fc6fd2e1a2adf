package router

import (
	"html/template"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/postline/internal/db"
	"github.com/postline/internal/handler"
	"github.com/postline/internal/logger"
	"github.com/postline/internal/service"
	"github.com/postline/internal/view"
	"go.uber.org/zap"
)

// Options carries what SetupRouter needs beyond the global database.
type Options struct {
	SessionSecret string
	SiteName      string
	MailFrom      string
	Mailer        service.Mailer
	Logger        *zap.Logger
}

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(opts Options) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = logger.Log
	}
	mailer := opts.Mailer
	if mailer == nil {
		mailer = service.NewLogMailer(log)
	}
	secret := opts.SessionSecret
	if secret == "" {
		secret = "postline-dev-secret"
	}

	r := gin.New()
	r.Use(logger.GinMiddleware(log), logger.GinRecovery(log))

	// 配置会话中间件
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{Path: "/", MaxAge: 30 * 24 * 60 * 60, HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions("postline_session", store))

	r.SetHTMLTemplate(template.Must(view.Templates()))

	api := handler.NewAPI(db.DB, mailer, handler.Options{
		SiteName: opts.SiteName,
		MailFrom: opts.MailFrom,
		Logger:   log,
	})

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/posts/")
	})

	posts := r.Group("/posts")
	{
		posts.GET("/", api.ShowPostList)
		posts.GET("/tag/:tag_slug/", api.ShowPostListByTag)

		// The share route reuses the :year wildcard as the post id.
		posts.GET("/:year/share/", api.SharePost)
		posts.POST("/:year/share/", api.SharePost)

		posts.GET("/:year/:month/:day/:slug/", api.PostDetail)
		posts.POST("/:year/:month/:day/:slug/", api.PostDetail)
	}

	r.NoRoute(api.NotFound)

	return r
}
