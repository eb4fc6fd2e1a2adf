package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/postline/internal/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	posts    *service.PostService
	tags     *service.TagService
	comments *service.CommentService
	share    *service.ShareService
	siteName string
	log      *zap.Logger
}

// Options configures an API.
type Options struct {
	SiteName string
	MailFrom string
	Logger   *zap.Logger
}

// NewAPI constructs a handler set with shared services.
func NewAPI(db *gorm.DB, mailer service.Mailer, opts Options) *API {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	siteName := opts.SiteName
	if siteName == "" {
		siteName = "Postline"
	}

	return &API{
		posts:    service.NewPostService(db),
		tags:     service.NewTagService(db),
		comments: service.NewCommentService(db),
		share:    service.NewShareService(mailer, opts.MailFrom),
		siteName: siteName,
		log:      log,
	}
}

func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	if _, exists := payload["siteName"]; !exists {
		payload["siteName"] = a.siteName
	}
	if _, exists := payload["year"]; !exists {
		payload["year"] = time.Now().Year()
	}

	c.HTML(status, template, payload)
}
