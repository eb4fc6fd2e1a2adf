package handler

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	sessionCommenterName  = "commenter_name"
	sessionCommenterEmail = "commenter_email"
)

// rememberedCommentForm returns an empty comment form pre-filled with the
// name and email of the reader's last accepted comment.
func rememberedCommentForm(c *gin.Context) commentForm {
	session := sessions.Default(c)
	form := commentForm{}
	if name, ok := session.Get(sessionCommenterName).(string); ok {
		form.Name = name
	}
	if email, ok := session.Get(sessionCommenterEmail).(string); ok {
		form.Email = email
	}
	return form
}

func (a *API) rememberCommenter(c *gin.Context, form commentForm) {
	session := sessions.Default(c)
	session.Set(sessionCommenterName, form.Name)
	session.Set(sessionCommenterEmail, form.Email)
	if err := session.Save(); err != nil {
		// 会话保存失败不影响评论结果
		a.log.Warn("failed to save commenter session", zap.Error(err))
	}
}
