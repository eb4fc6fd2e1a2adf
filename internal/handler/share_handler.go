package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SharePost renders the share form and emails the recommendation on a valid POST.
// Mail delivery failures end the request with a 500.
func (a *API) SharePost(c *gin.Context) {
	id, err := parseUintParam(c, postIDParam)
	if err != nil {
		a.notFound(c, "No post matches the given query.")
		return
	}

	post, err := a.posts.GetPublished(id)
	if err != nil {
		a.handleLookupError(c, err)
		return
	}

	form := shareForm{}
	sent := false

	if c.Request.Method == http.MethodPost {
		form = bindShareForm(c)
		if form.Valid() {
			postURL := absoluteURL(c, post.AbsolutePath())
			if _, err := a.share.Share(c.Request.Context(), post, postURL, form.input()); err != nil {
				a.serverError(c, err)
				return
			}
			sent = true
		}
	}

	a.renderHTML(c, http.StatusOK, "share.html", gin.H{
		"title": "Share a post",
		"post":  post,
		"form":  form,
		"sent":  sent,
	})
}
