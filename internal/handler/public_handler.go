package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/postline/internal/db"
	"github.com/postline/internal/service"
)

// ShowPostList renders published posts, three per page.
func (a *API) ShowPostList(c *gin.Context) {
	result, err := a.posts.ListPublished(c.Query("page"))
	if err != nil {
		a.handleLookupError(c, err)
		return
	}

	a.renderHTML(c, http.StatusOK, "list.html", gin.H{
		"title": "My Blog",
		"posts": result.Posts,
		"page":  result.Page,
	})
}

// ShowPostListByTag renders published posts carrying the tag named by :tag_slug.
func (a *API) ShowPostListByTag(c *gin.Context) {
	tag, err := a.tags.GetBySlug(c.Param("tag_slug"))
	if err != nil {
		a.handleLookupError(c, err)
		return
	}

	result, err := a.posts.ListPublishedByTag(tag, c.Query("page"))
	if err != nil {
		a.handleLookupError(c, err)
		return
	}

	a.renderHTML(c, http.StatusOK, "list.html", gin.H{
		"title": "Posts tagged " + tag.Name,
		"posts": result.Posts,
		"page":  result.Page,
		"tag":   tag,
	})
}

// PostDetail renders a published post and handles comment submissions on POST.
//
// Active comments are loaded before a new comment is saved, so a comment
// accepted by this request is shown only through new_comment.
func (a *API) PostDetail(c *gin.Context) {
	year, errYear := parseIntParam(c, "year")
	month, errMonth := parseIntParam(c, "month")
	day, errDay := parseIntParam(c, "day")
	if errYear != nil || errMonth != nil || errDay != nil {
		a.notFound(c, "No post matches the given query.")
		return
	}

	post, err := a.posts.GetPublishedByDate(year, month, day, c.Param("slug"))
	if err != nil {
		a.handleLookupError(c, err)
		return
	}

	comments, err := a.comments.ListActive(post.ID)
	if err != nil {
		a.serverError(c, err)
		return
	}

	var newComment *db.Comment
	form := rememberedCommentForm(c)

	if c.Request.Method == http.MethodPost {
		form = bindCommentForm(c)
		if form.Valid() {
			newComment, err = a.comments.Create(post.ID, form.input())
			if err != nil {
				a.serverError(c, err)
				return
			}
			a.rememberCommenter(c, form)
		}
	}

	content, err := service.RenderMarkdown(post.Body)
	if err != nil {
		a.serverError(c, err)
		return
	}

	a.renderHTML(c, http.StatusOK, "detail.html", gin.H{
		"title":        post.Title,
		"post":         post,
		"content":      content,
		"comments":     comments,
		"new_comment":  newComment,
		"comment_form": form,
	})
}

// NotFound renders the 404 page for unmatched routes.
func (a *API) NotFound(c *gin.Context) {
	a.notFound(c, "")
}
