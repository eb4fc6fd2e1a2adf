package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/postline/internal/service"
)

// commentForm is the comment submission on a post detail page.
type commentForm struct {
	Name   string            `form:"name" binding:"required,max=80"`
	Email  string            `form:"email" binding:"required,email,max=254"`
	Body   string            `form:"body" binding:"required"`
	Errors map[string]string `form:"-" binding:"-"`
}

// shareForm is the recommend-by-email submission.
type shareForm struct {
	Name     string            `form:"name" binding:"required,max=25"`
	To       string            `form:"to" binding:"required,email"`
	Comments string            `form:"comments" binding:"max=2000"`
	Errors   map[string]string `form:"-" binding:"-"`
}

func bindCommentForm(c *gin.Context) commentForm {
	form := commentForm{
		Name:  strings.TrimSpace(c.PostForm("name")),
		Email: strings.TrimSpace(c.PostForm("email")),
		Body:  strings.TrimSpace(c.PostForm("body")),
	}
	form.Errors = validateForm(&form)
	return form
}

func (f commentForm) Valid() bool {
	return len(f.Errors) == 0
}

func (f commentForm) input() service.CommentInput {
	return service.CommentInput{Name: f.Name, Email: f.Email, Body: f.Body}
}

func bindShareForm(c *gin.Context) shareForm {
	form := shareForm{
		Name:     strings.TrimSpace(c.PostForm("name")),
		To:       strings.TrimSpace(c.PostForm("to")),
		Comments: strings.TrimSpace(c.PostForm("comments")),
	}
	form.Errors = validateForm(&form)
	return form
}

func (f shareForm) Valid() bool {
	return len(f.Errors) == 0
}

func (f shareForm) input() service.ShareInput {
	return service.ShareInput{Name: f.Name, To: f.To, Comments: f.Comments}
}

// validateForm runs gin's validator over form and returns one message per invalid field,
// keyed by the lower-cased field name.
func validateForm(form any) map[string]string {
	err := binding.Validator.ValidateStruct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"__all__": err.Error()}
	}

	messages := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		key := strings.ToLower(fe.Field())
		if _, exists := messages[key]; exists {
			continue
		}
		messages[key] = fieldMessage(fe)
	}
	return messages
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
	default:
		return "Enter a valid value."
	}
}
