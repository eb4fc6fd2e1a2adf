package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/postline/internal/db"
)

// ShareService emails a post recommendation on behalf of a reader.
type ShareService struct {
	mailer Mailer
	from   string
}

// ShareInput holds a validated share form.
type ShareInput struct {
	Name     string
	To       string
	Comments string
}

// NewShareService creates a ShareService sending from the fixed address from.
func NewShareService(mailer Mailer, from string) *ShareService {
	return &ShareService{mailer: mailer, from: from}
}

// ComposeShare builds the recommendation email for post reachable at postURL.
func ComposeShare(post *db.Post, postURL, from string, input ShareInput) Message {
	name := strings.TrimSpace(input.Name)
	return Message{
		Subject: fmt.Sprintf("%s recommends you read %s", name, post.Title),
		Body: fmt.Sprintf("Read %s at %s\n\n%s's comments: %s",
			post.Title, postURL, name, strings.TrimSpace(input.Comments)),
		From: from,
		To:   []string{strings.TrimSpace(input.To)},
	}
}

// Share composes and sends one email to input.To.
func (s *ShareService) Share(ctx context.Context, post *db.Post, postURL string, input ShareInput) (Message, error) {
	msg := ComposeShare(post, postURL, s.from, input)
	if err := s.mailer.Send(ctx, msg); err != nil {
		return msg, fmt.Errorf("send share mail: %w", err)
	}
	return msg, nil
}
