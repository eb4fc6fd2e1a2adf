package db

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:db-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := Open(dsn, logger.Silent)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return gdb
}

func TestPostAbsolutePath(t *testing.T) {
	tests := []struct {
		name    string
		publish time.Time
		slug    string
		want    string
	}{
		{
			name:    "pads month and day",
			publish: time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC),
			slug:    "hello",
			want:    "/posts/2024/03/05/hello/",
		},
		{
			name:    "converts to utc",
			publish: time.Date(2024, 1, 1, 1, 0, 0, 0, time.FixedZone("UTC+8", 8*3600)),
			slug:    "new-year",
			want:    "/posts/2023/12/31/new-year/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Post{Slug: tt.slug, Publish: tt.publish}.AbsolutePath()
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPostIsPublished(t *testing.T) {
	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)

	if !(Post{Status: StatusPublished, Publish: now.Add(-time.Hour)}).IsPublished(now) {
		t.Fatalf("expected past published post to be visible")
	}
	if (Post{Status: StatusPublished, Publish: now.Add(time.Hour)}).IsPublished(now) {
		t.Fatalf("scheduled post should not be visible yet")
	}
	if (Post{Status: StatusDraft, Publish: now.Add(-time.Hour)}).IsPublished(now) {
		t.Fatalf("draft should never be visible")
	}
}

func TestPublishedScopes(t *testing.T) {
	gdb := openTestDB(t)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	seed := []Post{
		{Title: "visible", Slug: "visible", Status: StatusPublished, Publish: time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)},
		{Title: "late same day", Slug: "late", Status: StatusPublished, Publish: time.Date(2024, 3, 5, 23, 59, 0, 0, time.UTC)},
		{Title: "draft", Slug: "draft", Status: StatusDraft, Publish: time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)},
		{Title: "future", Slug: "future", Status: StatusPublished, Publish: time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)},
		{Title: "next day", Slug: "next", Status: StatusPublished, Publish: time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)},
	}
	for i := range seed {
		if err := gdb.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed post %q: %v", seed[i].Title, err)
		}
	}

	var published int64
	if err := gdb.Model(&Post{}).Scopes(Published(now)).Count(&published).Error; err != nil {
		t.Fatalf("count published: %v", err)
	}
	if published != 3 {
		t.Fatalf("expected 3 published posts, got %d", published)
	}

	var onDay []Post
	if err := gdb.Scopes(Published(now), PublishedOn(2024, 3, 5)).Order("publish asc").Find(&onDay).Error; err != nil {
		t.Fatalf("query by day: %v", err)
	}
	if len(onDay) != 2 {
		t.Fatalf("expected 2 posts on 2024-03-05, got %d", len(onDay))
	}
	if onDay[0].Slug != "visible" || onDay[1].Slug != "late" {
		t.Fatalf("unexpected posts on day: %q, %q", onDay[0].Slug, onDay[1].Slug)
	}
}

func TestCommentActiveDefaultsToTrue(t *testing.T) {
	gdb := openTestDB(t)

	post := Post{Title: "t", Slug: "t", Status: StatusPublished, Publish: time.Now().UTC()}
	if err := gdb.Create(&post).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}

	comment := Comment{PostID: post.ID, Name: "a", Email: "a@example.com", Body: "hi"}
	if err := gdb.Create(&comment).Error; err != nil {
		t.Fatalf("create comment: %v", err)
	}

	var stored Comment
	if err := gdb.First(&stored, comment.ID).Error; err != nil {
		t.Fatalf("reload comment: %v", err)
	}
	if !stored.Active {
		t.Fatalf("expected new comment to be active")
	}
}

func TestEnsureUserCreatesOnce(t *testing.T) {
	gdb := openTestDB(t)

	first, err := EnsureUser(gdb, " author ", "secret")
	if err != nil {
		t.Fatalf("ensure user: %v", err)
	}
	if first == nil || first.Username != "author" {
		t.Fatalf("expected user author, got %+v", first)
	}
	if !first.CheckPassword("secret") {
		t.Fatalf("expected stored hash to match password")
	}

	second, err := EnsureUser(gdb, "author", "other")
	if err != nil {
		t.Fatalf("ensure existing user: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected existing user to be returned")
	}

	skipped, err := EnsureUser(gdb, "", "secret")
	if err != nil || skipped != nil {
		t.Fatalf("expected empty username to be skipped, got %v, %v", skipped, err)
	}

	var count int64
	gdb.Model(&User{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 user, got %d", count)
	}
}
