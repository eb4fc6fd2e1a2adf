package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/postline/internal/config"
	"github.com/postline/internal/db"
	"github.com/postline/internal/service"
	"gorm.io/gorm"
)

type seedPost struct {
	Title  string
	Body   string
	Status string
	Age    time.Duration
	Tags   []string
}

var seedPosts = []seedPost{
	{
		Title:  "Who's Afraid of the Big Bad Database",
		Body:   "Most blogs only need a single table for posts.\n\nStart with **sqlite**, measure, and move on when it hurts.",
		Status: db.StatusPublished,
		Age:    10 * 24 * time.Hour,
		Tags:   []string{"databases", "opinion"},
	},
	{
		Title:  "Paginating Without Tears",
		Body:   "Three posts per page keeps the front page short.\n\n- ask for `?page=2`\n- or jump with `?page=last`",
		Status: db.StatusPublished,
		Age:    8 * 24 * time.Hour,
		Tags:   []string{"web"},
	},
	{
		Title:  "Comment Moderation Basics",
		Body:   "New comments are visible immediately. Inactive comments are hidden from readers but kept in the store.",
		Status: db.StatusPublished,
		Age:    6 * 24 * time.Hour,
		Tags:   []string{"web", "community"},
	},
	{
		Title:  "Sharing Posts by Email",
		Body:   "Every post has a share link. Fill in your name and a friend's address and a recommendation is mailed to them.",
		Status: db.StatusPublished,
		Age:    4 * 24 * time.Hour,
		Tags:   []string{"community"},
	},
	{
		Title:  "Tags Are Just Slugs",
		Body:   "A tag page lists every published post with that tag, newest first.",
		Status: db.StatusPublished,
		Age:    2 * 24 * time.Hour,
		Tags:   []string{"web", "databases"},
	},
	{
		Title:  "Unfinished Thoughts",
		Body:   "This draft never shows up in lists.",
		Status: db.StatusDraft,
		Age:    24 * time.Hour,
		Tags:   []string{"opinion"},
	},
}

var seedComments = []service.CommentInput{
	{Name: "Ada", Email: "ada@example.com", Body: "Clear and to the point."},
	{Name: "Linus", Email: "linus@example.com", Body: "Pagination at three per page feels right."},
}

// 测试数据生成器
func main() {
	// 初始化数据库
	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	fmt.Println("开始生成测试数据...")

	username, password := cfg.AuthorUserName, cfg.AuthorPassword
	if username == "" || password == "" {
		username, password = "admin", "admin123"
	}
	author, err := db.EnsureUser(db.DB, username, password)
	if err != nil {
		log.Fatal("创建作者失败:", err)
	}

	created, err := createTestPosts(db.DB, author, time.Now().UTC())
	if err != nil {
		log.Fatal("创建文章失败:", err)
	}

	tags, err := service.NewTagService(db.DB).List()
	if err != nil {
		log.Fatal("读取标签失败:", err)
	}
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}

	fmt.Println("测试数据生成完成！")
	fmt.Printf("作者: %s\n", author.Username)
	fmt.Printf("文章: %d 篇\n", created)
	fmt.Printf("标签: %s\n", strings.Join(names, "、"))
}

// createTestPosts 在文章表为空时写入示例文章与评论，返回新建文章数。
func createTestPosts(gdb *gorm.DB, author *db.User, now time.Time) (int, error) {
	var count int64
	if err := gdb.Model(&db.Post{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		fmt.Println("文章已存在，跳过创建")
		return 0, nil
	}

	posts := service.NewPostService(gdb)
	comments := service.NewCommentService(gdb)

	var authorID *uint
	if author != nil {
		authorID = &author.ID
	}

	created := 0
	for i, seed := range seedPosts {
		post, err := posts.Create(service.PostInput{
			Title:    seed.Title,
			Body:     seed.Body,
			Status:   seed.Status,
			Publish:  now.Add(-seed.Age),
			AuthorID: authorID,
			TagNames: seed.Tags,
		})
		if err != nil {
			return created, fmt.Errorf("create post %q: %w", seed.Title, err)
		}
		created++

		if i == 0 {
			for _, input := range seedComments {
				if _, err := comments.Create(post.ID, input); err != nil {
					return created, fmt.Errorf("create comment: %w", err)
				}
			}
		}
	}

	fmt.Println("✅ 测试文章创建完成")
	return created, nil
}
