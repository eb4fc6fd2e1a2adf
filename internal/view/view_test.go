package view

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestTemplatesParseAllPages(t *testing.T) {
	tmpl, err := Templates()
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}
	for _, name := range []string{"list.html", "detail.html", "share.html", "404.html", "500.html"} {
		if tmpl.Lookup(name) == nil {
			t.Fatalf("expected template %s to be defined", name)
		}
	}
}

func TestNotFoundPageRendersMessage(t *testing.T) {
	tmpl, err := Templates()
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "404.html", map[string]any{
		"siteName": "Postline",
		"year":     2024,
		"message":  "No tag matches the given query.",
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(buf.String(), "No tag matches the given query.") {
		t.Fatalf("expected message in output: %s", buf.String())
	}
}

func TestTruncateWords(t *testing.T) {
	if got := truncateWords("one two  three", 5); got != "one two three" {
		t.Fatalf("unexpected %q", got)
	}
	if got := truncateWords("one two three four", 2); got != "one two …" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestFormatHelpers(t *testing.T) {
	ts := time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC)
	if got := formatDate(ts); got != "Mar 5, 2024" {
		t.Fatalf("unexpected date %q", got)
	}
	if got := formatDateTime(ts); got != "Mar 5, 2024 14:07" {
		t.Fatalf("unexpected datetime %q", got)
	}
	if formatDate(time.Time{}) != "" {
		t.Fatalf("zero time should format empty")
	}
	if got := pluralize(1, "comment", "comments"); got != "1 comment" {
		t.Fatalf("unexpected %q", got)
	}
	if got := pluralize(0, "comment", "comments"); got != "0 comments" {
		t.Fatalf("unexpected %q", got)
	}
	if got := tagURL("go"); got != "/posts/tag/go/" {
		t.Fatalf("unexpected %q", got)
	}
}
