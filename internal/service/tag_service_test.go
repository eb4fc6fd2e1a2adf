package service

import (
	"errors"
	"testing"
)

func TestTagService_FindOrCreateAndGetBySlug(t *testing.T) {
	tags := NewTagService(setupServiceTestDB(t))

	created, err := tags.FindOrCreate("Web Development")
	if err != nil {
		t.Fatalf("create tag: %v", err)
	}
	if created.Slug != "web-development" {
		t.Fatalf("expected slug web-development, got %q", created.Slug)
	}

	again, err := tags.FindOrCreate("web development")
	if err != nil {
		t.Fatalf("find tag: %v", err)
	}
	if again.ID != created.ID {
		t.Fatalf("expected existing tag to be reused")
	}

	found, err := tags.GetBySlug("web-development")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if found.Name != "Web Development" {
		t.Fatalf("unexpected tag name %q", found.Name)
	}

	if _, err := tags.GetBySlug("missing"); !errors.Is(err, ErrTagNotFound) {
		t.Fatalf("expected ErrTagNotFound, got %v", err)
	}
	if _, err := tags.FindOrCreate("  "); !errors.Is(err, ErrTagNameRequired) {
		t.Fatalf("expected ErrTagNameRequired, got %v", err)
	}
}

func TestTagService_ListOrdersByName(t *testing.T) {
	tags := NewTagService(setupServiceTestDB(t))
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if _, err := tags.FindOrCreate(name); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	list, err := tags.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 || list[0].Name != "alpha" || list[2].Name != "zeta" {
		t.Fatalf("unexpected order: %+v", list)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Hello, World!", "hello-world"},
		{"  spaced   out  ", "spaced-out"},
		{"snake_case-and-dash", "snake-case-and-dash"},
		{"Crème brûlée", "creme-brulee"},
		{"中文", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Fatalf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
