package models

import (
	"testing"
	"time"
)

func validCreate() CreateBlogPost {
	return CreateBlogPost{
		Title:    "Título",
		Slug:     "titulo",
		Excerpt:  "Resumo",
		Content:  "<p>Texto</p>",
		ImageURL: "https://example.com/img.jpg",
		Category: "Pesquisa",
	}
}

func TestCreateBlogPost_MissingFields(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		if missing := validCreate().MissingFields(); len(missing) != 0 {
			t.Errorf("MissingFields() = %v, want empty", missing)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		missing := CreateBlogPost{}.MissingFields()
		want := []string{"title", "slug", "excerpt", "content", "image_url", "category"}
		if len(missing) != len(want) {
			t.Fatalf("MissingFields() has %d entries, want %d: %v", len(missing), len(want), missing)
		}
		for _, name := range want {
			if missing[name] != "required" {
				t.Errorf("MissingFields()[%q] = %q, want %q", name, missing[name], "required")
			}
		}
	})

	t.Run("optional fields not required", func(t *testing.T) {
		in := validCreate()
		in.Author = ""
		in.ReadTime = ""
		in.Published = nil
		if missing := in.MissingFields(); len(missing) != 0 {
			t.Errorf("MissingFields() = %v, want empty", missing)
		}
	})
}

func TestCreateBlogPost_NewPost(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		before := time.Now().UTC()
		post := validCreate().NewPost()
		after := time.Now().UTC()

		if post.ID == "" {
			t.Error("ID is empty")
		}
		if post.Author != DefaultAuthor {
			t.Errorf("Author = %q, want %q", post.Author, DefaultAuthor)
		}
		if post.ReadTime != DefaultReadTime {
			t.Errorf("ReadTime = %q, want %q", post.ReadTime, DefaultReadTime)
		}
		if !post.Published {
			t.Error("Published = false, want true")
		}
		if post.CreatedAt.Before(before) || post.CreatedAt.After(after) {
			t.Errorf("CreatedAt = %v, want between %v and %v", post.CreatedAt, before, after)
		}
		if post.CreatedAt.Location() != time.UTC {
			t.Errorf("CreatedAt location = %v, want UTC", post.CreatedAt.Location())
		}
	})

	t.Run("explicit values kept", func(t *testing.T) {
		pub := false
		in := validCreate()
		in.Author = "Dra. Silva"
		in.ReadTime = "8 min"
		in.Published = &pub

		post := in.NewPost()
		if post.Author != "Dra. Silva" {
			t.Errorf("Author = %q, want %q", post.Author, "Dra. Silva")
		}
		if post.ReadTime != "8 min" {
			t.Errorf("ReadTime = %q, want %q", post.ReadTime, "8 min")
		}
		if post.Published {
			t.Error("Published = true, want false")
		}
	})

	t.Run("unique ids", func(t *testing.T) {
		in := validCreate()
		if in.NewPost().ID == in.NewPost().ID {
			t.Error("NewPost() generated identical ids")
		}
	})
}

func TestUpdateBlogPost_Patch(t *testing.T) {
	t.Run("empty update", func(t *testing.T) {
		if patch := (UpdateBlogPost{}).Patch(); len(patch) != 0 {
			t.Errorf("Patch() = %v, want empty", patch)
		}
	})

	t.Run("only supplied fields", func(t *testing.T) {
		title := "Novo"
		pub := false
		in := UpdateBlogPost{Title: &title, Published: &pub}

		patch := in.Patch()
		if len(patch) != 2 {
			t.Fatalf("Patch() has %d entries, want 2: %v", len(patch), patch)
		}
		if patch["title"] != "Novo" {
			t.Errorf("patch[title] = %v, want %q", patch["title"], "Novo")
		}
		if patch["published"] != false {
			t.Errorf("patch[published] = %v, want false", patch["published"])
		}
	})

	t.Run("explicit empty string is applied", func(t *testing.T) {
		empty := ""
		patch := UpdateBlogPost{Excerpt: &empty}.Patch()
		if v, ok := patch["excerpt"]; !ok || v != "" {
			t.Errorf("patch[excerpt] = %v (present=%v), want empty string", v, ok)
		}
	})
}
