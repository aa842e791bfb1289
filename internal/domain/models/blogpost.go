// internal/domain/models/blogpost.go
package models

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Display metadata defaults applied when a create request omits them.
const (
	DefaultAuthor   = "Equipe Chronos"
	DefaultReadTime = "5 min"
)

// BlogPost represents an article on the public blog.
//
// ID is the stable external reference for admin operations; Slug is the
// human-readable identifier used for public lookup. The Mongo _id is
// deliberately absent from this struct: the driver assigns one on
// insert and it never leaves the store.
type BlogPost struct {
	ID        string    `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Slug      string    `bson:"slug" json:"slug"`
	Excerpt   string    `bson:"excerpt" json:"excerpt"`
	Content   string    `bson:"content" json:"content"` // opaque; may contain markup, stored as-is
	ImageURL  string    `bson:"image_url" json:"image_url"`
	Category  string    `bson:"category" json:"category"`
	Author    string    `bson:"author" json:"author"`
	ReadTime  string    `bson:"read_time" json:"read_time"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"` // set once at construction, sole sort key
	Published bool      `bson:"published" json:"published"`
}

// CreateBlogPost is the admin create view. Title through Category are
// required; Author, ReadTime, and Published fall back to defaults.
// Unknown input fields are ignored by the JSON decoder.
type CreateBlogPost struct {
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content"`
	ImageURL  string `json:"image_url"`
	Category  string `json:"category"`
	Author    string `json:"author"`
	ReadTime  string `json:"read_time"`
	Published *bool  `json:"published"`
}

// MissingFields reports required fields that are empty, keyed by field
// name, for validation error responses. An empty map means valid.
func (in CreateBlogPost) MissingFields() map[string]string {
	missing := map[string]string{}
	required := map[string]string{
		"title":     in.Title,
		"slug":      in.Slug,
		"excerpt":   in.Excerpt,
		"content":   in.Content,
		"image_url": in.ImageURL,
		"category":  in.Category,
	}
	for name, value := range required {
		if value == "" {
			missing[name] = "required"
		}
	}
	return missing
}

// NewPost constructs a full BlogPost from the create view: a freshly
// generated id, the current UTC timestamp, and defaults for any
// optional field left unset. Both admin create and startup seeding go
// through this path.
func (in CreateBlogPost) NewPost() BlogPost {
	post := BlogPost{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Slug:      in.Slug,
		Excerpt:   in.Excerpt,
		Content:   in.Content,
		ImageURL:  in.ImageURL,
		Category:  in.Category,
		Author:    in.Author,
		ReadTime:  in.ReadTime,
		CreatedAt: time.Now().UTC(),
		Published: true,
	}
	if post.Author == "" {
		post.Author = DefaultAuthor
	}
	if post.ReadTime == "" {
		post.ReadTime = DefaultReadTime
	}
	if in.Published != nil {
		post.Published = *in.Published
	}
	return post
}

// UpdateBlogPost is the admin partial-update view. Every field is
// optional; only fields present and non-null in the request are
// applied. A field cannot be cleared through this path, and id and
// created_at are not patchable at all.
type UpdateBlogPost struct {
	Title     *string `json:"title"`
	Slug      *string `json:"slug"`
	Excerpt   *string `json:"excerpt"`
	Content   *string `json:"content"`
	ImageURL  *string `json:"image_url"`
	Category  *string `json:"category"`
	Author    *string `json:"author"`
	ReadTime  *string `json:"read_time"`
	Published *bool   `json:"published"`
}

// Patch returns the $set document for the fields that were supplied.
// An empty result means the update is a no-op.
func (in UpdateBlogPost) Patch() bson.M {
	patch := bson.M{}
	set := func(key string, v *string) {
		if v != nil {
			patch[key] = *v
		}
	}
	set("title", in.Title)
	set("slug", in.Slug)
	set("excerpt", in.Excerpt)
	set("content", in.Content)
	set("image_url", in.ImageURL)
	set("category", in.Category)
	set("author", in.Author)
	set("read_time", in.ReadTime)
	if in.Published != nil {
		patch["published"] = *in.Published
	}
	return patch
}
