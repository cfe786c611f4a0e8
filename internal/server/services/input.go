package services

import (
	"unicode/utf8"

	"moodblog/internal/common"
	"moodblog/internal/server/models"
)

// MaxTitleLen is the title length limit in characters (runes, not bytes).
const MaxTitleLen = 200

// PostInput is the union of fields a create or update request may carry.
// Nil pointers mean the field was absent from the payload, which matters
// for partial updates.
type PostInput struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Mood    *string `json:"mood"`
}

// ValidateCreate enforces the creation contract: title and content are
// mandatory and non-empty, title fits the length limit, and mood, when
// supplied, is a member of the enumeration. Emptiness is checked exactly,
// without trimming.
func (in *PostInput) ValidateCreate() error {
	if in.Title == nil || *in.Title == "" {
		return common.NewValidationError("title")
	}
	if utf8.RuneCountInString(*in.Title) > MaxTitleLen {
		return common.NewValidationError("title")
	}
	if in.Content == nil || *in.Content == "" {
		return common.NewValidationError("content")
	}
	if in.Mood != nil && !models.Mood(*in.Mood).Valid() {
		return common.NewValidationError("mood")
	}
	return nil
}

// ValidateUpdate validates only the supplied fields; absent fields are
// left unchanged by Apply and are not an error.
func (in *PostInput) ValidateUpdate() error {
	if in.Title != nil {
		if *in.Title == "" || utf8.RuneCountInString(*in.Title) > MaxTitleLen {
			return common.NewValidationError("title")
		}
	}
	if in.Content != nil && *in.Content == "" {
		return common.NewValidationError("content")
	}
	if in.Mood != nil && !models.Mood(*in.Mood).Valid() {
		return common.NewValidationError("mood")
	}
	return nil
}

// MoodOrDefault returns the supplied mood, or the default for creation
// payloads that omit it.
func (in *PostInput) MoodOrDefault() models.Mood {
	if in.Mood == nil {
		return models.DefaultMood
	}
	return models.Mood(*in.Mood)
}

// Apply copies the supplied fields onto post. Callers must validate first.
func (in *PostInput) Apply(post *models.Post) {
	if in.Title != nil {
		post.Title = *in.Title
	}
	if in.Content != nil {
		post.Content = *in.Content
	}
	if in.Mood != nil {
		post.Mood = models.Mood(*in.Mood)
	}
}
