package domain

import "time"

// Memo is a free-form note shared by the studio.
type Memo struct {
	ID        int64
	Title     string
	Content   string
	CreatedBy string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time

	Images []MemoImage
}

const memoPreviewRunes = 100

// Preview returns the first 100 characters of the content, with "..." when
// truncated.
func (m *Memo) Preview() string {
	r := []rune(m.Content)
	if len(r) <= memoPreviewRunes {
		return m.Content
	}
	return string(r[:memoPreviewRunes]) + "..."
}

// MemoImage is an image attached to a memo.
type MemoImage struct {
	ID         int64
	MemoID     int64
	Image      string
	UploadedAt time.Time
}

// MemoFilter narrows memo listings.
type MemoFilter struct {
	IsActive *bool
	Search   string
}
