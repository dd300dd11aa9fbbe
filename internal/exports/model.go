package exports

import "time"

// Export records one PDF produced from a session document.
type Export struct {
	ID         string
	UserID     string
	TemplateID string
	FileName   string
	StorageKey string
	MimeType   string
	SizeBytes  int64
	Pages      int
	CreatedAt  time.Time
}
