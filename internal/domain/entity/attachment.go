package entity

// Attachment describes an uploaded file referenced by a request payload.
// The registry persists this structure opaquely; file content is never
// validated by the core.
type Attachment struct {
	Name         string `json:"name"`         // Object key in the blob store.
	OriginalName string `json:"originalName"` // Client-side file name.
	MimeType     string `json:"mimeType"`
	Size         int64  `json:"size"`
	URL          string `json:"url"`
}
