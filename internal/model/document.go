package model

import "time"

// DocumentStatus tracks the document state machine. Active is the only
// persisted state; deletion removes the row and is terminal.
type DocumentStatus string

const DocumentActive DocumentStatus = "active"

// Document is the metadata record for a file attached to a student.
// A row exists iff the object at StorageKey exists, outside the window of a
// single lifecycle operation. StorageKey, UploadedBy and UploadedAt are set
// once at creation; only Description is mutable afterwards.
type Document struct {
	ID          string         `json:"id"`
	StudentID   string         `json:"student_id"`
	StorageKey  string         `json:"storage_key"`
	FileName    string         `json:"file_name"`
	Size        int64          `json:"size"`
	ContentType string         `json:"content_type"`
	Description string         `json:"description"`
	UploadedBy  string         `json:"uploaded_by"`
	UploadedAt  time.Time      `json:"uploaded_at"`
	Status      DocumentStatus `json:"status"`
}

// SignedURL is a derived, non-persisted value granting temporary read access
// to one storage object. It is regenerated on every request.
type SignedURL struct {
	URL       string    `json:"signedUrl"`
	ExpiresAt time.Time `json:"expires_at"`
}
