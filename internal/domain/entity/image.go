package entity

import "io"

// Image references an object held by the blob store.
type Image struct {
	URL string `bson:"url" json:"url"`
	ID  string `bson:"id" json:"id"`
}

// FileUpload is an incoming file handed from the transport layer to a use case.
type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}
