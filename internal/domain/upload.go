package domain

import "io"

// PendingUpload is a file accepted from the caller but not yet pushed to the
// forum. Filename and MimeType are taken from the caller-supplied descriptor
// and travel verbatim into the upload part headers.
type PendingUpload struct {
	Filename string
	MimeType string
	Size     int64
	Data     io.Reader
}

// PrivateMessageRef identifies a private message thread created upstream.
type PrivateMessageRef struct {
	PostId  PostId  `json:"id"`
	TopicId TopicId `json:"topic_id"`
}
