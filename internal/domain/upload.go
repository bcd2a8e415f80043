package domain

import "io"

// Upload is a single file part of a multipart request. It is owned by the
// request that received it and never outlives it.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.ReadSeeker
	Err         error // set when the part could not be opened
}
