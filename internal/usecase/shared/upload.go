package shared

import "io"

// Upload is a file received with a request. Open may be called more than once.
type Upload struct {
	Filename string
	Size     int64
	Open     func() (io.ReadCloser, error)
}
