package domain

import "io"

// Upload is one file received from a client. Name is the client-supplied
// file name.
type Upload struct {
	Name string
	Body io.Reader
}
