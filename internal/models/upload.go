package models

// UploadedFile is a multipart file part read fully into memory.
type UploadedFile struct {
	Filename string
	Data     []byte
}
