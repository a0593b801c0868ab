package dto

// Binary is a raw resource (profile image, institution logo) and its detected media type.
type Binary struct {
	ContentType string
	Data        []byte
}
