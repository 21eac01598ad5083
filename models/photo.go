package models

// Photo references an image held by the external object storage.
type Photo struct {
	// URL is the delivery URL without its trailing file extension.
	URL string `json:"url"`
	// StorageKey is the storage service's object identifier. It is reused
	// as the overwrite target when the photo is replaced.
	StorageKey string `json:"picture_id"`
}

// Upload is an image received from a client.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}
