package adapter

// UploadObject is an image handed to a [PhotoStorage].
type UploadObject struct {
	// Folder groups the objects of one resource, e.g. "airbnb/users/<id>".
	Folder string
	// Key, when set, is the key of an existing object to overwrite.
	Key string

	Filename    string
	ContentType string
	Data        []byte
}

// StoredObject describes an object after upload.
type StoredObject struct {
	// URL is the public delivery URL, including the file extension.
	URL string
	// Key identifies the object for later overwrite or delete.
	Key string
}

// Mail is a plain-text message.
type Mail struct {
	To      string
	Subject string
	Text    string
}
