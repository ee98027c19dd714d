package s3types

// ObjectToDelete identifies one (key, version?) pair in a batch delete.
type ObjectToDelete struct {
	Key       string
	VersionID string
}

// DeletedObject represents a successfully deleted object
type DeletedObject struct {
	Key                   string
	VersionID             string
	DeleteMarker          bool
	DeleteMarkerVersionID string
}

// DeleteError represents a deletion error
type DeleteError struct {
	Key       string
	VersionID string
	Code      string
	Message   string
}

// DeleteObjectsResult contains the outcome of one batch-delete chunk.
type DeleteObjectsResult struct {
	Deleted []DeletedObject
	Errors  []DeleteError
}
