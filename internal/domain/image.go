package domain

// Image is a blob headed for object storage.
type Image struct {
	Bucket      string
	ObjectKey   string
	Bytes       []byte
	Size        int64
	ContentType string // Example: "image/jpeg"
}

func NewImage(bucket, objectKey string, data []byte, contentType string) *Image {
	return &Image{
		Bucket:      bucket,
		ObjectKey:   objectKey,
		Bytes:       data,
		Size:        int64(len(data)),
		ContentType: contentType,
	}
}
