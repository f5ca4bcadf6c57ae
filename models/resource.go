package models

// ResourceKind names a kind of owned resource checked by the ownership guard.
type ResourceKind string

const (
	ResourceBlog    ResourceKind = "blog"
	ResourceComment ResourceKind = "comment"
)

// UploadTarget is the kind of object an upload URL is issued for.
type UploadTarget string

const (
	UploadAvatar    UploadTarget = "avatars"
	UploadBlogImage UploadTarget = "blogs"
)

// UploadURL is a presigned PUT URL together with the key and the public URL
// the object will be served from once uploaded.
type UploadURL struct {
	Key       string `json:"key"`
	URL       string `json:"url"`
	PublicURL string `json:"publicUrl"`
}
