package posts

// IsOwner reports whether the requester identity matches the post's
// author identity. Used to gate update and delete. An empty requester
// never owns anything.
func IsOwner(author, requester string) bool {
	return requester != "" && author == requester
}
