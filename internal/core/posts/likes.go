package posts

// LikerSet is the set of identities that have liked a single post.
// It wraps the stored slice with set semantics: an identity appears at
// most once, and mutations report whether the set actually changed so
// the caller can skip an unnecessary persistence write.
//
// The per-(post, user) state machine has two states, NotLiked and
// Liked. Add moves NotLiked to Liked and is a no-op on Liked; Remove
// is the symmetric inverse. There are no other transitions.
type LikerSet struct {
	members []string
	index   map[string]struct{}
}

// NewLikerSet builds a set from the stored liker slice. Duplicate
// entries collapse; insertion order is preserved for display.
func NewLikerSet(likedBy []string) *LikerSet {
	s := &LikerSet{
		members: make([]string, 0, len(likedBy)),
		index:   make(map[string]struct{}, len(likedBy)),
	}
	for _, id := range likedBy {
		s.Add(id)
	}
	return s
}

// Contains reports whether the identity has liked the post.
func (s *LikerSet) Contains(userID string) bool {
	_, ok := s.index[userID]
	return ok
}

// Add records a like. Returns true if the set changed, false if the
// identity was already a member.
func (s *LikerSet) Add(userID string) bool {
	if userID == "" {
		return false
	}
	if _, ok := s.index[userID]; ok {
		return false
	}
	s.index[userID] = struct{}{}
	s.members = append(s.members, userID)
	return true
}

// Remove withdraws a like. Returns true if the set changed, false if
// the identity was not a member.
func (s *LikerSet) Remove(userID string) bool {
	if _, ok := s.index[userID]; !ok {
		return false
	}
	delete(s.index, userID)
	for i, id := range s.members {
		if id == userID {
			s.members = append(s.members[:i], s.members[i+1:]...)
			break
		}
	}
	return true
}

// Members returns the liker identities in insertion order.
func (s *LikerSet) Members() []string {
	return s.members
}

// Len returns the number of likers.
func (s *LikerSet) Len() int {
	return len(s.members)
}
