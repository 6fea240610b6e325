package domain

import "time"

type Comment struct {
	ID        uint64
	TaskID    uint64
	Author    User
	Content   string
	ParentID  *uint64
	CreatedAt time.Time
	Replies   []Comment
}

type CreateCommentInput struct {
	TaskID   uint64
	AuthorID uint64
	Content  string
	ParentID *uint64
}

// BuildCommentThreads nests replies under their parents, keeping the input
// order at every level. Replies whose parent is missing become roots.
func BuildCommentThreads(comments []Comment) []Comment {
	children := make(map[uint64][]Comment)
	known := make(map[uint64]bool, len(comments))
	for _, c := range comments {
		known[c.ID] = true
	}

	roots := make([]Comment, 0)
	for _, c := range comments {
		if c.ParentID != nil && known[*c.ParentID] {
			children[*c.ParentID] = append(children[*c.ParentID], c)
			continue
		}
		roots = append(roots, c)
	}

	var attach func(c Comment) Comment
	attach = func(c Comment) Comment {
		for _, reply := range children[c.ID] {
			c.Replies = append(c.Replies, attach(reply))
		}
		return c
	}

	for i := range roots {
		roots[i] = attach(roots[i])
	}
	return roots
}
