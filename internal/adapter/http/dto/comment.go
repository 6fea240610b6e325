package dto

type CommentItem struct {
	ID        uint64        `json:"id"`
	TaskID    uint64        `json:"task_id"`
	Author    UserItem      `json:"author"`
	Content   string        `json:"content"`
	ParentID  *uint64       `json:"parent_id,omitempty"`
	CreatedAt string        `json:"created_at"`
	Replies   []CommentItem `json:"replies,omitempty"`
}

type CreateCommentRequest struct {
	Content  string  `json:"content" binding:"required,max=65535"`
	ParentID *uint64 `json:"parent_id" binding:"omitempty,gt=0"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=65535"`
	Color       string `json:"color" binding:"omitempty,hexcolor"`
}

type NotificationItem struct {
	ID        uint64 `json:"id"`
	TaskID    uint64 `json:"task_id"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}
