package dto

type UserItem struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

type Category struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

type TaskItem struct {
	ID               uint64    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Status           string    `json:"status"`
	Priority         string    `json:"priority"`
	PriorityScore    int       `json:"priority_score"`
	IsOverdue        bool      `json:"is_overdue"`
	Category         *Category `json:"category,omitempty"`
	AssignedTo       UserItem  `json:"assigned_to"`
	AssignedBy       UserItem  `json:"assigned_by"`
	DueDate          *string   `json:"due_date,omitempty"`
	StartTime        *string   `json:"start_time,omitempty"`
	EndTime          *string   `json:"end_time,omitempty"`
	TimeTakenSeconds *float64  `json:"time_taken_seconds,omitempty"`
	IsTemplate       bool      `json:"is_template"`
	ParentTemplateID *uint64   `json:"parent_template_id,omitempty"`
	CreatedAt        string    `json:"created_at"`
	UpdatedAt        string    `json:"updated_at"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Description string  `json:"description" binding:"max=65535"`
	AssignedTo  uint64  `json:"assigned_to" binding:"required,gt=0"`
	CategoryID  *uint64 `json:"category_id" binding:"omitempty,gt=0"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DueDate     *string `json:"due_date"`
}

type CreateTemplateRequest struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Description string  `json:"description" binding:"max=65535"`
	CategoryID  *uint64 `json:"category_id" binding:"omitempty,gt=0"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	CategoryID  *uint64 `json:"category_id" binding:"omitempty,gt=0"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DueDate     *string `json:"due_date"`
}

type InstantiateTemplateRequest struct {
	AssignedTo uint64  `json:"assigned_to" binding:"required,gt=0"`
	DueDate    *string `json:"due_date"`
}

type HistoryItem struct {
	ID        uint64         `json:"id"`
	TaskID    uint64         `json:"task_id"`
	User      UserItem       `json:"user"`
	Action    string         `json:"action"`
	Details   map[string]any `json:"details"`
	CreatedAt string         `json:"created_at"`
}

type DashboardResponse struct {
	Mine         map[string]int `json:"mine"`
	Global       map[string]int `json:"global"`
	AssignedToMe []TaskItem     `json:"assigned_to_me"`
	AssignedByMe []TaskItem     `json:"assigned_by_me"`
}
