package apierrors

const (
	MsgInternal             = "internalError"
	MsgStorageUnavailable   = "storageUnavailable"
	MsgMissingUser          = "missingUser"
	MsgInvalidTaskID        = "invalidTaskID"
	MsgInvalidTaskPayload   = "invalidTaskPayload"
	MsgInvalidSearchFilter  = "invalidSearchFilter"
	MsgTaskNotFound         = "taskNotFound"
	MsgUserNotFound         = "userNotFound"
	MsgTaskForbidden        = "taskForbidden"
	MsgInvalidTransition    = "invalidTransition"
	MsgInvalidOperation     = "invalidOperation"
	MsgFailListTask         = "errorListTask"
	MsgFailCreateTask       = "failCreateTask"
	MsgCategoryNotFound     = "categoryNotFound"
	MsgInvalidCategory      = "invalidCategoryPayload"
	MsgCommentNotFound      = "commentNotFound"
	MsgInvalidComment       = "invalidCommentPayload"
	MsgNotificationNotFound = "notificationNotFound"
)
