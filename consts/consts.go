package consts

// mongo collections
const (
	Notification = "Notification"
)

// notification status
const (
	StatusUnread = "UNREAD"
	StatusRead   = "READ"
)

// stream event names
const (
	EventConnected    = "connected"
	EventNotification = "notification"
)

// comment snippet length pushed with a COMMENT notification
const CommentSnippetLen = 50
