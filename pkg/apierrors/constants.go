package apierrors

const (
	MsgInvalidPayload       = "invalidPayload"
	MsgInvalidID            = "invalidID"
	MsgTaskNotFound         = "taskNotFound"
	MsgUserNotFound         = "userNotFound"
	MsgNotificationNotFound = "notificationNotFound"
	MsgForbidden            = "forbidden"
	MsgUnauthorized         = "unauthorized"
	MsgInvalidCredentials   = "invalidCredentials"
	MsgDuplicateUser        = "duplicateUser"
	MsgInternalError        = "internalError"
)
