package domain

// Authorization policy: pure decisions over actor and resource attributes.
// Admins may do everything; regular users only act on tasks assigned to them.

func CanAssignTasks(actor User) bool {
	return actor.IsAdmin()
}

// CanModifyTask covers read, update and delete of a single task.
func CanModifyTask(actor User, task Task) bool {
	return actor.IsAdmin() || actor.ID == task.AssignedToID
}

func CanListAllTasks(actor User) bool {
	return actor.IsAdmin()
}

func CanViewTasksOf(actor User, userID uint64) bool {
	return actor.IsAdmin() || actor.ID == userID
}

func CanListUsers(actor User) bool {
	return actor.IsAdmin()
}

func CanViewNotificationsOf(actor User, userID uint64) bool {
	return actor.IsAdmin() || actor.ID == userID
}

// CanTouchNotification covers marking read and deleting. Ownership only;
// admins get no shortcut here.
func CanTouchNotification(actor User, notification Notification) bool {
	return actor.ID == notification.UserID
}
