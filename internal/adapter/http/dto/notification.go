package dto

type NotificationItem struct {
	ID        uint64 `json:"id"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}
