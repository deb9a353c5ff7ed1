package notification

import "time"

// NotificationResponse represents a notification in API responses
type NotificationResponse struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	Message     string    `json:"message"`
	EmployeeIDs []int     `json:"employee_ids"`
	Employees   []string  `json:"employees,omitempty"`
	EmailSent   bool      `json:"email_sent"`
	Timestamp   time.Time `json:"timestamp"`
	Date        string    `json:"date"`
}
