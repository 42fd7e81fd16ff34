// Package queue defines the message payloads exchanged over the broker
// and the background consumer that processes them.
package queue

// Queue names. Both are durable; messages survive broker restarts.
const (
	UserRegisteredQueue       = "gym.user.registered"
	SubscriptionAssignedQueue = "gym.subscription.assigned"
)

// UserRegisteredEvent is published after a successful registration,
// whether by credentials or by an OAuth sign-up creating a new
// account. It carries enough for downstream notification or analytics
// consumers without a database read.
type UserRegisteredEvent struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Method       string `json:"method"` // "credentials" or "google"
	RegisteredAt string `json:"registered_at"`
}

// SubscriptionAssignedEvent is published when an admin assigns a
// subscription to a customer.
type SubscriptionAssignedEvent struct {
	SubscriptionID string `json:"subscription_id"`
	CustomerID     string `json:"customer_id"`
	PlanName       string `json:"plan_name"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	Status         string `json:"status"`
	AssignedBy     string `json:"assigned_by"`
	AssignedAt     string `json:"assigned_at"`
}
