package model

import "time"

// Subscription ties a customer to a gym plan over a date range.
// CustomerID and AssignedBy reference user ids by convention; the data
// layer does not enforce referential integrity on them.
type Subscription struct {
	Meta              `bson:",inline"`
	CustomerID        string    `bson:"customerId" json:"customerId" validate:"required"`
	PlanName          string    `bson:"planName" json:"planName" validate:"required,min=1"`
	StartDate         time.Time `bson:"startDate" json:"startDate" validate:"required"`
	EndDate           time.Time `bson:"endDate" json:"endDate" validate:"required"`
	Status            string    `bson:"status" json:"status" validate:"required,oneof=active expired pending cancelled"`
	PaymentScreenshot string    `bson:"paymentScreenshot,omitempty" json:"paymentScreenshot,omitempty"`
	AssignedBy        string    `bson:"assignedBy" json:"assignedBy" validate:"required"`
}

// UpdateSubscriptionInput carries the updatable subscription fields.
type UpdateSubscriptionInput struct {
	PlanName          *string    `bson:"planName,omitempty" json:"planName" validate:"omitempty,min=1"`
	StartDate         *time.Time `bson:"startDate,omitempty" json:"startDate"`
	EndDate           *time.Time `bson:"endDate,omitempty" json:"endDate"`
	Status            *string    `bson:"status,omitempty" json:"status" validate:"omitempty,oneof=active expired pending cancelled"`
	PaymentScreenshot *string    `bson:"paymentScreenshot,omitempty" json:"paymentScreenshot"`
}
