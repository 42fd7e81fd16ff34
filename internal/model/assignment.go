package model

import "time"

// DailyAssignment is the plan a trainer hands a customer for one
// calendar day: the meals to eat and the exercises to perform. Both
// lists are embedded copies taken from templates or built ad hoc.
type DailyAssignment struct {
	Meta       `bson:",inline"`
	CustomerID string     `bson:"customerId" json:"customerId" validate:"required"`
	Date       time.Time  `bson:"date" json:"date" validate:"required"`
	Meals      []Meal     `bson:"meals" json:"meals" validate:"dive"`
	Exercises  []Exercise `bson:"exercises" json:"exercises" validate:"dive"`
	AssignedBy string     `bson:"assignedBy" json:"assignedBy" validate:"required"`
}

// UpdateDailyAssignmentInput carries the updatable assignment fields.
type UpdateDailyAssignmentInput struct {
	Date      *time.Time  `bson:"date,omitempty" json:"date"`
	Meals     *[]Meal     `bson:"meals,omitempty" json:"meals" validate:"omitempty,dive"`
	Exercises *[]Exercise `bson:"exercises,omitempty" json:"exercises" validate:"omitempty,dive"`
}

// DayMeals groups the meals planned for one day of the week, used by
// weekly assignment creation.
type DayMeals struct {
	Day   int    `bson:"day" json:"day" validate:"min=0,max=6"`
	Meals []Meal `bson:"meals" json:"meals" validate:"dive"`
}

// WeeklyAssignmentInput creates seven daily assignments in one call,
// one per day starting at StartDate. Days missing from Meals or
// Exercises produce empty lists for that day.
type WeeklyAssignmentInput struct {
	CustomerID string         `json:"customerId" validate:"required"`
	StartDate  time.Time      `json:"startDate" validate:"required"`
	Meals      []DayMeals     `json:"meals" validate:"dive"`
	Exercises  []DayExercises `json:"exercises" validate:"dive"`
	AssignedBy string         `json:"assignedBy" validate:"required"`
}
