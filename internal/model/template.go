package model

// MealTemplate is a reusable set of meals a trainer assembles once and
// assigns many times. The meals are denormalized copies: a template
// keeps the meal data as it was when the template was built.
type MealTemplate struct {
	Meta        `bson:",inline"`
	Name        string `bson:"name" json:"name" validate:"required,min=1"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Meals       []Meal `bson:"meals" json:"meals" validate:"dive"`
	CreatedBy   string `bson:"createdBy" json:"createdBy" validate:"required"`
}

// DayExercises groups the exercises planned for one day of the week
// (0 = Sunday through 6 = Saturday).
type DayExercises struct {
	Day       int        `bson:"day" json:"day" validate:"min=0,max=6"`
	Exercises []Exercise `bson:"exercises" json:"exercises" validate:"dive"`
}

// ExerciseTemplate is a weekly exercise program keyed by day of week,
// with exercises embedded by value like meal templates.
type ExerciseTemplate struct {
	Meta        `bson:",inline"`
	Name        string         `bson:"name" json:"name" validate:"required,min=1"`
	Description string         `bson:"description,omitempty" json:"description,omitempty"`
	Exercises   []DayExercises `bson:"exercises" json:"exercises" validate:"dive"`
	CreatedBy   string         `bson:"createdBy" json:"createdBy" validate:"required"`
}

// UpdateMealTemplateInput carries the updatable meal-template fields.
type UpdateMealTemplateInput struct {
	Name        *string `bson:"name,omitempty" json:"name" validate:"omitempty,min=1"`
	Description *string `bson:"description,omitempty" json:"description"`
	Meals       *[]Meal `bson:"meals,omitempty" json:"meals" validate:"omitempty,dive"`
}

// UpdateExerciseTemplateInput carries the updatable exercise-template
// fields.
type UpdateExerciseTemplateInput struct {
	Name        *string         `bson:"name,omitempty" json:"name" validate:"omitempty,min=1"`
	Description *string         `bson:"description,omitempty" json:"description"`
	Exercises   *[]DayExercises `bson:"exercises,omitempty" json:"exercises" validate:"omitempty,dive"`
}
