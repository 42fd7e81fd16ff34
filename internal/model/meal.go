package model

// Meal is a single meal definition in a customer's nutrition plan.
// Meals are copied by value into templates and daily assignments, so
// editing a meal here never changes plans that already embedded it.
type Meal struct {
	Meta        `bson:",inline"`
	Name        string  `bson:"name" json:"name" validate:"required,min=1"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	Calories    float64 `bson:"calories" json:"calories" validate:"gte=0"`
	Protein     float64 `bson:"protein" json:"protein" validate:"gte=0"`
	Carbs       float64 `bson:"carbs" json:"carbs" validate:"gte=0"`
	Fats        float64 `bson:"fats" json:"fats" validate:"gte=0"`
	MealType    string  `bson:"mealType" json:"mealType" validate:"required,oneof=breakfast lunch dinner snack"`
}

// UpdateMealInput carries the updatable meal fields.
type UpdateMealInput struct {
	Name        *string  `bson:"name,omitempty" json:"name" validate:"omitempty,min=1"`
	Description *string  `bson:"description,omitempty" json:"description"`
	Calories    *float64 `bson:"calories,omitempty" json:"calories" validate:"omitempty,gte=0"`
	Protein     *float64 `bson:"protein,omitempty" json:"protein" validate:"omitempty,gte=0"`
	Carbs       *float64 `bson:"carbs,omitempty" json:"carbs" validate:"omitempty,gte=0"`
	Fats        *float64 `bson:"fats,omitempty" json:"fats" validate:"omitempty,gte=0"`
	MealType    *string  `bson:"mealType,omitempty" json:"mealType" validate:"omitempty,oneof=breakfast lunch dinner snack"`
}
