package model

// Exercise describes a single exercise prescription. Like meals,
// exercises are embedded by value inside templates and assignments.
type Exercise struct {
	Meta         `bson:",inline"`
	Name         string   `bson:"name" json:"name" validate:"required,min=1"`
	Description  string   `bson:"description,omitempty" json:"description,omitempty"`
	Sets         int      `bson:"sets,omitempty" json:"sets,omitempty" validate:"gte=0"`
	Reps         int      `bson:"reps,omitempty" json:"reps,omitempty" validate:"gte=0"`
	Duration     int      `bson:"duration,omitempty" json:"duration,omitempty" validate:"gte=0"`
	RestTime     int      `bson:"restTime,omitempty" json:"restTime,omitempty" validate:"gte=0"`
	MuscleGroups []string `bson:"muscleGroups" json:"muscleGroups" validate:"required"`
}

// UpdateExerciseInput carries the updatable exercise fields. Duration
// is in minutes and RestTime in seconds.
type UpdateExerciseInput struct {
	Name         *string   `bson:"name,omitempty" json:"name" validate:"omitempty,min=1"`
	Description  *string   `bson:"description,omitempty" json:"description"`
	Sets         *int      `bson:"sets,omitempty" json:"sets" validate:"omitempty,gte=0"`
	Reps         *int      `bson:"reps,omitempty" json:"reps" validate:"omitempty,gte=0"`
	Duration     *int      `bson:"duration,omitempty" json:"duration" validate:"omitempty,gte=0"`
	RestTime     *int      `bson:"restTime,omitempty" json:"restTime" validate:"omitempty,gte=0"`
	MuscleGroups *[]string `bson:"muscleGroups,omitempty" json:"muscleGroups"`
}
