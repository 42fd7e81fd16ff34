package model

// User mirrors the 'users' collection. The database stores the numeric
// RoleID; the role name shown to clients is derived from it on the way
// out. Password holds the bcrypt hash and is empty for accounts
// created through OAuth.
type User struct {
	Meta      `bson:",inline"`
	Email     string `bson:"email" json:"email" validate:"required,email"`
	Password  string `bson:"password,omitempty" json:"-"`
	Name      string `bson:"name" json:"name" validate:"required,min=2"`
	RoleID    RoleID `bson:"roleId" json:"roleId" validate:"required,min=1,max=4"`
	Phone     string `bson:"phone,omitempty" json:"phone,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
}

// PublicUser is the response shape for user records: the role name is
// resolved from RoleID and the password hash is never included.
type PublicUser struct {
	Meta
	Email     string `json:"email"`
	Name      string `json:"name"`
	RoleID    RoleID `json:"roleId"`
	Role      string `json:"role"`
	Phone     string `json:"phone,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Public converts a stored user into its response shape.
func (u *User) Public() PublicUser {
	role, _ := RoleNameOf(u.RoleID)
	return PublicUser{
		Meta:      u.Meta,
		Email:     u.Email,
		Name:      u.Name,
		RoleID:    u.RoleID,
		Role:      role,
		Phone:     u.Phone,
		Instagram: u.Instagram,
	}
}

// CreateUserInput is the payload for creating a user. The role arrives
// as a name and is converted to a RoleID before storage. Password is
// optional so admins can provision OAuth-only accounts.
type CreateUserInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"omitempty,min=6"`
	Name      string `json:"name" validate:"required,min=2"`
	Role      string `json:"role" validate:"required,oneof=customer trainer admin master"`
	Phone     string `json:"phone"`
	Instagram string `json:"instagram"`
}

// UpdateUserInput carries the updatable user fields. Pointer fields
// distinguish "not provided" from zero values; only provided fields
// are validated and written. Role is accepted as a name and converted
// to RoleID by the handler before the update is applied.
type UpdateUserInput struct {
	Name      *string `bson:"name,omitempty" json:"name" validate:"omitempty,min=2"`
	Phone     *string `bson:"phone,omitempty" json:"phone"`
	Instagram *string `bson:"instagram,omitempty" json:"instagram"`
	Role      *string `bson:"-" json:"role" validate:"omitempty,oneof=customer trainer admin master"`
	RoleID    *RoleID `bson:"roleId,omitempty" json:"-" validate:"omitempty,min=1,max=4"`
}
