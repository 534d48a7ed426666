package model

// User backs the mock login. The password is stored as plaintext because the
// whole auth surface is an explicitly labeled development stand-in; it is
// never serialized into responses.
type User struct {
	Username  string `json:"username" bson:"_id"`
	Password  string `json:"-" bson:"password"`
	Email     string `json:"email" bson:"email"`
	Role      string `json:"role" bson:"role"`
	CreatedAt int64  `json:"createdAt" bson:"created_at"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
