package dto

type SignupRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Password    string `json:"password" binding:"required,min=8,max=255"`
	PhoneNumber string `json:"phone_number" binding:"required,e164"`
}

type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserItem struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Priority    int    `json:"priority"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  UserItem `json:"user"`
}
