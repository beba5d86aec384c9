package dto

type RegisterRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50" example:"designer"`
	Password string `json:"password" validate:"required,min=8" example:"s3cret-pass"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50" example:"designer"`
	Password string `json:"password" validate:"required,min=8" example:"s3cret-pass"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
