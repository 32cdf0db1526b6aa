package converter

import (
	dto "casino_web/internal/api/dto/auth"
	"casino_web/internal/model"
)

func RegisterRequestToCredentials(req *dto.RegisterRequest) model.Credentials {
	return model.Credentials{
		Email:    req.Email,
		Password: req.Password,
	}
}

func LoginRequestToCredentials(req *dto.LoginRequest) model.Credentials {
	return model.Credentials{
		Email:    req.Email,
		Password: req.Password,
	}
}

func ToUserResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:      user.ID,
		Email:   user.Email,
		Balance: user.Balance,
		IsAdmin: user.IsAdmin,
	}
}
