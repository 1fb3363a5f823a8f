package entities

// CustomerRegisterInput represents input for customer registration
type CustomerRegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=2,max=255"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Phone1   string `json:"phone1" binding:"required,min=7,max=20"`
	Phone2   string `json:"phone2" binding:"omitempty,min=7,max=20"`
}

// MerchantRegisterInput represents input for merchant registration
type MerchantRegisterInput struct {
	Email        string `json:"email" binding:"required,email"`
	BrandName    string `json:"brandName" binding:"required,min=2,max=255"`
	Password     string `json:"password" binding:"required,min=8,max=72"`
	Phone1       string `json:"phone1" binding:"required,min=7,max=20"`
	Phone2       string `json:"phone2" binding:"omitempty,min=7,max=20"`
	ReferrerCode string `json:"referrerCode" binding:"omitempty,min=3,max=64"`
}

// LoginInput represents login credentials
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// VerifyEmailInput carries an email verification token
type VerifyEmailInput struct {
	Token string `json:"token" binding:"required"`
}

// RefreshInput carries a refresh token
type RefreshInput struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ForgotPasswordInput requests a password reset mail
type ForgotPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordInput resets a password with a mailed token
type ResetPasswordInput struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// AuthResponse is returned on successful registration or login
type AuthResponse struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	Profile      interface{} `json:"profile"`
}
