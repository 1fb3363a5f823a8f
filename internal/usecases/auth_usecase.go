package usecases

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"soko.backend/internal/domain/entities"
	domainerrors "soko.backend/internal/domain/errors"
	"soko.backend/internal/domain/repositories"
	"soko.backend/internal/infrastructure/mailer"
	"soko.backend/pkg/crypto"
	"soko.backend/pkg/jwt"
	"soko.backend/pkg/logger"
)

// RefreshTokenStore keeps refresh tokens server-side so they can be
// revoked before their JWT expiry
type RefreshTokenStore interface {
	Save(ctx context.Context, subjectID uuid.UUID, token string) error
	Validate(ctx context.Context, subjectID uuid.UUID, token string) error
	Revoke(ctx context.Context, subjectID uuid.UUID, token string) error
	RevokeAll(ctx context.Context, subjectID uuid.UUID) error
}

// AuthUsecase handles registration, login and account recovery for both
// customer and merchant accounts
type AuthUsecase struct {
	customerRepo repositories.CustomerRepository
	merchantRepo repositories.MerchantRepository
	marketerRepo repositories.MarketerRepository
	tokenRepo    repositories.AuthTokenRepository
	jwtService   *jwt.JWTService
	tokenStore   RefreshTokenStore
	mailer       mailer.Mailer
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	customerRepo repositories.CustomerRepository,
	merchantRepo repositories.MerchantRepository,
	marketerRepo repositories.MarketerRepository,
	tokenRepo repositories.AuthTokenRepository,
	jwtService *jwt.JWTService,
	tokenStore RefreshTokenStore,
	m mailer.Mailer,
) *AuthUsecase {
	return &AuthUsecase{
		customerRepo: customerRepo,
		merchantRepo: merchantRepo,
		marketerRepo: marketerRepo,
		tokenRepo:    tokenRepo,
		jwtService:   jwtService,
		tokenStore:   tokenStore,
		mailer:       m,
	}
}

// RegisterCustomer creates a customer account and mails a verification link
func (u *AuthUsecase) RegisterCustomer(ctx context.Context, input entities.CustomerRegisterInput) (*entities.AuthResponse, error) {
	if _, err := u.customerRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.Conflict("an account with this email already exists")
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, domainerrors.InternalError(err)
	}

	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	customer := &entities.Customer{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		Role:         entities.RoleCustomer,
		PasswordHash: hash,
		Phone1:       input.Phone1,
		Phone2:       null.NewString(input.Phone2, input.Phone2 != ""),
	}

	if err := u.customerRepo.Create(ctx, customer); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("an account with this email already exists")
		}
		return nil, domainerrors.InternalError(err)
	}

	u.sendVerification(ctx, customer.ID, entities.AccountCustomer, customer.Email, customer.Name)

	pair, err := u.issueTokens(ctx, customer.ID, customer.Email, jwt.AccountCustomer, string(customer.Role))
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Profile:      customer.Profile(),
	}, nil
}

// RegisterMerchant creates a merchant account, optionally attaching a
// referring marketer, and mails a verification link
func (u *AuthUsecase) RegisterMerchant(ctx context.Context, input entities.MerchantRegisterInput) (*entities.AuthResponse, error) {
	if _, err := u.merchantRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.Conflict("an account with this email already exists")
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, domainerrors.InternalError(err)
	}

	var referredBy uuid.NullUUID
	if input.ReferrerCode != "" {
		marketer, err := u.resolveReferrer(ctx, input.ReferrerCode)
		if err != nil {
			return nil, err
		}
		referredBy = uuid.NullUUID{UUID: marketer.ID, Valid: true}
	}

	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	merchant := &entities.Merchant{
		ID:           uuid.New(),
		Email:        input.Email,
		BrandName:    input.BrandName,
		PasswordHash: hash,
		Phone1:       input.Phone1,
		Phone2:       null.NewString(input.Phone2, input.Phone2 != ""),
		ReferredBy:   referredBy,
	}

	if err := u.merchantRepo.Create(ctx, merchant); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("email or brand name already taken")
		}
		return nil, domainerrors.InternalError(err)
	}

	u.sendVerification(ctx, merchant.ID, entities.AccountMerchant, merchant.Email, merchant.BrandName)

	pair, err := u.issueTokens(ctx, merchant.ID, merchant.Email, jwt.AccountMerchant, "")
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Profile:      merchant.Profile(),
	}, nil
}

// LoginCustomer authenticates a customer
func (u *AuthUsecase) LoginCustomer(ctx context.Context, input entities.LoginInput) (*entities.AuthResponse, error) {
	customer, err := u.customerRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("invalid email or password")
		}
		return nil, domainerrors.InternalError(err)
	}

	if !crypto.CheckPassword(input.Password, customer.PasswordHash) {
		return nil, domainerrors.Unauthorized("invalid email or password")
	}

	pair, err := u.issueTokens(ctx, customer.ID, customer.Email, jwt.AccountCustomer, string(customer.Role))
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Profile:      customer.Profile(),
	}, nil
}

// LoginMerchant authenticates a merchant
func (u *AuthUsecase) LoginMerchant(ctx context.Context, input entities.LoginInput) (*entities.AuthResponse, error) {
	merchant, err := u.merchantRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("invalid email or password")
		}
		return nil, domainerrors.InternalError(err)
	}

	if !crypto.CheckPassword(input.Password, merchant.PasswordHash) {
		return nil, domainerrors.Unauthorized("invalid email or password")
	}

	pair, err := u.issueTokens(ctx, merchant.ID, merchant.Email, jwt.AccountMerchant, "")
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Profile:      merchant.Profile(),
	}, nil
}

// VerifyEmail consumes a mailed verification token and marks the owning
// account verified
func (u *AuthUsecase) VerifyEmail(ctx context.Context, input entities.VerifyEmailInput) error {
	ownerID, ownerType, err := u.tokenRepo.Consume(ctx, input.Token, repositories.PurposeVerifyEmail)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.BadRequest("invalid or expired verification token")
		}
		return domainerrors.InternalError(err)
	}

	switch ownerType {
	case entities.AccountCustomer:
		err = u.customerRepo.MarkEmailVerified(ctx, ownerID)
	case entities.AccountMerchant:
		err = u.merchantRepo.MarkEmailVerified(ctx, ownerID)
	default:
		return domainerrors.BadRequest("invalid or expired verification token")
	}
	if err != nil {
		return domainerrors.InternalError(err)
	}
	return nil
}

// Refresh rotates a refresh token and issues a new token pair
func (u *AuthUsecase) Refresh(ctx context.Context, input entities.RefreshInput) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateToken(input.RefreshToken)
	if err != nil {
		return nil, domainerrors.Unauthorized("invalid refresh token")
	}

	if err := u.tokenStore.Validate(ctx, claims.SubjectID, input.RefreshToken); err != nil {
		return nil, domainerrors.Unauthorized("refresh token revoked")
	}

	if err := u.tokenStore.Revoke(ctx, claims.SubjectID, input.RefreshToken); err != nil {
		return nil, domainerrors.InternalError(err)
	}

	return u.issueTokens(ctx, claims.SubjectID, claims.Email, claims.Account, claims.Role)
}

// Logout revokes the presented refresh token
func (u *AuthUsecase) Logout(ctx context.Context, input entities.RefreshInput) error {
	claims, err := u.jwtService.ValidateToken(input.RefreshToken)
	if err != nil {
		return domainerrors.Unauthorized("invalid refresh token")
	}
	if err := u.tokenStore.Revoke(ctx, claims.SubjectID, input.RefreshToken); err != nil {
		return domainerrors.InternalError(err)
	}
	return nil
}

// ForgotPassword mails a reset link when the email matches an account.
// It reports success either way to avoid leaking account existence.
func (u *AuthUsecase) ForgotPassword(ctx context.Context, input entities.ForgotPasswordInput) error {
	if customer, err := u.customerRepo.GetByEmail(ctx, input.Email); err == nil {
		u.sendPasswordReset(ctx, customer.ID, entities.AccountCustomer, customer.Email, customer.Name)
		return nil
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.InternalError(err)
	}

	if merchant, err := u.merchantRepo.GetByEmail(ctx, input.Email); err == nil {
		u.sendPasswordReset(ctx, merchant.ID, entities.AccountMerchant, merchant.Email, merchant.BrandName)
		return nil
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.InternalError(err)
	}

	return nil
}

// ResetPassword consumes a mailed reset token, replaces the password and
// revokes every outstanding refresh token for the account
func (u *AuthUsecase) ResetPassword(ctx context.Context, input entities.ResetPasswordInput) error {
	ownerID, ownerType, err := u.tokenRepo.Consume(ctx, input.Token, repositories.PurposeResetPassword)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.BadRequest("invalid or expired reset token")
		}
		return domainerrors.InternalError(err)
	}

	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return domainerrors.InternalError(err)
	}

	switch ownerType {
	case entities.AccountCustomer:
		err = u.customerRepo.SetPassword(ctx, ownerID, hash)
	case entities.AccountMerchant:
		err = u.merchantRepo.SetPassword(ctx, ownerID, hash)
	default:
		return domainerrors.BadRequest("invalid or expired reset token")
	}
	if err != nil {
		return domainerrors.InternalError(err)
	}

	if err := u.tokenStore.RevokeAll(ctx, ownerID); err != nil {
		logger.Warn(ctx, "Failed to revoke refresh tokens after password reset",
			zap.String("owner_id", ownerID.String()), zap.Error(err))
	}
	return nil
}

func (u *AuthUsecase) resolveReferrer(ctx context.Context, code string) (*entities.Marketer, error) {
	marketer, err := u.marketerRepo.GetByUsername(ctx, code)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.BadRequest("unknown referrer code")
		}
		return nil, domainerrors.InternalError(err)
	}
	if !marketer.Verified {
		return nil, domainerrors.NewAppError(http.StatusForbidden, "MARKETER_UNVERIFIED", "referrer is not a verified marketer", domainerrors.ErrMarketerUnverified)
	}
	return marketer, nil
}

func (u *AuthUsecase) issueTokens(ctx context.Context, subjectID uuid.UUID, email, account, role string) (*jwt.TokenPair, error) {
	pair, err := u.jwtService.GenerateTokenPair(subjectID, email, account, role)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	if err := u.tokenStore.Save(ctx, subjectID, pair.RefreshToken); err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return pair, nil
}

func (u *AuthUsecase) sendVerification(ctx context.Context, ownerID uuid.UUID, ownerType entities.AccountType, email, name string) {
	token, err := crypto.GenerateVerificationToken()
	if err != nil {
		logger.Error(ctx, "Failed to generate verification token", zap.Error(err))
		return
	}
	if err := u.tokenRepo.Create(ctx, ownerID, ownerType, repositories.PurposeVerifyEmail, token); err != nil {
		logger.Error(ctx, "Failed to store verification token", zap.Error(err))
		return
	}
	if err := u.mailer.SendVerificationEmail(ctx, email, name, token); err != nil {
		logger.Error(ctx, "Failed to send verification email", zap.Error(err))
	}
}

func (u *AuthUsecase) sendPasswordReset(ctx context.Context, ownerID uuid.UUID, ownerType entities.AccountType, email, name string) {
	token, err := crypto.GenerateVerificationToken()
	if err != nil {
		logger.Error(ctx, "Failed to generate reset token", zap.Error(err))
		return
	}
	if err := u.tokenRepo.Create(ctx, ownerID, ownerType, repositories.PurposeResetPassword, token); err != nil {
		logger.Error(ctx, "Failed to store reset token", zap.Error(err))
		return
	}
	if err := u.mailer.SendPasswordResetEmail(ctx, email, name, token); err != nil {
		logger.Error(ctx, "Failed to send password reset email", zap.Error(err))
	}
}
