package identity

import (
	"context"
	"errors"

	"github.com/emprendia/backend/internal/domain/identity"
	"github.com/emprendia/backend/internal/domain/shared"
	"github.com/emprendia/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthService handles signup, login and logout
type AuthService struct {
	scope      TransactionScope
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	scope TransactionScope,
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		scope:      scope,
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
	}
}

// Signup creates a business account and its owner user in one transaction,
// then issues a token pair.
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An account with this email already exists")
	}

	var (
		tenant *identity.Tenant
		user   *identity.User
	)
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		tenant, err = identity.NewTenant(req.BusinessName, req.BusinessDescription)
		if err != nil {
			return err
		}
		if err := repos.TenantRepo().Save(ctx, tenant); err != nil {
			return err
		}

		user, err = identity.NewUser(tenant.ID, req.OwnerName, req.Email, req.Password)
		if err != nil {
			return err
		}
		return repos.UserRepo().Save(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	tokens, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		TenantID: tenant.ID,
		UserID:   user.ID,
		Email:    user.Email,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("business account created",
		zap.String("tenant_id", tenant.ID.String()),
		zap.String("user_id", user.ID.String()))

	return &AuthResponse{
		TenantID: tenant.ID,
		UserID:   user.ID,
		Email:    user.Email,
		Tokens:   tokens,
	}, nil
}

// Login verifies credentials and issues a token pair carrying the tenant id
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("login attempt for unknown email", zap.String("email", req.Email))
			return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
		}
		return nil, err
	}

	if !user.VerifyPassword(req.Password) {
		s.logger.Warn("invalid password attempt", zap.String("email", req.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	tokens, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		TenantID: user.TenantID,
		UserID:   user.ID,
		Email:    user.Email,
	})
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		TenantID: user.TenantID,
		UserID:   user.ID,
		Email:    user.Email,
		Tokens:   tokens,
	}, nil
}

// Refresh exchanges a valid refresh token for a new token pair
func (s *AuthService) Refresh(_ context.Context, req RefreshRequest) (*auth.TokenPair, error) {
	tokens, err := s.jwtService.RefreshTokenPair(req.RefreshToken)
	if err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid or expired refresh token")
	}
	return tokens, nil
}

// Logout revokes the presented access token by blacklisting its JTI for the
// remainder of its lifetime.
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil || claims.ID == "" {
		return shared.ErrUnauthorized
	}
	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
		s.logger.Error("failed to blacklist token", zap.Error(err))
		return shared.WrapPersistence(err)
	}
	return nil
}
