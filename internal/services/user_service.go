package services

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"rentiBack/internal/identity"
	"rentiBack/internal/models"
	"rentiBack/internal/repositories"
)

// UserService handles sign-up, sign-in and profile management. The auth
// state is nothing more than the persisted boolean flag: no tokens, no
// expiry, no server-side session. Upgrading this to a real session mechanism
// would change observable behavior and is out of scope.
type UserService struct {
	UserRepo *repositories.UserRepository
}

// SignUp validates the identity fields, hashes the password and persists the
// profile. Nothing is persisted when validation fails.
func (s *UserService) SignUp(ctx context.Context, req models.SignUpRequest) (models.UserProfile, error) {
	if !identity.ValidateNationalID(req.NationalID) {
		return models.UserProfile{}, models.ErrInvalidNationalID
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.UserProfile{}, err
	}

	profile := models.UserProfile{
		Name:         strings.TrimSpace(req.Name),
		Surname:      strings.TrimSpace(req.Surname),
		Phone:        strings.TrimSpace(req.Phone),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		NationalID:   req.NationalID,
		IBAN:         identity.FormatIBAN(req.IBAN),
		PasswordHash: string(hash),
	}

	if err := s.UserRepo.SaveProfile(ctx, profile); err != nil {
		return models.UserProfile{}, err
	}
	if err := s.UserRepo.SetAuthFlag(ctx, true); err != nil {
		return models.UserProfile{}, err
	}
	return profile.PublicProfile(), nil
}

// SignIn checks the credentials against the stored profile and raises the
// auth flag.
func (s *UserService) SignIn(ctx context.Context, req models.SignInRequest) (models.UserProfile, error) {
	profile, err := s.UserRepo.GetProfile(ctx)
	if err != nil {
		return models.UserProfile{}, models.ErrInvalidCredentials
	}
	if !strings.EqualFold(profile.Email, strings.TrimSpace(req.Email)) {
		return models.UserProfile{}, models.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		return models.UserProfile{}, models.ErrInvalidCredentials
	}
	if err := s.UserRepo.SetAuthFlag(ctx, true); err != nil {
		return models.UserProfile{}, err
	}
	return profile.PublicProfile(), nil
}

func (s *UserService) SignOut(ctx context.Context) error {
	return s.UserRepo.SetAuthFlag(ctx, false)
}

func (s *UserService) IsAuthenticated(ctx context.Context) bool {
	return s.UserRepo.AuthFlag(ctx)
}

func (s *UserService) Profile(ctx context.Context) (models.UserProfile, error) {
	profile, err := s.UserRepo.GetProfile(ctx)
	if err != nil {
		return models.UserProfile{}, err
	}
	return profile.PublicProfile(), nil
}

// UpdateProfile merges the request over the stored profile. Identity fields
// are re-validated when present.
func (s *UserService) UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) (models.UserProfile, error) {
	profile, err := s.UserRepo.GetProfile(ctx)
	if err != nil {
		return models.UserProfile{}, err
	}

	if req.NationalID != nil {
		if !identity.ValidateNationalID(*req.NationalID) {
			return models.UserProfile{}, models.ErrInvalidNationalID
		}
		profile.NationalID = *req.NationalID
	}
	if req.Name != nil {
		profile.Name = strings.TrimSpace(*req.Name)
	}
	if req.Surname != nil {
		profile.Surname = strings.TrimSpace(*req.Surname)
	}
	if req.Phone != nil {
		profile.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		profile.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.IBAN != nil {
		profile.IBAN = identity.FormatIBAN(*req.IBAN)
	}

	if err := s.UserRepo.SaveProfile(ctx, profile); err != nil {
		return models.UserProfile{}, err
	}
	return profile.PublicProfile(), nil
}

// SetProfileImage stores the uploaded image reference on the profile.
func (s *UserService) SetProfileImage(ctx context.Context, url string) (models.UserProfile, error) {
	profile, err := s.UserRepo.GetProfile(ctx)
	if err != nil {
		return models.UserProfile{}, err
	}
	profile.ProfileImage = &url
	if err := s.UserRepo.SaveProfile(ctx, profile); err != nil {
		return models.UserProfile{}, err
	}
	return profile.PublicProfile(), nil
}
