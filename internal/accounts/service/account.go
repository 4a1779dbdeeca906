package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/aussiebroadwan/passport/internal/accounts/domain"
	"github.com/aussiebroadwan/passport/internal/accounts/store"
	"github.com/aussiebroadwan/passport/pkg/cryptox"
	"github.com/aussiebroadwan/passport/pkg/idx"
	"github.com/aussiebroadwan/passport/pkg/jwtx"
	"github.com/aussiebroadwan/passport/pkg/slogx"
)

// maxPasswordLen bounds the work a single request can ask the hasher to do.
const maxPasswordLen = 1024

// fallbackDummyHash is a well-formed Argon2id digest at the current cost
// parameters. No password matches it.
const fallbackDummyHash = "$argon2id$v=19$m=19456,t=2,p=1$0SSF0kvfbb2qfyeYTgzNiQ$eIAlXs4ZRoreflob+TGsxFYmylLKppB6CaFzE1qXqJA"

// AccountService implements registration, login, self-service profile
// management and favorites. Every operation after login is scoped to the
// caller id taken from the verified session token.
type AccountService struct {
	Store  store.Store
	Hasher *cryptox.Hasher
	Tokens *jwtx.Issuer

	dummyMu   sync.Mutex
	dummyHash string
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string // ignored; every account starts as domain.DefaultRole
}

// UpdateInput holds optional profile changes. Empty strings mean "keep".
type UpdateInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates a user with the default role and no favorites.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	log := slogx.FromContext(ctx)

	name := strings.TrimSpace(in.Name)
	email := domain.NormalizeEmail(in.Email)
	if name == "" || email == "" || in.Password == "" || len(in.Password) > maxPasswordLen {
		return domain.User{}, ErrValidation
	}
	if !validEmail(email) {
		return domain.User{}, ErrInvalidEmail
	}
	if in.Role != "" && domain.Role(in.Role) != domain.DefaultRole {
		log.Info("ignoring requested role at registration", "requested_role", in.Role)
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	u := domain.User{
		ID:           idx.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.DefaultRole,
		Favorites:    []string{},
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	log.Info("user registered", "user_id", u.ID)
	return u, nil
}

// Login verifies credentials and returns a signed session token. Unknown
// email and wrong password both yield ErrInvalidCredentials, and an unknown
// email still pays for one hash verification.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, error) {
	log := slogx.FromContext(ctx)
	email = domain.NormalizeEmail(email)

	if email == "" || password == "" || len(password) > maxPasswordLen {
		_ = s.Hasher.Verify(password, s.dummy())
		return "", ErrInvalidCredentials
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = s.Hasher.Verify(password, s.dummy())
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	if err := s.Hasher.Verify(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrInvalidDigest) {
			log.Error("stored password hash is unreadable", "user_id", u.ID)
		}
		return "", ErrInvalidCredentials
	}

	if s.Hasher.NeedsRehash(u.PasswordHash) {
		s.upgradeHash(ctx, u.ID, password)
	}

	token, _, err := s.Tokens.Issue(u.ID, u.Role.String())
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	log.Info("user logged in", "user_id", u.ID)
	return token, nil
}

// upgradeHash replaces a legacy digest. Failure only costs another attempt on
// the next login.
func (s *AccountService) upgradeHash(ctx context.Context, userID, password string) {
	log := slogx.FromContext(ctx)

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		log.Warn("rehash failed", "user_id", userID, "err", err)
		return
	}
	if _, err := s.Store.Users().UpdateUser(ctx, userID, domain.UserUpdate{PasswordHash: &hash}); err != nil {
		log.Warn("storing upgraded hash failed", "user_id", userID, "err", err)
		return
	}
	log.Info("upgraded legacy password hash", "user_id", userID)
}

// dummy returns the digest verified for unknown emails. A failed Hash is not
// cached; the fallback keeps the verification cost identical meanwhile.
func (s *AccountService) dummy() string {
	s.dummyMu.Lock()
	defer s.dummyMu.Unlock()

	if s.dummyHash == "" {
		h, err := s.Hasher.Hash("passport-timing-equalizer")
		if err != nil {
			return fallbackDummyHash
		}
		s.dummyHash = h
	}
	return s.dummyHash
}

// GetSelf returns the caller's record.
func (s *AccountService) GetSelf(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.User{}, mapStoreError(err)
	}
	return u, nil
}

// UpdateSelf overwrites only the provided fields. A new password is hashed
// before it reaches the store.
func (s *AccountService) UpdateSelf(ctx context.Context, userID string, in UpdateInput) (domain.User, error) {
	var upd domain.UserUpdate

	if name := strings.TrimSpace(in.Name); name != "" {
		upd.Name = &name
	}
	if email := domain.NormalizeEmail(in.Email); email != "" {
		if !validEmail(email) {
			return domain.User{}, ErrInvalidEmail
		}
		upd.Email = &email
	}
	if in.Password != "" {
		if len(in.Password) > maxPasswordLen {
			return domain.User{}, ErrValidation
		}
		hash, err := s.Hasher.Hash(in.Password)
		if err != nil {
			return domain.User{}, fmt.Errorf("hash password: %w", err)
		}
		upd.PasswordHash = &hash
	}

	if upd.IsEmpty() {
		return s.GetSelf(ctx, userID)
	}

	u, err := s.Store.Users().UpdateUser(ctx, userID, upd)
	if err != nil {
		return domain.User{}, mapStoreError(err)
	}

	slogx.FromContext(ctx).Info("user updated", "user_id", userID,
		"name", upd.Name != nil, "email", upd.Email != nil, "password", upd.PasswordHash != nil)
	return u, nil
}

// DeleteSelf removes the caller and their favorites. Outstanding tokens stay
// cryptographically valid but every later call finds no user.
func (s *AccountService) DeleteSelf(ctx context.Context, userID string) error {
	if err := s.Store.Users().DeleteUser(ctx, userID); err != nil {
		return mapStoreError(err)
	}
	slogx.FromContext(ctx).Info("user deleted", "user_id", userID)
	return nil
}

// AddFavorite appends countryID. A duplicate is an error, not a no-op.
func (s *AccountService) AddFavorite(ctx context.Context, userID, countryID string) error {
	countryID = strings.TrimSpace(countryID)
	if countryID == "" {
		return ErrCountryIDRequired
	}
	return mapStoreError(s.Store.Users().AddFavorite(ctx, userID, countryID))
}

// Favorites lists the caller's favorites; never nil.
func (s *AccountService) Favorites(ctx context.Context, userID string) ([]string, error) {
	favs, err := s.Store.Users().ListFavorites(ctx, userID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	if favs == nil {
		favs = []string{}
	}
	return favs, nil
}

func (s *AccountService) RemoveFavorite(ctx context.Context, userID, countryID string) error {
	countryID = strings.TrimSpace(countryID)
	if countryID == "" {
		return ErrCountryIDRequired
	}
	return mapStoreError(s.Store.Users().RemoveFavorite(ctx, userID, countryID))
}

// validEmail is a shape check only: one "@" with text on both sides.
func validEmail(email string) bool {
	local, domainPart, ok := strings.Cut(email, "@")
	return ok && local != "" && domainPart != "" && !strings.Contains(domainPart, "@") &&
		!strings.ContainsAny(email, " \t\r\n")
}
