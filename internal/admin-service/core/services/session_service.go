package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ride-hail-admin/internal/admin-service/core/domain/dto"
	"ride-hail-admin/internal/admin-service/core/domain/model"
	"ride-hail-admin/internal/admin-service/core/ports"
	"ride-hail-admin/internal/config"
	"ride-hail-admin/internal/myerrors"
	"ride-hail-admin/internal/mylogger"

	"github.com/golang-jwt/jwt"
)

const tokenTTL = time.Hour * 24

type SessionService struct {
	ctx          context.Context
	cfg          *config.Config
	mylog        mylogger.Logger
	accountsRepo ports.IAccountsRepo
	profilesRepo ports.IProfilesRepo
	broker       ports.ISessionBroker
}

func NewSessionService(ctx context.Context,
	cfg *config.Config,
	mylog mylogger.Logger,
	accountsRepo ports.IAccountsRepo,
	profilesRepo ports.IProfilesRepo,
	broker ports.ISessionBroker,
) *SessionService {
	return &SessionService{
		ctx:          ctx,
		cfg:          cfg,
		mylog:        mylog,
		accountsRepo: accountsRepo,
		profilesRepo: profilesRepo,
		broker:       broker,
	}
}

// Login exchanges credentials for a signed session token and the resolved
// profile. Unknown email and wrong password are indistinguishable to the
// caller; an unconfirmed account is reported separately.
func (ss *SessionService) Login(ctx context.Context, req dto.LoginRequest) (string, *model.UserProfile, error) {
	log := ss.mylog.Action("Login")

	if err := validateLogin(req.Email, req.Password); err != nil {
		return "", nil, fmt.Errorf("%w: %v", myerrors.ErrInvalidCredentials, err)
	}

	account, err := ss.accountsRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, myerrors.ErrNotFound) {
			log.Warn("login with unknown email")
			return "", nil, myerrors.ErrInvalidCredentials
		}
		log.Error("cannot fetch account", err)
		return "", nil, fmt.Errorf("fetch account: %w", err)
	}

	if !checkPassword(account.PasswordHash, req.Password) {
		log.Warn("login with wrong password")
		return "", nil, myerrors.ErrInvalidCredentials
	}

	if !account.EmailConfirmed {
		log.Warn("login with unconfirmed email")
		return "", nil, myerrors.ErrEmailNotConfirmed
	}

	profile, err := ss.CurrentUser(ctx, account.Id)
	if err != nil {
		log.Error("cannot resolve profile", err)
		return "", nil, fmt.Errorf("resolve profile: %w", err)
	}
	if profile == nil {
		log.Warn("account has no profile row")
		return "", nil, myerrors.ErrInvalidCredentials
	}

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": account.Id,
		"email":   account.Email,
		"role":    profile.Role,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	})

	accessTokenString, err := accessToken.SignedString([]byte(ss.cfg.App.JwtSecret))
	if err != nil {
		log.Error("cannot sign jwt token", err)
		return "", nil, err
	}

	log.Info("user logged in", "user_id", account.Id, "role", profile.Role)
	return accessTokenString, profile, nil
}

// CurrentUser resolves a session's backing user record into a typed profile.
// A missing profile row is not an error; the caller gets nil.
func (ss *SessionService) CurrentUser(ctx context.Context, userId string) (*model.UserProfile, error) {
	profile, err := ss.profilesRepo.GetById(ctx, userId)
	if err != nil {
		if errors.Is(err, myerrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

// Logout publishes the sign-out so every running dashboard instance drops
// the session, not just the one that issued the request.
func (ss *SessionService) Logout(ctx context.Context, userId string) error {
	log := ss.mylog.Action("Logout").With("user_id", userId)

	if err := ss.broker.PublishSignOut(ctx, userId); err != nil {
		log.Error("cannot publish sign-out event", err)
		return err
	}

	log.Info("sign-out published")
	return nil
}
