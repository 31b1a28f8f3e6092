package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"carre/infras/jwt"
	"carre/infras/otel"
	"carre/internal/domains/auth/model/dto"
	userModel "carre/internal/domains/user/model"
	userRepo "carre/internal/domains/user/repository"
	"carre/shared/constant"
	gDto "carre/shared/dto"
	"carre/shared/failure"
	"carre/shared/password"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Refresh(ctx context.Context, req dto.RefreshRequest) (dto.RefreshResponse, error)
}

type serviceImpl struct {
	userRepo userRepo.User
	jwt      jwt.JWT
	otel     otel.Otel
}

func New(userRepo userRepo.User, jwtService jwt.JWT, otel otel.Otel) Auth {
	return &serviceImpl{
		userRepo: userRepo,
		jwt:      jwtService,
		otel:     otel,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, filterByEmail(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.Unauthorized("invalid email or password") // nolint:wrapcheck
	}

	if err = password.Verify(user.PasswordHash, req.Password); err != nil {
		if errors.Is(err, password.ErrInvalidPassword) {
			return res, failure.Unauthorized("invalid email or password") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to verify password")

		return res, fmt.Errorf("failed to verify password: %w", err)
	}

	pair, err := s.jwt.GenerateTokenPair(user.ID, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token pair")

		return res, fmt.Errorf("failed to generate token pair: %w", err)
	}

	res.FromTokenPair(pair, user.Name, user.Email, user.Role)

	return res, nil
}

func (s *serviceImpl) Refresh(ctx context.Context, req dto.RefreshRequest) (res dto.RefreshResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Refresh")
	defer scope.End()
	defer scope.TraceIfError(err)

	pair, err := s.jwt.RefreshTokens(req.RefreshToken)
	if err != nil {
		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	res.FromTokenPair(pair)

	return res, nil
}

func filterByEmail(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Value:    email,
				Operator: gDto.FilterOperatorEq,
				Table:    userModel.TableName,
			},
		},
	}
}
