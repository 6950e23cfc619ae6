package service

import (
	"context"
	"fmt"
	"petcare/config"
	"petcare/infras/otel"
	"petcare/internal/domains/user/model"
	"petcare/internal/domains/user/model/dto"
	"petcare/internal/domains/user/repository"
	"petcare/shared"
	"petcare/shared/cache"
	"petcare/shared/constant"
	gDto "petcare/shared/dto"
	"petcare/shared/failure"
	"petcare/shared/palette"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetUser    = "user:get"
	cacheGetWalkers = "user:walkers"
)

type User interface {
	Get(ctx context.Context, id string) (dto.UserResponse, error)
	GetWalkers(ctx context.Context) (dto.GetWalkersResponse, error)
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetUser, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return res, failure.NotFound("user not found") // nolint:wrapcheck
	}

	res.FromModel(user)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save user to cache")
		}
	}()

	return res, nil
}

// GetWalkers lists active walkers oldest first. Walkers without a stored color are given one
// derived from the colors already taken; nothing is written back.
func (s *serviceImpl) GetWalkers(ctx context.Context) (res dto.GetWalkersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.GetWalkers")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.cache.Get(ctx, cacheGetWalkers, &res); err == nil {
		return res, nil
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRole,
				Value:    constant.RoleWalker,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldActive,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}

	params := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}

	walkers, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get walkers")

		return res, fmt.Errorf("failed to get walkers: %w", err)
	}

	stored := make([]string, len(walkers))
	for i, walker := range walkers {
		if walker.Color != nil {
			stored[i] = *walker.Color
		}
	}

	res.FromModels(walkers, palette.AssignAll(stored), len(walkers), len(walkers))

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheGetWalkers, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save walkers to cache")
		}
	}()

	return res, nil
}
