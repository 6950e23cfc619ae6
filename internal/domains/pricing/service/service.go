package service

import (
	"context"
	"petcare/config"
	"petcare/infras/otel"
	"petcare/internal/domains/catalog"
	"petcare/internal/domains/pricing/engine"
	"petcare/internal/domains/pricing/model/dto"
	"petcare/shared"
	"petcare/shared/cache"
	"petcare/shared/constant"
	"petcare/shared/failure"
	"petcare/shared/holiday"
	"strconv"

	"github.com/rs/zerolog/log"
)

const cacheQuote = "pricing:quote"

type Pricing interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (engine.Quote, error)
	Holidays(ctx context.Context, req dto.HolidaysRequest) (dto.HolidaysResponse, error)
}

type serviceImpl struct {
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Pricing {
	return &serviceImpl{
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Quote prices a validated stay. Quotes are a pure function of the request, so they are cached
// under the request arguments and never invalidated.
func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (res engine.Quote, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricing.Quote")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = engine.CheckStay(req.StartDate, req.EndDate); err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheQuote, req.ServiceType, strconv.Itoa(req.DogCount), req.StartDate, req.EndDate)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for quote")

		return res, nil
	}

	res = engine.Price(catalog.ServiceType(req.ServiceType), req.DogCount, req.StartDate, req.EndDate)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save quote to cache")
		}
	}()

	return res, nil
}

// Holidays lists the surcharge holidays of a year and the dates they cover.
func (s *serviceImpl) Holidays(ctx context.Context, req dto.HolidaysRequest) (res dto.HolidaysResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricing.Holidays")
	defer scope.End()

	res.Year = req.Year
	res.Holidays = holiday.Holidays(req.Year)
	res.Dates = holiday.Dates(req.Year)

	return res, nil
}
