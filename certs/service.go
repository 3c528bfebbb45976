// certs/service.go
package certs

import (
	"context"

	"github.com/pranav244872/certsearch/cache"
	"github.com/pranav244872/certsearch/logging"
	"github.com/pranav244872/certsearch/skillz"
	"golang.org/x/sync/singleflight"
)

////////////////////////////////////////////////////////////////////////
// Interface Definition
////////////////////////////////////////////////////////////////////////

// Searcher is the public contract the HTTP layer depends on.
// Using an interface allows handlers to be tested with a stub.
type Searcher interface {
	// SearchQuery looks up certifications for a free-text term.
	SearchQuery(ctx context.Context, rawQuery string) (SearchResult, error)

	// SearchPlan looks up certifications for the weakest items of a PDI.
	SearchPlan(ctx context.Context, plan skillz.Plan) (SearchResult, error)
}

////////////////////////////////////////////////////////////////////////
// Struct and Constructor
////////////////////////////////////////////////////////////////////////

// Service implements Searcher on top of a Gateway and a ResultCache.
type Service struct {
	gateway        *Gateway
	cache          *cache.ResultCache[[]Certification]
	group          singleflight.Group
	planCacheReads bool
	log            *logging.Logger
}

// Options tune Service behaviour.
type Options struct {
	// PlanCacheReads serves repeated PDI searches from the cache. Results
	// are stored either way.
	PlanCacheReads bool
}

func NewService(gateway *Gateway, resultCache *cache.ResultCache[[]Certification], opts Options, log *logging.Logger) *Service {
	return &Service{
		gateway:        gateway,
		cache:          resultCache,
		planCacheReads: opts.PlanCacheReads,
		log:            log,
	}
}

////////////////////////////////////////////////////////////////////////
// Public Methods (Interface Implementation)
////////////////////////////////////////////////////////////////////////

// SearchQuery orchestrates the free-text flow:
// 1. Normalize the term (blank terms fail with ErrInvalidInput)
// 2. Serve from the cache when possible
// 3. Otherwise prompt the model, parse its answer and cache it
func (s *Service) SearchQuery(ctx context.Context, rawQuery string) (SearchResult, error) {
	query, err := NormalizeQuery(rawQuery)
	if err != nil {
		return SearchResult{}, err
	}

	key := cache.Key("query", query)
	if cached, ok := s.cache.Get(key); ok {
		s.log.Info("serving from cache", "query", query)
		return SearchResult{Certifications: cached, Source: SourceCache}, nil
	}

	s.log.Info("querying model", "query", query)
	certifications, err := s.fetchOnce(ctx, key, func(ctx context.Context) ([]Certification, error) {
		return s.gateway.Fetch(ctx, BuildQueryPrompt(query))
	})
	if err != nil {
		return SearchResult{}, err
	}
	return SearchResult{Certifications: certifications, Source: SourceModel}, nil
}

// SearchPlan orchestrates the PDI flow:
// 1. Keep only the weakest items of each category
// 2. Prompt the model with them
// 3. Keep only records that mention one of those items
// The cache key is derived from the weakest items, the same input the prompt uses.
func (s *Service) SearchPlan(ctx context.Context, plan skillz.Plan) (SearchResult, error) {
	weakest := plan.Weakest()
	terms := weakest.Names()
	key := cache.Key("pdi", weakest.Fingerprint())
	if weakest.IsEmpty() {
		s.log.Warn("plan has no skill items, prompting without criteria")
	}

	if s.planCacheReads {
		if cached, ok := s.cache.Get(key); ok {
			s.log.Info("serving plan from cache", "terms", terms)
			return SearchResult{Certifications: cached, Source: SourceCache}, nil
		}
	}

	s.log.Info("querying model for plan", "terms", terms)
	certifications, err := s.fetchOnce(ctx, key, func(ctx context.Context) ([]Certification, error) {
		fetched, err := s.gateway.Fetch(ctx, BuildPlanPrompt(weakest))
		if err != nil {
			return nil, err
		}
		return FilterByTerms(fetched, terms), nil
	})
	if err != nil {
		return SearchResult{}, err
	}
	return SearchResult{Certifications: certifications, Source: SourceModel}, nil
}

////////////////////////////////////////////////////////////////////////
// Private Helper Methods
////////////////////////////////////////////////////////////////////////

// fetchOnce runs fetch for key at most once at a time and caches a successful
// result. Concurrent callers with the same key share the single upstream call.
// The call is detached from ctx cancellation so an abandoned request does not
// abort a fetch other callers may be waiting on.
func (s *Service) fetchOnce(ctx context.Context, key string, fetch func(context.Context) ([]Certification, error)) ([]Certification, error) {
	detached := context.WithoutCancel(ctx)

	v, err, shared := s.group.Do(key, func() (any, error) {
		certifications, err := fetch(detached)
		if err != nil {
			return nil, err
		}
		s.cache.Put(key, certifications)
		return certifications, nil
	})
	if err != nil {
		s.log.Error("model search failed", "key", key, "err", err)
		return nil, err
	}
	if shared {
		s.log.Debug("shared in-flight model call", "key", key)
	}
	return v.([]Certification), nil
}
