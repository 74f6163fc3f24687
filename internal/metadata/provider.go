// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metadata

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
)

// Cache namespaces for memoized lookups.
const (
	MetadataCacheName = "omdb"
	CastCacheName     = "tmdb"
)

// profileSize is the TMDB image size segment used for cast portraits.
const profileSize = "w200"

// sharedLookupTimeout bounds one upstream lookup, including rate-limiter waits.
const sharedLookupTimeout = 30 * time.Second

// sharedContext detaches a memoized lookup from the request that started it.
// Concurrent requests for the same title wait on that lookup, so it must
// outlive any single client.
func sharedContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), sharedLookupTimeout)
}

// Options configures a Provider. A nil OMDb or TMDB disables that lookup,
// and nil caches default to unbounded in-memory caches.
type Options struct {
	OMDb          OMDbAPI
	TMDB          TMDBAPI
	ImageBaseURL  string
	MetadataCache cache.Cacher
	CastCache     cache.Cacher
	Logger        zerolog.Logger
}

// Provider serves defaulted metadata and cast lists.
type Provider struct {
	omdb      OMDbAPI
	tmdb      TMDBAPI
	imageBase string
	metadata  *cache.Memo[Metadata]
	cast      *cache.Memo[[]CastMember]
	logger    zerolog.Logger
}

// NewProvider creates a Provider from opts.
func NewProvider(opts Options) *Provider {
	if opts.MetadataCache == nil {
		opts.MetadataCache = cache.NewMemory()
	}
	if opts.CastCache == nil {
		opts.CastCache = cache.NewMemory()
	}
	return &Provider{
		omdb:      opts.OMDb,
		tmdb:      opts.TMDB,
		imageBase: strings.TrimSuffix(opts.ImageBaseURL, "/"),
		metadata:  cache.NewMemo[Metadata](MetadataCacheName, opts.MetadataCache),
		cast:      cache.NewMemo[[]CastMember](CastCacheName, opts.CastCache),
		logger:    opts.Logger.With().Str("component", "metadata").Logger(),
	}
}

// New builds a Provider with breaker-wrapped clients for every upstream
// that has an API key in cfg. Results are memoized into backend.
func New(cfg *config.Config, backend *cache.Backend) *Provider {
	opts := Options{
		ImageBaseURL:  cfg.TMDB.ImageBaseURL,
		MetadataCache: backend.Cache(MetadataCacheName),
		CastCache:     backend.Cache(CastCacheName),
		Logger:        logging.Logger(),
	}
	if cfg.OMDb.Enabled() {
		opts.OMDb = NewCircuitBreakerOMDb(NewOMDbClient(&cfg.OMDb), DefaultBreakerSettings())
	} else {
		logging.Warn().Msg("OMDb API key not set, metadata lookups disabled")
	}
	if cfg.TMDB.Enabled() {
		opts.TMDB = NewCircuitBreakerTMDB(NewTMDBClient(&cfg.TMDB), DefaultBreakerSettings())
	} else {
		logging.Warn().Msg("TMDB API key not set, cast lookups disabled")
	}
	return NewProvider(opts)
}

// FetchMetadata returns the OMDb record for title. Any failure yields
// DefaultMetadata. Failed lookups are not memoized.
func (p *Provider) FetchMetadata(ctx context.Context, title string) Metadata {
	if p.omdb == nil {
		return DefaultMetadata()
	}

	m, err := p.metadata.Load(title, func() (Metadata, error) {
		lctx, cancel := sharedContext(ctx)
		defer cancel()

		movie, err := p.omdb.GetMovie(lctx, title)
		if errors.Is(err, ErrNotFound) {
			return DefaultMetadata(), nil
		}
		if err != nil {
			return Metadata{}, err
		}
		return fromOMDb(movie), nil
	})
	if err != nil {
		p.logFailure(err, title, "metadata lookup failed, using defaults")
		return DefaultMetadata()
	}
	return m
}

// FetchCastPhotos returns up to MaxCastMembers billed actors of title.
// Any failure yields an empty, non-nil list.
func (p *Provider) FetchCastPhotos(ctx context.Context, title string) []CastMember {
	if p.tmdb == nil {
		return []CastMember{}
	}

	members, err := p.cast.Load(title, func() ([]CastMember, error) {
		lctx, cancel := sharedContext(ctx)
		defer cancel()

		id, err := p.tmdb.SearchMovie(lctx, title)
		if errors.Is(err, ErrNotFound) {
			return []CastMember{}, nil
		}
		if err != nil {
			return nil, err
		}

		credits, err := p.tmdb.Credits(lctx, id)
		if errors.Is(err, ErrNotFound) {
			return []CastMember{}, nil
		}
		if err != nil {
			return nil, err
		}
		return p.castFromCredits(credits), nil
	})
	if err != nil {
		p.logFailure(err, title, "cast lookup failed")
		return []CastMember{}
	}
	if members == nil {
		return []CastMember{}
	}
	return members
}

func (p *Provider) castFromCredits(credits []TMDBCastMember) []CastMember {
	n := min(len(credits), MaxCastMembers)
	members := make([]CastMember, 0, n)
	for _, c := range credits[:n] {
		members = append(members, CastMember{Name: c.Name, ImageURL: p.profileURL(c.ProfilePath)})
	}
	return members
}

func (p *Provider) profileURL(profilePath string) string {
	if profilePath == "" {
		return PlaceholderProfile
	}
	return p.imageBase + "/" + profileSize + profilePath
}

func (p *Provider) logFailure(err error, title, msg string) {
	if errors.Is(err, context.Canceled) {
		p.logger.Debug().Err(err).Str("title", title).Msg(msg)
		return
	}
	p.logger.Warn().Err(err).Str("title", title).Msg(msg)
}

// fromOMDb converts a successful OMDb response. Missing fields become "N/A",
// a missing plot becomes NoPlot and a missing poster the placeholder image.
func fromOMDb(m *OMDbMovie) Metadata {
	poster := m.Poster
	if poster == "" || poster == NotAvailable {
		poster = PlaceholderPoster
	}
	plot := m.Plot
	if plot == "" {
		plot = NoPlot
	}
	return Metadata{
		Poster:      poster,
		Plot:        plot,
		Actors:      orNotAvailable(m.Actors),
		Rating:      orNotAvailable(m.IMDbRating),
		Genre:       orNotAvailable(m.Genre),
		ReleaseDate: orNotAvailable(m.Released),
		Runtime:     orNotAvailable(m.Runtime),
	}
}

func orNotAvailable(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
