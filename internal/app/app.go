package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jbeshir/newsdesk/internal/command"
	"github.com/jbeshir/newsdesk/internal/datasources"
	"github.com/jbeshir/newsdesk/internal/datasources/memory"
	"github.com/jbeshir/newsdesk/internal/datasources/mysql"
	"github.com/jbeshir/newsdesk/internal/datasources/redis"
	"github.com/jbeshir/newsdesk/internal/datasources/resilient"
	"github.com/jbeshir/newsdesk/internal/domain"
	"github.com/jbeshir/newsdesk/internal/transport/web/router"
	"github.com/jbeshir/newsdesk/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	dataset, err := setupDatasetRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up dataset repository: %w", err)
	}

	cache, closer, err := setupCache(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up cache: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	viewRecorder := command.NewAsyncViewRecorder(
		dataset,
		GetEnvAsIntOrDefault(ctx, "VIEW_QUEUE_SIZE", defaultViewQueueSize),
	)
	invalidator := command.NewArticleCacheInvalidator(dataset, cache)

	getArticleCmd := command.NewGetArticle(
		dataset,
		dataset,
		dataset,
		cache,
		viewRecorder,
		ArticleCacheTTL(ctx),
	)

	toggleInteractionCmd := command.NewToggleInteraction(
		dataset,
		invalidator,
		GetEnvAsDurationOrDefault(ctx, "TOGGLE_TIMEOUT", defaultToggleTimeout),
	)

	interactionStateCmd := command.NewGetInteractionState(dataset)

	httpRouter, err := router.MakeRouter(
		getArticleCmd,
		toggleInteractionCmd,
		interactionStateCmd,
		GetEnvAsDurationOrDefault(ctx, "ARTICLE_CACHE_MAX_AGE", defaultArticleCacheMaxAge),
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	tlsDisabled := MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED")
	httpServer := &server.Server{
		TLSDisabled: tlsDisabled,
		Router:      httpRouter,
	}
	if tlsDisabled {
		httpServer.TLSDisabledPort = MustGetEnvAsInt(ctx, "PORT")
	} else {
		httpServer.AutocertHostnames = MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES")
	}

	components := []Component{httpServer, viewRecorder}
	if closer != nil {
		components = append(components, closeOnDone{closer: closer})
	}
	return components, nil
}

// ErrProcessLocalCache is returned when the admin tool needs to reach the service's
// cache but the configured driver keeps a separate cache inside each process.
var ErrProcessLocalCache = errors.New("cache driver is local to each service process")

// Admin holds the operator commands run by newsdesk-admin.
type Admin struct {
	RepairInteractions    *command.RepairInteractions
	InvalidateArticle     *command.InvalidateArticle
	InvalidateAllArticles *command.InvalidateAllArticles

	closer func() error
}

// Close releases connections held by the cache backend, if any.
func (a *Admin) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer()
}

// SetupAdmin wires the operator commands. With requireSharedCache set it fails with
// ErrProcessLocalCache unless the cache is shared with the running service; otherwise
// a process-local cache is replaced by NullCache and cached articles age out by TTL.
func SetupAdmin(ctx context.Context, requireSharedCache bool) (*Admin, error) {
	cache, closer, err := setupSharedCache(ctx)
	switch {
	case err == nil:
	case errors.Is(err, ErrProcessLocalCache) && !requireSharedCache:
		domain.LoggerFromContext(ctx).WarnContext(ctx,
			"service cache unreachable from here, cached articles expire by TTL", "error", err)
		cache = datasources.NullCache{}
	default:
		return nil, fmt.Errorf("setting up cache: %w", err)
	}

	dataset, err := setupDatasetRepository(ctx)
	if err != nil {
		if closer != nil {
			_ = closer()
		}
		return nil, fmt.Errorf("setting up dataset repository: %w", err)
	}

	invalidator := command.NewArticleCacheInvalidator(dataset, cache)
	return &Admin{
		RepairInteractions:    command.NewRepairInteractions(dataset, invalidator),
		InvalidateArticle:     command.NewInvalidateArticle(invalidator),
		InvalidateAllArticles: command.NewInvalidateAllArticles(cache),
		closer:                closer,
	}, nil
}

func setupDatasetRepository(ctx context.Context) (*resilient.Repository, error) {
	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL: %w", err)
	}
	return resilient.New(mysql.New(db), DatastoreRetryConfig(ctx), mysql.IsConnectivityError), nil
}

// setupCache returns the configured cache backend behind a FailSafeCache, and a
// close function when the backend holds connections.
func setupCache(ctx context.Context) (datasources.Cache, func() error, error) {
	switch driver := GetEnvAsStringOrDefault("CACHE_DRIVER", defaultCacheDriver); driver {
	case "null":
		return datasources.NullCache{}, nil, nil
	case "memory":
		backend := memory.New(
			GetEnvAsIntOrDefault(ctx, "MEMORY_CACHE_SIZE", defaultMemoryCacheSize),
			ArticleCacheTTL(ctx),
		)
		return datasources.FailSafeCache{Backend: backend}, nil, nil
	case "redis":
		client, err := redis.Connect(ctx, MustGetEnvAsString(ctx, "REDIS_URL"))
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to redis: %w", err)
		}
		backend := redis.New(client)
		return datasources.FailSafeCache{Backend: backend}, backend.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache driver [%s]", driver)
	}
}

func setupAuthMiddleware(ctx context.Context) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "":
			// Skip empty strings (e.g., from splitting an empty AUTH_DRIVERS)
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		case "gateway":
			trustedProxies, err := router.ParseTrustedProxies(MustGetEnvAsStrings(ctx, "GATEWAY_TRUSTED_PROXIES"))
			if err != nil {
				return nil, fmt.Errorf("creating gateway validator: %w", err)
			}
			validators = append(validators, router.NewGatewayValidator(trustedProxies))
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}

// setupSharedCache returns the bare cache backend shared with the running service, so
// that backend failures reach the operator instead of being degraded to misses.
func setupSharedCache(ctx context.Context) (datasources.Cache, func() error, error) {
	switch driver := GetEnvAsStringOrDefault("CACHE_DRIVER", defaultCacheDriver); driver {
	case "null", "memory":
		return nil, nil, fmt.Errorf("%w: [%s]", ErrProcessLocalCache, driver)
	case "redis":
		client, err := redis.Connect(ctx, MustGetEnvAsString(ctx, "REDIS_URL"))
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to redis: %w", err)
		}
		backend := redis.New(client)
		return backend, backend.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache driver [%s]", driver)
	}
}

// closeOnDone closes a backend once the component group is shutting down.
type closeOnDone struct {
	closer func() error
}

func (c closeOnDone) Run(ctx context.Context) error {
	<-ctx.Done()
	if err := c.closer(); err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "closing cache backend", "error", err)
	}
	return nil
}
