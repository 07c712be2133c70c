package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jbeshir/newsdesk/internal/command"
	"github.com/jbeshir/newsdesk/internal/transport/web/controller"
)

func MakeRouter(
	getArticleCmd command.Command[command.GetArticleRequest, command.GetArticleResult],
	toggleInteractionCmd command.Command[command.ToggleInteractionRequest, command.ToggleInteractionResult],
	interactionStateCmd command.Command[command.GetInteractionStateRequest, command.InteractionState],
	articleCacheMaxAge time.Duration,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/articles/{article_id}", controller.ArticleGet{
		GetArticleCmd: getArticleCmd,
		CacheMaxAge:   articleCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	// Registered before the toggle route so "state" is not taken as a type.
	r.Handle("/v1/interactions/state", controller.InteractionStateGet{
		StateCmd: interactionStateCmd,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/interactions/{type}", requireAuthMiddleware(controller.InteractionToggle{
		ToggleCmd: toggleInteractionCmd,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r, nil
}
