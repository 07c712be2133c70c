package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/jbeshir/newsdesk/internal/command"
	"github.com/jbeshir/newsdesk/internal/domain"
)

type ArticleGet struct {
	GetArticleCmd command.Command[command.GetArticleRequest, command.GetArticleResult]
	CacheMaxAge   time.Duration
}

func (c ArticleGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idOrSlug := mux.Vars(r)["article_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("article", idOrSlug))

	res, err := c.GetArticleCmd.Execute(ctx, command.GetArticleRequest{
		IDOrSlug: idOrSlug,
		IsEditor: domain.IsEditorFromContext(ctx),
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if res.CacheHit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	if domain.UserIDFromContext(ctx) == "" && res.Payload.IsPublished() {
		w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	}

	writeJSON(ctx, w, http.StatusOK, res.Payload)
}
