package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"

	"github.com/jbeshir/newsdesk/internal/datasources"
	"github.com/jbeshir/newsdesk/internal/domain"
)

var _ datasources.DatasetRepository = (*Repository)(nil)

type Repository struct {
	db  *sql.DB
	now func() time.Time
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

var articleColumns = []string{
	"id", "slug", "title", "status", "views", "content", "excerpt", "category",
	"author_id", "keywords", "meta_keywords", "tags", "published_at", "updated_at",
}

// FetchArticle matches idOrSlug against both the primary key and the slug. When one
// row matches by id and another by slug, the id match is returned.
func (r *Repository) FetchArticle(ctx context.Context, idOrSlug string) (domain.Article, error) {
	sb := sqlbuilder.Select(articleColumns...)
	sb.From("articles")
	sb.Where(sb.Or(
		sb.Equal("id", idOrSlug),
		sb.Equal("slug", idOrSlug),
	))
	sb.OrderBy(fmt.Sprintf("CASE WHEN id = %s THEN 0 ELSE 1 END", sb.Var(idOrSlug)))
	sb.Limit(1)

	query, args := sb.Build()
	row := r.db.QueryRowContext(ctx, query, args...)

	var article domain.Article
	var status string
	var excerpt, category, authorID sql.NullString
	var keywords, metaKeywords, tags sql.NullString
	var publishedAt sql.NullTime
	err := row.Scan(
		&article.ID,
		&article.Slug,
		&article.Title,
		&status,
		&article.Views,
		&article.Content,
		&excerpt,
		&category,
		&authorID,
		&keywords,
		&metaKeywords,
		&tags,
		&publishedAt,
		&article.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Article{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Article{}, fmt.Errorf("fetching article: %w", err)
	}

	article.Status = domain.ArticleStatus(status)
	article.Excerpt = excerpt.String
	article.Category = category.String
	article.AuthorID = authorID.String
	article.Keywords = keywords.String
	article.MetaKeywords = metaKeywords.String
	if publishedAt.Valid {
		article.PublishedAt = &publishedAt.Time
	}
	if tags.Valid && tags.String != "" {
		if err := json.Unmarshal([]byte(tags.String), &article.Tags); err != nil {
			return domain.Article{}, fmt.Errorf("decoding tags for article %s: %w", article.ID, err)
		}
	}

	return article, nil
}

func (r *Repository) IncrementArticleViews(ctx context.Context, articleID string) error {
	ub := sqlbuilder.Update("articles")
	ub.Set(ub.Incr("views"))
	ub.Where(ub.Equal("id", articleID))

	query, args := ub.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("incrementing article views: %w", err)
	}
	return nil
}

func (r *Repository) FetchAuthor(ctx context.Context, authorID string) (domain.Author, error) {
	sb := sqlbuilder.Select("id", "name", "avatar_url", "bio")
	sb.From("authors")
	sb.Where(sb.Equal("id", authorID))

	query, args := sb.Build()
	row := r.db.QueryRowContext(ctx, query, args...)

	var author domain.Author
	var avatarURL, bio sql.NullString
	err := row.Scan(&author.ID, &author.Name, &avatarURL, &bio)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Author{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Author{}, fmt.Errorf("fetching author: %w", err)
	}
	author.AvatarURL = avatarURL.String
	author.Bio = bio.String

	return author, nil
}

// maxDeadlockAttempts bounds how often a toggle transaction chosen as a deadlock victim
// is replayed. InnoDB rolls the victim back completely, so replaying it is safe.
const maxDeadlockAttempts = 3

// ToggleInteraction atomically flips the interaction for key.
//
// The transaction runs at READ COMMITTED so deleting an absent row takes no gap lock.
// Two concurrent toggles for the same key then serialise on the unique key: the loser's
// insert waits for the winner, fails with a duplicate entry, and the loser deletes the
// winner's row instead, giving on-then-off.
func (r *Repository) ToggleInteraction(
	ctx context.Context,
	articleID, userID string,
	interactionType domain.InteractionType,
) (bool, error) {
	key := domain.InteractionKey{ArticleID: articleID, UserID: userID, Type: interactionType}

	var err error
	for attempt := 1; attempt <= maxDeadlockAttempts; attempt++ {
		var newState bool
		newState, err = r.toggleOnce(ctx, key)
		if !isDeadlock(err) {
			return newState, err
		}
		domain.LoggerFromContext(ctx).DebugContext(ctx, "toggle chosen as deadlock victim, replaying",
			"article_id", articleID, "type", interactionType, "attempt", attempt)
	}
	return false, err
}

func (r *Repository) toggleOnce(ctx context.Context, key domain.InteractionKey) (bool, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return false, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := r.lockPublishedArticle(ctx, tx, key.ArticleID); err != nil {
		return false, err
	}

	newState, err := r.flipInteraction(ctx, tx, key)
	if err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing transaction: %w: %w", domain.ErrCommitOutcomeUnknown, err)
	}

	return newState, nil
}

// lockPublishedArticle takes a shared lock on the article row, so an archive or
// unpublish cannot commit between the check and the toggle.
func (r *Repository) lockPublishedArticle(ctx context.Context, tx *sql.Tx, articleID string) error {
	sb := sqlbuilder.Select("status")
	sb.From("articles")
	sb.Where(sb.Equal("id", articleID))
	sb.ForShare()

	query, args := sb.Build()

	var status string
	err := tx.QueryRowContext(ctx, query, args...).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("article %s does not exist: %w", articleID, domain.ErrInvalidTarget)
	}
	if err != nil {
		return fmt.Errorf("locking article: %w", err)
	}
	if domain.ArticleStatus(status) != domain.ArticleStatusPublished {
		return fmt.Errorf("article %s has status %s: %w", articleID, status, domain.ErrInvalidTarget)
	}
	return nil
}

// maxFlipAttempts bounds the delete-or-insert cycle when concurrent toggles for the
// same key keep changing the row between the two statements.
const maxFlipAttempts = 4

func (r *Repository) flipInteraction(ctx context.Context, tx *sql.Tx, key domain.InteractionKey) (bool, error) {
	for range maxFlipAttempts {
		removed, err := deleteInteractions(ctx, tx, key)
		if err != nil {
			return false, err
		}
		if removed > 0 {
			return false, nil
		}

		err = r.insertInteraction(ctx, tx, key)
		if err == nil {
			return true, nil
		}
		if !isDuplicateEntry(err) {
			return false, err
		}
		// A concurrent toggle for the same key committed its insert first.
	}
	return false, fmt.Errorf("interaction %s/%s/%s changed concurrently while toggling",
		key.ArticleID, key.UserID, key.Type)
}

func deleteInteractions(ctx context.Context, tx *sql.Tx, key domain.InteractionKey) (int64, error) {
	db := sqlbuilder.DeleteFrom("interactions")
	db.Where(
		db.Equal("article_id", key.ArticleID),
		db.Equal("user_id", key.UserID),
		db.Equal("type", string(key.Type)),
	)

	query, args := db.Build()
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("deleting interaction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted interactions: %w", err)
	}
	return n, nil
}

func (r *Repository) insertInteraction(ctx context.Context, tx *sql.Tx, key domain.InteractionKey) error {
	ib := sqlbuilder.InsertInto("interactions")
	ib.Cols("id", "article_id", "user_id", "type", "created_at")
	ib.Values(uuid.New().String(), key.ArticleID, key.UserID, string(key.Type), r.now().UTC())

	query, args := ib.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting interaction: %w", err)
	}
	return nil
}

// AggregateInteractions returns per-type counts and, when userID is set, the user's own
// flags, using a single grouped query. Counts are of distinct users so rows duplicated
// before the unique key existed are not double counted.
func (r *Repository) AggregateInteractions(
	ctx context.Context, articleID, userID string,
) (*domain.AggregateCounts, error) {
	sb := sqlbuilder.Select("a.id")
	for _, t := range domain.InteractionTypes {
		sb.SelectMore(fmt.Sprintf(
			"COUNT(DISTINCT CASE WHEN i.type = %s THEN i.user_id END)", sb.Var(string(t))))
	}
	if userID != "" {
		for _, t := range domain.InteractionTypes {
			sb.SelectMore(fmt.Sprintf(
				"MAX(CASE WHEN i.user_id = %s AND i.type = %s THEN 1 ELSE 0 END)",
				sb.Var(userID), sb.Var(string(t))))
		}
	}
	sb.From("articles a")
	sb.JoinWithOption(sqlbuilder.LeftJoin, "interactions i", "i.article_id = a.id")
	sb.Where(sb.Equal("a.id", articleID))
	sb.GroupBy("a.id")

	query, args := sb.Build()
	row := r.db.QueryRowContext(ctx, query, args...)

	var id string
	counts := make([]sql.NullString, len(domain.InteractionTypes))
	var flags []sql.NullString
	if userID != "" {
		flags = make([]sql.NullString, len(domain.InteractionTypes))
	}
	dest := []any{&id}
	for i := range counts {
		dest = append(dest, &counts[i])
	}
	for i := range flags {
		dest = append(dest, &flags[i])
	}

	err := row.Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("aggregating interactions: %w", err)
	}

	result := &domain.AggregateCounts{}
	for i, t := range domain.InteractionTypes {
		n, err := parseWideInt(counts[i])
		if err != nil {
			return nil, fmt.Errorf("normalising %s count: %w", t, err)
		}
		var flag *bool
		if flags != nil {
			f, err := parseWideInt(flags[i])
			if err != nil {
				return nil, fmt.Errorf("normalising %s flag: %w", t, err)
			}
			flag = new(bool)
			*flag = f > 0
		}

		switch t {
		case domain.InteractionTypeLike:
			result.Likes = n
			result.UserLiked = flag
		case domain.InteractionTypeSave:
			result.Saves = n
			result.UserSaved = flag
		}
	}

	return result, nil
}

// parseWideInt normalises integer-valued columns that the driver may return as
// BIGINT or DECIMAL text (for example "3" or "3.0000").
func parseWideInt(v sql.NullString) (int64, error) {
	if !v.Valid || v.String == "" {
		return 0, nil
	}
	s := v.String
	if whole, frac, ok := strings.Cut(s, "."); ok {
		if strings.Trim(frac, "0") != "" {
			return 0, fmt.Errorf("non-integer value %q", s)
		}
		s = whole
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", v.String, err)
	}
	return n, nil
}

func (r *Repository) ListDuplicateInteractionGroups(ctx context.Context) ([]domain.DuplicateInteractionGroup, error) {
	sb := sqlbuilder.Select("article_id", "user_id", "type", "COUNT(*)")
	sb.From("interactions")
	sb.GroupBy("article_id", "user_id", "type")
	sb.Having("COUNT(*) > 1")
	sb.OrderBy("article_id", "user_id", "type")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing duplicate interactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	groups := []domain.DuplicateInteractionGroup{}
	for rows.Next() {
		var g domain.DuplicateInteractionGroup
		var interactionType string
		if err := rows.Scan(&g.ArticleID, &g.UserID, &interactionType, &g.Rows); err != nil {
			return nil, fmt.Errorf("scanning duplicate interactions: %w", err)
		}
		g.Type = domain.InteractionType(interactionType)
		groups = append(groups, g)
	}
	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("closing rows iterator: %w", err)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return groups, nil
}

// collapseDuplicatesQuery deletes every row of a key that has a newer sibling, ordering
// by created_at and then id. The newest row never has a newer sibling, so a key's last
// remaining row is never removed.
const collapseDuplicatesQuery = `DELETE older FROM interactions AS older
JOIN interactions AS newer
  ON newer.article_id = older.article_id
 AND newer.user_id = older.user_id
 AND newer.type = older.type
 AND (newer.created_at > older.created_at
      OR (newer.created_at = older.created_at AND newer.id > older.id))
WHERE older.article_id = ? AND older.user_id = ? AND older.type = ?`

func (r *Repository) CollapseDuplicateInteractions(ctx context.Context, key domain.InteractionKey) (int64, error) {
	res, err := r.db.ExecContext(ctx, collapseDuplicatesQuery, key.ArticleID, key.UserID, string(key.Type))
	if err != nil {
		return 0, fmt.Errorf("collapsing duplicate interactions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting collapsed interactions: %w", err)
	}
	return n, nil
}
