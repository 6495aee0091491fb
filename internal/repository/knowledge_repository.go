package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/backoffice-service/internal/domain"
)

// KnowledgeFilter narrows article listings to one department. A nil
// Department lists everything.
type KnowledgeFilter struct {
	Department *domain.Department
}

// KnowledgeRepository encapsulates knowledge article persistence.
type KnowledgeRepository interface {
	List(ctx context.Context, filter KnowledgeFilter) ([]domain.KnowledgeArticle, error)
}

type knowledgeRepository struct {
	pool *pgxpool.Pool
}

// NewKnowledgeRepository instantiates repository.
func NewKnowledgeRepository(pool *pgxpool.Pool) KnowledgeRepository {
	return &knowledgeRepository{pool: pool}
}

func buildKnowledgeListQuery(filter KnowledgeFilter) (string, []any) {
	query := `
        SELECT k.id, k.title, k.content, k.department, k.created_by_id, k.is_public,
               k.created_at, k.updated_at, ` + userRefColumns("c") + `
        FROM knowledge_articles k
        JOIN users c ON c.id = k.created_by_id`
	var args []any
	if filter.Department != nil {
		args = append(args, *filter.Department)
		query += " WHERE k.department=$1"
	}
	return query + " ORDER BY k.created_at DESC", args
}

func (r *knowledgeRepository) List(ctx context.Context, filter KnowledgeFilter) ([]domain.KnowledgeArticle, error) {
	query, args := buildKnowledgeListQuery(filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.KnowledgeArticle
	for rows.Next() {
		var (
			article domain.KnowledgeArticle
			creator userRef
		)
		dest := []any{
			&article.ID,
			&article.Title,
			&article.Content,
			&article.Department,
			&article.CreatorID,
			&article.IsPublic,
			&article.CreatedAt,
			&article.UpdatedAt,
		}
		if err := rows.Scan(append(dest, creator.targets()...)...); err != nil {
			return nil, err
		}
		article.Creator = creator.user()
		result = append(result, article)
	}
	return result, rows.Err()
}
