package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/pdf_converter/internal/domain"
)

const TableConversions = "conversions"

var conversionColumns = []string{
	"id",
	"filename",
	"size",
	"status",
	"reason",
	"error_message",
	"artifact_kind",
	"duration_ms",
	"created_at",
}

type ConversionsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewConversionsRepository(pool *pgxpool.Pool) *ConversionsRepository {
	return &ConversionsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ConversionsRepository) Conversions(
	ctx context.Context,
	limit, offset uint64,
) ([]*domain.Conversion, int, error) {
	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableConversions).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(TableConversions, err)
	}

	var total int
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(TableConversions, err)
	}

	sql, args, err = r.qb.
		Select(conversionColumns...).
		From(TableConversions).
		OrderBy("created_at DESC", "id").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(TableConversions, err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(TableConversions, err)
	}

	conversions, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Conversion])
	if err != nil {
		return nil, -1, collectRowsError(TableConversions, err)
	}

	return conversions, total, nil
}

func (r *ConversionsRepository) SaveConversions(ctx context.Context, conversions ...*domain.Conversion) error {
	if len(conversions) == 0 {
		return nil
	}

	query := r.qb.
		Insert(TableConversions).
		Columns(conversionColumns...).
		Suffix("ON CONFLICT (id) DO NOTHING")

	for _, c := range conversions {
		query = query.Values(
			c.ID,
			c.Filename,
			c.Size,
			c.Status,
			c.Reason,
			c.ErrorMessage,
			c.ArtifactKind,
			c.DurationMS,
			c.CreatedAt,
		)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return createQueryError(TableConversions, err)
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(TableConversions, err)
	}

	return nil
}
