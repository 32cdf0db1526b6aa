package auth_repo

import (
	"context"
	"errors"

	"casino_web/internal/model"
	"casino_web/internal/repository"
	"casino_web/internal/svcerr"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "sessions"
	colSessionID = "session_id"
	colUserID    = "user_id"
	colExpiresAt = "expires_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewAuthRepository(dbc *pgxpool.Pool) repository.AuthRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateSession - создает сессию в БД
// Принимает model.Session - (ID, UserID, ExpiresAt)
func (r *repo) CreateSession(ctx context.Context, session *model.Session) error {
	// Формируем запрос
	query := psql.Insert(table).
		Columns(colSessionID, colUserID, colExpiresAt).
		Values(session.ID, session.UserID, session.ExpiresAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return svcerr.Persistence(err)
	}

	return nil
}

// GetSession - получить сессию по ID.
// Если сессии нет - svcerr.ErrUnauthenticated
func (r *repo) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	query := psql.Select(colSessionID, colUserID, colExpiresAt).
		From(table).
		Where(sq.Eq{colSessionID: sessionID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var session model.Session
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&session.ID, &session.UserID, &session.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, svcerr.ErrUnauthenticated
		}
		return nil, svcerr.Persistence(err)
	}

	return &session, nil
}

// DeleteSession - удаляет сессию из БД.
// Удаление несуществующей сессии не является ошибкой
func (r *repo) DeleteSession(ctx context.Context, sessionID string) error {
	query := psql.Delete(table).
		Where(sq.Eq{colSessionID: sessionID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return svcerr.Persistence(err)
	}

	return nil
}
