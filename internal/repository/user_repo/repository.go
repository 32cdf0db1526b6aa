package user_repo

import (
	"context"
	"errors"

	"casino_web/internal/model"
	"casino_web/internal/repository"
	"casino_web/internal/svcerr"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	table           = "users"
	colID           = "id"
	colEmail        = "email"
	colPasswordHash = "password_hash"
	colBalance      = "balance"
	colIsAdmin      = "is_admin"
	colCreatedAt    = "created_at"

	uniqueViolation = "23505"
	numericOverflow = "22003"

	msgInvalidAmount = "invalid amount"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// conn возвращает текущую транзакцию из контекста или пул
func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// CreateUser - создает нового пользователя в БД.
// Возвращает ID созданного пользователя
func (r *repo) CreateUser(ctx context.Context, user *model.User) (int64, error) {
	// Формируем запрос
	query := psql.Insert(table).
		Columns(colEmail, colPasswordHash, colBalance, colIsAdmin).
		Values(user.Email, user.PasswordHash, user.Balance, user.IsAdmin).
		Suffix("RETURNING " + colID)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, svcerr.ErrDuplicateEmail
		}
		return 0, svcerr.Persistence(err)
	}

	return id, nil
}

// GetUserByEmail - возвращает пользователя по email
func (r *repo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getUser(ctx, sq.Eq{colEmail: email})
}

// GetUserByID - возвращает пользователя по ID
func (r *repo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	return r.getUser(ctx, sq.Eq{colID: id})
}

func (r *repo) getUser(ctx context.Context, where sq.Eq) (*model.User, error) {
	query := psql.Select(colID, colEmail, colPasswordHash, colBalance, colIsAdmin, colCreatedAt).
		From(table).
		Where(where)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user model.User
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Balance, &user.IsAdmin, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, svcerr.ErrUserNotFound
		}
		return nil, svcerr.Persistence(err)
	}

	return &user, nil
}

// GetBalanceForUpdate - получение баланса с блокировкой строки.
// Вне транзакции блокировка снимается сразу после чтения.
func (r *repo) GetBalanceForUpdate(ctx context.Context, id int64) (decimal.Decimal, error) {
	query := psql.Select(colBalance).
		From(table).
		Where(sq.Eq{colID: id}).
		Suffix("FOR UPDATE")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var balance decimal.Decimal
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, svcerr.ErrUserNotFound
		}
		return decimal.Zero, svcerr.Persistence(err)
	}

	return balance, nil
}

// AddBalance - условное обновление баланса одним запросом:
// balance = balance + delta, если результат не отрицательный (или разрешен минус).
func (r *repo) AddBalance(ctx context.Context, id int64, delta decimal.Decimal, allowNegative bool) (decimal.Decimal, error) {
	query := psql.Update(table).
		Set(colBalance, sq.Expr(colBalance+" + ?", delta)).
		Where(sq.Eq{colID: id}).
		Suffix("RETURNING " + colBalance)
	if !allowNegative {
		query = query.Where(sq.Expr(colBalance+" + ? >= 0", delta))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var balance decimal.Decimal
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err == nil {
		return balance, nil
	}
	// Итоговый баланс не влезает в NUMERIC(14,2)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == numericOverflow {
		return decimal.Zero, svcerr.Validation(msgInvalidAmount)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, svcerr.Persistence(err)
	}

	// Ни одна строка не обновилась: либо пользователя нет, либо не хватает средств
	if _, err := r.GetUserByID(ctx, id); err != nil {
		return decimal.Zero, err
	}
	return decimal.Zero, svcerr.ErrInsufficientFunds
}
