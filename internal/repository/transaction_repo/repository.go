package transaction_repo

import (
	"context"

	"casino_web/internal/model"
	"casino_web/internal/repository"
	"casino_web/internal/svcerr"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "transactions"
	colID        = "id"
	colUserID    = "user_id"
	colType      = "type"
	colAmount    = "amount"
	colBet       = "bet"
	colPayout    = "payout"
	colCreatedAt = "created_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewTransactionRepository(dbc *pgxpool.Pool) repository.TransactionRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateTransaction - добавляет запись в журнал операций.
// Заполняет ID и CreatedAt у переданной записи
func (r *repo) CreateTransaction(ctx context.Context, tx *model.Transaction) error {
	query := psql.Insert(table).
		Columns(colUserID, colType, colAmount, colBet, colPayout).
		Values(tx.UserID, string(tx.Type), tx.Amount, tx.Bet, tx.Payout).
		Suffix("RETURNING " + colID + ", " + colCreatedAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return svcerr.Persistence(err)
	}

	return nil
}

// ListTransactions - журнал операций пользователя, новые сверху
func (r *repo) ListTransactions(ctx context.Context, userID int64, page model.Page) ([]model.Transaction, error) {
	page = page.Normalize()

	query := psql.Select(colID, colUserID, colType, colAmount, colBet, colPayout, colCreatedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colCreatedAt+" DESC", colID+" DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, svcerr.Persistence(err)
	}
	defer rows.Close()

	result := make([]model.Transaction, 0, page.Limit)
	for rows.Next() {
		var (
			t       model.Transaction
			txnType string
		)
		if err := rows.Scan(&t.ID, &t.UserID, &txnType, &t.Amount, &t.Bet, &t.Payout, &t.CreatedAt); err != nil {
			return nil, svcerr.Persistence(err)
		}
		t.Type = model.TransactionType(txnType)
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, svcerr.Persistence(err)
	}

	return result, nil
}
