package postgres

import (
	"context"
	"fmt"

	"invoicer/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const usersTable = "users"

// UserByEmail fetches a user by email. Returns nil when no user exists for
// the address.
func (p *PgSQL) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.I("email").Eq(email)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by email: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// StoreUsers inserts the given users and returns the stored rows.
func (p *PgSQL) StoreUsers(ctx context.Context, users ...domain.User) ([]domain.User, error) {
	if len(users) == 0 {
		return nil, nil
	}

	rows := make([]PgUser, len(users))
	for i := range rows {
		rows[i].FromDomain(users[i])
	}

	var result []PgUser
	if err := p.Builder.Insert(usersTable).
		Rows(rows).
		Returning(&PgUser{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store users into pg: %w", err)
	}

	out := make([]domain.User, 0, len(result))
	for i := range result {
		out = append(out, *result[i].ToDomain())
	}

	return out, nil
}
