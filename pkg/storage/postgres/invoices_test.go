package postgres_test

import (
	"context"
	"testing"
	"time"

	"invoicer/pkg/domain"
	"invoicer/pkg/storage"
	"invoicer/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func seedCustomer(t *testing.T, pgSQL *postgres.PgSQL, name, email string) domain.Customer {
	t.Helper()

	res, err := pgSQL.StoreCustomers(context.Background(), domain.Customer{
		Name:     name,
		Email:    email,
		ImageURL: "/customers/" + name + ".png",
	})
	require.NoError(t, err)
	require.Len(t, res, 1)

	return res[0]
}

func today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

func TestPgSQL_StoreInvoices(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	customer := seedCustomer(t, pgSQL, "Acme", "billing@acme.test")

	t.Run("store single invoice", func(t *testing.T) {
		res, err := pgSQL.StoreInvoices(ctx, domain.Invoice{
			CustomerID:  customer.ID,
			AmountCents: 5437,
			Status:      domain.InvoiceStatusPending,
			Date:        today(),
		})
		require.NoError(t, err)
		require.Len(t, res, 1)
		require.Equal(t, int64(5437), res[0].AmountCents)
		require.Equal(t, domain.InvoiceStatusPending, res[0].Status)
		require.Equal(t, today().Format("2006-01-02"), res[0].Date.Format("2006-01-02"))
	})

	t.Run("store empty invoices", func(t *testing.T) {
		res, err := pgSQL.StoreInvoices(ctx)
		require.NoError(t, err)
		require.Empty(t, res)
	})
}

func TestPgSQL_UpdateInvoiceByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	c1 := seedCustomer(t, pgSQL, "Acme", "billing@acme.test")
	c2 := seedCustomer(t, pgSQL, "Globex", "ap@globex.test")

	stored, err := pgSQL.StoreInvoices(ctx, domain.Invoice{
		CustomerID:  c1.ID,
		AmountCents: 1000,
		Status:      domain.InvoiceStatusPending,
		Date:        today(),
	})
	require.NoError(t, err)

	t.Run("updates provided fields", func(t *testing.T) {
		amount := int64(2500)
		affected, err := pgSQL.UpdateInvoiceByID(ctx, stored[0].ID, storage.InvoiceUpdates{
			CustomerID:  &c2.ID,
			AmountCents: &amount,
			Status:      domain.InvoiceStatusPaid,
		})
		require.NoError(t, err)
		require.Equal(t, int64(1), affected)

		got, err := pgSQL.InvoiceByID(ctx, stored[0].ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, c2.ID, got.CustomerID)
		require.Equal(t, int64(2500), got.AmountCents)
		require.Equal(t, domain.InvoiceStatusPaid, got.Status)
		require.False(t, got.UpdatedAt.IsZero())
	})

	t.Run("unmatched id affects zero rows", func(t *testing.T) {
		affected, err := pgSQL.UpdateInvoiceByID(ctx,
			domain.InvoiceID{},
			storage.InvoiceUpdates{Status: domain.InvoiceStatusPaid})
		require.NoError(t, err)
		require.Zero(t, affected)
	})
}

func TestPgSQL_DeleteInvoice(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	customer := seedCustomer(t, pgSQL, "Acme", "billing@acme.test")
	stored, err := pgSQL.StoreInvoices(ctx, domain.Invoice{
		CustomerID:  customer.ID,
		AmountCents: 999,
		Status:      domain.InvoiceStatusPaid,
		Date:        today(),
	})
	require.NoError(t, err)

	affected, err := pgSQL.DeleteInvoice(ctx, stored[0].ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), affected)

	got, err := pgSQL.InvoiceByID(ctx, stored[0].ID)
	require.NoError(t, err)
	require.Nil(t, got)

	// deleting again is a no-op, not an error
	affected, err = pgSQL.DeleteInvoice(ctx, stored[0].ID)
	require.NoError(t, err)
	require.Zero(t, affected)
}

func TestPgSQL_Invoices_SearchAndPagination(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	acme := seedCustomer(t, pgSQL, "Acme", "billing@acme.test")
	globex := seedCustomer(t, pgSQL, "Globex", "ap@globex.test")

	_, err := pgSQL.StoreInvoices(ctx,
		domain.Invoice{CustomerID: acme.ID, AmountCents: 5437, Status: domain.InvoiceStatusPending, Date: today()},
		domain.Invoice{CustomerID: acme.ID, AmountCents: 1200, Status: domain.InvoiceStatusPaid, Date: today()},
		domain.Invoice{CustomerID: globex.ID, AmountCents: 8800, Status: domain.InvoiceStatusPending, Date: today()},
	)
	require.NoError(t, err)

	t.Run("empty query returns everything", func(t *testing.T) {
		rows, err := pgSQL.Invoices(ctx, "", 0, 10)
		require.NoError(t, err)
		require.Len(t, rows, 3)

		count, err := pgSQL.CountInvoices(ctx, "")
		require.NoError(t, err)
		require.EqualValues(t, 3, count)
	})

	t.Run("matches customer name case-insensitively", func(t *testing.T) {
		rows, err := pgSQL.Invoices(ctx, "acme", 0, 10)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		for _, row := range rows {
			require.Equal(t, "Acme", row.CustomerName)
			require.Equal(t, "billing@acme.test", row.CustomerEmail)
		}
	})

	t.Run("matches status text", func(t *testing.T) {
		rows, err := pgSQL.Invoices(ctx, "paid", 0, 10)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.Equal(t, domain.InvoiceStatusPaid, rows[0].Status)
	})

	t.Run("matches amount text", func(t *testing.T) {
		rows, err := pgSQL.Invoices(ctx, "5437", 0, 10)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.Equal(t, int64(5437), rows[0].AmountCents)
	})

	t.Run("offset and limit page through results", func(t *testing.T) {
		page1, err := pgSQL.Invoices(ctx, "", 0, 2)
		require.NoError(t, err)
		require.Len(t, page1, 2)

		page2, err := pgSQL.Invoices(ctx, "", 2, 2)
		require.NoError(t, err)
		require.Len(t, page2, 1)
	})
}

func TestPgSQL_LatestInvoices(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	customer := seedCustomer(t, pgSQL, "Acme", "billing@acme.test")
	for i := 0; i < 7; i++ {
		_, err := pgSQL.StoreInvoices(ctx, domain.Invoice{
			CustomerID:  customer.ID,
			AmountCents: int64(100 * (i + 1)),
			Status:      domain.InvoiceStatusPending,
			Date:        today(),
		})
		require.NoError(t, err)
	}

	rows, err := pgSQL.LatestInvoices(ctx, 5)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	// newest first
	require.Equal(t, int64(700), rows[0].AmountCents)
}

func TestPgSQL_InvoiceSummary(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	acme := seedCustomer(t, pgSQL, "Acme", "billing@acme.test")
	seedCustomer(t, pgSQL, "Globex", "ap@globex.test")

	_, err := pgSQL.StoreInvoices(ctx,
		domain.Invoice{CustomerID: acme.ID, AmountCents: 1000, Status: domain.InvoiceStatusPaid, Date: today()},
		domain.Invoice{CustomerID: acme.ID, AmountCents: 2000, Status: domain.InvoiceStatusPaid, Date: today()},
		domain.Invoice{CustomerID: acme.ID, AmountCents: 500, Status: domain.InvoiceStatusPending, Date: today()},
	)
	require.NoError(t, err)

	summary, err := pgSQL.InvoiceSummary(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, summary.InvoiceCount)
	require.EqualValues(t, 2, summary.CustomerCount)
	require.EqualValues(t, 3000, summary.PaidCents)
	require.EqualValues(t, 500, summary.PendingCents)
}
