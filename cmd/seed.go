package main

import (
	"context"
	"fmt"
	"time"

	"invoicer/internal/config"
	"invoicer/pkg/domain"
	"invoicer/pkg/logger"
	"invoicer/pkg/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// seedCommand constructs the 'seed' subcommand that loads a demo user,
// customers and invoices into the database. Everything is written in a single
// transaction so a partial seed never survives.
func seedCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seeds the database with demo users, customers and invoices",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			hash, err := bcrypt.GenerateFromPassword([]byte(password), cfg.Auth.BcryptCost)
			if err != nil {
				logger.Fatal(ctx, "could not hash password", zap.Error(err))
			}

			if err := strg.WithTx(ctx, func(tx storage.AllStorage) error {
				if _, err := tx.StoreUsers(ctx, domain.User{
					Name:         "User",
					Email:        email,
					PasswordHash: string(hash),
				}); err != nil {
					return fmt.Errorf("could not store user: %w", err)
				}

				customers, err := tx.StoreCustomers(ctx, seedCustomers()...)
				if err != nil {
					return fmt.Errorf("could not store customers: %w", err)
				}

				if _, err := tx.StoreInvoices(ctx, seedInvoices(customers)...); err != nil {
					return fmt.Errorf("could not store invoices: %w", err)
				}

				return nil
			}); err != nil {
				logger.Fatal(ctx, "could not seed database", zap.Error(err))
			}

			logger.Info(ctx, "database seeded", zap.String("email", email))
		},
	}

	cmd.Flags().String("email", "user@nextmail.com", "Email of the demo user")
	cmd.Flags().String("password", "123456", "Password of the demo user")

	return cmd
}

func seedCustomers() []domain.Customer {
	return []domain.Customer{
		{Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
		{Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
		{Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
		{Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
		{Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
		{Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
	}
}

func seedInvoices(customers []domain.Customer) []domain.Invoice {
	day := func(year int, month time.Month, d int) time.Time {
		return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
	}

	seeds := []struct {
		customer int
		cents    int64
		status   domain.InvoiceStatus
		date     time.Time
	}{
		{0, 15795, domain.InvoiceStatusPending, day(2022, time.December, 6)},
		{1, 20348, domain.InvoiceStatusPending, day(2022, time.November, 14)},
		{4, 3040, domain.InvoiceStatusPaid, day(2022, time.October, 29)},
		{3, 44800, domain.InvoiceStatusPaid, day(2023, time.September, 10)},
		{5, 34577, domain.InvoiceStatusPending, day(2023, time.August, 5)},
		{2, 54246, domain.InvoiceStatusPending, day(2023, time.July, 16)},
		{0, 66600, domain.InvoiceStatusPending, day(2023, time.June, 27)},
		{3, 32545, domain.InvoiceStatusPaid, day(2023, time.June, 9)},
		{4, 1250, domain.InvoiceStatusPaid, day(2023, time.June, 17)},
		{5, 8546, domain.InvoiceStatusPaid, day(2023, time.June, 7)},
		{1, 500, domain.InvoiceStatusPaid, day(2023, time.August, 19)},
		{5, 8945, domain.InvoiceStatusPaid, day(2023, time.June, 3)},
		{2, 1000, domain.InvoiceStatusPaid, day(2022, time.June, 5)},
	}

	invoices := make([]domain.Invoice, 0, len(seeds))
	for _, s := range seeds {
		invoices = append(invoices, domain.Invoice{
			CustomerID:  customers[s.customer].ID,
			AmountCents: s.cents,
			Status:      s.status,
			Date:        s.date,
		})
	}

	return invoices
}
