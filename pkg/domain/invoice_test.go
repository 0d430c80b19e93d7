package domain_test

import (
	"testing"

	"invoicer/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestInvoice_Amount(t *testing.T) {
	cases := map[int64]string{
		5437:  "54.37",
		1000:  "10.00",
		5:     "0.05",
		0:     "0.00",
		-250:  "-2.50",
		66600: "666.00",
	}

	for cents, want := range cases {
		inv := domain.Invoice{AmountCents: cents}
		require.Equal(t, want, inv.Amount())
	}
}

func TestInvoiceStatus_Valid(t *testing.T) {
	require.True(t, domain.InvoiceStatusPending.Valid())
	require.True(t, domain.InvoiceStatusPaid.Valid())
	require.False(t, domain.InvoiceStatus("overdue").Valid())
	require.False(t, domain.InvoiceStatus("").Valid())
}
