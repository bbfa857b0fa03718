package store

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dentinvoice/models"
)

func testInvoice(patient string) models.Invoice {
	return models.Invoice{
		PatientName: patient,
		Age:         30,
		PhoneNumber: "+91 9000000000",
		OPNumber:    "OP-42",
		Date:        "2026-09-01",
		Total:       decimal.NewFromInt(500),
	}
}

func TestCreateAssignsIdentity(t *testing.T) {
	repo := NewMemoryInvoiceRepo("INV")

	inv, err := repo.Create(testInvoice("Anita"))
	require.NoError(t, err)

	assert.NotEmpty(t, inv.ID)
	assert.True(t, strings.HasPrefix(inv.InvoiceNumber, "INV-"))
	assert.False(t, inv.CreatedAt.IsZero())
	assert.Equal(t, "Anita", inv.PatientName)
}

func TestCreateIdsAndNumbersAreUnique(t *testing.T) {
	repo := NewMemoryInvoiceRepo("INV")

	seenIDs := make(map[string]bool)
	seenNumbers := make(map[string]bool)
	for i := 0; i < 50; i++ {
		inv, err := repo.Create(testInvoice(fmt.Sprintf("Patient %d", i)))
		require.NoError(t, err)
		assert.False(t, seenIDs[inv.ID], "duplicate id %s", inv.ID)
		assert.False(t, seenNumbers[inv.InvoiceNumber], "duplicate number %s", inv.InvoiceNumber)
		seenIDs[inv.ID] = true
		seenNumbers[inv.InvoiceNumber] = true
	}
	assert.Equal(t, 50, repo.Count())
}

func TestGetByID(t *testing.T) {
	repo := NewMemoryInvoiceRepo("INV")

	created, err := repo.Create(testInvoice("Ravi"))
	require.NoError(t, err)

	t.Run("returns_created_invoice", func(t *testing.T) {
		got, err := repo.GetByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("unknown_id_returns_sentinel", func(t *testing.T) {
		got, err := repo.GetByID("does-not-exist")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrInvoiceNotFound)
	})
}

func TestListPreservesCreationOrder(t *testing.T) {
	repo := NewMemoryInvoiceRepo("INV")

	var created []string
	for i := 0; i < 5; i++ {
		inv, err := repo.Create(testInvoice(fmt.Sprintf("Patient %d", i)))
		require.NoError(t, err)
		created = append(created, inv.ID)
	}

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 5)
	for i, inv := range list {
		assert.Equal(t, created[i], inv.ID)
	}
}

func TestListIsIdempotentSnapshot(t *testing.T) {
	repo := NewMemoryInvoiceRepo("INV")

	_, err := repo.Create(testInvoice("Maya"))
	require.NoError(t, err)

	first, err := repo.List()
	require.NoError(t, err)
	second, err := repo.List()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Mutating the returned slice must not leak into the store.
	first[0].PatientName = "changed"
	again, err := repo.List()
	require.NoError(t, err)
	assert.Equal(t, "Maya", again[0].PatientName)
}
