package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Caught-Online/caught-online-storefront-backend/models"
)

// fakeCartAPI records calls and fails on demand.
type fakeCartAPI struct {
	clearErr error
	addErrs  map[string]error
	readErr  error

	cleared bool
	added   []models.CartItem
}

func (f *fakeCartAPI) ClearCart(ctx context.Context) error {
	if f.clearErr != nil {
		return f.clearErr
	}
	f.cleared = true
	f.added = nil
	return nil
}

func (f *fakeCartAPI) AddItem(ctx context.Context, variantID string, quantity int) error {
	if err := f.addErrs[variantID]; err != nil {
		return err
	}
	f.added = append(f.added, models.CartItem{VariantID: variantID, Quantity: quantity})
	return nil
}

func (f *fakeCartAPI) ReadCart(ctx context.Context) (*models.RemoteCart, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	cart := &models.RemoteCart{ItemCount: len(f.added)}
	for _, item := range f.added {
		cart.Items = append(cart.Items, models.RemoteCartItem{
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
		})
	}
	return cart, nil
}

func TestSyncCartHappyPath(t *testing.T) {
	fake := &fakeCartAPI{}
	svc := NewCartSyncService(fake)

	report := svc.SyncCart(context.Background(), []models.CartItem{
		{VariantID: "v1", Quantity: 2},
		{VariantID: "v2", Quantity: 1},
	})

	assert.True(t, report.Success)
	assert.True(t, fake.cleared)
	require.Len(t, report.Steps, 4) // clear, add, add, verify
	assert.Equal(t, models.SyncStepClear, report.Steps[0].Step)
	assert.Equal(t, models.SyncStepVerify, report.Steps[3].Step)
	require.NotNil(t, report.RemoteCart)
	assert.Equal(t, 2, report.RemoteCart.ItemCount)
	assert.Empty(t, report.FailedAdds())
}

func TestSyncCartClearFailureIsFatal(t *testing.T) {
	fake := &fakeCartAPI{clearErr: errors.New("platform down")}
	svc := NewCartSyncService(fake)

	report := svc.SyncCart(context.Background(), []models.CartItem{
		{VariantID: "v1", Quantity: 1},
	})

	assert.False(t, report.Success)
	require.Len(t, report.Steps, 1)
	assert.Equal(t, models.SyncStepClear, report.Steps[0].Step)
	assert.False(t, report.Steps[0].OK)
	assert.Empty(t, fake.added, "no add should run after a failed clear")
}

func TestSyncCartEmptyItemsClearsAndSucceeds(t *testing.T) {
	fake := &fakeCartAPI{}
	svc := NewCartSyncService(fake)

	report := svc.SyncCart(context.Background(), nil)

	assert.True(t, report.Success)
	assert.True(t, fake.cleared)
	require.Len(t, report.Steps, 2) // clear, verify
}

func TestSyncCartEmptyVariantIDSkippedNonFatal(t *testing.T) {
	fake := &fakeCartAPI{}
	svc := NewCartSyncService(fake)

	report := svc.SyncCart(context.Background(), []models.CartItem{
		{VariantID: "", Quantity: 3},
		{VariantID: "v2", Quantity: 1},
	})

	assert.True(t, report.Success)
	require.Len(t, report.Steps, 4)
	assert.True(t, report.Steps[1].Skipped)
	assert.False(t, report.Steps[1].OK)
	require.Len(t, fake.added, 1)
	assert.Equal(t, "v2", fake.added[0].VariantID)
	// Skipped items are not failed adds
	assert.Empty(t, report.FailedAdds())
}

func TestSyncCartAddFailureDoesNotFlipSuccess(t *testing.T) {
	fake := &fakeCartAPI{addErrs: map[string]error{"v2": errors.New("variant gone")}}
	svc := NewCartSyncService(fake)

	report := svc.SyncCart(context.Background(), []models.CartItem{
		{VariantID: "v1", Quantity: 1},
		{VariantID: "v2", Quantity: 1},
		{VariantID: "v3", Quantity: 1},
	})

	// Documented asymmetry: failed adds never fail the sync
	assert.True(t, report.Success)
	assert.Equal(t, []string{"v2"}, report.FailedAdds())

	// Later items still attempted in order
	require.Len(t, fake.added, 2)
	assert.Equal(t, "v1", fake.added[0].VariantID)
	assert.Equal(t, "v3", fake.added[1].VariantID)
}

func TestSyncCartVerifyFailureIsDiagnosticOnly(t *testing.T) {
	fake := &fakeCartAPI{readErr: errors.New("read timeout")}
	svc := NewCartSyncService(fake)

	report := svc.SyncCart(context.Background(), []models.CartItem{
		{VariantID: "v1", Quantity: 1},
	})

	assert.True(t, report.Success)
	assert.Nil(t, report.RemoteCart)

	last := report.Steps[len(report.Steps)-1]
	assert.Equal(t, models.SyncStepVerify, last.Step)
	assert.False(t, last.OK)
}
