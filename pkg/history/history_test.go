package history

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chris/campaign-ledger/pkg/ledger"
	"github.com/chris/campaign-ledger/pkg/ledger/mocks"
	"github.com/chris/campaign-ledger/pkg/models"
)

func donation(donor string, amount int64) models.Donation {
	return models.Donation{Donor: donor, Amount: big.NewInt(amount)}
}

func TestToggle(t *testing.T) {
	t.Run("Opening Fetches Exactly Once", func(t *testing.T) {
		mockLedger := new(mocks.Reader)
		mockLedger.On("GetDonators", mock.Anything, uint64(3)).Once().Return([]models.Donation{donation("0xaa", 100)}, nil)

		l := NewLoader(mockLedger)
		open, donations, err := l.Toggle(context.Background(), 3)

		require.NoError(t, err)
		assert.True(t, open)
		require.Len(t, donations, 1)
		assert.Equal(t, "0xaa", donations[0].Donor)
		mockLedger.AssertExpectations(t)
	})

	t.Run("Closing Is Local And Keeps The Cache", func(t *testing.T) {
		mockLedger := new(mocks.Reader)
		mockLedger.On("GetDonators", mock.Anything, uint64(3)).Once().Return([]models.Donation{donation("0xaa", 100)}, nil)

		l := NewLoader(mockLedger)
		_, _, err := l.Toggle(context.Background(), 3)
		require.NoError(t, err)

		open, donations, err := l.Toggle(context.Background(), 3)
		require.NoError(t, err)
		assert.False(t, open)
		assert.Nil(t, donations)

		cachedOpen, cached := l.Cached(3)
		assert.False(t, cachedOpen)
		assert.Len(t, cached, 1, "closing must not evict the snapshot")
		mockLedger.AssertNumberOfCalls(t, "GetDonators", 1)
	})

	t.Run("Reopen Refetches And Fully Replaces", func(t *testing.T) {
		mockLedger := new(mocks.Reader)
		mockLedger.On("GetDonators", mock.Anything, uint64(3)).Once().Return([]models.Donation{donation("0xaa", 100), donation("0xbb", 200)}, nil)
		// The second fetch returns a shorter view; no stale rows may survive.
		mockLedger.On("GetDonators", mock.Anything, uint64(3)).Once().Return([]models.Donation{donation("0xcc", 50)}, nil)

		l := NewLoader(mockLedger)
		_, _, err := l.Toggle(context.Background(), 3)
		require.NoError(t, err)
		_, _, err = l.Toggle(context.Background(), 3) // close
		require.NoError(t, err)

		open, donations, err := l.Toggle(context.Background(), 3) // reopen
		require.NoError(t, err)
		assert.True(t, open)
		require.Len(t, donations, 1)
		assert.Equal(t, "0xcc", donations[0].Donor)
		mockLedger.AssertNumberOfCalls(t, "GetDonators", 2)
	})

	t.Run("Failed Fetch Leaves Panel Open", func(t *testing.T) {
		mockLedger := new(mocks.Reader)
		mockLedger.On("GetDonators", mock.Anything, uint64(9)).Return(nil, ledger.ErrLedgerUnavailable)

		l := NewLoader(mockLedger)
		open, donations, err := l.Toggle(context.Background(), 9)

		assert.ErrorIs(t, err, ledger.ErrLedgerUnavailable)
		assert.True(t, open)
		assert.Nil(t, donations)
	})

	t.Run("Failure Does Not Poison Other Campaigns", func(t *testing.T) {
		mockLedger := new(mocks.Reader)
		mockLedger.On("GetDonators", mock.Anything, uint64(1)).Return([]models.Donation{donation("0xaa", 100)}, nil)
		mockLedger.On("GetDonators", mock.Anything, uint64(2)).Return(nil, ledger.ErrLedgerUnavailable)

		l := NewLoader(mockLedger)
		_, _, err := l.Toggle(context.Background(), 1)
		require.NoError(t, err)
		_, _, err = l.Toggle(context.Background(), 2)
		require.Error(t, err)

		_, cached := l.Cached(1)
		assert.Len(t, cached, 1)
	})
}
