package client

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailLoaderAppliesResult(t *testing.T) {
	var appliedID uint
	var applied map[string]interface{}

	loader := NewDetailLoader(
		func(_ context.Context, id uint) (map[string]interface{}, error) {
			return map[string]interface{}{"id": id, "name": "PO-1"}, nil
		},
		func(id uint, detail map[string]interface{}) {
			appliedID = id
			applied = detail
		},
		nil,
	)

	loader.Load(context.Background(), 4)

	assert.Equal(t, uint(4), appliedID)
	assert.Equal(t, "PO-1", applied["name"])
}

func TestDetailLoaderLastRequestWins(t *testing.T) {
	var appliedIDs []uint
	loader := NewDetailLoader(
		func(_ context.Context, id uint) (map[string]interface{}, error) {
			return map[string]interface{}{"id": id}, nil
		},
		func(id uint, _ map[string]interface{}) {
			appliedIDs = append(appliedIDs, id)
		},
		nil,
	)

	loader.Load(context.Background(), 1)
	loader.Load(context.Background(), 2)

	// A response from the first request arriving after the second has
	// started must be dropped.
	loader.deliver(1, 1, map[string]interface{}{"id": uint(1)}, nil)

	assert.Equal(t, []uint{1, 2}, appliedIDs)
}

func TestDetailLoaderCancelsSupersededRequest(t *testing.T) {
	contexts := map[uint]context.Context{}
	loader := NewDetailLoader(
		func(ctx context.Context, id uint) (map[string]interface{}, error) {
			contexts[id] = ctx
			return map[string]interface{}{"id": id}, nil
		},
		func(uint, map[string]interface{}) {},
		nil,
	)

	loader.Load(context.Background(), 1)
	require.NoError(t, contexts[1].Err())

	loader.Load(context.Background(), 2)

	assert.ErrorIs(t, contexts[1].Err(), context.Canceled)
	assert.NoError(t, contexts[2].Err())
}

func TestDetailLoaderReportsErrors(t *testing.T) {
	var gotID uint
	var gotErr error
	loader := NewDetailLoader(
		func(_ context.Context, id uint) (map[string]interface{}, error) {
			return nil, fmt.Errorf("not found")
		},
		func(uint, map[string]interface{}) {
			t.Fatal("apply must not run on error")
		},
		func(id uint, err error) {
			gotID = id
			gotErr = err
		},
	)

	loader.Load(context.Background(), 9)

	assert.Equal(t, uint(9), gotID)
	assert.EqualError(t, gotErr, "not found")
}
