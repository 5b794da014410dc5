package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDegrade_PartialSuccess(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	result := Degrade(context.Background(), items, 2, func(ctx context.Context, item int) (int, error) {
		if item%2 == 0 {
			return 0, errors.New("even not allowed")
		}
		return item * 10, nil
	})

	assert.Equal(t, 5, result.Total)
	assert.Len(t, result.Successful, 3)
	assert.Len(t, result.Failed, 2)
	assert.InDelta(t, 0.6, result.SuccessRate(), 0.001)
}

func TestDegrade_AllSucceed(t *testing.T) {
	items := []string{"a", "b", "c"}
	result := Degrade(context.Background(), items, 0, func(ctx context.Context, item string) (string, error) {
		return item + item, nil
	})
	assert.Len(t, result.Successful, 3)
	assert.Empty(t, result.Failed)
	assert.Equal(t, 1.0, result.SuccessRate())
}

func TestDegrade_EmptyInput(t *testing.T) {
	result := Degrade(context.Background(), []int{}, 4, func(ctx context.Context, item int) (int, error) {
		return item, nil
	})
	assert.Equal(t, 0, result.Total)
	assert.Equal(t, 1.0, result.SuccessRate())
}

func TestDegrade_AllFail(t *testing.T) {
	items := []int{1, 2, 3}
	result := Degrade(context.Background(), items, 1, func(ctx context.Context, item int) (int, error) {
		return 0, errors.New("boom")
	})
	assert.Len(t, result.Failed, 3)
	assert.Empty(t, result.Successful)
	assert.Equal(t, 0.0, result.SuccessRate())
}

// TestDegrade_PreservesInputOrder forces later items to finish sooner than
// earlier ones (by sleeping proportional to the remaining item count) and
// checks that the reported order still matches input order, not
// completion order.
func TestDegrade_PreservesInputOrder(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7}
	result := Degrade(context.Background(), items, 4, func(ctx context.Context, item int) (int, error) {
		time.Sleep(time.Duration(len(items)-item) * time.Millisecond)
		if item%2 == 0 {
			return 0, errors.New("even not allowed")
		}
		return item, nil
	})

	require := assert.New(t)
	require.Equal([]int{1, 3, 5, 7}, result.Successful)

	var failedItems []int
	for _, f := range result.Failed {
		failedItems = append(failedItems, f.Item)
	}
	require.Equal([]int{0, 2, 4, 6}, failedItems)
}
