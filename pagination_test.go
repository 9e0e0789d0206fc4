package mailersend

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListOptions_ToQueryOmitsZeroValues(t *testing.T) {
	t.Parallel()

	params := ListOptions{}.toQuery(nil)
	require.Empty(t, params)

	params = ListOptions{Page: 2, Limit: 50}.toQuery(nil)
	require.Equal(t, map[string]string{"page": "2", "limit": "50"}, params)
}

func TestListOptions_ToQueryMergesExisting(t *testing.T) {
	t.Parallel()

	params := ListOptions{Page: 3}.toQuery(map[string]string{"domain_id": "dom-1"})

	require.Equal(t, map[string]string{"domain_id": "dom-1", "page": "3"}, params)
}

func TestListMeta_HasMorePages(t *testing.T) {
	t.Parallel()

	require.True(t, ListMeta{CurrentPage: 1, LastPage: 3}.HasMorePages())
	require.False(t, ListMeta{CurrentPage: 3, LastPage: 3}.HasMorePages())
}
