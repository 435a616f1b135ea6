package metrics

import (
	"context"
	"testing"

	"vidtube.com/pkg/toggle"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleObserverCounts(t *testing.T) {
	c := TogglesTotal.WithLabelValues("post", "true")
	before := testutil.ToFloat64(c)
	require.NoError(t, ToggleObserver{}.Toggled(context.Background(), toggle.Event{Kind: toggle.KindPost, Active: true}))
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}

func TestCleanupFailed(t *testing.T) {
	c := CleanupFailuresTotal.WithLabelValues("video_blob")
	before := testutil.ToFloat64(c)
	CleanupFailed("video_blob")
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}
