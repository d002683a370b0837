//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mjaros/pageblocks/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The fixture page writes its card list from JavaScript, so a plain
// HTTP fetch would never see the rendered marker.
const jsPage = `<!DOCTYPE html>
<html>
<head><title>JS Page</title></head>
<body>
<div id="root"></div>
<script>
document.getElementById('root').innerHTML =
	'<ul data-ref="e61"><li><a href="/our-stories/js">rendered-by-js</a></li></ul>';
</script>
</body>
</html>`

func TestFetcher_Integration_RendersJS(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(jsPage))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fetcher, err := rod.NewFetcher(rod.WithRenderDelay(100 * time.Millisecond))
	require.NoError(t, err)
	defer fetcher.Close()

	html, err := fetcher.Fetch(ctx, srv.URL)
	require.NoError(t, err)

	assert.Contains(t, html, "rendered-by-js")
	assert.Contains(t, html, `data-ref="e61"`)
}
