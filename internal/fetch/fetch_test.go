package fetch

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resumePage = `<html><head><title>Resume</title></head><body>
<nav>Home About</nav>
<main><h1>Jane Smith</h1>
<p>Education: State University</p>
<p>Skills: leadership, excel</p></main>
<footer>Copyright</footer>
</body></html>`

func TestURL_FetchesPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(resumePage))
	}))
	defer srv.Close()

	result, err := URL(t.Context(), srv.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "Jane Smith")
	assert.Contains(t, result.ContentType, "text/html")
}

func TestURL_RejectsInvalid(t *testing.T) {
	_, err := URL(t.Context(), "not-a-url", nil)
	assert.Error(t, err)

	_, err = URL(t.Context(), "ftp://example.com/resume", nil)
	assert.Error(t, err)
}

func TestURL_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	result, err := URL(t.Context(), srv.URL, nil)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestSubmissionText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(resumePage))
	}))
	defer srv.Close()

	text, err := SubmissionText(t.Context(), srv.URL, nil)
	require.NoError(t, err)

	assert.Contains(t, text, "Jane Smith")
	assert.Contains(t, text, "Skills: leadership, excel")
	assert.NotContains(t, text, "Home About")
	assert.NotContains(t, text, "Copyright")
}

func TestSubmissionText_EmptyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><script>var x=1;</script></body></html>`))
	}))
	defer srv.Close()

	_, err := SubmissionText(t.Context(), srv.URL, nil)
	assert.Error(t, err)
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	text, err := ExtractMainText(`<html><body><div>plain page</div></body></html>`, DefaultTextSelectors())
	require.NoError(t, err)
	assert.Equal(t, "plain page", text)
}

func TestExtractMainText_NoiseSelectors(t *testing.T) {
	html := `<html><body><main>keep this<div class="promo">drop this</div></main></body></html>`
	text, err := ExtractMainText(html, DefaultTextSelectors(), ".promo")
	require.NoError(t, err)
	assert.Contains(t, text, "keep this")
	assert.NotContains(t, text, "drop this")
}
