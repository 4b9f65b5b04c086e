package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/fwojciec/coursecat"
	cchttp "github.com/fwojciec/coursecat/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearcher_Search(t *testing.T) {
	t.Parallel()

	t.Run("posts subject search form and decodes response", func(t *testing.T) {
		t.Parallel()

		var form url.Values
		var accept, method, path string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			method = r.Method
			path = r.URL.Path
			accept = r.Header.Get("Accept")
			require.NoError(t, r.ParseForm())
			form = r.PostForm
			_, _ = w.Write([]byte(`{"html":"<section class=\"course\" id=\"CSC-226\"></section>","json":{"count":1}}`))
		}))
		defer server.Close()

		searcher := cchttp.NewSearcher(cchttp.WithBaseURL(server.URL), cchttp.WithRateLimit(0))
		defer searcher.Close()

		resp, err := searcher.Search(context.Background(), coursecat.SearchQuery{Subject: "CSC", Term: 2251})

		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, method)
		assert.Equal(t, "/search.php", path)
		assert.Equal(t, "application/json", accept)
		assert.Equal(t, "CSC", form.Get("subject"))
		assert.Equal(t, "2251", form.Get("term"))
		assert.Empty(t, form.Get("course-number"))
		assert.Equal(t, `<section class="course" id="CSC-226"></section>`, resp.HTML)
		assert.JSONEq(t, `{"count":1}`, string(resp.JSON))
	})

	t.Run("adds course number and inequality for single course", func(t *testing.T) {
		t.Parallel()

		var form url.Values
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			form = r.PostForm
			_, _ = w.Write([]byte(`{"html":"","json":null}`))
		}))
		defer server.Close()

		searcher := cchttp.NewSearcher(cchttp.WithBaseURL(server.URL), cchttp.WithRateLimit(0))

		_, err := searcher.Search(context.Background(), coursecat.SearchQuery{Subject: "CSC", Number: 226, Term: 2251})

		require.NoError(t, err)
		assert.Equal(t, "226", form.Get("course-number"))
		assert.Equal(t, "=", form.Get("course-inequality"))
	})

	t.Run("returns ENOTFOUND when catalog has no data", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"html":"<p>Error: No Data Returned</p>","json":null}`))
		}))
		defer server.Close()

		searcher := cchttp.NewSearcher(cchttp.WithBaseURL(server.URL), cchttp.WithRateLimit(0))

		_, err := searcher.Search(context.Background(), coursecat.SearchQuery{Subject: "XYZ", Term: 2251})

		require.Error(t, err)
		assert.Equal(t, coursecat.ENOTFOUND, coursecat.ErrorCode(err))
	})

	t.Run("returns EINTERNAL for warning banner", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<div class="text-warning">Invalid term</div>`))
		}))
		defer server.Close()

		searcher := cchttp.NewSearcher(cchttp.WithBaseURL(server.URL), cchttp.WithRateLimit(0))

		_, err := searcher.Search(context.Background(), coursecat.SearchQuery{Subject: "CSC", Term: 1})

		require.Error(t, err)
		assert.Equal(t, coursecat.EINTERNAL, coursecat.ErrorCode(err))
		assert.Contains(t, coursecat.ErrorMessage(err), "Invalid term")
	})

	t.Run("returns EINTERNAL for non-2xx status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream down"))
		}))
		defer server.Close()

		searcher := cchttp.NewSearcher(cchttp.WithBaseURL(server.URL), cchttp.WithRateLimit(0))

		_, err := searcher.Search(context.Background(), coursecat.SearchQuery{Subject: "CSC", Term: 2251})

		require.Error(t, err)
		assert.Equal(t, coursecat.EINTERNAL, coursecat.ErrorCode(err))
		assert.Contains(t, coursecat.ErrorMessage(err), "502")
	})

	t.Run("returns EINVALID for non-JSON body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>maintenance</html>"))
		}))
		defer server.Close()

		searcher := cchttp.NewSearcher(cchttp.WithBaseURL(server.URL), cchttp.WithRateLimit(0))

		_, err := searcher.Search(context.Background(), coursecat.SearchQuery{Subject: "CSC", Term: 2251})

		require.Error(t, err)
		assert.Equal(t, coursecat.EINVALID, coursecat.ErrorCode(err))
	})

	t.Run("validates query before sending", func(t *testing.T) {
		t.Parallel()

		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		searcher := cchttp.NewSearcher(cchttp.WithBaseURL(server.URL))

		_, err := searcher.Search(context.Background(), coursecat.SearchQuery{Term: 2251})

		require.Error(t, err)
		assert.Equal(t, coursecat.EINVALID, coursecat.ErrorCode(err))
		assert.False(t, called)
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte(`{"html":"","json":null}`))
		}))
		defer server.Close()

		searcher := cchttp.NewSearcher(
			cchttp.WithBaseURL(server.URL),
			cchttp.WithTimeout(10*time.Millisecond),
			cchttp.WithRateLimit(0),
		)

		_, err := searcher.Search(context.Background(), coursecat.SearchQuery{Subject: "CSC", Term: 2251})

		require.Error(t, err)
	})

	t.Run("respects context cancellation while rate limited", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"html":"","json":null}`))
		}))
		defer server.Close()

		searcher := cchttp.NewSearcher(cchttp.WithBaseURL(server.URL), cchttp.WithRateLimit(0.1))
		q := coursecat.SearchQuery{Subject: "CSC", Term: 2251}

		_, err := searcher.Search(context.Background(), q)
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err = searcher.Search(ctx, q)

		require.Error(t, err)
	})
}

func TestSearcher_Index(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/index.php", r.URL.Path)
		_, _ = io.WriteString(w, `<select id="term"><option value="2251">Spring 2025</option></select>`)
	}))
	defer server.Close()

	searcher := cchttp.NewSearcher(cchttp.WithBaseURL(server.URL), cchttp.WithRateLimit(0))

	html, err := searcher.Index(context.Background())

	require.NoError(t, err)
	assert.Contains(t, html, "Spring 2025")
}
