package upstream_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studentportal/portal/internal/upstream"
	"github.com/studentportal/portal/pkg/logger"
)

func quietLogger() logger.Interface {
	return logger.NewWithWriter("error", io.Discard)
}

func fastPolicy() upstream.Policy {
	return upstream.Policy{
		Timeout:    time.Second,
		MaxRetries: 2,
		WaitMin:    time.Millisecond,
		WaitMax:    5 * time.Millisecond,
	}
}

func TestFetchSendsAuthorizationVerbatim(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		token    string
		expected string
		present  bool
	}{
		{name: "bearer token", token: "Bearer abc.def.ghi", expected: "Bearer abc.def.ghi", present: true},
		{name: "raw token", token: "abc123", expected: "abc123", present: true},
		{name: "no token", token: "", present: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			seen := make(chan http.Header, 1)

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen <- r.Header.Clone()

				_, _ = w.Write([]byte(`[]`))
			}))
			defer srv.Close()

			c := upstream.New(srv.URL, fastPolicy(), quietLogger())

			body, err := c.Fetch(context.Background(), upstream.EndpointNotes, upstream.NotesPath(7), tc.token)
			require.NoError(t, err)
			assert.Equal(t, "[]", string(body))

			h := <-seen
			_, present := h["Authorization"]
			assert.Equal(t, tc.present, present)
			assert.Equal(t, tc.expected, h.Get("Authorization"))
		})
	}
}

func TestFetchRequestsExpectedPath(t *testing.T) {
	t.Parallel()

	paths := make(chan string, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths <- r.URL.Path

		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := upstream.New(srv.URL+"/", fastPolicy(), quietLogger())

	_, err := c.Fetch(context.Background(), upstream.EndpointGroups, upstream.GroupsPath(42), "t")
	require.NoError(t, err)
	assert.Equal(t, "/groupes/dia/42", <-paths)
}

func TestFetchClientErrorIsNotRetried(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound, http.StatusTooManyRequests} {
		var calls atomic.Int32

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(status)
		}))

		c := upstream.New(srv.URL, fastPolicy(), quietLogger())

		_, err := c.Fetch(context.Background(), upstream.EndpointNotes, "/notes/dia/1", "t")
		srv.Close()

		var upErr upstream.UpstreamError

		require.ErrorAs(t, err, &upErr)
		assert.Equal(t, upstream.KindClientError, upErr.Kind)
		assert.Equal(t, status, upErr.Status)
		assert.Equal(t, int32(1), calls.Load(), "status %d", status)
	}
}

func TestFetchRetriesTransientFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}

		_, _ = w.Write([]byte(`[{"periodeId":1}]`))
	}))
	defer srv.Close()

	c := upstream.New(srv.URL, fastPolicy(), quietLogger())

	body, err := c.Fetch(context.Background(), upstream.EndpointNotes, "/notes/dia/1", "t")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"periodeId":1}]`, string(body))
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetchServerErrorAfterRetriesExhausted(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := upstream.New(srv.URL, fastPolicy(), quietLogger())

	_, err := c.Fetch(context.Background(), upstream.EndpointNotes, "/notes/dia/1", "t")

	var upErr upstream.UpstreamError

	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, upstream.KindServerError, upErr.Kind)
	assert.Equal(t, http.StatusInternalServerError, upErr.Status)
	assert.Equal(t, int32(3), calls.Load())
	assert.False(t, errors.Is(err, upstream.ErrTimeout))
}

func TestFetchTimesOutWithinCeiling(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	p := upstream.Policy{
		Timeout:    50 * time.Millisecond,
		MaxRetries: 2,
		WaitMin:    time.Millisecond,
		WaitMax:    5 * time.Millisecond,
	}

	c := upstream.New(srv.URL, p, quietLogger())

	start := time.Now()
	_, err := c.Fetch(context.Background(), upstream.EndpointNotes, "/notes/dia/1", "t")
	elapsed := time.Since(start)

	require.Error(t, err)
	require.ErrorIs(t, err, upstream.ErrTimeout)
	assert.LessOrEqual(t, elapsed, p.Ceiling()+time.Second)

	var upErr upstream.UpstreamError

	require.ErrorAs(t, err, &upErr)
	assert.True(t, upErr.Timeout())
	assert.Equal(t, 0, upErr.Status)
}

func TestFetchHonoursCallerContext(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := upstream.New(srv.URL, fastPolicy(), quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Fetch(ctx, upstream.EndpointNotes, "/notes/dia/1", "t")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEndpointPolicyOverridesDefault(t *testing.T) {
	t.Parallel()

	listing := upstream.Policy{Timeout: 100 * time.Second, MaxRetries: 1, WaitMin: time.Second, WaitMax: 2 * time.Second}

	c := upstream.New("http://upstream.invalid", fastPolicy(), quietLogger(),
		upstream.WithEndpointPolicy(upstream.EndpointNotes, listing))

	assert.Equal(t, listing, c.PolicyFor(upstream.EndpointNotes))
	assert.Equal(t, fastPolicy(), c.PolicyFor(upstream.EndpointLogo))
}

func TestFetchJSONRejectsMalformedBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c := upstream.New(srv.URL, fastPolicy(), quietLogger())

	var out []map[string]interface{}

	err := c.FetchJSON(context.Background(), upstream.EndpointGroups, "/groupes/dia/1", "t", &out)

	var upErr upstream.UpstreamError

	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, upstream.KindInvalidPayload, upErr.Kind)
}

func TestFetchJSONDecodes(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id":3}]`))
	}))
	defer srv.Close()

	c := upstream.New(srv.URL, fastPolicy(), quietLogger())

	var out []struct {
		ID int `json:"id"`
	}

	require.NoError(t, c.FetchJSON(context.Background(), upstream.EndpointGroups, "/x", "t", &out))
	require.Len(t, out, 1)
	assert.Equal(t, 3, out[0].ID)
}

func TestPolicyCeiling(t *testing.T) {
	t.Parallel()

	p := upstream.Policy{Timeout: 10 * time.Second, MaxRetries: 2, WaitMin: time.Second, WaitMax: 4 * time.Second}
	assert.Equal(t, 38*time.Second, p.Ceiling())

	p.MaxRetries = 0
	assert.Equal(t, 10*time.Second, p.Ceiling())
}
