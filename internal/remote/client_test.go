package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/armanazij/mygp-survey/internal/common"
	"github.com/armanazij/mygp-survey/internal/logging"
	"github.com/armanazij/mygp-survey/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, logging.NewNopLogger())
}

func TestFetchAll_Success(t *testing.T) {
	var gotAction, gotBuster string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAction = r.URL.Query().Get("action")
		gotBuster = r.URL.Query().Get("t")
		w.Write([]byte(`{"status":"success","data":[{"id":1,"phoneNumber":"01712345678","profession":"ছাত্র","useMyGP":"yes","reason":"উভয়","timestamp":"2025-01-02T03:04:05Z"}]}`))
	})

	entries, err := c.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].ID)
	assert.Equal(t, "উভয়", entries[0].Reason)

	assert.Equal(t, "getData", gotAction)
	assert.NotEmpty(t, gotBuster, "request must carry a cache buster")
}

func TestFetchAll_EmptyData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","data":[]}`))
	})

	entries, err := c.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFetchAll_ServerReportedError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","message":"quota exceeded"}`))
	})

	_, err := c.FetchAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrServerReported)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestFetchAll_MalformedBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	})

	_, err := c.FetchAll(context.Background())
	assert.ErrorIs(t, err, common.ErrMalformedResponse)
}

func TestFetchAll_WrongShape(t *testing.T) {
	for _, body := range []string{
		`{"status":"success"}`,
		`{"status":"success","data":null}`,
		`{"status":"success","data":{"id":1}}`,
		`{"status":"pending","data":[]}`,
	} {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		})

		_, err := c.FetchAll(context.Background())
		assert.ErrorIs(t, err, common.ErrMalformedResponse, "body %s", body)
	}
}

func TestFetchAll_TransportError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.FetchAll(context.Background())
	assert.ErrorIs(t, err, common.ErrTransport)
}

func TestFetchAll_Unreachable(t *testing.T) {
	c := New("http://127.0.0.1:1", time.Second, logging.NewNopLogger())

	_, err := c.FetchAll(context.Background())
	assert.ErrorIs(t, err, common.ErrTransport)
}

func TestSubmit_Success(t *testing.T) {
	var form map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form = map[string]string{}
		for k := range r.PostForm {
			form[k] = r.PostForm.Get(k)
		}
		w.Write([]byte(`{"status":"success"}`))
	})

	e := models.Entry{
		ID:          1700000000000,
		Name:        "করিম",
		PhoneNumber: "01712345678",
		Profession:  "ছাত্র",
		UseMyGP:     models.UseYes,
		Reason:      "উভয়",
		Timestamp:   "2025-01-02T03:04:05Z",
	}
	require.NoError(t, c.Submit(context.Background(), e))

	assert.Equal(t, map[string]string{
		"id":          "1700000000000",
		"name":        "করিম",
		"phoneNumber": "01712345678",
		"profession":  "ছাত্র",
		"useMyGP":     "yes",
		"reason":      "উভয়",
		"timestamp":   "2025-01-02T03:04:05Z",
	}, form)
}

func TestSubmit_ServerRejects(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","message":"sheet is full"}`))
	})

	err := c.Submit(context.Background(), models.Entry{ID: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrServerReported)
}

func TestSubmit_TransportError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := c.Submit(context.Background(), models.Entry{ID: 1})
	assert.ErrorIs(t, err, common.ErrTransport)
}

func TestSubmit_MalformedBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`ok`))
	})

	err := c.Submit(context.Background(), models.Entry{ID: 1})
	assert.ErrorIs(t, err, common.ErrMalformedResponse)
}

func TestErrorsNeverPanic(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{`))
	})

	assert.NotPanics(t, func() {
		_, _ = c.FetchAll(context.Background())
		_ = c.Submit(context.Background(), models.Entry{})
	})
}

func TestFetchAll_ErrorKindsAreDisjoint(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","message":"x"}`))
	})

	_, err := c.FetchAll(context.Background())
	assert.True(t, errors.Is(err, common.ErrServerReported))
	assert.False(t, errors.Is(err, common.ErrMalformedResponse))
	assert.False(t, errors.Is(err, common.ErrTransport))
}
