package httpclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-backoffice-client/pkg/credstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) (*Client, credstore.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	creds := credstore.NewMemory()
	return New(srv.URL, 2*time.Second, creds, opts...), creds
}

func TestGetUnwrapsEnvelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":"1","name":"Tea"},"message":"fetched"}`))
	})

	res, err := client.Get(context.Background(), "/api/product/1", nil)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "fetched", res.Message)

	data, ok := res.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Tea", data["name"])
}

func TestGetWithoutEnvelopeReturnsBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"1"},{"id":"2"}]`))
	})

	res, err := client.Get(context.Background(), "/api/product", nil)
	require.NoError(t, err)
	arr, ok := res.Data.([]any)
	require.True(t, ok)
	assert.Len(t, arr, 2)
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	client, creds := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})
	require.NoError(t, creds.Set(credstore.KeyToken, "tok-123"))

	_, err := client.Get(context.Background(), "/api/admin/profile", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestUnauthorizedClearsCredentials(t *testing.T) {
	hookFired := false
	client, creds := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(401)
		w.Write([]byte(`{"message":"token expired"}`))
	}, WithUnauthorizedHook(func() { hookFired = true }))

	require.NoError(t, creds.Set(credstore.KeyToken, "stale"))
	require.NoError(t, creds.Set(credstore.KeyUser, `{"id":"1"}`))

	_, err := client.Get(context.Background(), "/api/order", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnauthorized))
	assert.Equal(t, "token expired", err.Error())
	assert.True(t, hookFired)

	_, err = creds.Get(credstore.KeyToken)
	assert.ErrorIs(t, err, credstore.ErrNotFound)
	_, err = creds.Get(credstore.KeyUser)
	assert.ErrorIs(t, err, credstore.ErrNotFound)
}

func TestFixedStatusMessages(t *testing.T) {
	cases := []struct {
		status   int
		sentinel error
		message  string
	}{
		{403, ErrForbidden, "you do not have permission to perform this action"},
		{404, ErrNotFound, "resource not found"},
		{500, ErrServer, "server error, please try again later"},
	}
	for _, tc := range cases {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			w.Write([]byte(`{"message":"internal detail that must not leak"}`))
		})
		_, err := client.Get(context.Background(), "/api/product", nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, tc.sentinel), "status %d", tc.status)
		assert.Equal(t, tc.message, err.Error())

		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, tc.status, statusErr.Code)
	}
}

func TestOtherStatusKeepsServerMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(422)
		w.Write([]byte(`{"error":"name already taken"}`))
	})
	_, err := client.Post(context.Background(), "/api/category/create", map[string]any{"name": "tea"})
	require.Error(t, err)
	assert.Equal(t, "name already taken", err.Error())
	assert.False(t, errors.Is(err, ErrUnauthorized))
}

func TestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	client := New(srv.URL, 20*time.Millisecond, credstore.NewMemory())
	_, err := client.Get(context.Background(), "/api/slow", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTimeout))
}

func TestTimeoutDuringBodyRead(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.(http.Flusher).Flush()
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{"data":[]}`))
	}))
	t.Cleanup(srv.Close)

	client := New(srv.URL, 50*time.Millisecond, credstore.NewMemory())
	_, err := client.Get(context.Background(), "/api/slow-body", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTimeout))
	assert.Equal(t, "request timeout, please try again", err.Error())
}

func TestUploadUsesGivenFieldName(t *testing.T) {
	var (
		gotFileName string
		gotCaption  string
	)
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("banner")
		require.NoError(t, err)
		file.Close()
		gotFileName = header.Filename
		gotCaption = r.FormValue("caption")
		w.Write([]byte(`{"data":{"id":"b1"}}`))
	})

	_, err := client.Upload(context.Background(), "/api/homepage/banners", "banner",
		File{Name: "sale.png", Content: []byte("png")},
		map[string]any{"caption": "Summer Sale"},
	)
	require.NoError(t, err)
	assert.Equal(t, "sale.png", gotFileName)
	assert.Equal(t, "Summer Sale", gotCaption)
}

func TestFormEncodesMultipart(t *testing.T) {
	var (
		gotName     string
		gotFileName string
		gotFile     []byte
	)
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotName = r.FormValue("name")
		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		gotFileName = header.Filename
		gotFile, err = io.ReadAll(file)
		require.NoError(t, err)
		w.Write([]byte(`{"data":{"id":"1"}}`))
	})

	form := NewForm().
		AddField("name", "Milk").
		AddFile("image", "milk.png", []byte("png-bytes"))

	_, err := client.Post(context.Background(), "/api/product/create", form)
	require.NoError(t, err)
	assert.Equal(t, "Milk", gotName)
	assert.Equal(t, "milk.png", gotFileName)
	assert.Equal(t, []byte("png-bytes"), gotFile)
}

func TestResponseDecodeWeaklyTyped(t *testing.T) {
	res := &Response{Data: map[string]any{"id": 7, "price": "12.5"}}
	var out struct {
		ID    string  `json:"id"`
		Price float64 `json:"price"`
	}
	require.NoError(t, res.Decode(&out))
	assert.Equal(t, "7", out.ID)
	assert.Equal(t, 12.5, out.Price)
}

func TestQueryParamsAppended(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{}`))
	})

	params := map[string][]string{"search": {"tea"}, "page": {"2"}}
	_, err := client.Get(context.Background(), "/api/product", params)
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "search=tea")
	assert.Contains(t, gotQuery, "page=2")
}
