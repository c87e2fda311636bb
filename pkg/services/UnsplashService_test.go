package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEndpoint = "https://api.unsplash.com/photos"

// setupHTTPMock activates httpmock for the default transport for the test's lifetime.
func setupHTTPMock(t *testing.T) {
	t.Helper()
	httpmock.Activate()
	t.Cleanup(httpmock.DeactivateAndReset)
}

func newTestUnsplashService() UnsplashService {
	return NewUnsplashService(UnsplashServiceConfig{
		AccessKey: "test-key",
		Endpoint:  testEndpoint,
	})
}

func photoListResponse() string {
	return `[
  {
    "id": "abc",
    "description": null,
    "alt_description": "a red fox in the snow",
    "urls": {"raw": "https://images.example/abc?raw", "small": "https://images.example/abc?w=400"},
    "user": {"name": "Jan Kowalski", "username": "jkowalski"}
  },
  {
    "id": "def",
    "alt_description": "mountain lake",
    "urls": {"small": "https://images.example/def?w=400"},
    "user": {"name": "Anna Nowak", "username": "anowak"}
  }
]`
}

func TestUnsplashService_ListPhotos_Success(t *testing.T) {
	setupHTTPMock(t)

	httpmock.RegisterResponderWithQuery(
		http.MethodGet,
		testEndpoint,
		map[string]string{"per_page": "30", "client_id": "test-key"},
		httpmock.NewStringResponder(http.StatusOK, photoListResponse()),
	)

	photos, err := newTestUnsplashService().ListPhotos(context.Background(), 30)

	require.NoError(t, err)
	require.Len(t, photos, 2)

	assert.Equal(t, "abc", photos[0].ID)
	assert.Equal(t, "https://images.example/abc?w=400", photos[0].URLs.Small)
	assert.Equal(t, "a red fox in the snow", photos[0].AltDescription)
	assert.Empty(t, photos[0].Description)
	assert.Equal(t, "Jan Kowalski", photos[0].User.Name)
	assert.Equal(t, "jkowalski", photos[0].User.Username)
	assert.Equal(t, "def", photos[1].ID)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestUnsplashService_ListPhotos_SendsVersionHeader(t *testing.T) {
	setupHTTPMock(t)

	var gotVersion string

	httpmock.RegisterResponder(http.MethodGet, testEndpoint, func(req *http.Request) (*http.Response, error) {
		gotVersion = req.Header.Get("Accept-Version")
		return httpmock.NewStringResponse(http.StatusOK, `[]`), nil
	})

	photos, err := newTestUnsplashService().ListPhotos(context.Background(), 10)

	require.NoError(t, err)
	assert.Empty(t, photos)
	assert.Equal(t, "v1", gotVersion)
}

func TestUnsplashService_ListPhotos_NotAList(t *testing.T) {
	setupHTTPMock(t)

	tests := []struct {
		name string
		body string
	}{
		{"object", `{"errors": ["OAuth error: The access token is invalid"]}`},
		{"null", `null`},
		{"string", `"hello"`},
		{"number", `42`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpmock.Reset()
			httpmock.RegisterResponder(http.MethodGet, testEndpoint, httpmock.NewStringResponder(http.StatusOK, tt.body))

			photos, err := newTestUnsplashService().ListPhotos(context.Background(), 30)

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrNotAList))
			assert.Nil(t, photos)
		})
	}
}

func TestUnsplashService_ListPhotos_ErrorObjectWithStatusIsNotAList(t *testing.T) {
	setupHTTPMock(t)

	httpmock.RegisterResponder(
		http.MethodGet,
		testEndpoint,
		httpmock.NewStringResponder(http.StatusUnauthorized, `{"errors": ["OAuth error: The access token is invalid"]}`),
	)

	photos, err := newTestUnsplashService().ListPhotos(context.Background(), 30)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotAList))
	assert.Contains(t, err.Error(), "401")
	assert.Nil(t, photos)
}

func TestUnsplashService_ListPhotos_NonJSONErrorPage(t *testing.T) {
	setupHTTPMock(t)

	httpmock.RegisterResponder(
		http.MethodGet,
		testEndpoint,
		httpmock.NewStringResponder(http.StatusBadGateway, `<html><body>Bad Gateway</body></html>`),
	)

	photos, err := newTestUnsplashService().ListPhotos(context.Background(), 30)

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotAList))
	assert.Contains(t, err.Error(), "status")
	assert.Nil(t, photos)
}

func TestUnsplashService_ListPhotos_HTTPError(t *testing.T) {
	setupHTTPMock(t)

	tests := []struct {
		name       string
		statusCode int
	}{
		{"unauthorized", http.StatusUnauthorized},
		{"forbidden", http.StatusForbidden},
		{"rate_limited", http.StatusTooManyRequests},
		{"internal_server_error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpmock.Reset()
			httpmock.RegisterResponder(http.MethodGet, testEndpoint, httpmock.NewStringResponder(tt.statusCode, `[]`))

			photos, err := newTestUnsplashService().ListPhotos(context.Background(), 30)

			require.Error(t, err)
			assert.False(t, errors.Is(err, ErrNotAList))
			assert.Contains(t, err.Error(), "status")
			assert.Nil(t, photos)
		})
	}
}

func TestUnsplashService_ListPhotos_InvalidJSON(t *testing.T) {
	setupHTTPMock(t)

	httpmock.RegisterResponder(http.MethodGet, testEndpoint, httpmock.NewStringResponder(http.StatusOK, `[{"id": `))

	photos, err := newTestUnsplashService().ListPhotos(context.Background(), 30)

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotAList))
	assert.Nil(t, photos)
}

func TestUnsplashService_ListPhotos_TransportError(t *testing.T) {
	setupHTTPMock(t)

	httpmock.RegisterResponder(http.MethodGet, testEndpoint, httpmock.NewErrorResponder(errors.New("connection refused")))

	photos, err := newTestUnsplashService().ListPhotos(context.Background(), 30)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Nil(t, photos)
}

func TestUnsplashService_ListPhotos_BadEndpoint(t *testing.T) {
	service := NewUnsplashService(UnsplashServiceConfig{
		AccessKey: "test-key",
		Endpoint:  "://missing-scheme",
	})

	photos, err := service.ListPhotos(context.Background(), 30)

	require.Error(t, err)
	assert.Nil(t, photos)
}
