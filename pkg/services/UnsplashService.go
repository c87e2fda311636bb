package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/adampresley/slowgallery/pkg/models"
)

var (
	ErrNotAList = errors.New("photo listing response is not a list")
)

type PhotoServicer interface {
	ListPhotos(ctx context.Context, perPage int) ([]models.Photo, error)
}

type UnsplashServiceConfig struct {
	AccessKey  string
	Endpoint   string
	HttpClient *http.Client
}

type UnsplashService struct {
	accessKey  string
	endpoint   string
	httpClient *http.Client
}

func NewUnsplashService(config UnsplashServiceConfig) UnsplashService {
	if config.HttpClient == nil {
		config.HttpClient = &http.Client{}
	}

	return UnsplashService{
		accessKey:  config.AccessKey,
		endpoint:   config.Endpoint,
		httpClient: config.HttpClient,
	}
}

/*
ListPhotos requests a single page of photos. A body that is valid JSON but
not an array yields ErrNotAList, whatever the status code. This includes
the error object the API sends back for a bad access key.
*/
func (s UnsplashService) ListPhotos(ctx context.Context, perPage int) ([]models.Photo, error) {
	var (
		err      error
		u        *url.URL
		req      *http.Request
		response *http.Response
		body     []byte
		result   []models.Photo
	)

	if u, err = url.Parse(s.endpoint); err != nil {
		return nil, fmt.Errorf("error parsing photo endpoint '%s': %w", s.endpoint, err)
	}

	q := u.Query()
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("client_id", s.accessKey)
	u.RawQuery = q.Encode()

	if req, err = http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody); err != nil {
		return nil, fmt.Errorf("error creating photo listing request: %w", err)
	}

	req.Header.Set("Accept-Version", "v1")

	if response, err = s.httpClient.Do(req); err != nil {
		return nil, fmt.Errorf("error requesting photo listing: %w", err)
	}

	defer response.Body.Close()

	if body, err = io.ReadAll(response.Body); err != nil {
		return nil, fmt.Errorf("error reading photo listing response: %w", err)
	}

	validJSON := json.Valid(body)

	if trimmed := bytes.TrimSpace(body); validJSON && trimmed[0] != '[' {
		return nil, fmt.Errorf("%w (status %s): %s", ErrNotAList, response.Status, truncate(trimmed, 200))
	}

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error requesting photo listing, status: %s", response.Status)
	}

	if !validJSON {
		return nil, fmt.Errorf("error decoding photo listing: invalid JSON body")
	}

	if err = json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("error decoding photo listing: %w", err)
	}

	return result, nil
}

func truncate(b []byte, limit int) string {
	if len(b) <= limit {
		return string(b)
	}

	return string(b[:limit]) + "..."
}
