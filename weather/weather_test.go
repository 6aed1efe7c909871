package weather

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skycast/config"
)

const londonJSON = `{
	"name": "London",
	"weather": [{"id": 500, "main": "Rain", "description": "light rain", "icon": "10d"}],
	"main": {"temp": 12.5, "feels_like": 11.9, "humidity": 81, "pressure": 1012},
	"wind": {"speed": 4.1, "deg": 240}
}`

// newTestClient points a client at srv with limits loose enough for tests.
func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()

	c, err := NewClient(&config.Config{
		APIKey:      "secret-key",
		WeatherURL:  srv.URL + "/data/2.5/weather",
		IconURL:     srv.URL + "/img/wn",
		HTTPTimeout: 2 * time.Second,
		RateLimit:   1000,
		RateBurst:   10,
	})
	require.NoError(t, err)
	return c
}

func mockWeatherServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestCurrentSuccess(t *testing.T) {
	var gotQuery map[string]string
	srv := mockWeatherServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/2.5/weather", r.URL.Path)
		gotQuery = map[string]string{
			"q":     r.URL.Query().Get("q"),
			"appid": r.URL.Query().Get("appid"),
			"units": r.URL.Query().Get("units"),
		}
		assert.True(t, strings.HasPrefix(r.Header.Get("User-Agent"), "skycast/"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(londonJSON))
	})

	reading, err := newTestClient(t, srv).Current(context.Background(), "  São Paulo ")
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"q": "São Paulo", "appid": "secret-key", "units": "metric"}, gotQuery)
	assert.Equal(t, "London", reading.City)
	assert.Equal(t, "light rain", reading.Description)
	assert.Equal(t, 12.5, reading.Temperature)
	assert.Equal(t, 81, reading.Humidity)
	assert.Equal(t, 4.1, reading.WindSpeed)
	assert.Equal(t, "10d", reading.Icon)
}

func TestCurrentNotFoundIsRetrieveError(t *testing.T) {
	srv := mockWeatherServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	})

	_, err := newTestClient(t, srv).Current(context.Background(), "Atlantis")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRetrieve))
	assert.False(t, errors.Is(err, ErrParse))

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
	assert.Equal(t, "Atlantis", fetchErr.City)
}

func TestCurrentTransportFailureIsRetrieveError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c := newTestClient(t, srv)
	srv.Close()

	_, err := c.Current(context.Background(), "Paris")
	assert.True(t, errors.Is(err, ErrRetrieve))
}

func TestCurrentMissingFieldsAreParseErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing wind", `{"name":"Oslo","weather":[{"description":"snow","icon":"13d"}],"main":{"temp":-2,"humidity":90}}`},
		{"missing wind speed", `{"name":"Oslo","weather":[{"description":"snow","icon":"13d"}],"main":{"temp":-2,"humidity":90},"wind":{}}`},
		{"empty weather array", `{"name":"Oslo","weather":[],"main":{"temp":-2,"humidity":90},"wind":{"speed":1}}`},
		{"missing icon", `{"name":"Oslo","weather":[{"description":"snow"}],"main":{"temp":-2,"humidity":90},"wind":{"speed":1}}`},
		{"missing name", `{"weather":[{"description":"snow","icon":"13d"}],"main":{"temp":-2,"humidity":90},"wind":{"speed":1}}`},
		{"missing main", `{"name":"Oslo","weather":[{"description":"snow","icon":"13d"}],"wind":{"speed":1}}`},
		{"wrong type", `{"name":"Oslo","weather":[{"description":"snow","icon":"13d"}],"main":{"temp":"cold","humidity":90},"wind":{"speed":1}}`},
		{"not json", `<html>bad gateway</html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := mockWeatherServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			_, err := newTestClient(t, srv).Current(context.Background(), "Oslo")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrParse), "got %v", err)
		})
	}
}

func TestCurrentDecodesCompressedBodies(t *testing.T) {
	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	zw.Write([]byte(londonJSON))
	require.NoError(t, zw.Close())

	var br bytes.Buffer
	bw := brotli.NewWriter(&br)
	bw.Write([]byte(londonJSON))
	require.NoError(t, bw.Close())

	for encoding, body := range map[string][]byte{"gzip": gz.Bytes(), "br": br.Bytes()} {
		t.Run(encoding, func(t *testing.T) {
			srv := mockWeatherServer(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Contains(t, r.Header.Get("Accept-Encoding"), encoding)
				w.Header().Set("Content-Encoding", encoding)
				w.Write(body)
			})

			reading, err := newTestClient(t, srv).Current(context.Background(), "London")
			require.NoError(t, err)
			assert.Equal(t, "London", reading.City)
		})
	}
}

func TestCurrentCancelledContext(t *testing.T) {
	srv := mockWeatherServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for a cancelled lookup")
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(t, srv).Current(ctx, "London")
	assert.True(t, errors.Is(err, ErrRetrieve))
}

func TestRedactHidesAPIKey(t *testing.T) {
	c := &Client{apiKey: "secret-key", weatherURL: "http://example.test/weather"}
	redacted := c.redact(c.currentURL("Paris"))
	assert.NotContains(t, redacted, "secret-key")
	assert.Contains(t, redacted, "q=Paris")
}

func TestIcon(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 100, 100))
	img.Set(10, 10, color.White)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	srv := mockWeatherServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/img/wn/10d@2x.png" {
			w.Header().Set("Content-Type", "image/png")
			w.Write(buf.Bytes())
			return
		}
		http.NotFound(w, r)
	})
	c := newTestClient(t, srv)

	icon, err := c.Icon(context.Background(), "10d")
	require.NoError(t, err)
	assert.Equal(t, 100, icon.Bounds().Dx())

	_, err = c.Icon(context.Background(), "99x")
	assert.Error(t, err)

	_, err = c.Icon(context.Background(), "")
	assert.Error(t, err)
}

func TestRateLimiterWithoutLimitNeverBlocks(t *testing.T) {
	rl := NewRateLimiter(0, 0)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	for i := 0; i < 20; i++ {
		require.NoError(t, rl.Wait(ctx))
	}
}

func TestTransportFailureDoesNotLogAPIKey(t *testing.T) {
	var logged bytes.Buffer
	log.SetOutput(&logged)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	srv := httptest.NewServer(http.NotFoundHandler())
	c := newTestClient(t, srv)
	srv.Close()

	_, err := c.Current(context.Background(), "Paris")
	require.Error(t, err)

	assert.Contains(t, logged.String(), "Error fetching weather data")
	assert.NotContains(t, logged.String(), "secret-key")
	assert.NotContains(t, err.Error(), "secret-key")
	assert.Contains(t, err.Error(), "appid=%2A%2A%2A")
}

func TestNewClientKeepsLibraryDefaultTimeout(t *testing.T) {
	c, err := NewClient(&config.Config{APIKey: "k", RateLimit: 1, RateBurst: 1})
	require.NoError(t, err)
	assert.Zero(t, c.httpClient.Timeout)

	c, err = NewClient(&config.Config{APIKey: "k", HTTPTimeout: 3 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, c.httpClient.Timeout)
}
