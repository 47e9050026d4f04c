package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/bigkaa/goartstore/video-module/api"
	"github.com/bigkaa/goartstore/video-module/internal/api/generated"
	"github.com/bigkaa/goartstore/video-module/internal/api/handlers"
	"github.com/bigkaa/goartstore/video-module/internal/config"
	"github.com/bigkaa/goartstore/video-module/internal/service"
	"github.com/bigkaa/goartstore/video-module/internal/storage/videostore"
)

var isoPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Port:                    0,
		LogLevel:                slog.LevelInfo,
		LogFormat:               "text",
		HTTPReadTimeout:         5 * time.Second,
		HTTPWriteTimeout:        5 * time.Second,
		HTTPIdleTimeout:         5 * time.Second,
		ShutdownTimeout:         5 * time.Second,
		TestingEndpointsEnabled: true,
		RateLimitWindow:         time.Minute,
	}
}

// newTestServer собирает сервер так же, как cmd/video-module.
func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()

	logger := testLogger()
	store := videostore.New(logger)
	videos := service.NewVideoService(store, logger)
	apiHandler := handlers.NewAPIHandler(handlers.NewHealthHandler(videos), videos, cfg.TestingEndpointsEnabled, logger)

	return New(cfg, logger, apiHandler, DefaultMiddlewares(cfg, logger)...)
}

func send(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// TestVideosFlow — полный сценарий работы с ресурсом /videos.
func TestVideosFlow(t *testing.T) {
	h := newTestServer(t, testConfig()).Handler()

	rr := send(t, h, http.MethodDelete, "/testing/all-data", "")
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = send(t, h, http.MethodGet, "/videos", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	// Некорректные данные создания
	rr = send(t, h, http.MethodPost, "/videos", `{"title":"","author":"","availableResolutions":[]}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"errorsMessages":[
		{"message":"error!!!","field":"availableResolutions"},
		{"message":"Invalid title.","field":"title"},
		{"message":"Invalid author name.","field":"author"}
	]}`, rr.Body.String())

	rr = send(t, h, http.MethodGet, "/videos", "")
	assert.JSONEq(t, `[]`, rr.Body.String())

	// Создание двух видео
	rr = send(t, h, http.MethodPost, "/videos",
		`{"title":"Back-end Путь самурая","author":"IT-INCUBATOR","availableResolutions":["P1080","P1440"]}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	var video1 generated.Video
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &video1))
	assert.Equal(t, "Back-end Путь самурая", video1.Title)
	assert.False(t, video1.CanBeDownloaded)
	assert.Nil(t, video1.MinAgeRestriction)
	assert.Regexp(t, isoPattern, video1.CreatedAt)
	assert.Regexp(t, isoPattern, video1.PublicationDate)
	assert.Equal(t, []generated.Resolution{"P1080", "P1440"}, video1.AvailableResolutions)

	rr = send(t, h, http.MethodPost, "/videos",
		`{"title":"Back-end Путь самурая 2","author":"IT-INCUBATOR","availableResolutions":["P1080"]}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	var video2 generated.Video
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &video2))
	assert.NotEqual(t, video1.Id, video2.Id)

	rr = send(t, h, http.MethodGet, "/videos", "")
	var list []generated.Video
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Equal(t, []generated.Video{video1, video2}, list)

	// Поиск
	rr = send(t, h, http.MethodGet, "/videos/-100", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = send(t, h, http.MethodGet, videoPath(video1.Id), "")
	require.Equal(t, http.StatusOK, rr.Code)
	var found generated.Video
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &found))
	assert.Equal(t, video1, found)

	// Обновление
	rr = send(t, h, http.MethodPut, "/videos/-100", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = send(t, h, http.MethodPut, videoPath(video2.Id), `{
		"title":"","author":"","availableResolutions":[],
		"canBeDownloaded":"test","minAgeRestriction":20,"publicationDate":"test"
	}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"errorsMessages":[
		{"message":"error!!!","field":"availableResolutions"},
		{"message":"Invalid title.","field":"title"},
		{"message":"Invalid author name.","field":"author"},
		{"message":"An incorrect value range was passed.","field":"minAgeRestriction"},
		{"message":"Invalid date format.","field":"publicationDate"},
		{"message":"Invalid type passed.","field":"canBeDownloaded"}
	]}`, rr.Body.String())

	publicationDate := time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
	rr = send(t, h, http.MethodPut, videoPath(video2.Id), `{
		"title":"Night show video","author":"IT-KAMASUTRA","availableResolutions":["P2160"],
		"canBeDownloaded":false,"minAgeRestriction":null,"publicationDate":"`+publicationDate+`"
	}`)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = send(t, h, http.MethodGet, videoPath(video2.Id), "")
	var updated generated.Video
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	expected := video2
	expected.Title = "Night show video"
	expected.Author = "IT-KAMASUTRA"
	expected.AvailableResolutions = []generated.Resolution{"P2160"}
	expected.PublicationDate = publicationDate
	assert.Equal(t, expected, updated)

	// Удаление
	rr = send(t, h, http.MethodDelete, "/videos/-100", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = send(t, h, http.MethodDelete, videoPath(video2.Id), "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	rr = send(t, h, http.MethodDelete, videoPath(video1.Id), "")
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = send(t, h, http.MethodGet, "/videos", "")
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestNonIntegerID_NotFound(t *testing.T) {
	h := newTestServer(t, testConfig()).Handler()

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		rr := send(t, h, method, "/videos/abc", "")
		assert.Equal(t, http.StatusNotFound, rr.Code, method)
		assert.Contains(t, rr.Body.String(), `"NOT_FOUND"`, method)
	}
}

func TestUnknownRoute_Envelope(t *testing.T) {
	h := newTestServer(t, testConfig()).Handler()

	rr := send(t, h, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), `"NOT_FOUND"`)

	rr = send(t, h, http.MethodPatch, "/videos", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestRequestIDHeader(t *testing.T) {
	h := newTestServer(t, testConfig()).Handler()

	rr := send(t, h, http.MethodGet, "/health/live", "")
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestOpenAPIEndpoint(t *testing.T) {
	h := newTestServer(t, testConfig()).Handler()

	rr := send(t, h, http.MethodGet, "/openapi.yaml", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, api.SpecYAML, rr.Body.Bytes())
}

func TestRateLimit_Enabled(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRequests = 1
	h := newTestServer(t, cfg).Handler()

	rr := send(t, h, http.MethodGet, "/videos", "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = send(t, h, http.MethodGet, "/videos", "")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}

// TestRouterParity — маршруты роутера совпадают с операциями OpenAPI контракта.
func TestRouterParity(t *testing.T) {
	doc, err := api.Load()
	require.NoError(t, err)

	srv := newTestServer(t, testConfig())
	router, ok := srv.Handler().(chi.Routes)
	require.True(t, ok, "корневой обработчик должен быть chi.Routes")

	mounted := map[string]bool{}
	err = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		mounted[method+" "+route] = true
		return nil
	})
	require.NoError(t, err)

	documented := map[string]bool{}
	for path, item := range doc.Paths.Map() {
		for method, op := range item.Operations() {
			if op == nil || op.OperationID == "" {
				continue
			}
			key := method + " " + path
			documented[key] = true
			assert.True(t, mounted[key], "операция не смонтирована: %s", key)
		}
	}

	for key := range mounted {
		if key == "GET /openapi.yaml" {
			continue
		}
		assert.True(t, documented[key], "маршрут отсутствует в контракте: %s", key)
	}
}

// TestServe_GracefulShutdown — сервер отвечает и останавливается без утечки горутин.
func TestServe_GracefulShutdown(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	srv := newTestServer(t, testConfig())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.serve(ctx, ln)
	}()

	transport := &http.Transport{DisableKeepAlives: true}
	client := &http.Client{Transport: transport, Timeout: 5 * time.Second}

	resp, err := client.Get("http://" + ln.Addr().String() + "/health/live")
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	transport.CloseIdleConnections()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("сервер не остановился")
	}
}

func videoPath(id int64) string {
	return "/videos/" + strconv.FormatInt(id, 10)
}
