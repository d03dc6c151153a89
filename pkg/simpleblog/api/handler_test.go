package api

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendant/simple-blog/pkg/simpleblog"
	"github.com/tendant/simple-blog/pkg/simpleblog/assets"
	memorystore "github.com/tendant/simple-blog/pkg/simpleblog/store/memory"
	memoryobjects "github.com/tendant/simple-blog/pkg/simpleblog/storage/memory"
)

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	manager := assets.NewManager(memoryobjects.New())
	svc, err := simpleblog.New(
		simpleblog.WithPostStore(memorystore.New()),
		simpleblog.WithAssetManager(manager),
	)
	require.NoError(t, err)

	server := httptest.NewServer(NewHandler(svc).Routes())
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestListPostsEmpty(t *testing.T) {
	server := setupTestServer(t)

	resp, err := http.Get(server.URL + "/posts")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body PostsResponse
	decodeBody(t, resp, &body)
	assert.NotNil(t, body.Posts)
	assert.Empty(t, body.Posts)
}

func TestSavePost(t *testing.T) {
	server := setupTestServer(t)

	resp := postJSON(t, server.URL+"/save-post", map[string]any{
		"post": map[string]any{
			"title":   "First Post",
			"content": "Hello",
		},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body SaveResponse
	decodeBody(t, resp, &body)
	assert.True(t, body.OK)
	require.Len(t, body.Posts, 1)
	assert.Equal(t, "First Post", body.Posts[0].Title)

	// A second save without an index prepends.
	resp = postJSON(t, server.URL+"/save-post", map[string]any{
		"post": map[string]any{
			"title":   "Second Post",
			"content": "World",
		},
	})
	decodeBody(t, resp, &body)
	require.Len(t, body.Posts, 2)
	assert.Equal(t, "Second Post", body.Posts[0].Title)
	assert.Equal(t, "First Post", body.Posts[1].Title)
}

func TestSavePostUpdateByIndex(t *testing.T) {
	server := setupTestServer(t)

	var body SaveResponse
	decodeBody(t, postJSON(t, server.URL+"/save-post", map[string]any{
		"post": map[string]any{"title": "Original", "content": "Body"},
	}), &body)
	require.Len(t, body.Posts, 1)

	decodeBody(t, postJSON(t, server.URL+"/save-post", map[string]any{
		"post":  map[string]any{"title": "Edited", "content": "Body"},
		"index": 0,
	}), &body)
	require.Len(t, body.Posts, 1)
	assert.Equal(t, "Edited", body.Posts[0].Title)
}

func TestSavePostValidation(t *testing.T) {
	server := setupTestServer(t)

	resp := postJSON(t, server.URL+"/save-post", map[string]any{
		"post": map[string]any{"title": "", "content": "orphan body"},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body ErrorResponse
	decodeBody(t, resp, &body)
	assert.False(t, body.OK)
	assert.Contains(t, body.Error, "title and content are required")
}

func TestSavePostMalformedBody(t *testing.T) {
	server := setupTestServer(t)

	resp, err := http.Post(server.URL+"/save-post", "application/json", strings.NewReader("{not json"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "invalid request body", body.Error)
}

func TestDeletePost(t *testing.T) {
	server := setupTestServer(t)

	var saved SaveResponse
	decodeBody(t, postJSON(t, server.URL+"/save-post", map[string]any{
		"post": map[string]any{"title": "Doomed", "content": "Body"},
	}), &saved)
	require.Len(t, saved.Posts, 1)

	resp := postJSON(t, server.URL+"/delete-post", map[string]any{"index": 0})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body SaveResponse
	decodeBody(t, resp, &body)
	assert.True(t, body.OK)
	assert.Empty(t, body.Posts)
}

func TestDeletePostInvalidIndex(t *testing.T) {
	server := setupTestServer(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing index", map[string]any{}},
		{"out of range", map[string]any{"index": 5}},
		{"negative", map[string]any{"index": -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, server.URL+"/delete-post", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body ErrorResponse
			decodeBody(t, resp, &body)
			assert.False(t, body.OK)
		})
	}
}

func TestUploadImage(t *testing.T) {
	server := setupTestServer(t)

	payload := base64.StdEncoding.EncodeToString([]byte("png-bytes"))
	resp := postJSON(t, server.URL+"/upload-image", map[string]any{
		"dataUrl":  "data:image/png;base64," + payload,
		"filename": "My Photo.png",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body UploadResponse
	decodeBody(t, resp, &body)
	assert.True(t, body.OK)
	assert.Regexp(t, `^assets/uploads/\d+-My-Photo\.png$`, body.ImagePath)
}

func TestUploadImageRejected(t *testing.T) {
	server := setupTestServer(t)

	resp := postJSON(t, server.URL+"/upload-image", map[string]any{
		"dataUrl": "data:application/pdf;base64,aGVsbG8=",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body ErrorResponse
	decodeBody(t, resp, &body)
	assert.False(t, body.OK)
}

func TestAuthStub(t *testing.T) {
	server := setupTestServer(t)

	resp := postJSON(t, server.URL+"/auth", map[string]any{"password": "anything"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]bool
	decodeBody(t, resp, &body)
	assert.True(t, body["ok"])
}
