package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/alumconnect/alumni-portal/backend/internal/models"
	"github.com/alumconnect/alumni-portal/backend/internal/store"
)

// fakePostStore keeps posts in insertion order and mimics the store contract:
// prefix matching is case-insensitive, ErrNotFound for unknown ids.
type fakePostStore struct {
	posts map[string]*models.Post
	order []string
	err   error
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{posts: map[string]*models.Post{}}
}

func (f *fakePostStore) Insert(_ context.Context, post *models.Post) (primitive.ObjectID, error) {
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	id := primitive.NewObjectID()
	post.ID = id
	post.Timestamp = time.Now()
	f.posts[id.Hex()] = post
	f.order = append(f.order, id.Hex())
	return id, nil
}

func (f *fakePostStore) Latest(_ context.Context, limit int64) ([]models.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Post
	for i := len(f.order) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		out = append(out, *f.posts[f.order[i]])
	}
	return out, nil
}

func (f *fakePostStore) GetAndBumpViews(_ context.Context, id string) (*models.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	post, ok := f.posts[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	post.Views++
	cp := *post
	return &cp, nil
}

func (f *fakePostStore) Search(_ context.Context, filter store.SearchFilter) ([]models.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	if filter.Empty() {
		return []models.Post{}, nil
	}
	var out []models.Post
	for i := len(f.order) - 1; i >= 0; i-- {
		p := f.posts[f.order[i]]
		if hasPrefixFold(p.Title, filter.Title) ||
			hasPrefixFold(p.Description, filter.Description) ||
			hasPrefixFold(p.Author.Name, filter.Author) ||
			anyHasPrefixFold(p.Hashtag, filter.Hashtag) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func hasPrefixFold(v, prefix string) bool {
	return prefix != "" && strings.HasPrefix(strings.ToLower(v), strings.ToLower(prefix))
}

func anyHasPrefixFold(values []string, prefix string) bool {
	for _, v := range values {
		if hasPrefixFold(v, prefix) {
			return true
		}
	}
	return false
}

func (f *fakePostStore) AuthorOf(_ context.Context, id string) (models.Author, error) {
	post, ok := f.posts[id]
	if !ok {
		return models.Author{}, store.ErrNotFound
	}
	return post.Author, nil
}

func (f *fakePostStore) Delete(_ context.Context, id string) error {
	if _, ok := f.posts[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.posts, id)
	for i, v := range f.order {
		if v == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeCarousalStore struct {
	items map[string]*models.Carousal
	order []string
	err   error
}

func newFakeCarousalStore() *fakeCarousalStore {
	return &fakeCarousalStore{items: map[string]*models.Carousal{}}
}

func (f *fakeCarousalStore) Insert(_ context.Context, item *models.Carousal) (primitive.ObjectID, error) {
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	id := primitive.NewObjectID()
	item.ID = id
	item.Timestamp = time.Now()
	f.items[id.Hex()] = item
	f.order = append(f.order, id.Hex())
	return id, nil
}

func (f *fakeCarousalStore) Latest(_ context.Context, limit int64) ([]models.Carousal, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Carousal
	for i := len(f.order) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		out = append(out, *f.items[f.order[i]])
	}
	return out, nil
}

func (f *fakeCarousalStore) Delete(_ context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeAlumniStore struct {
	byID map[string]*models.Alumni
}

func newFakeAlumniStore() *fakeAlumniStore {
	return &fakeAlumniStore{byID: map[string]*models.Alumni{}}
}

func (f *fakeAlumniStore) add(a *models.Alumni) string {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	f.byID[a.ID.Hex()] = a
	return a.ID.Hex()
}

func (f *fakeAlumniStore) FindByID(_ context.Context, id string) (*models.Alumni, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return a, nil
}

func (f *fakeAlumniStore) FindByEmail(_ context.Context, email string) (*models.Alumni, error) {
	for _, a := range f.byID {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, store.ErrNotFound
}

// newTestRouter registers the handler routes behind a stub session middleware
// that injects the given identity, mirroring the production route layout.
func newTestRouter(h *Handler, userID, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	session := func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
		if role != "" {
			c.Set("role", role)
		}
	}

	api := r.Group("/api")
	if h.Auth != nil {
		api.POST("/login", h.Auth.Login)
		api.GET("/me", session, h.Auth.GetMe)
	}
	if h.Post != nil {
		api.GET("/posts/latest", h.Post.GetLatestPosts)
		api.GET("/posts/search", h.Post.SearchPosts)
		api.GET("/posts/:id", h.Post.GetPost)
		api.POST("/posts", session, h.Post.CreatePost)
		api.DELETE("/posts", session, h.Post.DeletePost)
		api.POST("/moderator/posts/delete", session, h.Post.DeletePostByModerator)
	}
	if h.Carousal != nil {
		api.GET("/carousal", h.Carousal.GetCarousal)
		api.POST("/carousal", session, h.Carousal.CreateCarousal)
		api.POST("/carousal/delete", session, h.Carousal.DeleteCarousal)
	}
	return r
}

// multipartRequest builds a multipart POST with optional text fields and one
// "image" file part carrying an explicit Content-Type.
func multipartRequest(t *testing.T, target string, fields map[string][]string, image []byte, contentType string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, vs := range fields {
		for _, v := range vs {
			require.NoError(t, w.WriteField(k, v))
		}
	}
	if image != nil {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", `form-data; name="image"; filename="photo.jpg"`)
		hdr.Set("Content-Type", contentType)
		part, err := w.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func doJSON(t *testing.T, r *gin.Engine, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
