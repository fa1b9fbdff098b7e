/*
File    : pixelscript/web/server_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package web

import (
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := Config{StaticDir: filepath.Join(dir, "static"), MaxUploadBytes: 1 << 20}
	s, err := NewServer(cfg)
	require.NoError(t, err)
	return s, cfg.StaticDir
}

func writeTestPNG(t *testing.T, dir, name string, w, h int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "images", "source"), 0o755))
	f, err := os.Create(filepath.Join(dir, "images", "source", name))
	require.NoError(t, err)
	defer f.Close()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 10, G: 20, B: 30, A: 255})
		}
	}
	require.NoError(t, png.Encode(f, img))
}

func TestLandingGET(t *testing.T) {
	s, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "pixelscript")
}

func TestFilterNoArgsRedirects(t *testing.T) {
	s, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/filter", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))
}

func TestFilterPageScalesShorterSideTo300Px(t *testing.T) {
	s, dir := newTestServer(t)
	writeTestPNG(t, dir, "pic.png", 100, 200)

	req := httptest.NewRequest(http.MethodGet, "/filter/pic.png", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	// min(100,200) = 100; factor = 3; displayed width = 300
	require.Contains(t, rec.Body.String(), "width=\"300\"")
}

func TestFilteredRunsProgramAndSavesResult(t *testing.T) {
	s, dir := newTestServer(t)
	writeTestPNG(t, dir, "pic.png", 2, 2)

	form := url.Values{}
	form.Set("filename", "pic.png")
	form.Set("filter-text", "pixels[0,0] = rgb(255, 0, 0)")

	req := httptest.NewRequest(http.MethodPost, "/filtered", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	f, err := os.Open(filepath.Join(dir, "images", "filtered", "pic.png"))
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	r, g, b, _ := img.At(0, 0).RGBA()
	require.Equal(t, uint32(255), r>>8)
	require.Equal(t, uint32(0), g>>8)
	require.Equal(t, uint32(0), b>>8)
}

func TestFilteredWithNoFilterTextRedirectsBack(t *testing.T) {
	s, dir := newTestServer(t)
	writeTestPNG(t, dir, "pic.png", 2, 2)

	form := url.Values{}
	form.Set("filename", "pic.png")
	form.Set("filter-text", "")

	req := httptest.NewRequest(http.MethodPost, "/filtered", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/filter/pic.png", rec.Header().Get("Location"))
}

func TestUploadRedirectsToFilterPage(t *testing.T) {
	s, _ := newTestServer(t)

	body := &strings.Builder{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("file", "upload.png")
	require.NoError(t, err)

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	require.NoError(t, png.Encode(part, img))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body.String()))
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.True(t, strings.HasPrefix(rec.Header().Get("Location"), "/filter/"))
}
