/*
File    : pixelscript/web/handlers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package web

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/akashmaji946/pixelscript/eval"
	"github.com/akashmaji946/pixelscript/pixel"
)

// landing implements app.py's landing(): GET renders the upload form,
// POST accepts an uploaded image and redirects to its filter page.
func (s *Server) landing(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		s.handleUpload(w, r)
		return
	}
	s.render(w, r, "index.html", map[string]any{"Flashes": popFlashes(w, r)})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		setFlash(w, "Upload too large.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil || header.Filename == "" {
		setFlash(w, "No selected file.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	defer file.Close()

	// jpeg decodes and scales the same way png does, so the upload
	// allowlist isn't narrowed to PNG-only (see pixel.IsSupportedImageExt).
	if !pixel.IsSupportedImageExt(header.Filename) {
		setFlash(w, "Invalid file type.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	filename := uuid.NewString() + filepath.Ext(header.Filename)
	if err := os.MkdirAll(filepath.Join(s.imagesDir(), "source"), 0o755); err != nil {
		setFlash(w, "Could not save upload.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	dst, err := os.Create(filepath.Join(s.imagesDir(), "source", filename))
	if err != nil {
		setFlash(w, "Could not save upload.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	defer dst.Close()
	if _, err := io.Copy(dst, file); err != nil {
		setFlash(w, "Could not save upload.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/filter/"+filename, http.StatusSeeOther)
}

// filterNoArgs implements app.py's filter_noargs(): hitting /filter with
// no filename always bounces back to the landing page with a flash.
func (s *Server) filterNoArgs(w http.ResponseWriter, r *http.Request) {
	setFlash(w, "Must have image name in url")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// filterPage implements app.py's filter_page(): open the source image,
// scale its displayed size so its shorter side is 300px (up or down),
// and render the filter textarea.
func (s *Server) filterPage(w http.ResponseWriter, r *http.Request) {
	filename := r.PathValue("filename")
	grid, err := s.loadSourceGrid(filename)
	if err != nil {
		setFlash(w, fmt.Sprintf("Could not open %s", filename))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	factor := 300.0 / float64(min(grid.Width, grid.Height))
	s.render(w, r, "filter.html", map[string]any{
		"Flashes": popFlashes(w, r),
		"Path":    filename,
		"Width":   float64(grid.Width) * factor,
		"Height":  float64(grid.Height) * factor,
	})
}

// filtered implements app.py's filtered_page(): run the submitted
// program against the source image through eval.Evaluator, persist the
// mutated grid, and render it scaled to a 750px box.
func (s *Server) filtered(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		setFlash(w, "Bad form submission.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	filterText := r.FormValue("filter-text")
	filename := r.FormValue("filename")

	if filterText == "" {
		setFlash(w, "No filter provided")
		http.Redirect(w, r, "/filter/"+filename, http.StatusSeeOther)
		return
	}
	// app.py normalizes textarea line endings before parsing.
	filterText = strings.ReplaceAll(filterText, "\r", "\n")

	grid, err := s.loadSourceGrid(filename)
	if err != nil {
		setFlash(w, fmt.Sprintf("Could not open %s", filename))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	evaluator := eval.NewEvaluator(grid)
	if s.cfg.StepBudget > 0 {
		evaluator.SetStepBudget(s.cfg.StepBudget)
	}
	if _, err := evaluator.Run(filterText); err != nil {
		setFlash(w, err.Error())
		http.Redirect(w, r, "/filter/"+filename, http.StatusSeeOther)
		return
	}

	if err := s.saveFilteredGrid(grid, filename); err != nil {
		setFlash(w, "Could not save filtered image.")
		http.Redirect(w, r, "/filter/"+filename, http.StatusSeeOther)
		return
	}

	factor := 750.0 / float64(max(grid.Width, grid.Height))
	s.render(w, r, "filtered.html", map[string]any{
		"Flashes": popFlashes(w, r),
		"Path":    filename,
		"Width":   float64(grid.Width) * factor,
		"Height":  float64(grid.Height) * factor,
	})
}

func (s *Server) loadSourceGrid(filename string) (*pixel.Grid, error) {
	f, err := os.Open(filepath.Join(s.imagesDir(), "source", filename))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return pixel.Decode(f)
}

func (s *Server) saveFilteredGrid(grid *pixel.Grid, filename string) error {
	if err := os.MkdirAll(filepath.Join(s.imagesDir(), "filtered"), 0o755); err != nil {
		return err
	}
	dst, err := os.Create(filepath.Join(s.imagesDir(), "filtered", filename))
	if err != nil {
		return err
	}
	defer dst.Close()
	if strings.HasSuffix(strings.ToLower(filename), ".png") {
		return grid.EncodePNG(dst)
	}
	return grid.EncodeJPEG(dst, 90)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
