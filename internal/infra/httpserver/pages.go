package httpserver

import (
	"embed"
	"html/template"
	"log"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

func (r *Router) handleLanding(w http.ResponseWriter, req *http.Request) {
	if req.URL.Path != "/" {
		http.NotFound(w, req)
		return
	}
	renderPage(w, "landing.html")
}

func (r *Router) handleQuestionnaire(w http.ResponseWriter, req *http.Request) {
	renderPage(w, "questionnaire.html")
}

func renderPage(w http.ResponseWriter, name string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, nil); err != nil {
		log.Printf("httpserver: render %s: %v", name, err)
	}
}
