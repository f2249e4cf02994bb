package handlers

import (
	"embed"
	"html/template"
	"net/url"

	"github.com/legalneuro/backend/internal/models"
)

// Page template names
const (
	pageIndex        = "index.html"
	pageEncyclopedia = "encyclopedia.html"
	pageTesting      = "testing.html"
	pageTest         = "test.html"
	pageResults      = "results.html"
	pageAddWord      = "add_word.html"
	pageEditWords    = "edit_words.html"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"pathEscape": url.PathEscape,
}

// pages holds every page parsed together with the shared layout
var pages = parsePages(pageIndex, pageEncyclopedia, pageTesting, pageTest, pageResults, pageAddWord, pageEditWords)

func parsePages(names ...string) map[string]*template.Template {
	parsed := make(map[string]*template.Template, len(names))
	for _, name := range names {
		parsed[name] = template.Must(
			template.New(name).Funcs(templateFuncs).ParseFS(templateFS, "templates/base.html", "templates/"+name),
		)
	}
	return parsed
}

// encyclopediaPage is the data of the encyclopedia and edit pages
type encyclopediaPage struct {
	Categories []models.Category
}

// testingPage is the data of the category picker
type testingPage struct {
	Categories []string
}

// testPage is the data of a running quiz, Terms are the questions in quiz order
type testPage struct {
	Category string
	Total    int
	Current  int
	Terms    []string
}

// addWordPage is the data of the add word form
type addWordPage struct {
	Categories []string
	Error      string
	Success    string
}
