// Package view renders catalog pages as HTML. Every function is a pure
// projection of its arguments; user text is escaped by html/template.
package view

import (
	"html/template"
	"io"
	"strconv"
	"time"

	"github.com/pageza/recipe-catalog/internal/form"
	"github.com/pageza/recipe-catalog/internal/model"
)

var funcs = template.FuncMap{
	"minutes": func(m float64) string {
		return strconv.FormatFloat(m, 'f', -1, 64) + " min"
	},
	"date": func(v interface{}) string {
		switch t := v.(type) {
		case time.Time:
			return t.Format("2 Jan 2006 15:04")
		case *time.Time:
			if t != nil {
				return t.Format("2 Jan 2006 15:04")
			}
		}
		return ""
	},
}

var pages = map[string]*template.Template{
	"list":    parse(listTmpl),
	"detail":  parse(detailTmpl),
	"form":    parse(formTmpl),
	"confirm": parse(confirmTmpl),
	"error":   parse(errorTmpl),
}

func parse(content string) *template.Template {
	t := template.Must(template.New("layout").Funcs(funcs).Parse(layoutTmpl))
	return template.Must(t.Parse(content))
}

// Chrome is the state shared by every page.
type Chrome struct {
	Degraded bool
}

// ListPage is the search and filter screen.
type ListPage struct {
	Chrome
	Recipes         []model.Recipe
	Filter          model.Filter
	Categories      []string
	GroupByCategory bool
}

// Group is one category section of the list screen.
type Group struct {
	Name    string
	Recipes []model.Recipe
}

// DetailPage shows one recipe.
type DetailPage struct {
	Chrome
	Recipe model.Recipe
}

// FormPage is the add or edit screen.
type FormPage struct {
	Chrome
	Editing         bool
	ID              string
	Input           form.Input
	Field           string
	Message         string
	DefaultCategory string
}

// ConfirmDeletePage asks before removing a recipe.
type ConfirmDeletePage struct {
	Chrome
	Recipe model.Recipe
}

// ErrorPage reports a failed request.
type ErrorPage struct {
	Chrome
	Title   string
	Message string
}

// RenderList writes the list screen.
func RenderList(w io.Writer, p ListPage) error {
	var groups []Group
	if p.GroupByCategory {
		groups = GroupByCategory(p.Recipes)
	}
	return pages["list"].ExecuteTemplate(w, "layout", struct {
		ListPage
		Title        string
		Groups       []Group
		Difficulties []model.Difficulty
	}{p, "Recipes", groups, model.Difficulties})
}

// RenderDetail writes one recipe.
func RenderDetail(w io.Writer, p DetailPage) error {
	return pages["detail"].ExecuteTemplate(w, "layout", struct {
		DetailPage
		Title string
	}{p, p.Recipe.Title})
}

// RenderForm writes the add or edit form.
func RenderForm(w io.Writer, p FormPage) error {
	title, action, cancel := "Add recipe", "/recipes", "/"
	if p.Editing {
		title, action, cancel = "Edit recipe", "/recipes/"+p.ID, "/recipes/"+p.ID
	}
	return pages["form"].ExecuteTemplate(w, "layout", struct {
		FormPage
		Title        string
		Action       string
		Cancel       string
		Difficulties []model.Difficulty
	}{p, title, action, cancel, model.Difficulties})
}

// RenderConfirmDelete writes the delete confirmation.
func RenderConfirmDelete(w io.Writer, p ConfirmDeletePage) error {
	return pages["confirm"].ExecuteTemplate(w, "layout", struct {
		ConfirmDeletePage
		Title string
	}{p, "Delete " + p.Recipe.Title})
}

// RenderError writes an error page.
func RenderError(w io.Writer, p ErrorPage) error {
	return pages["error"].ExecuteTemplate(w, "layout", p)
}

// GroupByCategory splits recipes into categories ordered by first
// appearance, keeping the list order inside each group.
func GroupByCategory(recipes []model.Recipe) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, r := range recipes {
		i, ok := index[r.Category]
		if !ok {
			i = len(groups)
			index[r.Category] = i
			groups = append(groups, Group{Name: r.Category})
		}
		groups[i].Recipes = append(groups[i].Recipes, r)
	}
	return groups
}
