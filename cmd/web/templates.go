package main

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/parkdui/LG-Thingo/internal/contexthelpers"
	"github.com/parkdui/LG-Thingo/internal/errors"
	"github.com/parkdui/LG-Thingo/ui"
	"log/slog"
)

type BaseTemplateData struct {
	CurrentPath string
}

func newBaseTemplateData(r *http.Request) BaseTemplateData {
	return BaseTemplateData{
		CurrentPath: contexthelpers.CurrentPath(r.Context()),
	}
}

// pageTemplate returns a template for the given page name.
//
// pageName corresponds to a directory inside ui/templates/pages. It has to define
// templates named "title" and "main".
func (app *application) pageTemplate(pageName string) (*template.Template, error) {
	// The FuncMap has to exist before parsing. The render function overrides
	// these with the per-request values.
	t, err := template.New(pageName).Funcs(template.FuncMap{
		"nonce": func() template.HTMLAttr {
			panic("not implemented")
		},
		"csrf": func() template.HTML {
			panic("not implemented")
		},
	}).ParseFS(ui.Files, "templates/base.gohtml", fmt.Sprintf("templates/pages/%s/*.gohtml", pageName))
	if err != nil {
		return nil, errors.Wrap(err, "parse page template", slog.String("page", pageName))
	}
	return t, nil
}

// render writes the full page wrapped in the base layout.
func (app *application) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	app.renderTemplate(w, r, status, page, "base", data)
}

// renderTemplate writes one named template of a page, which is how the
// htmx fragment swaps render only the part of the page that changed.
func (app *application) renderTemplate(w http.ResponseWriter, r *http.Request, status int, page string, name string, data any) {
	var (
		err error
		t   *template.Template
	)

	if t, err = app.pageTemplate(page); err != nil {
		app.serverError(w, r, err)
		return
	}

	buf := new(bytes.Buffer)
	ctx := r.Context()
	nonce := fmt.Sprintf("nonce=%q", contexthelpers.CSPNonce(ctx))
	csrf := fmt.Sprintf("<input type=\"hidden\" name=\"csrf_token\" value=%q/>", contexthelpers.CSRFToken(ctx))
	t.Funcs(template.FuncMap{
		"nonce": func() template.HTMLAttr {
			return template.HTMLAttr(nonce) //nolint:gosec // we trust the nonce since it's not provided by the user.
		},
		"csrf": func() template.HTML {
			return template.HTML(csrf) //nolint:gosec // we trust the csrf since it's not provided by the user.
		},
	})
	if err = t.ExecuteTemplate(buf, name, data); err != nil {
		app.serverError(w, r, errors.Wrap(err, "execute template",
			slog.String("page", page), slog.String("template", name)))
		return
	}

	w.WriteHeader(status)

	_, _ = buf.WriteTo(w)
}
