package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{
	"login.html",
	"papers.html",
	"paper_detail.html",
	"review_form.html",
	"assigned.html",
	"dashboard.html",
	"new_paper.html",
	"forbidden.html",
}

var pages map[string]*template.Template

func init() {
	pages = make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		pages[name] = template.Must(template.ParseFS(templateFS,
			"templates/layout.html", "templates/"+name))
	}
}

// render executes a page template against its view-model and returns
// the markup. The boundary is data in, markup out; no live document or
// web framework is involved.
func render(name string, vm interface{}) ([]byte, error) {
	t, ok := pages[name]
	if !ok {
		return nil, fmt.Errorf("unknown page template %q", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", vm); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func RenderLogin(vm LoginVM) ([]byte, error)             { return render("login.html", vm) }
func RenderPaperList(vm PaperListVM) ([]byte, error)     { return render("papers.html", vm) }
func RenderPaperDetail(vm PaperDetailVM) ([]byte, error) { return render("paper_detail.html", vm) }
func RenderReviewForm(vm ReviewFormVM) ([]byte, error)   { return render("review_form.html", vm) }
func RenderAssigned(vm AssignedVM) ([]byte, error)       { return render("assigned.html", vm) }
func RenderDashboard(vm DashboardVM) ([]byte, error)     { return render("dashboard.html", vm) }
func RenderNewPaper(vm NewPaperVM) ([]byte, error)       { return render("new_paper.html", vm) }
func RenderForbidden(vm ForbiddenVM) ([]byte, error)     { return render("forbidden.html", vm) }
