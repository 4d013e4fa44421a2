package handlers

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

const indexTemplate = "index.html"

// LoadTemplates 는 페이지 템플릿을 파싱한다. 라우터에서 SetHTMLTemplate 으로 등록한다.
func LoadTemplates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}
