package handlers

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"pin-genius/cmd/api/dto"
	"pin-genius/config"
	"pin-genius/models"
	"pin-genius/pipeline"
)

const (
	imageDownloadName = "pinterest-pin.png"
	loadingRefreshSec = 2
)

// pageView 는 index.html 템플릿에 넘기는 값이다.
type pageView struct {
	Topic      string
	Category   string
	Style      string
	Categories []string
	Styles     []string

	Snapshot    pipeline.Snapshot
	Loading     bool
	CanSubmit   bool
	RefreshSec  int
	FormError   string
	ImageStatus string

	ImageURI          template.URL
	ImageDownloadName string
	ImagePlaceholder  string
	ExportHTML        template.HTML
	APIJSON           string
}

func newPageView(snap pipeline.Snapshot, form dto.PinRequestDTO, formErr string) pageView {
	v := pageView{
		Topic:             form.Topic,
		Category:          form.Category,
		Style:             form.Style,
		Categories:        models.Categories,
		Styles:            models.Styles,
		Snapshot:          snap,
		Loading:           !snap.CanSubmit(),
		CanSubmit:         snap.CanSubmit(),
		FormError:         formErr,
		ImageStatus:       dto.ImageStatus(snap),
		ImageDownloadName: imageDownloadName,
		ImagePlaceholder:  dto.ImageFailedPlaceholder,
	}
	if v.Category == "" {
		v.Category = models.DefaultCategory()
	}
	if v.Style == "" {
		v.Style = models.DefaultStyle()
	}
	if v.Loading {
		v.RefreshSec = loadingRefreshSec
	}
	if snap.Image != nil {
		// data URI 는 html/template 이 기본적으로 막기 때문에 명시적으로 허용한다.
		v.ImageURI = template.URL(snap.Image.DataURI())
	}
	if snap.Content != nil {
		v.ExportHTML = renderMarkdown(snap.Content.ExportInstructions)
		if b, err := json.MarshalIndent(snap.Content.APIJSON, "", "  "); err == nil {
			v.APIJSON = string(b)
		}
	}
	return v
}

// formFromSnapshot 은 마지막 요청 값을 폼에 다시 채운다.
func formFromSnapshot(snap pipeline.Snapshot) dto.PinRequestDTO {
	return dto.PinRequestDTO{
		Topic:    snap.Request.Topic,
		Category: snap.Request.Category,
		Style:    snap.Request.Style,
	}
}

// IndexHandler 는 입력 폼과 현재 결과를 보여주는 페이지다.
func IndexHandler(svc PinService) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := svc.Snapshot()
		c.HTML(http.StatusOK, indexTemplate, newPageView(snap, formFromSnapshot(snap), ""))
	}
}

// GenerateFormHandler 는 폼 제출을 받아 생성 시퀀스를 백그라운드로 시작하고 / 로 되돌린다.
// 입력 오류나 진행 중인 시퀀스가 있으면 폼을 오류와 함께 다시 그린다.
func GenerateFormHandler(svc PinService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form dto.PinRequestDTO
		if err := c.ShouldBind(&form); err != nil {
			c.HTML(http.StatusBadRequest, indexTemplate, newPageView(svc.Snapshot(), form, "Invalid form submission."))
			return
		}

		if _, err := svc.Start(c.Request.Context(), form.ToModel()); err != nil {
			_ = c.Error(err)
			config.Logger.Warnf("form submission rejected: %v", err)
			c.HTML(statusForError(err), indexTemplate, newPageView(svc.Snapshot(), form, formErrorMessage(err)))
			return
		}
		c.Redirect(http.StatusSeeOther, "/")
	}
}

func formErrorMessage(err error) string {
	switch statusForError(err) {
	case http.StatusBadRequest:
		return "Please enter a topic and choose a valid category and style."
	case http.StatusConflict:
		return "A pin is already being generated. Please wait."
	case http.StatusTooManyRequests:
		return "Generation limit reached. Please try again later."
	default:
		return pipeline.GenericFailureMessage
	}
}
