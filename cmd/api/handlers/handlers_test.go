package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pin-genius/cmd/api/dto"
	"pin-genius/generator"
	"pin-genius/models"
	"pin-genius/pipeline"
	"pin-genius/quota"
)

type stubPins struct {
	snap      pipeline.Snapshot
	err       error
	submitted []models.GenerationRequest
	started   []models.GenerationRequest
}

func (s *stubPins) Submit(_ context.Context, req models.GenerationRequest) (pipeline.Snapshot, error) {
	s.submitted = append(s.submitted, req)
	return s.snap, s.err
}

func (s *stubPins) Start(_ context.Context, req models.GenerationRequest) (pipeline.Snapshot, error) {
	s.started = append(s.started, req)
	return s.snap, s.err
}

func (s *stubPins) Snapshot() pipeline.Snapshot { return s.snap }

type stubFinder struct {
	logs []models.AILog
	err  error
	ids  []string
}

func (f *stubFinder) FindByGenerationID(_ context.Context, id string) ([]models.AILog, error) {
	f.ids = append(f.ids, id)
	return f.logs, f.err
}

func newTestEngine(register func(r *gin.Engine)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(LoadTemplates())
	register(r)
	return r
}

func serve(r *gin.Engine, method, path, body, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleContent() *models.PinterestContent {
	tags := make([]string, 10)
	hashtags := make([]string, 10)
	for i := range tags {
		tags[i] = fmt.Sprintf("tag%d", i+1)
		hashtags[i] = fmt.Sprintf("#hash%d", i+1)
	}
	return &models.PinterestContent{
		Title:       "Modern Living Room Ideas",
		Description: "Clean lines and warm textures.",
		AltText:     "A bright living room.",
		Tags:        tags,
		Hashtags:    hashtags,
		Blueprint: models.Blueprint{
			LayoutStructure: "Header, hero image, three tips",
			FontsTypography: "Bold sans serif",
			ColorTheme:      "Warm neutrals",
			VisualStyle:     "Modern & Clean",
		},
		ImagePrompt:        "Vertical infographic of a modern living room",
		ExportInstructions: "Export this design in:\n1. PNG format\n2. JPG format",
		APIJSON: models.APIJSON{
			Title:   "Modern Living Room Ideas",
			BoardID: models.PlaceholderBoardID,
		},
	}
}

func completeSnapshot(img *models.GeneratedImage) pipeline.Snapshot {
	return pipeline.Snapshot{
		GenerationID: "gen-1",
		State:        pipeline.StateComplete,
		Request:      models.GenerationRequest{Topic: "Modern Living Room Ideas", Category: "Home Decor", Style: "Modern & Clean"},
		Content:      sampleContent(),
		Image:        img,
		StartedAt:    time.Now().Add(-time.Second),
		FinishedAt:   time.Now(),
	}
}

func TestStatusForError(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{name: "empty topic", err: pipeline.ErrEmptyTopic, want: http.StatusBadRequest},
		{name: "invalid category", err: fmt.Errorf("%w: %q", pipeline.ErrInvalidCategory, "Cars"), want: http.StatusBadRequest},
		{name: "invalid style", err: pipeline.ErrInvalidStyle, want: http.StatusBadRequest},
		{name: "generator input", err: &generator.GenerationError{Kind: generator.KindInput, Op: "generate", Err: errors.New("x")}, want: http.StatusBadRequest},
		{name: "busy", err: pipeline.ErrBusy, want: http.StatusConflict},
		{name: "quota", err: quota.ErrQuotaExceeded, want: http.StatusTooManyRequests},
		{name: "upstream text", err: &generator.GenerationError{Kind: generator.KindUpstreamText, Op: "generate", Err: generator.ErrEmptyResponse}, want: http.StatusBadGateway},
		{name: "unexpected", err: &generator.GenerationError{Kind: generator.KindUnexpected, Op: "sequence", Err: errors.New("panic")}, want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, statusForError(testCase.err))
		})
	}
}

func TestListVocabulariesHandler(t *testing.T) {
	r := newTestEngine(func(r *gin.Engine) { r.GET("/vocabularies", ListVocabulariesHandler()) })

	w := serve(r, http.MethodGet, "/vocabularies", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body dto.VocabulariesDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Categories, 16)
	assert.Len(t, body.Styles, 10)
	assert.Equal(t, "Home Decor", body.DefaultCategory)
	assert.Equal(t, "Modern & Clean", body.DefaultStyle)
}

func TestCreatePinHandlerSuccess(t *testing.T) {
	pins := &stubPins{snap: completeSnapshot(&models.GeneratedImage{MIMEType: "image/png", Data: []byte("png"), Strategy: generator.StrategyPrimary})}
	r := newTestEngine(func(r *gin.Engine) { r.POST("/pins", CreatePinHandler(pins)) })

	w := serve(r, http.MethodPost, "/pins", `{"topic":"Modern Living Room Ideas","category":"Home Decor","style":"Modern & Clean"}`, "application/json")
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, pins.submitted, 1)
	assert.Equal(t, "Modern Living Room Ideas", pins.submitted[0].Topic)

	var body dto.PinResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "complete", body.State)
	assert.Equal(t, dto.ImageStatusReady, body.ImageStatus)
	require.NotNil(t, body.Image)
	assert.Equal(t, "data:image/png;base64,cG5n", body.Image.DataURI)
	require.NotNil(t, body.Content)
	assert.Len(t, body.Content.Tags, 10)
	assert.True(t, body.CanSubmit)
}

func TestCreatePinHandlerImageFailed(t *testing.T) {
	pins := &stubPins{snap: completeSnapshot(nil)}
	r := newTestEngine(func(r *gin.Engine) { r.POST("/pins", CreatePinHandler(pins)) })

	w := serve(r, http.MethodPost, "/pins", `{"topic":"x"}`, "application/json")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Nil(t, body["image"])
	assert.Equal(t, dto.ImageStatusFailed, body["image_status"])
	assert.NotNil(t, body["content"])
}

func TestCreatePinHandlerErrors(t *testing.T) {
	failed := pipeline.Snapshot{State: pipeline.StateFailed, Error: pipeline.GenericFailureMessage}

	testCases := []struct {
		name       string
		body       string
		snap       pipeline.Snapshot
		err        error
		wantStatus int
		wantError  string
	}{
		{name: "invalid json", body: `{"topic":`, wantStatus: http.StatusBadRequest, wantError: "invalid request body"},
		{name: "empty topic", body: `{"topic":"  "}`, err: pipeline.ErrEmptyTopic, wantStatus: http.StatusBadRequest, wantError: pipeline.ErrEmptyTopic.Error()},
		{name: "busy", body: `{"topic":"x"}`, err: pipeline.ErrBusy, wantStatus: http.StatusConflict, wantError: pipeline.ErrBusy.Error()},
		{name: "quota", body: `{"topic":"x"}`, err: quota.ErrQuotaExceeded, wantStatus: http.StatusTooManyRequests, wantError: quota.ErrQuotaExceeded.Error()},
		{
			name:       "upstream text failure",
			body:       `{"topic":"x"}`,
			snap:       failed,
			err:        &generator.GenerationError{Kind: generator.KindUpstreamText, Op: "generate", Err: errors.New("api key invalid")},
			wantStatus: http.StatusBadGateway,
			wantError:  pipeline.GenericFailureMessage,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			pins := &stubPins{snap: testCase.snap, err: testCase.err}
			r := newTestEngine(func(r *gin.Engine) { r.POST("/pins", CreatePinHandler(pins)) })

			w := serve(r, http.MethodPost, "/pins", testCase.body, "application/json")
			assert.Equal(t, testCase.wantStatus, w.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, testCase.wantError, body["error"])
			assert.NotContains(t, w.Body.String(), "api key invalid")
		})
	}
}

func TestGetLatestPinHandler(t *testing.T) {
	pins := &stubPins{snap: pipeline.Snapshot{State: pipeline.StateGeneratingImage, LoadingImage: true, Content: sampleContent()}}
	r := newTestEngine(func(r *gin.Engine) { r.GET("/pins/latest", GetLatestPinHandler(pins)) })

	w := serve(r, http.MethodGet, "/pins/latest", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body dto.PinResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "generating_image", body.State)
	assert.Equal(t, dto.ImageStatusPending, body.ImageStatus)
	assert.False(t, body.CanSubmit)
	assert.Nil(t, body.StartedAt)
}

func TestListPinLogsHandler(t *testing.T) {
	errMsg := "deadline exceeded"
	testCases := []struct {
		name       string
		finder     AILogFinder
		wantStatus int
		wantLen    int
	}{
		{name: "storage not configured", finder: nil, wantStatus: http.StatusServiceUnavailable},
		{name: "lookup failure", finder: &stubFinder{err: errors.New("mongo down")}, wantStatus: http.StatusInternalServerError},
		{
			name: "logs found",
			finder: &stubFinder{logs: []models.AILog{
				{Stage: models.AILogStageText, ModelName: "gemini-2.5-flash", Success: true, TotalTokens: 46},
				{Stage: models.AILogStageImagePrimary, ModelName: "gemini-2.5-flash-image", ErrorMessage: &errMsg},
			}},
			wantStatus: http.StatusOK,
			wantLen:    2,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			r := newTestEngine(func(r *gin.Engine) { r.GET("/pins/:id/logs", ListPinLogsHandler(testCase.finder)) })

			w := serve(r, http.MethodGet, "/pins/gen-1/logs", "", "")
			require.Equal(t, testCase.wantStatus, w.Code)
			if testCase.wantStatus != http.StatusOK {
				return
			}

			var body []dto.AILogDTO
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.Len(t, body, testCase.wantLen)
			assert.Equal(t, int64(46), body[0].TotalTokens)
			assert.Equal(t, errMsg, body[1].ErrorMessage)
			assert.Equal(t, []string{"gen-1"}, testCase.finder.(*stubFinder).ids)
		})
	}
}
