package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pin-genius/cmd/api/dto"
	"pin-genius/config"
	"pin-genius/generator"
	"pin-genius/models"
	"pin-genius/pipeline"
	"pin-genius/quota"
)

// PinService 는 핸들러가 사용하는 생성 파이프라인이다. pipeline.Session 이 구현한다.
type PinService interface {
	Submit(ctx context.Context, req models.GenerationRequest) (pipeline.Snapshot, error)
	Start(ctx context.Context, req models.GenerationRequest) (pipeline.Snapshot, error)
	Snapshot() pipeline.Snapshot
}

// AILogFinder 는 생성 시퀀스별 모델 호출 기록을 조회한다.
type AILogFinder interface {
	FindByGenerationID(ctx context.Context, generationID string) ([]models.AILog, error)
}

// statusForError 는 파이프라인 오류를 HTTP 상태 코드로 바꾼다.
func statusForError(err error) int {
	switch {
	case errors.Is(err, pipeline.ErrEmptyTopic),
		errors.Is(err, pipeline.ErrInvalidCategory),
		errors.Is(err, pipeline.ErrInvalidStyle),
		generator.IsKind(err, generator.KindInput):
		return http.StatusBadRequest
	case errors.Is(err, pipeline.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, quota.ErrQuotaExceeded):
		return http.StatusTooManyRequests
	case generator.IsKind(err, generator.KindUpstreamText):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ListVocabulariesHandler godoc
// @Summary      List categories and styles
// @Description  Fixed vocabularies accepted by the pin generator
// @Tags         pins
// @Produce      json
// @Success      200  {object}  dto.VocabulariesDTO
// @Router       /vocabularies [get]
func ListVocabulariesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.VocabulariesDTO{
			Categories:      models.Categories,
			Styles:          models.Styles,
			DefaultCategory: models.DefaultCategory(),
			DefaultStyle:    models.DefaultStyle(),
		})
	}
}

// CreatePinHandler godoc
// @Summary      Generate pin content
// @Description  Generates Pinterest content and an image for a topic. The image may be null when both image strategies fail.
// @Tags         pins
// @Accept       json
// @Produce      json
// @Param        body  body      dto.PinRequestDTO  true  "Generation request"
// @Success      200   {object}  dto.PinResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      409   {object}  dto.ErrorResponseDTO
// @Failure      429   {object}  dto.ErrorResponseDTO
// @Failure      502   {object}  dto.PinResponseDTO
// @Router       /pins [post]
func CreatePinHandler(svc PinService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.PinRequestDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid request body"})
			return
		}

		snap, err := svc.Submit(c.Request.Context(), body.ToModel())
		if err != nil {
			status := statusForError(err)
			_ = c.Error(err)
			if status >= http.StatusInternalServerError {
				// 업스트림 원인은 로그에만 남기고 응답에는 일반 문구만 담는다.
				config.Logger.Errorf("pin generation failed: %v", err)
				c.JSON(status, dto.NewPinResponseDTO(snap))
				return
			}
			c.JSON(status, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.NewPinResponseDTO(snap))
	}
}

// GetLatestPinHandler godoc
// @Summary      Get latest generation
// @Description  Current state of the single result slot
// @Tags         pins
// @Produce      json
// @Success      200  {object}  dto.PinResponseDTO
// @Router       /pins/latest [get]
func GetLatestPinHandler(svc PinService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewPinResponseDTO(svc.Snapshot()))
	}
}

// ListPinLogsHandler godoc
// @Summary      List model calls of a generation
// @Description  Model call audit records for one generation id (requires mongo)
// @Tags         pins
// @Param        id   path  string  true  "Generation ID"
// @Produce      json
// @Success      200  {array}   dto.AILogDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Failure      503  {object}  dto.ErrorResponseDTO
// @Router       /pins/{id}/logs [get]
func ListPinLogsHandler(finder AILogFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		if finder == nil {
			c.JSON(http.StatusServiceUnavailable, dto.ErrorResponseDTO{Error: "ai log storage is not configured"})
			return
		}
		logs, err := finder.FindByGenerationID(c.Request.Context(), c.Param("id"))
		if err != nil {
			config.Logger.Errorf("failed to load ai logs for %s: %v", c.Param("id"), err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed to load ai logs"})
			return
		}
		c.JSON(http.StatusOK, dto.NewAILogDTOs(logs))
	}
}
