package generator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"pin-genius/config"
	"pin-genius/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateContent 는 모델 응답이 스키마 계약(필수 필드, tags/hashtags 정확히 10개)을 지키는지 검사한다.
func ValidateContent(content *models.PinterestContent) error {
	if content == nil {
		return ErrEmptyResponse
	}
	if err := validate.Struct(content); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s(%s=%s)", fe.Namespace(), fe.Tag(), fe.Param()))
			}
			return fmt.Errorf("%w: %s", ErrSchemaViolation, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	return nil
}

// normalizePlaceholders 는 api_json 의 보드 ID, 다운로드 URL 을 플레이스홀더 토큰으로 되돌린다.
// 이 값들은 외부 시스템이 치환하므로 모델이 임의로 채운 값은 버린다.
func normalizePlaceholders(content *models.PinterestContent) {
	api := &content.APIJSON
	if api.BoardID != models.PlaceholderBoardID ||
		api.MediaSource.Images.PNGDownloadURL != models.PlaceholderPNGURL ||
		api.MediaSource.Images.JPGDownloadURL != models.PlaceholderJPGURL {
		config.Logger.Warnf("api_json placeholders were altered by the model, restoring tokens (board_id=%q)", api.BoardID)
	}
	api.BoardID = models.PlaceholderBoardID
	api.MediaSource.Images.PNGDownloadURL = models.PlaceholderPNGURL
	api.MediaSource.Images.JPGDownloadURL = models.PlaceholderJPGURL
	if api.MediaSource.Type == "" {
		api.MediaSource.Type = "image"
	}
}
