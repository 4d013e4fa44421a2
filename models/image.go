package models

import (
	"encoding/base64"
	"fmt"
)

const MIMETypeJPEG = "image/jpeg"

// GeneratedImage 는 응답에 인라인으로 포함된 이미지 바이트다.
// 이미지가 없으면 nil 포인터로 표현한다.
type GeneratedImage struct {
	MIMEType string `json:"mime_type"`
	Data     []byte `json:"-"`
	Strategy string `json:"strategy"`
	Model    string `json:"model"`
}

// Base64 는 이미지 바이트를 표준 base64 문자열로 인코딩한다.
func (i *GeneratedImage) Base64() string {
	if i == nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(i.Data)
}

// DataURI 는 <img src> 에 바로 넣을 수 있는 data URI 를 만든다.
func (i *GeneratedImage) DataURI() string {
	if i == nil || len(i.Data) == 0 {
		return ""
	}
	return fmt.Sprintf("data:%s;base64,%s", i.MIMEType, i.Base64())
}
