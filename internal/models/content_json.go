package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var ErrUnknownType = errors.New("알 수 없는 컨텐츠 타입")

// EncodeRecord는 컨텐츠를 "type" 필드가 포함된 평평한 JSON 객체로 인코딩합니다.
func EncodeRecord(r Record) ([]byte, error) {
	r, err := Normalize(r)
	if err != nil {
		return nil, err
	}
	switch v := r.(type) {
	case Article:
		return json.Marshal(struct {
			Type ContentType `json:"type"`
			Article
		}{v.Type(), v})
	case Image:
		return json.Marshal(struct {
			Type ContentType `json:"type"`
			Image
		}{v.Type(), v})
	case Product:
		return json.Marshal(struct {
			Type ContentType `json:"type"`
			Product
		}{v.Type(), v})
	case News:
		return json.Marshal(struct {
			Type ContentType `json:"type"`
			News
		}{v.Type(), v})
	case Social:
		return json.Marshal(struct {
			Type ContentType `json:"type"`
			Social
		}{v.Type(), v})
	case Review:
		return json.Marshal(struct {
			Type ContentType `json:"type"`
			Review
		}{v.Type(), v})
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownType, r)
	}
}

// DecodeRecord는 "type" 필드를 먼저 읽은 뒤 해당하는 타입으로 디코딩합니다.
func DecodeRecord(data []byte) (Record, error) {
	tag := gjson.GetBytes(data, "type")
	if !tag.Exists() {
		return nil, fmt.Errorf("%w: type 필드가 없습니다", ErrUnknownType)
	}

	switch ContentType(tag.String()) {
	case TypeArticle:
		return decodeAs[Article](data)
	case TypeImage:
		return decodeAs[Image](data)
	case TypeProduct:
		return decodeAs[Product](data)
	case TypeNews:
		return decodeAs[News](data)
	case TypeSocial:
		return decodeAs[Social](data)
	case TypeReview:
		return decodeAs[Review](data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, tag.String())
	}
}

func decodeAs[T Record](data []byte) (Record, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%s 디코딩 실패: %w", v.Type(), err)
	}
	return v, nil
}

// Records는 JSON으로 주고받을 수 있는 컨텐츠 목록입니다.
type Records []Record

func (rs Records) MarshalJSON() ([]byte, error) {
	raw := make([]json.RawMessage, 0, len(rs))
	for _, r := range rs {
		b, err := EncodeRecord(r)
		if err != nil {
			return nil, err
		}
		raw = append(raw, b)
	}
	return json.Marshal(raw)
}

func (rs *Records) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(Records, 0, len(raw))
	for i, b := range raw {
		r, err := DecodeRecord(b)
		if err != nil {
			return fmt.Errorf("records[%d]: %w", i, err)
		}
		out = append(out, r)
	}
	*rs = out
	return nil
}
