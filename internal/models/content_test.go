package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ts = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		record  Record
		wantErr error
	}{
		{"article ok", Article{Base: Base{ID: "a1", CreatedAt: ts}}, nil},
		{"missing id", News{}, ErrMissingID},
		{"product rating too high", Product{Base: Base{ID: "p1"}, Rating: 5.1}, ErrRatingRange},
		{"product rating bounds", Product{Base: Base{ID: "p2"}, Rating: 5}, nil},
		{"review rating negative", Review{Base: Base{ID: "r1"}, Rating: -0.5}, ErrRatingRange},
		{"social negative likes", Social{Base: Base{ID: "s1"}, LikeCount: -1}, ErrNegativeCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.record)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateSetRejectsDuplicateIDs(t *testing.T) {
	err := ValidateSet([]Record{
		Article{Base: Base{ID: "x"}},
		Image{Base: Base{ID: "x"}},
	})
	assert.ErrorIs(t, err, ErrDuplicateID)

	assert.NoError(t, ValidateSet(nil))
}

func TestBody(t *testing.T) {
	assert.Equal(t, []string{"c", "s"}, Body(Article{Content: "c", Summary: "s"}))
	assert.Equal(t, []string{"d"}, Body(Product{Description: "d"}))
	assert.Equal(t, []string{"hi"}, Body(Social{Content: "hi"}))
	assert.Nil(t, Body(Image{}))
}

func TestParseContentType(t *testing.T) {
	ct, err := ParseContentType("review")
	require.NoError(t, err)
	assert.Equal(t, TypeReview, ct)

	_, err = ParseContentType("video")
	assert.Error(t, err)
}

func TestRecordsJSON(t *testing.T) {
	in := Records{
		Article{Base: Base{ID: "a1", Title: "Go 1.24", Source: "blog", CreatedAt: ts}, Content: "body", Summary: "sum"},
		Product{Base: Base{ID: "p1", Title: "Keyboard", CreatedAt: ts}, Price: "$99", Rating: 4.5, ReviewCount: 12, Specifications: []string{"wireless"}},
		Social{Base: Base{ID: "s1", Title: "post", CreatedAt: ts}, Handle: "@go", LikeCount: 3},
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"article"`)
	assert.Contains(t, string(data), `"likes":3`)

	var out Records
	require.NoError(t, json.Unmarshal(data, &out))
	require.Len(t, out, 3)
	assert.Equal(t, in[0], out[0])
	assert.Equal(t, in[1], out[1])
	assert.Equal(t, in[2], out[2])
}

func TestDecodeRecordErrors(t *testing.T) {
	_, err := DecodeRecord([]byte(`{"id":"x"}`))
	assert.ErrorIs(t, err, ErrUnknownType)

	_, err = DecodeRecord([]byte(`{"id":"x","type":"video"}`))
	assert.ErrorIs(t, err, ErrUnknownType)

	var rs Records
	err = json.Unmarshal([]byte(`[{"type":"news","id":"n1"},{"type":"podcast"}]`), &rs)
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestNilRecordsMarshalAsEmptyArray(t *testing.T) {
	data, err := json.Marshal(Records(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestPointerRecords(t *testing.T) {
	a := &Article{Base: Base{ID: "a1"}, Content: "body", Summary: "sum"}
	p := &Product{Base: Base{ID: "p1"}, ImageURL: "https://img.example.com/p.png"}

	v, err := Normalize(a)
	require.NoError(t, err)
	assert.Equal(t, *a, v)

	assert.Equal(t, []string{"body", "sum"}, Body(a))
	assert.Equal(t, "https://img.example.com/p.png", PreviewImage(p))

	b, err := EncodeRecord(p)
	require.NoError(t, err)
	assert.JSONEq(t, `"product"`, typeField(t, b))

	assert.ErrorIs(t, Validate(a), ErrPointerRecord)
	assert.ErrorIs(t, ValidateSet([]Record{Article{Base: Base{ID: "a0"}}, p}), ErrPointerRecord)
}

func TestNilRecords(t *testing.T) {
	var a *Article
	for _, r := range []Record{nil, a} {
		_, err := Normalize(r)
		assert.ErrorIs(t, err, ErrNilRecord)
		assert.ErrorIs(t, Validate(r), ErrNilRecord)
		assert.Nil(t, Body(r))
		assert.Empty(t, PreviewImage(r))

		_, err = EncodeRecord(r)
		assert.ErrorIs(t, err, ErrNilRecord)
	}
}

func typeField(t *testing.T, b []byte) string {
	t.Helper()
	var obj map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &obj))
	return string(obj["type"])
}
