// Package codec translates between the canonical wire JSON and msgbox.Message.
//
// There is exactly one accepted create payload, {"title": string, "body": string}. Anything
// else, including unknown fields, is rejected with a *msgbox.ValidationError.
package codec

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/samber/lo"

	"github.com/x4b1/msgbox"
)

// TimeLayout is the format of createdAt on the wire.
const TimeLayout = time.RFC3339Nano

//nolint:gochecknoglobals // frozen configs and validator are safe for concurrent use
var (
	decoder = sonic.Config{
		CopyString:            true,
		ValidateString:        true,
		DisallowUnknownFields: true,
		CaseSensitive:         true,
	}.Froze()
	encoder  = sonic.ConfigStd
	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// CreateRequest is the body of POST /messages.
type CreateRequest struct {
	Title string  `json:"title" validate:"notblank"`
	Body  *string `json:"body"  validate:"required"`
}

// MessageJSON is the full wire representation of a message.
type MessageJSON struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt string `json:"createdAt"`
}

// SummaryJSON is the listing representation of a message, without body.
type SummaryJSON struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// PageJSON is the envelope returned by the list endpoint.
type PageJSON struct {
	Items      []SummaryJSON `json:"items"`
	NextCursor string        `json:"nextCursor,omitempty"`
}

// ErrorJSON is the body of every non successful response.
type ErrorJSON struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// DecodeCreateRequest validates raw and returns the trimmed title and the body.
func DecodeCreateRequest(raw []byte) (string, string, error) {
	if len(raw) == 0 {
		return "", "", msgbox.NewValidationError("", "empty payload")
	}
	if !sonic.Valid(raw) {
		return "", "", msgbox.NewValidationError("", "payload is not valid JSON")
	}

	var req CreateRequest
	if err := decoder.Unmarshal(raw, &req); err != nil {
		return "", "", msgbox.NewValidationError("", "payload does not match schema: "+err.Error())
	}

	if err := validate.Struct(req); err != nil {
		return "", "", validationError(err)
	}

	return strings.TrimSpace(req.Title), *req.Body, nil
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return msgbox.NewValidationError("", err.Error())
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return msgbox.NewValidationError(fe.Field(), "is required")
	case "notblank":
		return msgbox.NewValidationError(fe.Field(), "must not be blank")
	default:
		return msgbox.NewValidationError(fe.Field(), "failed "+fe.Tag()+" check")
	}
}

// NewMessageJSON maps a message to its full wire representation.
func NewMessageJSON(m msgbox.Message) MessageJSON {
	return MessageJSON{
		ID:        m.ID,
		Title:     m.Title,
		Body:      m.Body,
		CreatedAt: m.CreatedAt.UTC().Format(TimeLayout),
	}
}

// NewSummaryJSON maps a message to its listing representation.
func NewSummaryJSON(m msgbox.Message) SummaryJSON {
	return SummaryJSON{ID: m.ID, Title: m.Title}
}

// NewPageJSON maps a page to the list envelope. Items is never null.
func NewPageJSON(p msgbox.Page) PageJSON {
	return PageJSON{
		Items: lo.Map(p.Items, func(m msgbox.Message, _ int) SummaryJSON {
			return NewSummaryJSON(m)
		}),
		NextCursor: string(p.Next),
	}
}

// EncodeMessage returns {id, title, body, createdAt}.
func EncodeMessage(m msgbox.Message) ([]byte, error) {
	return encoder.Marshal(NewMessageJSON(m))
}

// EncodeSummary returns {id, title}.
func EncodeSummary(m msgbox.Message) ([]byte, error) {
	return encoder.Marshal(NewSummaryJSON(m))
}

// EncodePage returns {items: [...], nextCursor?}.
func EncodePage(p msgbox.Page) ([]byte, error) {
	return encoder.Marshal(NewPageJSON(p))
}

// EncodeError returns {error, detail?}.
func EncodeError(code, detail string) ([]byte, error) {
	return encoder.Marshal(ErrorJSON{Error: code, Detail: detail})
}

// Marshal encodes v with the codec JSON configuration.
func Marshal(v any) ([]byte, error) {
	return encoder.Marshal(v)
}

// Unmarshal decodes data into v with the codec JSON configuration, rejecting unknown fields.
func Unmarshal(data []byte, v any) error {
	return decoder.Unmarshal(data, v)
}

// ParseTime parses a createdAt value as written by NewMessageJSON.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return time.Time{}, err
	}

	return t.UTC(), nil
}
