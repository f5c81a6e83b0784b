package jsonurl

import "github.com/cdleonard/jsonurl-go/internal/model"

// ParseError reports a decode-side failure with a byte offset into the
// input text.
type ParseError = model.ParseError

// EncodeError reports that a Value tree could not be written.
type EncodeError = model.EncodeError

// OptionError reports an invalid combination of Options, raised by
// Decode/Encode before any parsing or writing begins.
type OptionError = model.OptionError

// ErrorCode identifies a specific failure category; see ParseError.Code,
// EncodeError.Code and OptionError.Code.
type ErrorCode = model.ErrorCode

const (
	ErrInvalidHexDigit          = model.ErrInvalidHexDigit
	ErrUnterminatedPercent      = model.ErrUnterminatedPercent
	ErrInvalidUTF8              = model.ErrInvalidUTF8
	ErrUnexpectedChar           = model.ErrUnexpectedChar
	ErrUnterminatedQuotedString = model.ErrUnterminatedQuotedString
	ErrInvalidEscape            = model.ErrInvalidEscape
	ErrTrailingBang             = model.ErrTrailingBang
	ErrUnterminatedComposite    = model.ErrUnterminatedComposite
	ErrMissingKey               = model.ErrMissingKey
	ErrMissingValue             = model.ErrMissingValue
	ErrMissingColon             = model.ErrMissingColon
	ErrEmptyValue               = model.ErrEmptyValue
	ErrTrailingInput            = model.ErrTrailingInput
	ErrNestingTooDeep           = model.ErrNestingTooDeep
	ErrMutuallyExclusiveOptions = model.ErrMutuallyExclusiveOptions
	ErrUnsafeCharInSafeSet      = model.ErrUnsafeCharInSafeSet
	ErrUnsupportedValueKind     = model.ErrUnsupportedValueKind
)
