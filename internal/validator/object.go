package validator

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/valyala/fastjson"

	"j2e/internal/log"
)

// ErrEmpty 输入内容为空
var ErrEmpty = errors.New("input is empty")

// ErrInvalidUTF8 输入不是合法的 UTF-8 文本
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// ErrNotObject 顶层 JSON 值不是对象
var ErrNotObject = errors.New("top-level JSON value is not an object")

// ObjectValidator 校验输入是否为单个顶层 JSON 对象
type ObjectValidator struct {
	logger log.Logger
	parser fastjson.Parser
}

// New 创建新的对象校验器
func New(logger log.Logger) *ObjectValidator {
	return &ObjectValidator{logger: logger}
}

// Validate 校验输入内容：必须是合法 UTF-8 和严格合法的 JSON，且顶层为对象。
// ParseBytes 不严格检查数字语法（如 01、1.、1e），因此先用 ValidateBytes 校验。
func (v *ObjectValidator) Validate(data []byte) error {
	if len(data) == 0 {
		return ErrEmpty
	}

	v.logger.Debugf("Validating %d bytes, preview: %s", len(data), preview(data, 100))

	if !utf8.Valid(data) {
		return ErrInvalidUTF8
	}

	if err := fastjson.ValidateBytes(data); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	value, err := v.parser.ParseBytes(data)
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if value.Type() != fastjson.TypeObject {
		return fmt.Errorf("%w, found %s", ErrNotObject, value.Type())
	}

	v.logger.Debug("Input is a valid JSON object")
	return nil
}

func preview(data []byte, limit int) string {
	if len(data) <= limit {
		return string(data)
	}
	return string(data[:limit]) + "..."
}
