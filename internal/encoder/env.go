package encoder

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"j2e/internal/log"
	"j2e/internal/parser"
)

// Variable 一行环境变量赋值
type Variable struct {
	Key   string
	Value string
}

// Line 返回 KEY=value 形式的一行，带换行符
func (v Variable) Line() string {
	return v.Key + "=" + v.Value + "\n"
}

// EnvEncoder 将 Variables 渲染为 .env 行
type EnvEncoder struct {
	logger log.Logger
}

// New 创建新的编码器
func New(logger log.Logger) *EnvEncoder {
	return &EnvEncoder{logger: logger}
}

// Encode 将所有键转为大写并渲染值，结果按大写键排序（相同时按原始键）
func (e *EnvEncoder) Encode(vars parser.Variables) ([]Variable, error) {
	type entry struct {
		original string
		variable Variable
	}

	entries := make([]entry, 0, len(vars))
	for key, value := range vars {
		rendered, err := RenderValue(value)
		if err != nil {
			return nil, fmt.Errorf(`cannot render value of "%s": %w`, key, err)
		}
		entries = append(entries, entry{
			original: key,
			variable: Variable{Key: strings.ToUpper(key), Value: rendered},
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].variable.Key != entries[j].variable.Key {
			return entries[i].variable.Key < entries[j].variable.Key
		}
		return entries[i].original < entries[j].original
	})

	out := make([]Variable, len(entries))
	for i, en := range entries {
		out[i] = en.variable
		e.logger.Debugf("Encoded %s -> %s", en.original, en.variable.Key)
	}
	return out, nil
}

// RenderValue 返回值的 JSON 文本，不含多余空白。
// 数字（json.Number）按输入中的原始文本输出，例如 1.50、1e3 不做规范化；
// 对象按键排序。字符串只去掉序列化结果中的第一个和最后一个引号，不做反转义。
func RenderValue(value any) (string, error) {
	data, err := parser.API.Marshal(value)
	if err != nil {
		return "", err
	}

	text := string(data)
	if _, ok := value.(string); ok {
		text = stripQuotes(text)
	}
	return text, nil
}

func stripQuotes(s string) string {
	if first := strings.IndexByte(s, '"'); first >= 0 {
		s = s[:first] + s[first+1:]
	}
	if last := strings.LastIndexByte(s, '"'); last >= 0 {
		s = s[:last] + s[last+1:]
	}
	return s
}

// WriteTo 依次写出所有行，返回写入的字节数
func WriteTo(w io.Writer, vars []Variable) (int64, error) {
	buf := bufio.NewWriter(w)
	var written int64
	for _, v := range vars {
		n, err := buf.WriteString(v.Line())
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, buf.Flush()
}
