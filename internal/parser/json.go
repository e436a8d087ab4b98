package parser

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// API 是解码和编码共用的 JSON 配置：
// 数字保留原始文本，对象键排序，不转义 HTML 字符。
var API = jsoniter.Config{
	EscapeHTML:  false,
	SortMapKeys: true,
	UseNumber:   true,
}.Froze()

// Variables 是从输入对象解码得到的键值映射
type Variables map[string]any

// JSONParser 将 JSON 对象解码为 Variables
type JSONParser struct{}

// New 创建新的 JSON 解析器
func New() *JSONParser {
	return &JSONParser{}
}

// Parse 解码 JSON 对象，重复的键以最后一次出现为准
func (p *JSONParser) Parse(data []byte) (Variables, error) {
	var vars Variables
	if err := API.Unmarshal(data, &vars); err != nil {
		return nil, fmt.Errorf("cannot decode JSON object: %w", err)
	}
	if vars == nil {
		return nil, fmt.Errorf("cannot decode JSON object: value is null")
	}
	return vars, nil
}
