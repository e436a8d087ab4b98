package cli

import "strings"

// Kind 命令行解析结果的类型
type Kind int

const (
	// KindRun 执行转换
	KindRun Kind = iota
	// KindHelp 输出用法
	KindHelp
	// KindVersion 输出名称和版本
	KindVersion
	// KindInvalid 参数错误
	KindInvalid
)

// Reason 参数错误的原因
type Reason int

const (
	ReasonNone Reason = iota
	ReasonUnexpectedOption
	ReasonArgCount
)

// ExpectedArgs 需要的位置参数数量
const ExpectedArgs = 2

// Invocation 命令行解析结果
type Invocation struct {
	Kind     Kind
	Input    string
	Output   string
	Reason   Reason
	Option   string // 无法识别的选项
	Received int    // 收到的参数数量
}

// ParseArgs 解析不含程序名的命令行参数。
// 只做判断，不输出也不退出进程；多于两个的参数会被忽略。
func ParseArgs(args []string) Invocation {
	count := len(args)
	if count == 0 {
		return Invocation{Kind: KindHelp}
	}

	if count == 1 && isOption(args[0]) {
		return parseOption(args[0])
	}

	if count < ExpectedArgs {
		return Invocation{Kind: KindInvalid, Reason: ReasonArgCount, Received: count}
	}

	return Invocation{Kind: KindRun, Input: args[0], Output: args[1]}
}

func isOption(arg string) bool {
	return strings.HasPrefix(arg, "-")
}

func parseOption(arg string) Invocation {
	switch arg {
	case "-v", "--version":
		return Invocation{Kind: KindVersion}
	case "-h", "--help":
		return Invocation{Kind: KindHelp}
	default:
		return Invocation{Kind: KindInvalid, Reason: ReasonUnexpectedOption, Option: arg, Received: 1}
	}
}
