package processor

import "fmt"

// IOError 读取输入或写入输出失败
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf(`cannot %s "%s": %s`, e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// DecodeError 输入不是合法的 JSON 对象
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf(`cannot decode "%s": %s`, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
