package processor

import (
	"os"

	"github.com/spf13/afero"

	"j2e/internal/encoder"
	"j2e/internal/log"
	"j2e/internal/parser"
	"j2e/internal/validator"
)

const outputPerm = 0o644

// Processor 主处理器：读取 JSON 对象并写出 .env 文件
type Processor struct {
	fs        afero.Fs
	logger    log.Logger
	validator *validator.ObjectValidator
	parser    *parser.JSONParser
	encoder   *encoder.EnvEncoder
}

// New 创建新的处理器
func New(fs afero.Fs, logger log.Logger) *Processor {
	return &Processor{
		fs:        fs,
		logger:    logger,
		validator: validator.New(logger),
		parser:    parser.New(),
		encoder:   encoder.New(logger),
	}
}

// Process 转换 inputPath 中的 JSON 对象并写入 outputPath，返回写入的变量数量。
// 输出文件在编码成功后才会被截断；写入中途失败可能留下不完整的文件。
func (p *Processor) Process(inputPath, outputPath string) (int, error) {
	data, err := p.read(inputPath)
	if err != nil {
		return 0, err
	}

	vars, err := p.Decode(inputPath, data)
	if err != nil {
		return 0, err
	}

	encoded, err := p.encoder.Encode(vars)
	if err != nil {
		return 0, &DecodeError{Path: inputPath, Err: err}
	}

	if err := p.write(outputPath, encoded); err != nil {
		return 0, err
	}

	p.logger.Debugf(`Wrote %d variables to "%s"`, len(encoded), outputPath)
	return len(encoded), nil
}

// Decode 校验并解码输入内容
func (p *Processor) Decode(path string, data []byte) (parser.Variables, error) {
	if err := p.validator.Validate(data); err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	vars, err := p.parser.Parse(data)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	p.logger.Debugf(`Decoded %d variables from "%s"`, len(vars), path)
	return vars, nil
}

func (p *Processor) read(path string) ([]byte, error) {
	file, err := p.fs.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer func() { _ = file.Close() }()

	data, err := afero.ReadAll(file)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}

	p.logger.Debugf(`Read %d bytes from "%s"`, len(data), path)
	return data, nil
}

func (p *Processor) write(path string, vars []encoder.Variable) (err error) {
	file, err := p.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputPerm)
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = &IOError{Op: "close", Path: path, Err: closeErr}
		}
	}()

	if _, err := encoder.WriteTo(file, vars); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
