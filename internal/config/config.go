package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Name 和 Version 由构建时注入：
//
//	go build -ldflags "-X j2e/internal/config.Version=1.2.0"
var (
	Name    = "j2e"
	Version = "dev"
)

// EnvPrefix 运行时配置对应的环境变量前缀
const EnvPrefix = "J2E"

// DotEnvFile 工作目录下可选的配置文件
const DotEnvFile = ".env"

const (
	keyVerbose = "verbose"
	keyNoColor = "no_color"
)

// Config 工具配置
type Config struct {
	Name    string
	Version string
	Verbose bool
	NoColor bool
}

// Load 从环境变量和工作目录下的 .env 文件加载配置。
// 环境变量优先于 .env 中的值，.env 只读取 J2E_ 前缀的键，不会写入进程环境。
// 无法读取或解析 .env 时不会失败，而是以 warnings 返回。
func Load(workingDir string) (*Config, []string) {
	var warnings []string

	parser := viper.New()
	parser.SetEnvPrefix(EnvPrefix)
	parser.AutomaticEnv()
	parser.SetDefault(keyVerbose, false)
	parser.SetDefault(keyNoColor, false)

	if workingDir != "" {
		defaults, err := readDotEnv(filepath.Join(workingDir, DotEnvFile))
		if err != nil {
			warnings = append(warnings, err.Error())
		}
		for key, value := range defaults {
			parser.SetDefault(key, value)
		}
	}

	return &Config{
		Name:    Name,
		Version: Version,
		Verbose: parser.GetBool(keyVerbose),
		NoColor: parser.GetBool(keyNoColor),
	}, warnings
}

// readDotEnv 读取 .env 中带前缀的键，返回去掉前缀并转为小写后的键值
func readDotEnv(path string) (map[string]string, error) {
	envs, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf(`cannot read env file "%s": %w`, path, err)
	}

	prefix := EnvPrefix + "_"
	out := make(map[string]string)
	for key, value := range envs {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		out[strings.ToLower(strings.TrimPrefix(key, prefix))] = value
	}
	return out, nil
}

// String 返回名称和版本，用于 --version 输出
func (c *Config) String() string {
	return fmt.Sprintf("%s %s", c.Name, c.Version)
}
