package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"j2e/internal/config"
	"j2e/internal/log"
	"j2e/internal/processor"
)

// exitError 表示输出已完成，只需以 code 退出
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// ExitCode 将命令执行结果映射为进程退出码
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	return 1
}

type runner struct {
	cfg      *config.Config
	warnings []string
	fs       afero.Fs
}

// NewRootCmd 创建根命令。参数由 ParseArgs 自行解析，cobra 不解析任何 flag。
func NewRootCmd(cfg *config.Config, warnings []string, fs afero.Fs) *cobra.Command {
	r := &runner{cfg: cfg, warnings: warnings, fs: fs}
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s <INPUT PATH> <OUTPUT PATH>", cfg.Name),
		Short: "Creates env variables from a json object.",
		Long: `Reads a flat JSON object and writes every key/value pair
as a KEY=value line, keys uppercased, lines sorted by key.

String values are written without their surrounding quotes,
other values as compact JSON text.`,
		Example: fmt.Sprintf(`  %[1]s config.json .env
  %[1]s --version`, cfg.Name),
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE:               r.run,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}

// Execute 加载配置并执行根命令，返回进程退出码
func Execute() int {
	workingDir, err := os.Getwd()
	if err != nil {
		workingDir = ""
	}
	cfg, warnings := config.Load(workingDir)
	return ExitCode(NewRootCmd(cfg, warnings, afero.NewOsFs()).Execute())
}

func (r *runner) run(cmd *cobra.Command, args []string) error {
	p := newPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), r.cfg.NoColor)

	inv := ParseArgs(args)
	switch inv.Kind {
	case KindHelp:
		p.usage(r.cfg.Name)
		return nil
	case KindVersion:
		p.version(r.cfg.String())
		return nil
	case KindInvalid:
		if inv.Reason == ReasonUnexpectedOption {
			p.unexpectedOption()
		} else {
			p.invalidArgCount(inv.Received)
			p.usage(r.cfg.Name)
		}
		return &exitError{code: 1}
	}

	logger := log.NewCliLogger(cmd.ErrOrStderr(), r.cfg.Verbose)
	defer func() { _ = logger.Sync() }()
	// .env 通常就是本工具的输出文件，读取失败不应干扰正常运行
	for _, warning := range r.warnings {
		logger.Debug(warning)
	}
	logger.Debugf(`Converting "%s" to "%s"`, inv.Input, inv.Output)

	count, err := processor.New(r.fs, logger).Process(inv.Input, inv.Output)
	if err != nil {
		p.failure(err)
		return &exitError{code: 1}
	}

	p.wrote(count, inv.Output)
	return nil
}
