package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/agent-todo/internal/config"
)

// PrintConfigCmd returns the print-config command.
func PrintConfigCmd(g *globals) *Command {
	flags := flag.NewFlagSet("print-config", flag.ContinueOnError)
	asYAML := flags.Bool("yaml", false, "Print as YAML instead of JSON")

	return &Command{
		Flags: flags,
		Usage: "print-config [--yaml]",
		Short: "Show resolved configuration",
		Long:  "Display the effective configuration and which files it was loaded from.",
		Exec: func(_ context.Context, io *IO, _ []string) error {
			return execPrintConfig(io, g, *asYAML)
		},
	}
}

func execPrintConfig(io *IO, g *globals, asYAML bool) error {
	cfg, err := g.load(config.Config{})
	if err != nil {
		return err
	}

	formatted, err := config.Format(cfg, asYAML)
	if err != nil {
		return err
	}

	io.Println(formatted)
	io.Println("")
	io.Println("# effective_cwd=" + cfg.EffectiveCwd)

	if cfg.LogFileAbs != "" {
		io.Println("# log_file=" + cfg.LogFileAbs)
	}

	io.Println("# sources")

	if cfg.Sources.Global == "" && cfg.Sources.Project == "" {
		io.Println("# (defaults only)")
	} else {
		if cfg.Sources.Global != "" {
			io.Println("# global_config=" + cfg.Sources.Global)
		}

		if cfg.Sources.Project != "" {
			io.Println("# project_config=" + cfg.Sources.Project)
		}
	}

	return nil
}
