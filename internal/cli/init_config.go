package cli

import (
	"context"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/agent-todo/internal/config"
)

// InitConfigCmd returns the init-config command.
func InitConfigCmd(g *globals) *Command {
	flags := flag.NewFlagSet("init-config", flag.ContinueOnError)
	global := flags.Bool("global", false, "Write the user config instead of the project config")
	force := flags.BoolP("force", "f", false, "Overwrite an existing file")

	return &Command{
		Flags: flags,
		Usage: "init-config [--global] [--force]",
		Short: "Write a commented starter config",
		Long: `Write a commented starter config.

The file goes to .todo.json in the working directory, to the path given with
--config, or with --global to the user config under $XDG_CONFIG_HOME.`,
		Exec: func(_ context.Context, io *IO, _ []string) error {
			path, err := initConfigPath(g, *global)
			if err != nil {
				return err
			}

			if err := config.WriteStarter(path, *force); err != nil {
				return err
			}

			io.Println("wrote", path)

			return nil
		},
	}
}

func initConfigPath(g *globals, global bool) (string, error) {
	if global {
		path := config.GlobalPath(g.env)
		if path == "" {
			return "", config.ErrNoConfigHome
		}

		return path, nil
	}

	workDir, err := g.workDir()
	if err != nil {
		return "", err
	}

	if g.configPath == "" {
		return filepath.Join(workDir, config.FileName), nil
	}

	if filepath.IsAbs(g.configPath) {
		return g.configPath, nil
	}

	return filepath.Join(workDir, g.configPath), nil
}
