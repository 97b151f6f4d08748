package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

// Version is set at build time with -ldflags "-X ...cli.Version=v1.2.3".
var Version = "dev"

// VersionCmd returns the version command.
func VersionCmd() *Command {
	return &Command{
		Flags: flag.NewFlagSet("version", flag.ContinueOnError),
		Usage: "version",
		Short: "Print the version",
		Exec: func(_ context.Context, io *IO, _ []string) error {
			io.Printf("todo %s\n", Version)

			return nil
		},
	}
}
