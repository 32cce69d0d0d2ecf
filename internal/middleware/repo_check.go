package middleware

import (
	"fmt"

	"github.com/pure-vibe-code/vibevc/internal/cli"
	"github.com/pure-vibe-code/vibevc/internal/config"
)

// WithRepoCheck ensures a repository exists before running the command.
func WithRepoCheck() cli.Middleware {
	return func(cmd cli.Command) cli.Command {
		return &cli.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *cli.Context) error {
				if config.ResolveWorkingTreeRoot() == "" {
					return fmt.Errorf("not a repository (run `vibevc init` first)")
				}
				return cmd.Run(ctx)
			},
		}
	}
}
