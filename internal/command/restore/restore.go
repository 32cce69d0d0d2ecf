package restore

import (
	"errors"
	"flag"
	"fmt"

	"github.com/pure-vibe-code/vibevc/internal/cli"
	"github.com/pure-vibe-code/vibevc/internal/fs"
	"github.com/pure-vibe-code/vibevc/internal/middleware"
	"github.com/pure-vibe-code/vibevc/internal/repo"
)

type Command struct {
	force bool
}

func (c *Command) Name() string      { return "restore" }
func (c *Command) Short() string     { return "r" }
func (c *Command) Aliases() []string { return []string{"checkout"} }
func (c *Command) Usage() string     { return "restore [--force] <version>" }
func (c *Command) Brief() string     { return "Overwrite the working tree with a version" }
func (c *Command) Help() string {
	return `Restore the working tree to a committed version.

Options:
      --force   Discard uncommitted changes.

Without --force the restore refuses to run when the working tree differs
from the target version. The repository storage is never modified, so any
restore can be undone by restoring another version.

Examples:
  vibevc restore v1.0
  vibevc restore --force 3
`
}

func (c *Command) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&c.force, "force", false, "discard uncommitted changes")
}

func (c *Command) Run(ctx *cli.Context) error {
	if len(ctx.Args) == 0 {
		return fmt.Errorf("version identifier required (sequence number or tag)")
	}

	r, err := repo.Open(fs.NewOSFS())
	if err != nil {
		return err
	}

	target, err := r.Manifest.Resolve(ctx.Args[0])
	if err != nil {
		return err
	}

	if err := r.Restore(target, c.force); err != nil {
		if errors.Is(err, repo.ErrUncommittedChanges) {
			return fmt.Errorf("%w (commit first, or use --force to overwrite)", err)
		}
		return err
	}

	fmt.Printf("Restored to %s\n", target.Label())
	return nil
}

func init() {
	cli.RegisterCommand(
		cli.ApplyMiddlewares(
			&Command{},
			middleware.WithDebugArgsPrint(),
			middleware.WithRepoCheck(),
		),
	)
}
