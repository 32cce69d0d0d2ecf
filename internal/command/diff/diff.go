package diff

import (
	"flag"
	"fmt"

	"github.com/pure-vibe-code/vibevc/internal/cli"
	"github.com/pure-vibe-code/vibevc/internal/fs"
	"github.com/pure-vibe-code/vibevc/internal/middleware"
	"github.com/pure-vibe-code/vibevc/internal/repo"
	"github.com/pure-vibe-code/vibevc/internal/repo/manifest"
)

type Command struct{}

func (c *Command) Name() string          { return "diff" }
func (c *Command) Short() string         { return "d" }
func (c *Command) Aliases() []string     { return nil }
func (c *Command) Usage() string         { return "diff [version]" }
func (c *Command) Brief() string         { return "Show line diffs against a version (default: latest)" }
func (c *Command) Flags(fs *flag.FlagSet) {}
func (c *Command) Help() string {
	return `Show a unified diff of the working tree against a committed version.

Text files get line diffs; binary files are reported without content. New
and deleted files render as all-added / all-removed.

Examples:
  vibevc diff
  vibevc diff v1.0
`
}

func (c *Command) Run(ctx *cli.Context) error {
	r, err := repo.Open(fs.NewOSFS())
	if err != nil {
		return err
	}

	var target *manifest.Version
	if len(ctx.Args) > 0 {
		target, err = r.Manifest.Resolve(ctx.Args[0])
		if err != nil {
			return err
		}
	} else {
		target, err = r.Manifest.Latest()
		if err != nil {
			return err
		}
		if target == nil {
			fmt.Println("No commits yet.")
			return nil
		}
	}

	out, err := r.Diff(target)
	if err != nil {
		return err
	}

	if out == "" {
		fmt.Println("No differences.")
		return nil
	}
	fmt.Print(out)
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
