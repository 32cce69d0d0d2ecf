package commit

import (
	"flag"
	"fmt"

	"github.com/pure-vibe-code/vibevc/internal/cli"
	"github.com/pure-vibe-code/vibevc/internal/fs"
	"github.com/pure-vibe-code/vibevc/internal/middleware"
	"github.com/pure-vibe-code/vibevc/internal/repo"
)

type Command struct {
	message string
	tag     string
}

func (c *Command) Name() string      { return "commit" }
func (c *Command) Short() string     { return "c" }
func (c *Command) Aliases() []string { return []string{"ci", "save"} }
func (c *Command) Usage() string     { return `commit -m "<message>" [-t <tag>]` }
func (c *Command) Brief() string     { return "Save a snapshot of the working tree" }
func (c *Command) Help() string {
	return `Create a new version from the current working tree.

Options:
  -m, --message <text>  Commit message (required).
  -t, --tag <tag>       Optional version tag (e.g. v1.0).

A commit always captures the full file set, even when nothing changed since
the previous version. Tags need not be unique; resolving a reused tag picks
the most recent version carrying it.

Examples:
  vibevc commit -m "initial import"
  vibevc commit -m "fix parser" -t v1.1
`
}

func (c *Command) Flags(fs *flag.FlagSet) {
	fs.StringVar(&c.message, "message", "", "")
	fs.StringVar(&c.message, "m", "", "alias for --message")
	fs.StringVar(&c.tag, "tag", "", "")
	fs.StringVar(&c.tag, "t", "", "alias for --tag")
}

func (c *Command) Run(ctx *cli.Context) error {
	if c.message == "" {
		return fmt.Errorf("commit message required (use -m)")
	}

	r, err := repo.Open(fs.NewOSFS())
	if err != nil {
		return err
	}

	if prev, taken, err := r.Manifest.FindTag(c.tag); err != nil {
		return err
	} else if taken {
		fmt.Printf("Warning: tag %q already used by version %d; the new commit will shadow it\n",
			c.tag, prev.Seq)
	}

	v, err := r.Commit(c.message, c.tag)
	if err != nil {
		return err
	}

	fmt.Printf("Snapshot saved: [%s] %s (%d files)\n", v.Label(), v.Message, len(v.Files))
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
