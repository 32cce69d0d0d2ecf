package init

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pure-vibe-code/vibevc/internal/cli"
	"github.com/pure-vibe-code/vibevc/internal/config"
	"github.com/pure-vibe-code/vibevc/internal/fs"
	"github.com/pure-vibe-code/vibevc/internal/middleware"
	"github.com/pure-vibe-code/vibevc/internal/repo"
)

type Command struct {
	quiet  bool
	sepDir string
}

func (c *Command) Name() string      { return "init" }
func (c *Command) Short() string     { return "i" }
func (c *Command) Aliases() []string { return []string{"initialize"} }
func (c *Command) Usage() string     { return "init [options]" }
func (c *Command) Brief() string     { return "Initialize a new repository" }
func (c *Command) Help() string {
	return `Initialize a new repository in the current directory.

Options:
  -q, --quiet                    Suppress normal output.
      --separate-vibevc-dir=<d>  Store repository data in a separate directory.

Examples:
  vibevc init
  vibevc init --separate-vibevc-dir=~/.vibevc-store
`
}

func (c *Command) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&c.quiet, "quiet", false, "")
	fs.BoolVar(&c.quiet, "q", false, "alias for --quiet")
	fs.StringVar(&c.sepDir, "separate-vibevc-dir", "", "")
}

func (c *Command) Run(ctx *cli.Context) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	// separate storage location is recorded in a pointer file first, so
	// NewRepoConfig resolves it during init and every later command
	if c.sepDir != "" {
		ptr := filepath.Join(cwd, config.PointerFile)
		if err := os.WriteFile(ptr, []byte(c.sepDir), 0o644); err != nil {
			return fmt.Errorf("failed to write pointer file: %w", err)
		}
	}

	r, created, err := repo.InitAt(cwd, fs.NewOSFS())
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			if !c.quiet {
				fmt.Printf("Repository already exists in %q\n", r.Config.RepoRoot)
			}
			return nil
		}
		return err
	}

	if !c.quiet && created {
		fmt.Printf("Initialized empty repository in %q\n", r.Config.RepoRoot)
	}

	return nil
}

func init() {
	cli.RegisterCommand(
		cli.ApplyMiddlewares(
			&Command{},
			middleware.WithDebugArgsPrint(),
		),
	)
}
