package verify

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

func (c *Command) Name() string          { return "verify" }
func (c *Command) Short() string         { return "" }
func (c *Command) Aliases() []string     { return []string{"fsck"} }
func (c *Command) Usage() string         { return "verify [version]" }
func (c *Command) Brief() string         { return "Check snapshot storage against the manifest" }
func (c *Command) Flags(fs *flag.FlagSet) {}
func (c *Command) Help() string {
	return `Recompute the hashes of stored snapshot trees and compare them against
the manifest. Without an argument all versions are checked.

Examples:
  vibevc verify
  vibevc verify v1.0
`
}

func (c *Command) Run(ctx *cli.Context) error {
	r, err := repo.Open(fs.NewOSFS())
	if err != nil {
		return err
	}

	var versions []manifest.Version
	if len(ctx.Args) > 0 {
		v, err := r.Manifest.Resolve(ctx.Args[0])
		if err != nil {
			return err
		}
		versions = []manifest.Version{*v}
	} else {
		versions, err = r.Manifest.Load()
		if err != nil {
			return err
		}
	}

	issues := r.Verify(versions)
	if len(issues) == 0 {
		fmt.Printf("OK: %d version(s) verified\n", len(versions))
		return nil
	}

	for _, issue := range issues {
		if issue.Path == "" {
			fmt.Printf("version %d: %s\n", issue.Seq, issue.Reason)
		} else {
			fmt.Printf("version %d: %s: %s\n", issue.Seq, issue.Path, issue.Reason)
		}
	}
	return fmt.Errorf("%d issue(s) found", len(issues))
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
