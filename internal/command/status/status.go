package status

import (
	"flag"
	"fmt"

	"github.com/pure-vibe-code/vibevc/internal/cli"
	"github.com/pure-vibe-code/vibevc/internal/fs"
	"github.com/pure-vibe-code/vibevc/internal/middleware"
	"github.com/pure-vibe-code/vibevc/internal/repo"
	"github.com/pure-vibe-code/vibevc/internal/repo/manifest"
)

type Command struct {
	short bool
}

func (c *Command) Name() string      { return "status" }
func (c *Command) Short() string     { return "s" }
func (c *Command) Aliases() []string { return []string{"st"} }
func (c *Command) Usage() string     { return "status [options] [version]" }
func (c *Command) Brief() string     { return "Show files changed since a version (default: latest)" }
func (c *Command) Help() string {
	return `Show the working tree status against a committed version.

Options:
  -s, --short   One line per path: "M path", "+ path", "- path".

The baseline is the latest version unless a sequence number or tag is given.

Examples:
  vibevc status
  vibevc status v1.0
  vibevc status -s 3
`
}

func (c *Command) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&c.short, "short", false, "")
	fs.BoolVar(&c.short, "s", false, "alias for --short")
}

func (c *Command) Run(ctx *cli.Context) error {
	r, err := repo.Open(fs.NewOSFS())
	if err != nil {
		return err
	}

	var baseline *manifest.Version
	if len(ctx.Args) > 0 {
		baseline, err = r.Manifest.Resolve(ctx.Args[0])
		if err != nil {
			return err
		}
	} else {
		baseline, err = r.Manifest.Latest()
		if err != nil {
			return err
		}
		if baseline == nil {
			fmt.Println("No commits yet.")
			return nil
		}
	}

	changes, err := r.Status(baseline)
	if err != nil {
		return err
	}

	if len(changes) == 0 {
		fmt.Println("Working directory clean")
		return nil
	}

	if c.short {
		printShort(changes)
		return nil
	}

	fmt.Printf("On version: %s\n", baseline.Label())
	printSection("Changed files:", "M", changes, repo.Modified)
	printSection("New files:", "+", changes, repo.New)
	printSection("Deleted files:", "-", changes, repo.Deleted)
	return nil
}

func printShort(changes []repo.Change) {
	for _, ch := range changes {
		mark := "M"
		switch ch.Kind {
		case repo.New:
			mark = "+"
		case repo.Deleted:
			mark = "-"
		}
		fmt.Printf("%s %s\n", mark, ch.Path)
	}
}

func printSection(title, mark string, changes []repo.Change, kind repo.Classification) {
	first := true
	for _, ch := range changes {
		if ch.Kind != kind {
			continue
		}
		if first {
			fmt.Printf("\n%s\n", title)
			first = false
		}
		fmt.Printf("  %s %s\n", mark, ch.Path)
	}
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
