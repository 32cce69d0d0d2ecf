package log

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/pure-vibe-code/vibevc/internal/cli"
	"github.com/pure-vibe-code/vibevc/internal/fs"
	"github.com/pure-vibe-code/vibevc/internal/middleware"
	"github.com/pure-vibe-code/vibevc/internal/repo"
)

type Command struct {
	oneline bool
	limit   int
}

func (c *Command) Name() string      { return "log" }
func (c *Command) Short() string     { return "l" }
func (c *Command) Aliases() []string { return []string{"history"} }
func (c *Command) Usage() string     { return "log [options]" }
func (c *Command) Brief() string     { return "Show version history (newest first)" }
func (c *Command) Help() string {
	return `Show the committed versions, newest first.

Options:
      --oneline   Show each version as a single line.
  -n <count>      Limit to the last N versions.

Examples:
  vibevc log
  vibevc log --oneline -n 10
`
}

func (c *Command) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&c.oneline, "oneline", false, "show each version on one line")
	fs.IntVar(&c.limit, "n", 0, "limit number of versions")
}

func (c *Command) Run(ctx *cli.Context) error {
	r, err := repo.Open(fs.NewOSFS())
	if err != nil {
		return err
	}

	versions, err := r.Manifest.Load()
	if err != nil {
		return err
	}
	if len(versions) == 0 {
		fmt.Println("No snapshots found.")
		return nil
	}

	shown := 0
	for i := len(versions) - 1; i >= 0; i-- {
		if c.limit > 0 && shown >= c.limit {
			break
		}
		v := versions[i]
		shown++

		if c.oneline {
			firstLine := strings.SplitN(v.Message, "\n", 2)[0]
			fmt.Printf("%s %s\n", v.Label(), firstLine)
			continue
		}

		fmt.Printf("Version: %s (seq %d)\n", v.Label(), v.Seq)
		if t, err := time.Parse(time.RFC3339, v.Timestamp); err == nil {
			fmt.Printf("Date:    %s\n", t.Format("Mon Jan 2 15:04:05 2006"))
		} else {
			fmt.Printf("Date:    %s\n", v.Timestamp)
		}
		fmt.Printf("Message: %s\n", v.Message)
		fmt.Printf("Files:   %d\n", len(v.Files))
		fmt.Println(strings.Repeat("-", 30))
	}

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
