package main

import (
	"os"

	"github.com/pure-vibe-code/vibevc/internal/cli"

	_ "github.com/pure-vibe-code/vibevc/internal/command/commit"
	_ "github.com/pure-vibe-code/vibevc/internal/command/diff"
	_ "github.com/pure-vibe-code/vibevc/internal/command/init"
	_ "github.com/pure-vibe-code/vibevc/internal/command/log"
	_ "github.com/pure-vibe-code/vibevc/internal/command/restore"
	_ "github.com/pure-vibe-code/vibevc/internal/command/status"
	_ "github.com/pure-vibe-code/vibevc/internal/command/verify"
)

func main() {
	cli.RunCLI(os.Args[1:])
}
