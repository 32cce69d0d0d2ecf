package cli

import (
	"flag"
	"fmt"
	"os"
)

// RunCLI is the main entrypoint for executing commands.
// It resolves the command, applies flags, and runs it.
func RunCLI(args []string) {
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		printHelp(args[1:])
		os.Exit(0)
	}

	cmd, ok := GetCommand(args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		os.Exit(1)
	}

	fs := flag.NewFlagSet(cmd.Name(), flag.ExitOnError)
	cmd.Flags(fs)
	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error parsing flags:", err)
		os.Exit(1)
	}

	ctx := &Context{
		Args:  fs.Args(),
		Flags: fs,
	}

	if err := cmd.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: vibevc <command> [args...]")
	fmt.Println("Available commands:")
	for _, cmd := range AllCommands() {
		fmt.Printf("  %-10s %s\n", cmd.Name(), cmd.Brief())
	}
	fmt.Println("\nRun 'vibevc help <command>' for details on a command.")
}

func printHelp(args []string) {
	if len(args) == 0 {
		printUsage()
		return
	}
	cmd, ok := GetCommand(args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		os.Exit(1)
	}
	fmt.Printf("Usage: vibevc %s\n\n%s", cmd.Usage(), cmd.Help())
}
