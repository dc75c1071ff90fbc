package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printFn is a test seam for user-facing output. In tests, replace it with a stub.
var printFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	Add(ctx context.Context) error
	List(ctx context.Context) error
	Stats(ctx context.Context) error
	Refresh(ctx context.Context) error
	Export(ctx context.Context) error
	ExportAll(ctx context.Context) error
	Report(ctx context.Context, profession string) error
}

// runREPL reads a line, parses the first token as the command and dispatches
// to methods on 'a'. The loop exits on scanner EOF, on a canceled context or
// when the user types "exit" or "quit".
//
// Commands:
//
//	add              record one survey response (interactive prompts)
//	list             print the collected entries
//	stats            print the aggregate dashboard
//	refresh          pull the latest entries from Google Sheets
//	export           write the all-entries xlsx
//	exportall        write the overall report xlsx
//	report <পেশা>    write the report for one profession
//	exit | quit      leave the program
//
// Errors returned by command handlers are ignored here; handlers print their
// own messages. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		if ctx.Err() != nil {
			return
		}

		printFn("survey> ")
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printFn("Available commands: add, list, stats, refresh, export, exportall, report <পেশা>, exit")
		case "add":
			_ = a.Add(ctx)
		case "list":
			_ = a.List(ctx)
		case "stats":
			_ = a.Stats(ctx)
		case "refresh":
			_ = a.Refresh(ctx)
		case "export":
			_ = a.Export(ctx)
		case "exportall":
			_ = a.ExportAll(ctx)
		case "report":
			_ = a.Report(ctx, strings.Join(args, " "))
		case "exit", "quit":
			printFn("Bye!")
			return
		default:
			printFn(fmt.Sprintf("Unknown command: %s (type 'help')", cmd))
		}
	}
}
