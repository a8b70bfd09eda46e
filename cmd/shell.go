package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"tasklist/internal/domain"
	"tasklist/internal/service"
)

const shellHelp = `commands:
  add <title>     add a task at the top of the list
  draft <text>    set the pending title
  submit          add the pending title
  toggle <id>     flip completion
  delete <id>     remove a task
  filter <f>      all, active or completed
  list            show the list
  summary         show progress
  reset           restore the seed tasks
  help            this text
  quit            leave`

func newShellCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive task list session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			defer a.close()

			return runShell(a.svc, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runShell handles one line at a time; each line runs to completion
// before the next is read.
func runShell(svc *service.TaskService, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "tasklist shell (type 'help' for commands)")
	renderSnapshot(out, svc.Snapshot())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\n> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		verb, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch strings.ToLower(verb) {
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprintln(out, shellHelp)
			continue
		case "add":
			if _, err := svc.AddTask(arg); err != nil {
				printShellError(out, err)
				continue
			}
		case "draft":
			svc.SetDraft(arg)
			fmt.Fprintf(out, "draft: %q\n", arg)
			continue
		case "submit":
			if _, err := svc.SubmitDraft(); err != nil {
				printShellError(out, err)
				continue
			}
		case "toggle":
			svc.ToggleTask(arg)
		case "delete", "rm":
			svc.DeleteTask(arg)
		case "filter":
			if err := svc.SetFilter(domain.Filter(arg)); err != nil {
				printShellError(out, err)
				continue
			}
		case "list", "ls":
		case "summary":
			fmt.Fprintln(out, svc.Summary())
			continue
		case "reset":
			svc.Reset()
		default:
			fmt.Fprintf(out, "unknown command %q (type 'help')\n", verb)
			continue
		}

		renderSnapshot(out, svc.Snapshot())
	}

	return scanner.Err()
}

func printShellError(out io.Writer, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		fmt.Fprintln(out, "a task needs a title")
	case errors.Is(err, domain.ErrInvalidFilter):
		fmt.Fprintln(out, "filter must be all, active or completed")
	default:
		fmt.Fprintf(out, "error: %v\n", err)
	}
}
