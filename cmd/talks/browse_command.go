package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/javaBin/talks-browser/internal/domain"
	"github.com/javaBin/talks-browser/internal/ports"
	"github.com/spf13/cobra"
)

const browseHelp = `Commands:
  open <slug>          fetch a talk and make it current
  lang <code>          toggle a transcript language
  transcript [format]  fetch the transcript of the current talk
  newest               list the newest talks
  status               show the current state
  help                 show this help
  quit                 leave`

func newBrowseCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse talks interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session := &browseSession{
				browser:       ctx.store,
				out:           cmd.OutOrStdout(),
				styled:        shouldStyle(cmd.OutOrStdout()),
				defaultFormat: domain.TranscriptFormat(ctx.config.Transcript.DefaultFormat),
			}
			return session.run(cmd.Context(), cmd.InOrStdin())
		},
	}
}

// browseSession renders the store on every change and feeds it commands read from the terminal
type browseSession struct {
	browser       ports.TalkBrowser
	out           io.Writer
	styled        bool
	defaultFormat domain.TranscriptFormat
}

// OnChange re-renders the status line
func (s *browseSession) OnChange() {
	s.printStatus()
}

func (s *browseSession) run(ctx context.Context, in io.Reader) error {
	sub := s.browser.Subscribe(s)
	defer sub.Unsubscribe()

	writeLine(s.out, "%s", browseHelp)

	scanner := bufio.NewScanner(in)
	for {
		if s.styled {
			fmt.Fprint(s.out, "> ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		quit := s.exec(ctx, scanner.Text())
		if quit {
			return nil
		}
	}
}

// exec runs one command line and reports whether the session should end
func (s *browseSession) exec(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	var err error
	switch cmd, args := fields[0], fields[1:]; cmd {
	case "quit", "exit", "q":
		return true
	case "help", "?":
		writeLine(s.out, "%s", browseHelp)
	case "status":
		s.printStatus()
	case "open":
		if len(args) != 1 {
			writeLine(s.out, "usage: open <slug>")
			return false
		}
		_, err = s.browser.GetBySlug(ctx, args[0])
	case "lang":
		if len(args) != 1 {
			writeLine(s.out, "usage: lang <code>")
			return false
		}
		err = s.browser.SelectLanguage(args[0])
	case "transcript":
		format := s.defaultFormat
		if len(args) > 0 {
			format = domain.TranscriptFormat(args[0])
		}
		if talk, ok := s.browser.Current(); ok {
			warnUnavailable(s.out, talk, s.browser.SelectedLanguages())
		}
		var transcript string
		transcript, err = s.browser.GetTranscript(ctx, format)
		if err == nil {
			writeLine(s.out, "%s", strings.TrimRight(transcript, "\n"))
		}
	case "newest":
		var talks []domain.Talk
		talks, err = s.browser.GetNewest(ctx)
		if err == nil {
			writeLine(s.out, "%s", renderTalkList(talks, s.styled))
		}
	default:
		writeLine(s.out, "unknown command %q, try help", cmd)
	}

	if err != nil {
		writeLine(s.out, "error: %v", err)
	}
	return false
}

func (s *browseSession) printStatus() {
	current := "none"
	if talk, ok := s.browser.Current(); ok {
		current = fmt.Sprintf("%s (%s)", talk.Title, talk.Slug)
	}

	languages := "default"
	if selected := s.browser.SelectedLanguages(); len(selected) > 0 {
		languages = languageList(selected)
	}

	writeLine(s.out, "[talk: %s | languages: %s | transcript: %d bytes]",
		current, languages, len(s.browser.Transcript()))
}
