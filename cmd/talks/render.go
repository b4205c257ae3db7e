package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/javaBin/talks-browser/internal/domain"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

func newTableWriter(styled bool) table.Writer {
	tw := table.NewWriter()
	if styled {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleLight)
		tw.Style().Options.DrawBorder = false
	}
	return tw
}

func renderTalkList(talks []domain.Talk, styled bool) string {
	tw := newTableWriter(styled)
	tw.AppendHeader(table.Row{"#", "Slug", "Title", "Speakers", "Event"})
	for i, t := range talks {
		tw.AppendRow(table.Row{i + 1, t.Slug, t.Title, strings.Join(t.SpeakerNames(), ", "), t.Event})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, WidthMax: 60},
	})
	return tw.Render()
}

func renderTalk(t domain.Talk, styled bool) string {
	tw := newTableWriter(styled)
	tw.AppendRow(table.Row{"Title", t.Title})
	tw.AppendRow(table.Row{"Slug", t.Slug})
	tw.AppendRow(table.Row{"ID", t.ID})
	if t.Event != "" {
		tw.AppendRow(table.Row{"Event", t.Event})
	}
	if len(t.Speakers) > 0 {
		tw.AppendRow(table.Row{"Speakers", strings.Join(t.SpeakerNames(), ", ")})
	}
	if t.Duration > 0 {
		tw.AppendRow(table.Row{"Duration", t.Duration.Round(time.Minute).String()})
	}
	if !t.RecordedAt.IsZero() {
		tw.AppendRow(table.Row{"Recorded", t.RecordedAt.Format(time.DateOnly)})
	}
	if len(t.Languages) > 0 {
		tw.AppendRow(table.Row{"Transcripts", languageList(t.Languages)})
	}
	if len(t.Tags) > 0 {
		tw.AppendRow(table.Row{"Tags", strings.Join(t.Tags, ", ")})
	}
	if t.VideoURL != "" {
		tw.AppendRow(table.Row{"Video", t.VideoURL})
	}
	if t.Description != "" {
		tw.AppendRow(table.Row{"Description", t.Description})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 80},
	})
	return tw.Render()
}

// languageName renders "fr" as "French (fr)"; unknown codes are returned as is
func languageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	name := display.English.Languages().Name(tag)
	if name == "" {
		return code
	}
	return fmt.Sprintf("%s (%s)", name, code)
}

func languageList(codes []string) string {
	names := make([]string, 0, len(codes))
	for _, c := range codes {
		names = append(names, languageName(c))
	}
	return strings.Join(names, ", ")
}

// unavailableLanguages returns the codes the talk lists no transcript for.
// A talk without a language list may have any language.
func unavailableLanguages(t domain.Talk, codes []string) []string {
	if len(t.Languages) == 0 {
		return nil
	}
	var missing []string
	for _, c := range codes {
		if !t.HasTranscriptLanguage(c) {
			missing = append(missing, c)
		}
	}
	return missing
}

func warnUnavailable(w io.Writer, t domain.Talk, codes []string) {
	if missing := unavailableLanguages(t, codes); len(missing) > 0 {
		writeLine(w, "warning: %s lists no transcript in %s", t.Slug, strings.Join(missing, ", "))
	}
}

func writeLine(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
}
