package main

import (
	"fmt"
	"io"

	"github.com/javaBin/talks-browser/internal/domain"
	"github.com/spf13/cobra"
)

func newTranscriptCommand(ctx *commandContext) *cobra.Command {
	var format string
	var languages []string

	cmd := &cobra.Command{
		Use:   "transcript <slug>",
		Short: "Print the transcript of a talk",
		Long: "Print the transcript of a talk. Repeat --lang to ask for several languages;\n" +
			"without --lang the configured default language is used.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = ctx.config.Transcript.DefaultFormat
			}

			talk, err := ctx.store.GetBySlug(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			for _, code := range languages {
				if ctx.store.IsLanguageSelected(code) {
					continue
				}
				if err := ctx.store.SelectLanguage(code); err != nil {
					return err
				}
			}

			warnUnavailable(cmd.ErrOrStderr(), talk, ctx.store.TranscriptLanguages())

			transcript, err := ctx.store.GetTranscript(cmd.Context(), domain.TranscriptFormat(format))
			if err != nil {
				return err
			}

			_, err = io.WriteString(cmd.OutOrStdout(), transcript)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", fmt.Sprintf("Transcript format %v (default from TRANSCRIPT_DEFAULT_FORMAT)", domain.KnownFormats))
	cmd.Flags().StringSliceVarP(&languages, "lang", "l", nil, "Language code, repeatable")

	return cmd
}
