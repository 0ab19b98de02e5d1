package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"uxo-chatbot/internal/app"
)

func newIngestCmd(opts *rootOptions) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Index .txt and .md documents into the vector store",
		Long:  "Cleans, classifies and chunks every .txt and .md file under --dir, embeds the chunks and upserts them into Qdrant.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, l, err := opts.load()
			if err != nil {
				return err
			}
			documents, err := app.NewDocuments(cfg, l)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Ingesting %s into collection %s\n", dir, cfg.Qdrant.CollectionName)
			res, err := documents.Ingest(cmd.Context(), dir)
			if err != nil {
				return fmt.Errorf("ingest: %w", err)
			}
			fmt.Fprintf(out, "Indexed %d chunks from %d files", res.Chunks, res.Files)
			if len(res.Skipped) > 0 {
				fmt.Fprintf(out, " (skipped %d empty files)", len(res.Skipped))
			}
			fmt.Fprintln(out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "data/raw", "directory holding source documents")
	return cmd
}
