package main

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

func editImageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit-image <file>",
		Short: "Edit an image with a text instruction",
		Long: `Send an image and an instruction to the image model and save the result.

Example:
  serpsim edit-image banner.png --prompt "add a retro filter" --out banner-retro.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt, _ := cmd.Flags().GetString("prompt")
			outPath, _ := cmd.Flags().GetString("out")
			if strings.TrimSpace(prompt) == "" {
				return fmt.Errorf("--prompt flag is required")
			}

			data, err := os.ReadFile(filepath.Clean(args[0]))
			if err != nil {
				return fmt.Errorf("reading image: %w", err)
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			img, err := a.research().EditImage(cmd.Context(), data, mime.TypeByExtension(filepath.Ext(args[0])), prompt)
			if err != nil {
				return err
			}

			if outPath == "" {
				outPath = editedName(args[0], img.MimeType)
			}
			if err := os.WriteFile(outPath, img.Data, 0o644); err != nil {
				return fmt.Errorf("writing image: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imagem salva em %s (%s, %d bytes)\n", outPath, img.MimeType, len(img.Data))
			renderCost(cmd.OutOrStdout(), a.costs.Summary())
			return nil
		},
	}
	cmd.Flags().StringP("prompt", "p", "", "editing instruction")
	cmd.Flags().StringP("out", "o", "", "output file (default: <name>-edited.<ext>)")
	return cmd
}

var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// editedName derives "<base>-edited<ext>", taking the extension from the
// returned mime type when it is a known image type.
func editedName(path, mimeType string) string {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	ext, ok := imageExtensions[mimeType]
	if !ok {
		ext = filepath.Ext(path)
	}
	return base + "-edited" + ext
}
