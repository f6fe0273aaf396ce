package cli

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saintgo7/web-abada-pamout/internal/assist"
	"github.com/saintgo7/web-abada-pamout/internal/cli/formatter"
	"github.com/saintgo7/web-abada-pamout/internal/genai"
	"github.com/saintgo7/web-abada-pamout/internal/i18n"
)

func newVideoCmd(app *App) *cobra.Command {
	var imagePath, aspect, outPath string

	cmd := &cobra.Command{
		Use:   "video PROMPT",
		Short: "Generate a video from a prompt",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Video == nil {
				fmt.Println(i18n.T(app.Lang, "chat.keyMissing"))
				return nil
			}

			req := genai.VideoRequest{
				Prompt:      strings.Join(args, " "),
				AspectRatio: aspect,
			}
			if imagePath != "" {
				data, err := os.ReadFile(imagePath)
				if err != nil {
					return fmt.Errorf("read reference image: %w", err)
				}
				req.ImageBytes = data
				req.ImageMIMEType = mime.TypeByExtension(filepath.Ext(imagePath))
			}

			stop := formatter.StartSpinner(i18n.T(app.Lang, "chat.videoGenerating"))
			resp, err := app.Video.Generate(cmd.Context(), req)
			stop()
			if err != nil {
				switch {
				case errors.Is(err, assist.ErrGenerationInFlight):
					fmt.Println(i18n.T(app.Lang, "chat.videoBusy"))
					return nil
				case errors.Is(err, genai.ErrInvalidAPIKey):
					fmt.Println(i18n.T(app.Lang, "chat.keyError"))
					return nil
				case errors.Is(err, context.Canceled):
					return err
				}
				fmt.Println(i18n.T(app.Lang, "chat.videoFailed"))
				return err
			}

			out := outPath
			if out == "" {
				out = "pamout-video.mp4"
			}
			if err := os.WriteFile(out, resp.Data, 0o644); err != nil {
				return fmt.Errorf("write video file: %w", err)
			}

			fmt.Printf("Saved %s (%d bytes, %s)\n", out, len(resp.Data), resp.MIMEType)
			return nil
		},
	}

	cmd.Flags().StringVar(&imagePath, "image", "", "Reference image file")
	cmd.Flags().StringVar(&aspect, "aspect", "16:9", "Aspect ratio (16:9|9:16)")
	cmd.Flags().StringVar(&outPath, "out", "", "Output file (default pamout-video.mp4)")

	return cmd
}
