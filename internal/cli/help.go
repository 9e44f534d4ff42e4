package cli

import (
	"embed"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/electron-kit/pkg/cobrax/topics"
	"github.com/arthur-debert/electron-kit/pkg/ui"
)

//go:embed topics/*.md
var topicsFS embed.FS

// setupTopics installs the topic-aware help command on rootCmd
func setupTopics(rootCmd *cobra.Command, g *globalOptions) error {
	source, err := fs.Sub(topicsFS, "topics")
	if err != nil {
		return err
	}

	glamour := topics.NewGlamourRenderer()
	renderer := topics.RendererFunc(func(content, format string) string {
		if g.noColor || ui.DetectFormat(os.Stdout) != ui.FormatTerminal {
			return content
		}
		return glamour.Render(content, format)
	})

	_, err = topics.InitializeWithOptions(rootCmd, source, topics.Options{
		Extensions: []string{".md"},
		Renderer:   renderer,
	})
	return err
}
