package blockinsert

import (
	"embed"
	"io/fs"

	"github.com/johnmorse/rhinoinsertcommand/pkg/cobrax/topics"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// installTopics adds the embedded help topics to root
func installTopics(root *cobra.Command) {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}
	m, err := topics.Load(sub, topics.Options{Renderer: topics.NewGlamourRenderer()})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}
	topics.Install(root, m)
	root.SetHelpCommandGroupID("misc")
}
