package blockinsert

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Insert block definitions into a model document"
	MsgListShort       = "List the block definitions of the document"
	MsgListLong        = "List displays the definitions an insert can use, sorted by name. The definition last inserted is marked."
	MsgResolveShort    = "Show how a model file matches existing definitions"
	MsgInsertShort     = "Insert a block definition or a model file"
	MsgPreviewShort    = "Write the preview image of a definition or file"
	MsgInitShort       = "Create an empty definition table"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgInsertCancelled = "Insert cancelled, nothing was changed."
	MsgNothingInserted = "Nothing was inserted."
	MsgPreviewWritten  = "Preview written to %s"
	MsgTableCreated    = "Created definition table %s for %s"
	MsgVersionFormat   = "blockinsert %s (commit %s, built %s)\n"

	// Error messages
	MsgErrNoTarget      = "either a file or --block is required"
	MsgErrBothTargets   = "a file and --block can not be used together"
	MsgErrNoPreview     = "no preview available for %s"
	MsgErrTableExists   = "definition table %s already exists"
	MsgErrInvalidSize   = "invalid size %q, expected WIDTHxHEIGHT"
	MsgErrUnknownFormat = "invalid --format: %w"
	MsgErrBlankName     = "--name can not be blank"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagTable       = "Definition table snapshot (.toml, .yaml or .yml)"
	MsgFlagConfig      = "Configuration file (default $XDG_CONFIG_HOME/blockinsert/config.toml)"
	MsgFlagFormat      = "Output format: auto, term, text or json"
	MsgFlagNoColor     = "Disable colored output"
	MsgFlagHidden      = "Include hidden definitions"
	MsgFlagBlock       = "Name of an existing definition"
	MsgFlagAs          = "Insert as block, group or objects"
	MsgFlagUpdateType  = "Update type of new definitions: static, embedded, linked or linked_and_embedded"
	MsgFlagLayerStyle  = "Layer style of linked definitions: active or reference"
	MsgFlagSkipNested  = "Skip nested linked definitions"
	MsgFlagName        = "Name of the new definition"
	MsgFlagYes         = "Answer yes to every question"
	MsgFlagAccept      = "Accept the block properties without asking"
	MsgFlagOutput      = "PNG file to write"
	MsgFlagSize        = "Preview size as WIDTHxHEIGHT (default from configuration)"
	MsgFlagProjection  = "Preview projection: top, bottom, left, right, front, back or perspective"
	MsgFlagDisplayMode = "Preview display mode: wireframe, shaded or rendered"
	MsgFlagDocument    = "Path of the model document the table belongs to"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/insert-long.txt
	msgInsertLongRaw string
	MsgInsertLong    = strings.TrimSpace(msgInsertLongRaw)

	//go:embed msgs/insert-example.txt
	msgInsertExampleRaw string
	MsgInsertExample    = strings.TrimRight(msgInsertExampleRaw, "\n")

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/resolve-long.txt
	msgResolveLongRaw string
	MsgResolveLong    = strings.TrimSpace(msgResolveLongRaw)

	//go:embed msgs/preview-long.txt
	msgPreviewLongRaw string
	MsgPreviewLong    = strings.TrimSpace(msgPreviewLongRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/usage-template.txt
	MsgUsageTemplate string
)
