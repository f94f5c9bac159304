// Package pipeline provides the decode, resolve and render pipeline shared by
// the CLI and the HTTP server.
//
// # Architecture
//
// A run has three stages:
//
//  1. Decode: parse a TOML, YAML or JSON document
//  2. Resolve: build the area tree on an SVG surface, resolve it and draw
//     the document's annotations
//  3. Render: produce the requested formats (svg, json, pdf, png, dot, tree)
//
// The stages are exported so callers can stop early, for example to inspect
// a resolved tree without rendering it.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Document: data,
//	    Syntax:   "toml",
//	    Formats:  []string{"svg", "json"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/slidegrid/pkg/cache"
	"github.com/matzehuels/slidegrid/pkg/document"
	"github.com/matzehuels/slidegrid/pkg/errors"
	"github.com/matzehuels/slidegrid/pkg/render/styles"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultScale is the PNG pixel density multiplier.
	DefaultScale = 2.0

	// DefaultStyle is used when neither the options nor the document name one.
	DefaultStyle = "simple"

	// DefaultTTL is how long rendered artifacts stay cached.
	DefaultTTL = 7 * 24 * time.Hour
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatTree = "tree"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatTree: true,
}

// ContentTypes maps each format to its MIME type.
var ContentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatPDF:  "application/pdf",
	FormatJSON: "application/json",
	FormatDOT:  "text/vnd.graphviz",
	FormatTree: "image/svg+xml",
}

// FormatNames returns the supported formats in a stable order.
func FormatNames() []string {
	return slices.Sorted(func(yield func(string) bool) {
		for f := range ValidFormats {
			if !yield(f) {
				return
			}
		}
	})
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Document is the raw document and Syntax its serialization.
	Document []byte `json:"-"`
	Syntax   string `json:"syntax"`

	Formats []string `json:"formats,omitempty"`

	// Style overrides the document's style when set.
	Style string `json:"style,omitempty"`

	// Debug outlines and labels every area, not only those the document marks.
	Debug bool `json:"debug,omitempty"`

	// Scale is the PNG pixel density.
	Scale float64 `json:"scale,omitempty"`

	// Inches adds inch coordinates to the JSON export.
	Inches bool `json:"inches,omitempty"`

	// TTL bounds how long results stay cached. Refresh skips the cache
	// lookup but still stores the new result.
	TTL     time.Duration `json:"-"`
	Refresh bool          `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this run in logs and HTTP responses.
	RunID string

	// Title is the document title, empty if it has none.
	Title string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats Stats

	// CacheHit reports whether the artifacts came from the cache.
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount   int
	Annotations int
	DecodeTime  time.Duration
	ResolveTime time.Duration
	RenderTime  time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(FormatNames(), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid. The empty string selects the
// default style.
func ValidateStyle(style string) error {
	if _, ok := styles.ByName(style); !ok {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid style: %q (must be one of: %s)", style, strings.Join(styles.Names(), ", "))
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Document) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "document is empty")
	}
	syntax, err := document.ParseSyntax(o.Syntax)
	if err != nil {
		return err
	}
	o.Syntax = string(syntax)

	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	o.Formats = dedupe(o.Formats)
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Style != "" {
		if err := ValidateStyle(o.Style); err != nil {
			return err
		}
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	if o.TTL <= 0 {
		o.TTL = DefaultTTL
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// KeyOpts returns cache key options for this run.
func (o *Options) KeyOpts() cache.RenderKeyOpts {
	return cache.RenderKeyOpts{
		Syntax:  o.Syntax,
		Formats: o.Formats,
		Debug:   o.Debug,
		Scale:   o.Scale,
		Style:   o.Style,
		Inches:  o.Inches,
	}
}

func dedupe(formats []string) []string {
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}
