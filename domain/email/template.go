package email

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/aymerick/raymond"

	"github.com/gogetwell/website/pkg/logger"
)

//go:embed templates
var templateFS embed.FS

// TemplateService renders Handlebars email templates embedded in the binary.
//
// Layout:
//   - templates/layouts/*.hbs wrap rendered content via {{content}}
//   - templates/*.hbs are the message bodies
type TemplateService struct {
	log       *slog.Logger
	templates map[string]*raymond.Template
	layouts   map[string]*raymond.Template
}

// TemplateRenderResult contains the rendered email content
type TemplateRenderResult struct {
	HTML string
	Text string
}

// TemplateContext is the data passed to templates
type TemplateContext map[string]any

// NewTemplateService parses every embedded template up front.
func NewTemplateService(log *slog.Logger) (*TemplateService, error) {
	return newTemplateService(templateFS, "templates", log)
}

func newTemplateService(fsys fs.FS, root string, log *slog.Logger) (*TemplateService, error) {
	ts := &TemplateService{
		log:       log.With(logger.Scope("email.template")),
		templates: make(map[string]*raymond.Template),
		layouts:   make(map[string]*raymond.Template),
	}
	if err := ts.load(fsys, root, ts.templates); err != nil {
		return nil, err
	}
	if err := ts.load(fsys, path.Join(root, "layouts"), ts.layouts); err != nil {
		return nil, err
	}

	ts.log.Debug("loaded email templates",
		slog.Int("templates", len(ts.templates)),
		slog.Int("layouts", len(ts.layouts)))
	return ts, nil
}

func (ts *TemplateService) load(fsys fs.FS, dir string, into map[string]*raymond.Template) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("read template dir %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".hbs") {
			continue
		}
		content, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return err
		}
		tmpl, err := raymond.Parse(string(content))
		if err != nil {
			return fmt.Errorf("failed to parse template %s: %w", entry.Name(), err)
		}
		into[strings.TrimSuffix(entry.Name(), ".hbs")] = tmpl
	}
	return nil
}

// Render renders templateName, optionally wrapped in layoutName.
func (ts *TemplateService) Render(templateName string, ctx TemplateContext, layoutName string) (*TemplateRenderResult, error) {
	tmpl, ok := ts.templates[templateName]
	if !ok {
		return nil, fmt.Errorf("template not found: %s", templateName)
	}

	content, err := tmpl.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to render template %s: %w", templateName, err)
	}

	if layoutName != "" {
		layout, ok := ts.layouts[layoutName]
		if !ok {
			return nil, fmt.Errorf("layout not found: %s", layoutName)
		}
		layoutCtx := make(TemplateContext, len(ctx)+1)
		for k, v := range ctx {
			layoutCtx[k] = v
		}
		layoutCtx["content"] = raymond.SafeString(content)

		content, err = layout.Exec(layoutCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to render layout %s: %w", layoutName, err)
		}
	}

	return &TemplateRenderResult{
		HTML: content,
		Text: plainText(ctx),
	}, nil
}

// HasTemplate checks if a template exists
func (ts *TemplateService) HasTemplate(name string) bool {
	_, ok := ts.templates[name]
	return ok
}

// plainText prefers an explicit plainText entry and otherwise joins the
// common fields.
func plainText(ctx TemplateContext) string {
	if s, ok := ctx["plainText"].(string); ok && s != "" {
		return s
	}
	var parts []string
	for _, key := range []string{"title", "message"} {
		if s, ok := ctx[key].(string); ok && s != "" {
			parts = append(parts, s, "")
		}
	}
	return strings.Join(parts, "\n")
}
