package template

import (
	"os"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/menoncello/nimata-sub006/pkg/errors"
	"github.com/menoncello/nimata-sub006/pkg/logging"
	"github.com/menoncello/nimata-sub006/pkg/registry"
)

var log = logging.GetLogger("template.engine")

// DefaultCacheSize is the parse-cache capacity used when the caller does
// not supply one.
const DefaultCacheSize = 128

// Engine renders templates against a context. Each engine owns its helper
// registry and an LRU cache of parsed templates; two engines never share
// helper registrations.
type Engine struct {
	helpers registry.Registry[HelperFunc]
	cache   *lru.Cache[string, []node]
}

// New creates an engine with the builtin helpers registered and a parse
// cache of the given capacity (DefaultCacheSize when non-positive).
func New(cacheSize int) *Engine {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, []node](cacheSize)
	if err != nil {
		// lru.New only fails for a non-positive size, which is clamped above
		panic(err)
	}

	e := &Engine{
		helpers: registry.New[HelperFunc](),
		cache:   cache,
	}
	for name, fn := range builtinHelpers() {
		registry.MustRegister(e.helpers, name, fn)
	}
	return e
}

// RegisterHelper adds or replaces a helper. The last registration for a
// name wins.
func (e *Engine) RegisterHelper(name string, fn HelperFunc) {
	if err := e.helpers.Put(name, fn); err != nil {
		log.Debug().Str("helper", name).Err(err).Msg("Ignoring invalid helper registration")
	}
}

// Helpers returns the registered helper names.
func (e *Engine) Helpers() []string {
	return e.helpers.List()
}

// Render renders a template string against a context. It never fails:
// malformed constructs degrade per placeholder instead of aborting, so the
// result is always a complete document. Given the same template, context,
// and helper set, the output is byte-identical across calls.
func (e *Engine) Render(source string, ctx Context) string {
	nodes := e.parsed(source)

	var sb strings.Builder
	r := &renderer{helpers: e.helpers}
	r.renderNodes(&sb, nodes, ctx)
	return sb.String()
}

// RenderFile loads a template from disk and renders it. Loading is the
// only failure point; render-time problems still degrade softly.
func (e *Engine) RenderFile(path string, ctx Context) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(err, errors.ErrTemplateNotFound,
				"template not found: %s", path).
				WithSuggestion("check the path or run 'nimata templates list' to see known templates")
		}
		return "", errors.Wrapf(err, errors.ErrTemplateUnreadable,
			"cannot read template: %s", path)
	}

	log.Trace().Str("path", path).Int("bytes", len(data)).Msg("Rendering template file")
	return e.Render(string(data), ctx), nil
}

// parsed returns the cached block tree for a template source, parsing and
// caching on miss. Parsed trees are immutable, so sharing them across
// renders is safe.
func (e *Engine) parsed(source string) []node {
	if nodes, ok := e.cache.Get(source); ok {
		return nodes
	}
	nodes := parse(lex(source))
	e.cache.Add(source, nodes)
	return nodes
}
