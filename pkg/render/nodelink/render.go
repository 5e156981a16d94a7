package nodelink

import (
	"context"
	"time"

	"github.com/matzehuels/initstate/pkg/cache"
	"github.com/matzehuels/initstate/pkg/errors"
	"github.com/matzehuels/initstate/pkg/linkgraph"
	"github.com/matzehuels/initstate/pkg/observability"
	"github.com/matzehuels/initstate/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes type, width and metadata in node labels.
	// When false, only the panel ID is shown.
	Detailed bool

	// Title is the page title of interactive output.
	Title string

	// Cache stores rendered SVGs keyed by the DOT source. Nil disables
	// caching.
	Cache cache.Cache

	// Keyer derives cache keys. Nil uses the default keyer.
	Keyer cache.Keyer

	// TTL of cached renders. Zero uses cache.DefaultTTL.
	TTL time.Duration
}

// Output is the result of [Render].
type Output struct {
	Graph     *linkgraph.Graph // Always set
	Format    render.Format
	Data      []byte // Rendered bytes; nil for render.FormatNone
	MediaType string // MIME type of Data
	Cached    bool   // Data was served from Options.Cache
}

// Render draws g in the requested format. The graph itself is always
// returned in Output.Graph, so callers asking for [render.FormatNone] get
// the graph without paying for a render.
func Render(ctx context.Context, g *linkgraph.Graph, format render.Format, opts Options) (*Output, error) {
	out := &Output{Graph: g, Format: format, MediaType: format.MediaType()}

	switch format {
	case render.FormatNone:
		return out, nil

	case render.FormatInteractive:
		data, err := RenderHTML(g, opts)
		if err != nil {
			return nil, err
		}
		out.Data = data
		return out, nil

	case render.FormatStatic:
		data, hit, err := renderStatic(ctx, g, opts)
		if err != nil {
			return nil, err
		}
		out.Data, out.Cached = data, hit
		return out, nil
	}

	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown render format %q", format)
}

func renderStatic(ctx context.Context, g *linkgraph.Graph, opts Options) ([]byte, bool, error) {
	dot := ToDOT(g, opts)
	if opts.Cache == nil {
		svg, err := RenderSVG(ctx, dot)
		return svg, false, err
	}

	keyer := opts.Keyer
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	key := keyer.ArtifactKey(cache.Hash([]byte(dot)), cache.ArtifactKeyOpts{
		Kind:     "network",
		Format:   "svg",
		Detailed: opts.Detailed,
	})
	ttl := opts.TTL
	if ttl == 0 {
		ttl = cache.DefaultTTL
	}
	data, hit, err := cache.Memo(ctx, opts.Cache, key, ttl, func() ([]byte, error) {
		return RenderSVG(ctx, dot)
	})
	if err != nil {
		return nil, false, err
	}

	hooks := observability.Cache()
	if hit {
		hooks.OnCacheHit(ctx, "network")
	} else {
		hooks.OnCacheMiss(ctx, "network")
		hooks.OnCacheSet(ctx, "network", len(data))
	}
	return data, hit, nil
}
