package harness

import (
	"context"

	"github.com/vectorforge/svgcore/cerr"
	"github.com/vectorforge/svgcore/config"
	"github.com/vectorforge/svgcore/decimal"
	"github.com/vectorforge/svgcore/dom"
	"github.com/vectorforge/svgcore/geom"
	"github.com/vectorforge/svgcore/log"
	"github.com/vectorforge/svgcore/pathdata"
	"github.com/vectorforge/svgcore/rewrite"
	"github.com/vectorforge/svgcore/validate"
)

// Harness is the uniform operation wrapper: one instance carries the
// options every load/run/emit step needs, so callers configure it once (per
// spec.md §7's "no persisted state" design, Options still travels explicitly
// through every call rather than living on a package global).
type Harness struct {
	Opts   config.Options
	loader *dom.ResourceLoader
}

// New builds a Harness with a base URL/path resolution root (may be empty)
// and the given options.
func New(baseURL string, opts config.Options) *Harness {
	rl := dom.NewResourceLoader(baseURL)
	rl.Timeout = opts.FetchTimeoutOrDefault()
	return &Harness{Opts: opts, loader: rl}
}

// Load resolves input to an element tree per spec.md §4.6's input
// discriminator, reusing dom.ResourceLoader for the file/URL branches
// (grounded on dom/loader.go, the teacher's own resource-fetch wrapper) and
// dom.Node.QuerySelector for the selector branch. domCtx is the DOM-capable
// context a selector string resolves against; nil if none is available,
// which demotes a leading '#'/'.'/'[' string to a file path per §4.6 rule 4's
// "in a DOM-capable context" qualifier. source is the original markup text,
// empty when input arrived as an already-parsed tree or a resolved selector.
func (h *Harness) Load(ctx context.Context, input any, domCtx *dom.Node) (node *dom.Node, source string, kind InputKind, err error) {
	kind = Classify(input, domCtx != nil)
	switch kind {
	case KindElementTree:
		n, ok := input.(*dom.Node)
		if !ok {
			return nil, "", kind, cerr.New(cerr.MalformedInput, "element-tree input must be a *dom.Node")
		}
		return n, "", kind, nil

	case KindMarkup:
		s := input.(string)
		n, err := ParseMarkup(s)
		if err != nil {
			return nil, "", kind, err
		}
		return n, s, kind, nil

	case KindSelector:
		s := input.(string)
		n := domCtx.QuerySelector(s)
		if n == nil {
			return nil, "", kind, cerr.Newf(cerr.MalformedInput, "selector %q matched no element", s)
		}
		return n, "", kind, nil

	default: // KindURL, KindFilePath
		s := input.(string)
		data, err := h.loader.LoadResourceContext(ctx, s)
		if err != nil {
			return nil, "", kind, err
		}
		text := string(data)
		n, err := ParseMarkup(text)
		if err != nil {
			return nil, "", kind, err
		}
		return n, text, kind, nil
	}
}

// recoverLoadError applies Options.OnResourceFailure to a Load error: a
// ResourceFailure under FailSkip/FailWarn becomes a no-op (nil tree, nil
// error) rather than aborting the operation, per spec.md §7's "Resource
// failures are caught by the wrapping adapter only when the caller requested
// a non-fail policy". Any other error kind always propagates.
func (h *Harness) recoverLoadError(err error) (*dom.Node, error) {
	if !cerr.Is(err, cerr.ResourceFailure) {
		return nil, err
	}
	switch h.Opts.OnResourceFailure {
	case config.FailSkip:
		return nil, nil
	case config.FailWarn:
		log.Warnf("resource failure, skipping operation: %v", err)
		return nil, nil
	default:
		return nil, err
	}
}

// Emit renders an element tree back to the caller's requested shape.
// OutputMatchInput reuses inputKind: a tree/selector input stays a tree,
// anything textual round-trips back to markup.
func (h *Harness) Emit(n *dom.Node, requested OutputKind, inputKind InputKind) (any, error) {
	kind := requested
	if kind == OutputMatchInput {
		if inputKind == KindElementTree || inputKind == KindSelector {
			kind = OutputElementTree
		} else {
			kind = OutputMarkup
		}
	}
	switch kind {
	case OutputElementTree:
		return n, nil
	case OutputMarkup:
		return Serialize(n), nil
	case OutputXMLDocument:
		return "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n" + Serialize(n), nil
	default:
		return nil, cerr.Newf(cerr.UnsupportedFormat, "unknown output kind %d", int(kind))
	}
}

// RunValidate is the C5 wiring: load input, call validate.Validate, and
// return its Report directly (the validator itself owns output rendering via
// Report.Format — the harness's job ends at dispatch).
func (h *Harness) RunValidate(ctx context.Context, input any, domCtx *dom.Node) (validate.Report, error) {
	node, source, _, err := h.Load(ctx, input, domCtx)
	if err != nil {
		recovered, rerr := h.recoverLoadError(err)
		if rerr != nil || recovered == nil {
			return validate.Report{}, rerr
		}
		node = recovered
	}
	return validate.Validate(node, source, h.Opts)
}

// RunRewrite is the C4 wiring: load input, run the default rewrite pipeline
// over every path/shape element's geometry in place, and emit per output.
// Shapes are lowered to path commands (pathdata.ToPath) before rewriting and
// left as a rewritten `d` on a <path> element — SVGO-style toolchains make
// the same substitution, since the rewriter's passes only understand path
// command streams, not shape-specific attributes.
func (h *Harness) RunRewrite(ctx context.Context, input any, domCtx *dom.Node, output OutputKind) (any, error) {
	node, _, kind, err := h.Load(ctx, input, domCtx)
	if err != nil {
		recovered, rerr := h.recoverLoadError(err)
		if rerr != nil || recovered == nil {
			return nil, rerr
		}
		node = recovered
	}

	rctx := decimal.Context{Precision: h.Opts.PrecisionOrDefault()}
	tol, err := decimal.Parse(h.Opts.ToleranceOrDefault())
	if err != nil {
		return nil, cerr.Wrap(cerr.ConfigurationError, "parsing tolerance", err)
	}
	ropts := rewrite.Options{Context: rctx, Tolerance: tol, FractionalDigits: 6}

	dom.Walk(node, func(el *dom.Node) {
		if el.Type != dom.ElementNode {
			return
		}
		h.rewriteElement(el, rctx, ropts)
	})

	return h.Emit(node, output, kind)
}

// rewriteElement runs the rewrite pipeline over one element's path data,
// writing the result back to its `d` attribute (lowering a basic shape to a
// path first, so every geometry-bearing element flows through one pipeline).
func (h *Harness) rewriteElement(el *dom.Node, rctx decimal.Context, ropts rewrite.Options) {
	var commands []pathdata.Command
	switch el.TagName() {
	case "path":
		if !el.HasAttribute("d") {
			return
		}
		cmds, err := pathdata.ParsePath(el.GetAttribute("d"))
		if err != nil {
			log.Warnf("skipping unparseable path: %v", err)
			return
		}
		commands = cmds
	case "rect", "circle", "ellipse", "line", "polygon", "polyline":
		shape, err := parseShape(el)
		if err != nil {
			log.Warnf("skipping unparseable shape <%s>: %v", el.TagName(), err)
			return
		}
		commands = pathdata.ToPath(shape, rctx)
	default:
		return
	}

	rewritten, _ := rewrite.Pipeline(commands, ropts)
	serialized := pathdata.Serialize(rewritten, pathdata.SerializeOptions{FractionalDigits: 6})

	if el.TagName() != "path" {
		stripShapeAttributes(el)
		el.SetAttribute("d", serialized)
		el.Data = "path"
		return
	}
	el.SetAttribute("d", serialized)
}

// ElementBBox is the C3 wiring: compute a conservative bounding box for a
// path or basic shape element, dispatching to geom.PathBBox/ShapeBBox
// depending on which geometry the element carries.
func (h *Harness) ElementBBox(el *dom.Node) (geom.BoundingBox, error) {
	rctx := decimal.Context{Precision: h.Opts.PrecisionOrDefault()}
	tol, err := decimal.Parse(h.Opts.ToleranceOrDefault())
	if err != nil {
		return geom.BoundingBox{}, cerr.Wrap(cerr.ConfigurationError, "parsing tolerance", err)
	}

	if el.TagName() == "path" {
		commands, err := pathdata.ParsePath(el.GetAttribute("d"))
		if err != nil {
			return geom.BoundingBox{}, err
		}
		return geom.PathBBox(commands, rctx, tol), nil
	}
	shape, err := parseShape(el)
	if err != nil {
		return geom.BoundingBox{}, err
	}
	return geom.ShapeBBox(shape, rctx), nil
}

func parseShape(el *dom.Node) (pathdata.Shape, error) {
	switch el.TagName() {
	case "rect":
		return pathdata.ParseRect(el)
	case "circle":
		return pathdata.ParseCircle(el)
	case "ellipse":
		return pathdata.ParseEllipse(el)
	case "line":
		return pathdata.ParseLine(el)
	case "polygon":
		return pathdata.ParsePolygon(el)
	case "polyline":
		return pathdata.ParsePolyline(el)
	default:
		return nil, cerr.Newf(cerr.MalformedInput, "<%s> is not a recognized shape", el.TagName())
	}
}

func stripShapeAttributes(el *dom.Node) {
	for _, attr := range []string{"x", "y", "width", "height", "rx", "ry", "r", "cx", "cy", "x1", "y1", "x2", "y2", "points"} {
		el.RemoveAttribute(attr)
	}
}
