package prayertimes

// Context is the façade of §4.J: a location/method pinned once, computed
// against many dates without re-specifying Latitude/Longitude/Method on
// every call. Because Engine's config cache keys off every field except
// DateMs, repeated Context.Compute calls with only DateMs varying always
// hit the cache after the first call.
type Context struct {
	engine *Engine
	base   Configuration
}

// NewContext pins base's non-date fields and returns a Context bound to
// engine. base.DateMs is ignored; each Compute call supplies its own date.
func NewContext(engine *Engine, base Configuration) *Context {
	return &Context{engine: engine, base: base}
}

// Compute runs the kernel for dateMs using the Context's pinned location
// and method.
func (c *Context) Compute(dateMs float64) Output {
	cfg := c.base
	cfg.DateMs = dateMs
	return c.engine.Compute(cfg)
}

// Configuration returns the Context's pinned configuration (with DateMs
// zeroed, since it carries none of its own).
func (c *Context) Configuration() Configuration {
	cfg := c.base
	cfg.DateMs = 0
	return cfg
}
