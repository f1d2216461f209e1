package scene

// MeshCacheProvider stores the renderer list discovered for each part so the
// walker does not search the part model every frame.
type MeshCacheProvider interface {
	CachedRenderers(n *Node) ([]*MeshRenderer, bool)
	StoreRenderers(n *Node, rs []*MeshRenderer)
}

// RendererCache is a map-backed MeshCacheProvider.
type RendererCache struct {
	entries map[*Node][]*MeshRenderer
}

// NewRendererCache creates an empty cache.
func NewRendererCache() *RendererCache {
	return &RendererCache{entries: make(map[*Node][]*MeshRenderer)}
}

// CachedRenderers returns the stored list for n.
func (c *RendererCache) CachedRenderers(n *Node) ([]*MeshRenderer, bool) {
	rs, ok := c.entries[n]
	return rs, ok
}

// StoreRenderers remembers rs for n.
func (c *RendererCache) StoreRenderers(n *Node, rs []*MeshRenderer) {
	c.entries[n] = rs
}

// Forget drops every entry, e.g. after the host swaps assemblies.
func (c *RendererCache) Forget() {
	clear(c.entries)
}

// Len returns the number of cached parts.
func (c *RendererCache) Len() int {
	return len(c.entries)
}

// Renderers resolves the renderer list for n through p, discovering and
// storing it on a miss.
func Renderers(p MeshCacheProvider, n *Node) []*MeshRenderer {
	if p == nil {
		return n.Renderers
	}
	if rs, ok := p.CachedRenderers(n); ok {
		return rs
	}
	rs := n.Renderers
	p.StoreRenderers(n, rs)
	return rs
}
