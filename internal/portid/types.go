package portid

// Port is the structured form of a port address.
type Port struct {
	Node string
	// Port is empty when the address names the pass itself.
	Port string
}

// New creates a port address for a channel of a node.
func New(node, port string) Port {
	return Port{Node: node, Port: port}
}

// NodeOnly creates an address that names a pass without a channel.
func NodeOnly(node string) Port {
	return Port{Node: node}
}

// IsNodeOnly returns true if the address does not name a channel.
func (p Port) IsNodeOnly() bool {
	return p.Port == ""
}

// String serializes the address into its canonical `node.port` form.
func (p Port) String() string {
	if p.Port == "" {
		return p.Node
	}
	return p.Node + "." + p.Port
}
