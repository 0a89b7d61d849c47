package order

// CakeDesign is the design snapshot bound to an order at creation time. The
// design tool owns the live, editable design; the order keeps a value copy so
// later edits to the template never retroactively change an existing order.
//
// The snapshot is treated as opaque by the lifecycle rules: none of its
// fields participate in transitions or windows.
type CakeDesign struct {
	ID          string
	Name        string
	Shape       string
	Layers      []CakeLayer
	Buttercream Buttercream
	Toppings    []string
	TopText     string
}

// CakeLayer describes one tier of the cake.
type CakeLayer struct {
	Flavor        string
	Color         string
	TopDesign     string
	Frosting      string
	FrostingColor string
}

// Buttercream describes the outer coating.
type Buttercream struct {
	Flavor string
	Color  string
}

// clone returns a deep copy so the aggregate never aliases caller-owned
// slices.
func (d CakeDesign) clone() CakeDesign {
	copied := d
	if d.Layers != nil {
		copied.Layers = make([]CakeLayer, len(d.Layers))
		copy(copied.Layers, d.Layers)
	}
	if d.Toppings != nil {
		copied.Toppings = make([]string, len(d.Toppings))
		copy(copied.Toppings, d.Toppings)
	}
	return copied
}
