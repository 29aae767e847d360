package models

// EmployeeRole is one staffing line of a production method. Counts are the
// headcount at building level 1; wages are currency per year per unit.
type EmployeeRole struct {
	Name  string
	Wage  float64
	Count int
}

// ProductionMethod is a named, swappable configuration of what a building
// produces and consumes per level, and who it employs.
type ProductionMethod struct {
	Name        string
	Production  map[GoodType]float64
	Consumption map[GoodType]float64
	Employees   []EmployeeRole
}

// BuildingKind describes one kind of building as data: its build cost and
// the closed set of production methods it can run. A kind replaces what
// would otherwise be one type per resource.
type BuildingKind struct {
	Name          string
	DisplayName   string
	BuildCost     float64
	Methods       []ProductionMethod
	DefaultMethod string
}

// Method returns the named production method, if defined for this kind
func (k *BuildingKind) Method(name string) (*ProductionMethod, bool) {
	for i := range k.Methods {
		if k.Methods[i].Name == name {
			return &k.Methods[i], true
		}
	}
	return nil, false
}

// MethodNames returns the method names in definition order
func (k *BuildingKind) MethodNames() []string {
	names := make([]string, len(k.Methods))
	for i := range k.Methods {
		names[i] = k.Methods[i].Name
	}
	return names
}

// MethodIndex returns the position of a method in definition order, or -1
func (k *BuildingKind) MethodIndex(name string) int {
	for i := range k.Methods {
		if k.Methods[i].Name == name {
			return i
		}
	}
	return -1
}

// KindCatalog is an immutable lookup of building kinds, iterated in
// registration order so every traversal is deterministic.
type KindCatalog struct {
	kinds  []*BuildingKind
	byName map[string]*BuildingKind
}

// NewKindCatalog builds a catalog from the given kinds
func NewKindCatalog(kinds ...*BuildingKind) *KindCatalog {
	c := &KindCatalog{byName: make(map[string]*BuildingKind, len(kinds))}
	for _, k := range kinds {
		if _, dup := c.byName[k.Name]; dup {
			continue
		}
		c.kinds = append(c.kinds, k)
		c.byName[k.Name] = k
	}
	return c
}

// Kind returns the named kind, if registered
func (c *KindCatalog) Kind(name string) (*BuildingKind, bool) {
	k, ok := c.byName[name]
	return k, ok
}

// Names returns kind names in registration order
func (c *KindCatalog) Names() []string {
	names := make([]string, len(c.kinds))
	for i, k := range c.kinds {
		names[i] = k.Name
	}
	return names
}

// Each iterates over kinds in registration order
func (c *KindCatalog) Each(fn func(*BuildingKind)) {
	for _, k := range c.kinds {
		fn(k)
	}
}

// Len returns the number of registered kinds
func (c *KindCatalog) Len() int {
	return len(c.kinds)
}
