// Package builder defines shared constants used by topology generators,
// ensuring consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodApply tags errors raised by Apply itself.
	MethodApply = "Apply"
	// MethodFullConnected is the canonical name for the FullConnected constructor.
	MethodFullConnected = "FullConnected"
	// MethodRegular is the canonical name for the Regular constructor.
	MethodRegular = "Regular"
	// MethodER is the canonical name for the ER constructor.
	MethodER = "ER"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodCustomizableGrid is the canonical name for the CustomizableGrid constructor.
	MethodCustomizableGrid = "CustomizableGrid"
	// MethodCubic is the canonical name for the Cubic constructor.
	MethodCubic = "Cubic"
	// MethodHoneycomb is the canonical name for the Honeycomb constructor.
	MethodHoneycomb = "Honeycomb"
	// MethodKagome is the canonical name for the Kagome constructor.
	MethodKagome = "Kagome"
	// MethodScaleFree is the canonical name for the ScaleFree constructor.
	MethodScaleFree = "ScaleFree"
)

//-----------------------------------------------------------------------------
// Parameter Bounds
//-----------------------------------------------------------------------------

// MinNodes is the smallest accepted node count; an empty topology is valid.
const MinNodes = 0

// MinLatticeDim is the smallest allowed extent of any lattice axis.
// A 1-wide axis wraps onto itself; such self links are skipped.
const MinLatticeDim = 1

// MinProbability is the lower bound for the ER edge probability, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for the ER edge probability, inclusive.
const MaxProbability = 1.0

// Grid neighborhood sizes accepted by Grid.
const (
	VonNeumann = 4
	Moore      = 8
)
