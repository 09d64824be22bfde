// Package layout implements the measurement and placement engine for the
// collapsing toolbar container.
//
// Children are measured with a constraints-in/size-out protocol: the engine
// hands each child a [Constraints] with the height range relaxed to
// [0, Unbounded], the child returns a concrete [Size], and the engine derives
// the toolbar's width and height bounds from the results before any child is
// placed. Types are re-exported through the root collapse package for public
// consumption.
//
// The main entry point is [Engine.Layout], which runs one synchronous
// measure-then-place pass: measure and aggregate, update the retained
// [ToolbarState] (firing change notifications), then place each child by its
// [Strategy].
package layout
