// Package collapse provides a layout container that smoothly morphs its
// children between a collapsed and an expanded arrangement as a single
// collapse-progress scalar varies.
//
// Users import this single package for the complete public API:
// toolbar construction, child annotations, geometry types, and the retained
// ToolbarState an external driver (such as a scroll coordinator) reads and
// writes.
package collapse
