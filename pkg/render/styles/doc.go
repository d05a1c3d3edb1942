// Package styles defines the visual themes for org chart rendering.
//
// A [Theme] is pure data: colors per chart level, the tree row palette, and
// the connector colors. The painter in package render reads a theme and
// issues drawing calls; sinks never look at themes directly.
//
// # Built-in Themes
//
//   - [Gradient] ("gradient"): the default. Each chart level is filled with
//     a diagonal two-color gradient and outlined in a darker border.
//   - [Flat] ("flat"): the same hues as solid fills, suited to print.
//
// Chart levels beyond the palette reuse its last entry. Tree rows cycle
// through [Theme.Tree] by depth.
//
// # Text
//
// [Truncate] shortens labels to a fixed character budget with a trailing
// ellipsis, counting runes rather than bytes:
//
//	styles.Truncate("Direct Financial Network Holding", 20, 18) // "Direct Financial N..."
package styles
