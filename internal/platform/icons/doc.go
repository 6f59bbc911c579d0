// Package icons is the catalog of Lucide icons the product draws.
//
// Entries carry the inner markup of a 24x24 stroke icon so renderers only
// supply the outer <svg> element and sizing.
package icons
