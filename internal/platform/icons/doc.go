// Package icons is the icon-path registry.
//
// Every Name maps to two ordered lists of SVG path data, one drawn on the
// 16px grid and one on the 20px grid. The tables are generated from the SVG
// sources under svg/ and are total over Name; Blank has no paths in either
// grid.
package icons

//go:generate go run ../../tools/icongen -source svg -out icons_gen.go -package icons
//go:generate go run ../../tools/icondocgen -out docs/icon-catalog.md
