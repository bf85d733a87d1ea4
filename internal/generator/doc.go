// Package generator renders a settings snapshot as a WezTerm Lua
// configuration document.
//
// A document is an ordered list of sections. Each section is a pure
// function of the settings and the resolved palette that returns zero or
// more lines; the lines are joined once at the end. Conditional sections
// return no lines when they do not apply.
package generator
