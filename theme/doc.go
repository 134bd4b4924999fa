// Package theme holds the design tokens and the static styling assets of a
// preview project: a global stylesheet declaring the light and dark token
// sets as CSS variables, and a utility-class configuration that maps those
// variables to class names.
//
// Both assets are rendered once from the token table and shared by every
// assembled project.
package theme
