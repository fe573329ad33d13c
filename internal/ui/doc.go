// Package ui provides terminal color themes for CLI output, including
// NO_COLOR support for accessibility.
package ui
