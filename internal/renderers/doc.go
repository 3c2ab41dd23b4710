// Package renderers provides implementations of the MarkupRenderer interface.
package renderers
