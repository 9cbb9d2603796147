// Package units holds the unit catalog and the conversion engine.
//
// Everything here is a pure function over its inputs and safe for concurrent use.
// Conversions run in two stages through a canonical unit per category: meters for
// length and Celsius for temperature.
package units
