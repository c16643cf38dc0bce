// Package synth generates example JSON values from schema trees.
//
// Every call draws fresh values: array items are generated independently and
// primitives without a literal get a new random value of their type each
// time. Free-text strings are shaped by the name of the field they belong to,
// so a "city" field gets a city and a "website" field gets a URL.
//
// Objects are returned as Object, which keeps field order when encoded. Use
// Plain to get ordinary maps.
package synth
