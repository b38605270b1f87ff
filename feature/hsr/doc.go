// Package hsr defines the Honkai: Star Rail cook.
//
// Its artifacts live under hsr/: the flattened skill tree with normalized
// icon paths, property and relic set tables keyed by their ids, and the
// localization store merged from an older and a newer upstream copy.
package hsr
