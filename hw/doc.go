// Package hw provides a hardware abstraction layer for the Game Boy Advance.
//
// It implements low-level access to the memory mapped registers. All hardware
// capabilities are directly exposed and in general unsafe. Use the packages
// in drivers to write applications instead.
//
// Registers are accessed through a [Bus], so that drivers can be tested on a
// host with the in-memory model from package sim.
package hw

// GBATEK
// https://problemkaputt.de/gbatek.htm
