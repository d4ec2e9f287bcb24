// Package model defines the closed catalogs the settings form chooses from.
//
// # Enumerations
//
// Every enum-like setting is a string type with a fixed value list and a
// Values accessor used to populate choice widgets:
//
//	model.DeviceValues()              // ["cpu", "cuda", "mps"]
//	model.InteractiveSegModelValues() // ["vit_b", "vit_l", "vit_h", "mobile_sam"]
//	model.Device("cuda").Valid()      // true
//
// # Model Catalog
//
// ModelValues lists the erase models followed by the diffusion models. The
// catalog drives the form only; a config file may name any model the server
// can load, so IsKnownModel is informational.
//
// # Help Texts
//
// The *Help constants are the labels shown next to each form field.
package model
