// Package loader provides the feature loading system of the HTTP API.
//
// Each feature implements the Feature interface and is registered with a
// Manager; LoadAll mounts the routes of every enabled feature in
// registration order.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
package loader
