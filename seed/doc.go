// Package seed keeps a tree of cooperating generators on one random stream.
//
// A composite generator owns a Notifier and registers every sub-generator it
// builds:
//
//	type Internet struct {
//		Base
//		name *Name
//	}
//
//	func NewInternet() *Internet {
//		i := &Internet{}
//		i.name = seed.Flow(i.Notifier(), NewName())
//		return i
//	}
//
// When the composite adopts a new Randomizer it calls Notify, which hands the
// same facade to each registered dependent in registration order. Reseeding
// the root is therefore observably the same as reseeding every node.
package seed
