// Package metadata provides the internal music metadata model: an ordered,
// multi-valued field store with deletion tracking and an embedded image list.
// It is the application-side counterpart of the raw tag dictionaries stored
// in the audio containers.
package metadata
