// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// StatusOnline is the status value reported by a healthy service.
const StatusOnline = "online"

// SystemStatus is the service health report from GET /.
type SystemStatus struct {
	Status  string `json:"status" yaml:"status"`
	Service string `json:"service" yaml:"service"`
	Version string `json:"version" yaml:"version"`
}

// Online reports whether the service declared itself online.
func (s SystemStatus) Online() bool { return s.Status == StatusOnline }

// CollectionStat describes one vector collection. IndexedVectorCount may
// exceed VectorCount; the client does not enforce the relation.
type CollectionStat struct {
	Name               string `json:"name" yaml:"name"`
	VectorCount        int    `json:"vector_count" yaml:"vector_count"`
	IndexedVectorCount int    `json:"indexed_vector_count" yaml:"indexed_vector_count"`
}

// SystemInfo combines the health report and the collection list.
type SystemInfo struct {
	Status      SystemStatus     `json:"status" yaml:"status"`
	Collections []CollectionStat `json:"collections" yaml:"collections"`
}
