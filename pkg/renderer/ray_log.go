package renderer

import (
	"sync"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// RayLog collects debug rays from concurrent render tasks
type RayLog struct {
	mtx  sync.Mutex
	rays []integrator.DebugRay
}

// NewRayLog creates an empty ray log
func NewRayLog() *RayLog {
	return &RayLog{}
}

// Record appends a ray to the log
func (l *RayLog) Record(ray integrator.DebugRay) {
	l.mtx.Lock()
	l.rays = append(l.rays, ray)
	l.mtx.Unlock()
}

// Rays returns a copy of the recorded rays
func (l *RayLog) Rays() []integrator.DebugRay {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	out := make([]integrator.DebugRay, len(l.rays))
	copy(out, l.rays)
	return out
}

// Len returns the number of recorded rays
func (l *RayLog) Len() int {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return len(l.rays)
}

// Reset discards every recorded ray
func (l *RayLog) Reset() {
	l.mtx.Lock()
	l.rays = nil
	l.mtx.Unlock()
}
