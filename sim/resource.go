package sim

// Resource gives a system cached access to one World value. Declare it as an
// exported field of a system struct; Scheduler.Register wires it up.
type Resource[T any] struct {
	world *World
	ptr   *T
}

// Init binds the accessor to w. Called by the Scheduler during registration.
func (r *Resource[T]) Init(w *World) {
	r.world = w
	r.ptr = nil
}

// Get returns the stored value, or nil when the World has no T.
func (r *Resource[T]) Get() *T {
	if r.ptr == nil && r.world != nil {
		r.ptr = Lookup[T](r.world)
	}
	return r.ptr
}
