package logmanager

// registry is the manager's live-object tracking collection: an identity set
// of loggers created through the manager and not yet destroyed. Mutated only
// under the Manager's lock, so each record leaves the set exactly once.
type registry struct {
	records map[*Logger]struct{}
}

func newRegistry() *registry {
	return &registry{records: make(map[*Logger]struct{})}
}

func (r *registry) insert(l *Logger) {
	r.records[l] = struct{}{}
}

// remove reports whether l was present.
func (r *registry) remove(l *Logger) bool {
	if _, ok := r.records[l]; !ok {
		return false
	}
	delete(r.records, l)
	return true
}

// drain empties the registry and returns the records it held. Order is
// unspecified.
func (r *registry) drain() []*Logger {
	drained := make([]*Logger, 0, len(r.records))
	for l := range r.records {
		drained = append(drained, l)
	}
	r.records = make(map[*Logger]struct{})
	return drained
}

func (r *registry) size() int {
	return len(r.records)
}
