package value

func (d *debouncer[T]) pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

func (t *throttler[T]) inCooldown() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cooling
}
