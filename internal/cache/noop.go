package cache

import "time"

// Noop заглушка кеша: используется, когда redis не сконфигурирован.
// Get всегда промахивается, Set и Invalidate ничего не делают.
type Noop struct{}

// Get всегда возвращает false.
func (Noop) Get(_ string, _ any) (bool, error) { return false, nil }

// Set ничего не сохраняет.
func (Noop) Set(_ string, _ any, _ time.Duration) error { return nil }

// Invalidate ничего не удаляет.
func (Noop) Invalidate(_ string) error { return nil }
