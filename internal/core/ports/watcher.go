package ports

import "context"

// InputWatcher reports changes to puzzle input files.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type InputWatcher interface {
	// Watch calls onChange with the changed paths whenever any of paths is
	// written, created or replaced. Bursts of events are coalesced into one call.
	// ready is called once every path is being watched; changes made after
	// ready starts are reported. Watch blocks until ctx is done.
	Watch(ctx context.Context, paths []string, ready func(), onChange func(paths []string)) error
}
