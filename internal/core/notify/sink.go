package notify

// Sink renders whatever the scheduler decides is current. A sink never
// decides what to show; it only follows Render and Clear.
type Sink interface {
	Render(n Notification)
	Clear()
}

// Exiter is implemented by sinks that animate a notification out. Exit is
// called when the display time ends or the user dismisses, before Clear.
type Exiter interface {
	Exit(n Notification)
}

// Dismisser receives manual dismiss actions from a sink's host.
type Dismisser interface {
	Dismiss(id string)
}

// SinkFunc adapts a render function into a Sink with a no-op Clear.
type SinkFunc func(n Notification)

func (f SinkFunc) Render(n Notification) { f(n) }

func (f SinkFunc) Clear() {}
