package keepalive

// Watcher is the host's change notification for container properties.
// fn is called synchronously with the new value every time prop changes.
// The returned stop function cancels the subscription.
type Watcher interface {
	Watch(prop string, fn func(value any)) (stop func())
}

type subscription struct {
	id int
	fn func(any)
}

// Props is a minimal Watcher for hosts without a reactivity runtime. Set
// notifies watchers in subscription order on every call, without comparing
// old and new values.
type Props struct {
	values map[string]any
	subs   map[string][]subscription
	nextID int
}

func NewProps() *Props {
	return &Props{
		values: make(map[string]any),
		subs:   make(map[string][]subscription),
	}
}

func (p *Props) Get(prop string) any { return p.values[prop] }

func (p *Props) Set(prop string, value any) {
	p.values[prop] = value
	// copy so watchers may stop themselves while being notified
	subs := append([]subscription(nil), p.subs[prop]...)
	for _, s := range subs {
		s.fn(value)
	}
}

func (p *Props) Watch(prop string, fn func(value any)) func() {
	p.nextID++
	id := p.nextID
	p.subs[prop] = append(p.subs[prop], subscription{id: id, fn: fn})
	return func() {
		subs := p.subs[prop]
		for i, s := range subs {
			if s.id == id {
				p.subs[prop] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

var _ Watcher = (*Props)(nil)
