// Package event is the synchronous gameplay-to-presentation notification
// channel. Gameplay emits on a topic; every handler currently subscribed to
// that topic runs, in subscription order, before Emit returns.
package event

// Topic names a notification stream. The set is closed.
type Topic string

const (
	HealthChanged Topic = "health-changed"
	CoinsChanged  Topic = "coins-changed"
)

// Topics lists every topic the channel accepts.
var Topics = [...]Topic{HealthChanged, CoinsChanged}

func (t Topic) Valid() bool {
	for _, known := range Topics {
		if t == known {
			return true
		}
	}
	return false
}

// Handler receives a topic's integer payload.
type Handler func(payload int)

// Subscription identifies one Subscribe call. Func values are not comparable,
// so callers keep this token to unsubscribe.
type Subscription struct {
	topic Topic
	id    uint64
}

func (s Subscription) Topic() Topic { return s.topic }

// Valid reports whether the token came from a successful Subscribe.
func (s Subscription) Valid() bool { return s.id != 0 }

type entry struct {
	id      uint64
	handler Handler
}

// Channel is a publish/subscribe bus scoped to one game session. It is not
// safe for concurrent use; the game loop owns it.
type Channel struct {
	handlers map[Topic][]entry
	nextID   uint64
}

func NewChannel() *Channel {
	return &Channel{handlers: make(map[Topic][]entry)}
}

// Subscribe registers h for topic. Unknown topics and nil handlers yield an
// invalid Subscription.
func (c *Channel) Subscribe(topic Topic, h Handler) Subscription {
	if c == nil || h == nil || !topic.Valid() {
		return Subscription{}
	}
	if c.handlers == nil {
		c.handlers = make(map[Topic][]entry)
	}
	c.nextID++
	c.handlers[topic] = append(c.handlers[topic], entry{id: c.nextID, handler: h})
	return Subscription{topic: topic, id: c.nextID}
}

// Unsubscribe removes the handler registered by sub and reports whether it
// was still attached.
func (c *Channel) Unsubscribe(sub Subscription) bool {
	if c == nil || !sub.Valid() {
		return false
	}
	list := c.handlers[sub.topic]
	for i, e := range list {
		if e.id != sub.id {
			continue
		}
		next := make([]entry, 0, len(list)-1)
		next = append(next, list[:i]...)
		next = append(next, list[i+1:]...)
		c.handlers[sub.topic] = next
		return true
	}
	return false
}

// Emit delivers payload to the handlers subscribed when Emit was called.
// Handlers that subscribe or unsubscribe during delivery take effect on the
// next Emit.
func (c *Channel) Emit(topic Topic, payload int) {
	if c == nil || !topic.Valid() {
		return
	}
	for _, e := range c.handlers[topic] {
		e.handler(payload)
	}
}

// HandlerCount returns the number of handlers subscribed to topic.
func (c *Channel) HandlerCount(topic Topic) int {
	if c == nil {
		return 0
	}
	return len(c.handlers[topic])
}
